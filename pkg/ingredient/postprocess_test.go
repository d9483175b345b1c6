package ingredient

import (
	"reflect"
	"testing"
)

func TestPrioritizeWeightUnits(t *testing.T) {
	st := newParseState("")
	st.Quantity, st.Unit = "1", "cup"
	st.SecondaryQuantity, st.SecondaryUnit = "240", "g"

	p := New()
	p.standardizeUnits(st)
	p.prioritizeWeightUnits(st)

	if st.Quantity != "240" || st.Unit != "g" || st.StandardizedUnit != "gram" {
		t.Errorf("primary = (%q, %q, %q), want the weight measurement",
			st.Quantity, st.Unit, st.StandardizedUnit)
	}
	if st.SecondaryQuantity != "1" || st.SecondaryUnit != "cup" || st.StandardizedSecondaryUnit != "cup" {
		t.Errorf("secondary = (%q, %q, %q), want the volume measurement",
			st.SecondaryQuantity, st.SecondaryUnit, st.StandardizedSecondaryUnit)
	}
}

func TestPrioritizeWeightUnitsNoSwap(t *testing.T) {
	st := newParseState("")
	st.Quantity, st.Unit = "15", "oz"
	st.SecondaryQuantity, st.SecondaryUnit = "1", "can"

	p := New()
	p.standardizeUnits(st)
	p.prioritizeWeightUnits(st)

	if st.Unit != "oz" || st.SecondaryUnit != "can" {
		t.Errorf("units = (%q, %q), want no swap", st.Unit, st.SecondaryUnit)
	}
}

func TestExtractFood(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"2.5 cups of sugar", "sugar"},
		{"1 pinch of salt", "salt"},
		{"2.5 oz grated cheddar cheese", "cheddar cheese"},
		{"1 can black beans", "black beans"},
		{"2 large eggs", "eggs"},
		{"1 cup half and half", "half-and-half"},
		{"3 tbsp finely chopped fresh parsley", "fresh parsley"},
	}
	p := New()
	for _, tt := range tests {
		st := newParseState(tt.text)
		st.Text = tt.text
		p.extractFood(st)
		if st.Food != tt.want {
			t.Errorf("extractFood(%q) = %q, want %q", tt.text, st.Food, tt.want)
		}
	}
}

func TestExtractDescriptors(t *testing.T) {
	p := New()
	st := newParseState("")
	st.Staged = "2 large carrots, finely chopped and diced"
	p.extractDescriptors(st)

	wantPrep := []string{"chopped", "diced", "finely"}
	if !reflect.DeepEqual(st.Prep, wantPrep) {
		t.Errorf("Prep = %v, want %v", st.Prep, wantPrep)
	}
	wantSize := []string{"large"}
	if !reflect.DeepEqual(st.SizeModifiers, wantSize) {
		t.Errorf("SizeModifiers = %v, want %v", st.SizeModifiers, wantSize)
	}
}

func TestExtractDescriptorsTwoWordSize(t *testing.T) {
	p := New()
	st := newParseState("")
	st.Staged = "2 extra large eggs"
	p.extractDescriptors(st)

	want := []string{"extra large", "large"}
	if !reflect.DeepEqual(st.SizeModifiers, want) {
		t.Errorf("SizeModifiers = %v, want %v", st.SizeModifiers, want)
	}
}

func TestRequiredFromText(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"1 cup sugar", true},
		{"(optional)", false},
		{"fresh basil, optional", false},
		{"unrequired garnish", false},
		{"required: 2 eggs", true},
		{"", true},
	}
	for _, tt := range tests {
		if got := requiredFromText(tt.text); got != tt.want {
			t.Errorf("requiredFromText(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestApplyDefaultQuantity(t *testing.T) {
	p := New()

	st := newParseState("")
	st.Unit, st.StandardizedUnit = "cup", "cup"
	p.applyDefaultQuantity(st)
	if st.Quantity != "1" {
		t.Errorf("Quantity = %q, want 1 for a bare volume unit", st.Quantity)
	}

	st = newParseState("")
	st.Unit, st.StandardizedUnit = "can", "can"
	p.applyDefaultQuantity(st)
	if st.Quantity != "" {
		t.Errorf("Quantity = %q, want unset for a container unit", st.Quantity)
	}
}

func TestFoodUnitFallback(t *testing.T) {
	p := New()
	st := newParseState("2 tortillas")
	st.Text = "2 tortillas"
	p.applyFoodUnitFallback(st)
	if st.Unit != "tortilla" {
		t.Errorf("Unit = %q, want tortilla", st.Unit)
	}

	st = newParseState("")
	st.Text = "2 cups flour"
	st.Unit = "cup"
	p.applyFoodUnitFallback(st)
	if st.Unit != "cup" {
		t.Error("fallback must not overwrite an extracted unit")
	}
}
