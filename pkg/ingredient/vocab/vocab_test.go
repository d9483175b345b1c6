package vocab

import (
	"reflect"
	"testing"
)

func TestUnitToStandard(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"oz", "ounce"},
		{"ozs.", "ounce"},
		{"cups", "cup"},
		{"C", "cup"},
		{"T", "tablespoon"},
		{"t", "teaspoon"},
		{"fl oz", "fluid ounce"},
		{"lbs", "pound"},
		{"can", "can"},
	}
	for _, tt := range tests {
		if got := UnitToStandard[tt.alias]; got != tt.want {
			t.Errorf("UnitToStandard[%q] = %q, want %q", tt.alias, got, tt.want)
		}
	}
}

func TestSingularize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cups", "cup"},
		{"cup", "cup"},
		{"oz", "oz"},
		{"ounces", "ounce"},
		{"loaves", "loaf"},
		{"patties", "patty"},
		{"boxes", "box"},
		{"pinches", "pinch"},
	}
	for _, tt := range tests {
		if got := Singularize(tt.in); got != tt.want {
			t.Errorf("Singularize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnitSubsets(t *testing.T) {
	if !BasicUnitsSet["oz"] {
		t.Error("oz should be a basic unit")
	}
	if BasicUnitsSet["can"] {
		t.Error("can should not be a basic unit")
	}
	if !NonBasicUnitsSet["can"] {
		t.Error("can should be a non-basic unit")
	}
	if !IsWeightUnit("lbs") || IsWeightUnit("cup") {
		t.Error("weight unit classification is wrong")
	}
	if !IsVolumeUnit("tbsp") || IsVolumeUnit("g") {
		t.Error("volume unit classification is wrong")
	}
}

func TestDimensionUnitsExcludeIn(t *testing.T) {
	// "in" reads as the preposition far more often than the unit
	if DimensionUnitsSet["in"] {
		t.Error(`"in" must not be a dimension unit spelling`)
	}
	if !DimensionUnitsSet["inch"] || !DimensionUnitsSet["cm"] {
		t.Error("expected dimension unit spellings are missing")
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("2 cups, flour (sifted)")
	want := []string{"2", "cups", "flour", "sifted"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestCleanTokenKeepsDots(t *testing.T) {
	if got := CleanToken("oz.,"); got != "oz." {
		t.Errorf("CleanToken(oz.,) = %q, want oz.", got)
	}
}

func TestFindNumberUnitPair(t *testing.T) {
	tests := []struct {
		text     string
		set      map[string]bool
		quantity string
		unit     string
		ok       bool
	}{
		{"2 cups flour", BasicUnitsSet, "2", "cups", true},
		{"1 can black beans", BasicUnitsSet, "", "", false},
		{"1 can black beans", NonBasicUnitsSet, "1", "can", true},
		{"2 fl oz rum", UnitsSet, "2", "fl oz", true},
		{"salt to taste", UnitsSet, "", "", false},
	}
	for _, tt := range tests {
		q, u, ok := FindNumberUnitPair(tt.text, tt.set)
		if q != tt.quantity || u != tt.unit || ok != tt.ok {
			t.Errorf("FindNumberUnitPair(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.text, q, u, ok, tt.quantity, tt.unit, tt.ok)
		}
	}
}

func TestFirstUnit(t *testing.T) {
	u, ok := FirstUnit("heaping cups of flour", UnitsSet)
	if !ok || u != "cups" {
		t.Errorf("FirstUnit() = (%q, %v), want cups", u, ok)
	}
	if _, ok := FirstUnit("fresh basil", UnitsSet); ok {
		t.Error("FirstUnit(fresh basil) found a unit")
	}
}

func TestCasualQuantityRules(t *testing.T) {
	byPhrase := map[string]CasualQuantityRule{}
	for _, rule := range CasualQuantityRules {
		byPhrase[rule.Re.String()] = rule
	}

	pinch, ok := byPhrase[`(?i)\ba pinch\b`]
	if !ok || pinch.Value != 1 || pinch.KeepWord != "pinch" {
		t.Errorf("rule for 'a pinch' = %+v, want value 1 keeping the word", pinch)
	}
	couple, ok := byPhrase[`(?i)\ba couple\b`]
	if !ok || couple.Value != 2 || couple.KeepWord != "" {
		t.Errorf("rule for 'a couple' = %+v, want value 2 with no kept word", couple)
	}
}

func TestCleanConjunctionHyphens(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1-to-3 cups", "1 to 3 cups"},
		{"4- or 5 apples", "4 or 5 apples"},
		{"1 to-2", "1 to 2"},
	}
	for _, tt := range tests {
		if got := CleanConjunctionHyphens(tt.in); got != tt.want {
			t.Errorf("CleanConjunctionHyphens(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMarkerPatterns(t *testing.T) {
	if !OptionalMarker.MatchString("salt (optional)") {
		t.Error("optional marker not found")
	}
	if RequiredMarker.MatchString("unrequired garnish") {
		t.Error("unrequired must not read as required")
	}
	if !OptionalMarker.MatchString("unrequired garnish") {
		t.Error("unrequired should read as optional")
	}
}
