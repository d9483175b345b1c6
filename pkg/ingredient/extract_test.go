package ingredient

import "testing"

func TestExtractQuantityUnit(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		quantity string
		unit     string
	}{
		{"basic unit pair", "2.5 cups of sugar", "2.5", "cup"},
		{"non-basic unit pair", "1 can black beans", "1", "can"},
		{"basic beats earlier non-basic", "1 can 15 oz beans", "15", "oz"},
		{"independent number and unit", "2 heaping cups flour", "2", "cup"},
		{"number only", "2 ripe avocados", "2", ""},
		{"unit only", "cup of sugar", "", "cup"},
		{"nothing", "salt and pepper", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newParseState(tt.text)
			st.Text = tt.text
			New().extractQuantityUnit(st)
			if st.Quantity != tt.quantity || st.Unit != tt.unit {
				t.Errorf("extract(%q) = (%q, %q), want (%q, %q)",
					tt.text, st.Quantity, st.Unit, tt.quantity, tt.unit)
			}
		})
	}
}
