package fuzzymatch

import "testing"

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		min  float64
		max  float64
	}{
		{"sugar", "sugar", 1, 1},
		{"Sugar", "sugar", 1, 1},
		{"", "", 0, 0},
		{"sugar", "", 0, 0},
		{"brown sugar", "sugar", 0.6, 0.7},
		{"flour", "milk", 0, 0.3},
	}
	for _, tt := range tests {
		got := Ratio(tt.a, tt.b)
		if got < tt.min || got > tt.max {
			t.Errorf("Ratio(%q, %q) = %v, want in [%v, %v]", tt.a, tt.b, got, tt.min, tt.max)
		}
	}
}

func TestRatioSymmetric(t *testing.T) {
	if Ratio("olive oil", "oil") != Ratio("oil", "olive oil") {
		t.Error("Ratio is not symmetric")
	}
}

func TestBestMatch(t *testing.T) {
	candidates := []string{"sugar", "brown sugar", "flour", "milk"}

	m, ok := BestMatch("packed brown sugar", candidates, 0.5)
	if !ok || m.Candidate != "brown sugar" {
		t.Errorf("BestMatch(packed brown sugar) = %+v, %v, want brown sugar", m, ok)
	}

	m, ok = BestMatch("all purpose flour", candidates, 0.5)
	if !ok || m.Candidate != "flour" {
		t.Errorf("BestMatch(all purpose flour) = %+v, %v, want flour", m, ok)
	}

	if _, ok := BestMatch("chicken broth", candidates, 0.85); ok {
		t.Error("BestMatch(chicken broth) matched, want no match at 0.85")
	}
}

func TestBestMatchExact(t *testing.T) {
	m, ok := BestMatch("milk", []string{"milk", "buttermilk"}, 0.85)
	if !ok || m.Candidate != "milk" || m.Score != 1 {
		t.Errorf("BestMatch(milk) = %+v, %v, want exact milk", m, ok)
	}
}
