package ingredient

import "testing"

func TestClassifyParenthesis(t *testing.T) {
	tests := []struct {
		span     string
		kind     parenKind
		quantity string
		unit     string
	}{
		{"(2)", parenQuantityOnly, "2", ""},
		{"(4 5)", parenQuantityOnly, "4", ""},
		{"(about 4)", parenApproximateQuantity, "", ""},
		{"(15 oz)", parenBarePair, "15", "oz"},
		{"(about 3 ounces)", parenEquivalence, "3", "ounce"},
		{"(approx. 240 ml)", parenEquivalence, "240", "ml"},
		{"(3 ounces each)", parenNone, "", ""},
		{"(optional)", parenNone, "", ""},
		{"(drained and rinsed)", parenNone, "", ""},
		{"()", parenNone, "", ""},
	}
	for _, tt := range tests {
		kind, q, u := classifyParenthesis(tt.span)
		if kind != tt.kind || q != tt.quantity || u != tt.unit {
			t.Errorf("classifyParenthesis(%q) = (%v, %q, %q), want (%v, %q, %q)",
				tt.span, kind, q, u, tt.kind, tt.quantity, tt.unit)
		}
	}
}

func resolveWith(quantity, unit string, spans ...string) *ParseState {
	st := newParseState("")
	st.Quantity = quantity
	st.Unit = unit
	st.Parens = spans
	New().resolveParentheses(st)
	return st
}

func TestQuantityOnlyMerge(t *testing.T) {
	tests := []struct {
		name         string
		quantity     string
		unit         string
		span         string
		wantQuantity string
		wantUnit     string
		wantSecQty   string
	}{
		{"empty state adopts", "", "", "(2)", "2", "", ""},
		{"quantity multiplies", "2", "", "(3)", "6", "", ""},
		{"unit kept", "", "cup", "(2)", "2", "cup", ""},
		{"full state demotes quantity", "2", "cup", "(3)", "6", "cup", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := resolveWith(tt.quantity, tt.unit, tt.span)
			if st.Quantity != tt.wantQuantity || st.Unit != tt.wantUnit || st.SecondaryQuantity != tt.wantSecQty {
				t.Errorf("got (%q, %q, sec %q), want (%q, %q, sec %q)",
					st.Quantity, st.Unit, st.SecondaryQuantity,
					tt.wantQuantity, tt.wantUnit, tt.wantSecQty)
			}
		})
	}
}

func TestEquivalenceMerge(t *testing.T) {
	t.Run("empty state adopts", func(t *testing.T) {
		st := resolveWith("", "", "(about 3 ounces)")
		if st.Quantity != "3" || st.Unit != "ounce" {
			t.Errorf("got (%q, %q), want (3, ounce)", st.Quantity, st.Unit)
		}
	})

	t.Run("quantity demoted", func(t *testing.T) {
		st := resolveWith("2", "", "(about 3 ounces)")
		if st.Quantity != "3" || st.Unit != "ounce" || st.SecondaryQuantity != "2" {
			t.Errorf("got (%q, %q, sec %q), want (3, ounce, sec 2)",
				st.Quantity, st.Unit, st.SecondaryQuantity)
		}
	})

	t.Run("unit demoted", func(t *testing.T) {
		st := resolveWith("", "can", "(about 3 ounces)")
		if st.Quantity != "3" || st.Unit != "ounce" || st.SecondaryUnit != "can" {
			t.Errorf("got (%q, %q, sec unit %q), want (3, ounce, sec can)",
				st.Quantity, st.Unit, st.SecondaryUnit)
		}
	})

	t.Run("both basic keeps primary", func(t *testing.T) {
		st := resolveWith("1", "cup", "(about 8 oz)")
		if st.Quantity != "1" || st.Unit != "cup" {
			t.Errorf("primary = (%q, %q), want (1, cup)", st.Quantity, st.Unit)
		}
		if st.SecondaryQuantity != "8" || st.SecondaryUnit != "oz" {
			t.Errorf("secondary = (%q, %q), want (8, oz)", st.SecondaryQuantity, st.SecondaryUnit)
		}
	})

	t.Run("basic span replaces non-basic primary", func(t *testing.T) {
		st := resolveWith("1", "can", "(about 15 oz)")
		if st.Quantity != "15" || st.Unit != "oz" {
			t.Errorf("primary = (%q, %q), want (15, oz)", st.Quantity, st.Unit)
		}
		if st.SecondaryQuantity != "1" || st.SecondaryUnit != "can" {
			t.Errorf("secondary = (%q, %q), want (1, can)", st.SecondaryQuantity, st.SecondaryUnit)
		}
	})
}

func TestBarePairMerge(t *testing.T) {
	t.Run("empty state adopts", func(t *testing.T) {
		st := resolveWith("", "", "(15 oz)")
		if st.Quantity != "15" || st.Unit != "oz" {
			t.Errorf("got (%q, %q), want (15, oz)", st.Quantity, st.Unit)
		}
	})

	t.Run("quantity multiplies and unit adopted", func(t *testing.T) {
		st := resolveWith("2", "", "(15 oz)")
		if st.Quantity != "30" || st.Unit != "oz" {
			t.Errorf("got (%q, %q), want (30, oz)", st.Quantity, st.Unit)
		}
		if st.SecondaryQuantity != "2" {
			t.Errorf("SecondaryQuantity = %q, want %q", st.SecondaryQuantity, "2")
		}
	})

	t.Run("basic span multiplies into non-basic primary", func(t *testing.T) {
		st := resolveWith("1", "can", "(15 oz)")
		if st.Quantity != "15" || st.Unit != "oz" {
			t.Errorf("primary = (%q, %q), want (15, oz)", st.Quantity, st.Unit)
		}
		if st.SecondaryQuantity != "1" || st.SecondaryUnit != "can" {
			t.Errorf("secondary = (%q, %q), want (1, can)", st.SecondaryQuantity, st.SecondaryUnit)
		}
	})

	t.Run("both basic demotes span", func(t *testing.T) {
		st := resolveWith("1", "cup", "(240 ml)")
		if st.Quantity != "1" || st.Unit != "cup" {
			t.Errorf("primary = (%q, %q), want (1, cup)", st.Quantity, st.Unit)
		}
		if st.SecondaryQuantity != "240" || st.SecondaryUnit != "ml" {
			t.Errorf("secondary = (%q, %q), want (240, ml)", st.SecondaryQuantity, st.SecondaryUnit)
		}
	})
}

func TestResolveRecordsNotes(t *testing.T) {
	st := resolveWith("", "", "(drained)")
	if len(st.Notes) != 1 {
		t.Fatalf("Notes = %v, want one diagnostic entry", st.Notes)
	}
	if st.Quantity != "" || st.Unit != "" {
		t.Error("unmatched span must leave state unchanged")
	}
}

func TestResolveLaterSpanWins(t *testing.T) {
	st := resolveWith("", "", "(2)", "(3)")
	if st.Quantity != "6" {
		t.Errorf("Quantity = %q, want 6 after both spans", st.Quantity)
	}
}
