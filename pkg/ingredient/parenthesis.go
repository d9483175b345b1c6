package ingredient

import (
	"log/slog"
	"strings"

	"github.com/mealcraft/ingredientparser/pkg/ingredient/vocab"
)

// parenKind classifies one parenthetical span. Exactly one kind applies to
// any span; the classifier checks them in a fixed order so the rule
// families stay mutually exclusive.
type parenKind int

const (
	parenNone parenKind = iota
	parenApproximateQuantity
	parenQuantityOnly
	parenEquivalence
	parenBarePair
)

func (k parenKind) String() string {
	switch k {
	case parenApproximateQuantity:
		return "approximate quantity"
	case parenQuantityOnly:
		return "quantity only"
	case parenEquivalence:
		return "equivalence"
	case parenBarePair:
		return "bare quantity and unit"
	}
	return "no match"
}

// resolveParentheses walks the recorded parenthetical spans left to right
// and folds each one into the quantity/unit state. Later spans may
// overwrite what earlier spans set.
func (p *Parser) resolveParentheses(st *ParseState) {
	for _, span := range st.Parens {
		kind, qty, unit := classifyParenthesis(span)
		switch kind {
		case parenApproximateQuantity:
			st.note(span, "approximate quantity, ignored")
		case parenQuantityOnly:
			p.mergeQuantityOnly(st, span, qty)
		case parenEquivalence:
			p.mergeEquivalence(st, span, qty, unit)
		case parenBarePair:
			p.mergeBarePair(st, span, qty, unit)
		default:
			st.note(span, "no quantity or unit recognized")
		}
		slog.Debug("parenthesis resolved",
			"span", span, "kind", kind.String(), "quantity", st.Quantity, "unit", st.Unit)
	}
}

func (st *ParseState) note(span, msg string) {
	st.Notes = append(st.Notes, span+": "+msg)
}

// classifyParenthesis inspects a raw span (delimiters included) and
// returns its kind plus any extracted number and unit spelling.
func classifyParenthesis(span string) (parenKind, string, string) {
	content := strings.TrimSpace(strings.Trim(span, "()"))
	toks := vocab.Tokenize(content)
	if len(toks) == 0 {
		return parenNone, "", ""
	}

	lowered := make([]string, len(toks))
	numbers := 0
	approximate := false
	other := false
	for i, tok := range toks {
		lowered[i] = strings.ToLower(tok)
		switch {
		case vocab.IsNumber(tok):
			numbers++
		case vocab.ApproximateStrings[lowered[i]]:
			approximate = true
		default:
			other = true
		}
	}

	// only numbers, optionally softened with an approximation word
	if numbers > 0 && !other {
		if approximate {
			return parenApproximateQuantity, "", ""
		}
		q, _ := vocab.FirstNumber(content)
		return parenQuantityOnly, q, ""
	}

	// cased alias spellings such as "T" are tried before lowercasing
	q, u, paired := vocab.FindNumberUnitPair(content, vocab.UnitsSet)
	if !paired {
		q, u, paired = vocab.FindNumberUnitPair(strings.ToLower(content), vocab.UnitsSet)
	}
	if !paired {
		return parenNone, "", ""
	}
	if containsPerUnitPhrase(lowered) {
		// "3 ounces each" describes one item, not the whole line
		return parenNone, "", ""
	}
	u = vocab.Singularize(u)
	if approximate {
		return parenEquivalence, q, u
	}
	return parenBarePair, q, u
}

func containsPerUnitPhrase(toks []string) bool {
	for i, tok := range toks {
		if vocab.PerUnitStrings[tok] {
			return true
		}
		if i+1 < len(toks) && vocab.PerUnitStrings[tok+" "+toks[i+1]] {
			return true
		}
	}
	return false
}

func (p *Parser) mergeQuantityOnly(st *ParseState, span, qty string) {
	switch {
	case st.Quantity == "" && st.Unit == "":
		st.Quantity = qty
		st.note(span, "quantity adopted")
	case st.Quantity != "" && st.Unit == "":
		st.Quantity = multiplyQuantities(st.Quantity, qty)
		st.note(span, "quantity multiplied in")
	case st.Quantity == "" && st.Unit != "":
		st.Quantity = qty
		st.note(span, "quantity adopted, unit kept")
	default:
		st.SecondaryQuantity = st.Quantity
		st.Quantity = multiplyQuantities(st.Quantity, qty)
		st.note(span, "quantity multiplied in, previous quantity demoted")
	}
}

func (p *Parser) mergeEquivalence(st *ParseState, span, qty, unit string) {
	switch {
	case st.Quantity == "" && st.Unit == "":
		st.Quantity, st.Unit = qty, unit
		st.note(span, "equivalent quantity and unit adopted")
	case st.Quantity != "" && st.Unit == "":
		st.SecondaryQuantity = st.Quantity
		st.Quantity, st.Unit = qty, unit
		st.note(span, "equivalent pair adopted, previous quantity demoted")
	case st.Quantity == "" && st.Unit != "":
		st.SecondaryUnit = st.Unit
		st.Quantity, st.Unit = qty, unit
		st.note(span, "equivalent pair adopted, previous unit demoted")
	default:
		p.mergeWithTieBreak(st, span, qty, unit, false)
	}
}

func (p *Parser) mergeBarePair(st *ParseState, span, qty, unit string) {
	switch {
	case st.Quantity == "" && st.Unit == "":
		st.Quantity, st.Unit = qty, unit
		st.note(span, "quantity and unit adopted")
	case st.Quantity != "" && st.Unit == "":
		st.SecondaryQuantity = st.Quantity
		st.Quantity = multiplyQuantities(st.Quantity, qty)
		st.Unit = unit
		st.note(span, "quantity multiplied in, unit adopted, previous quantity demoted")
	case st.Quantity == "" && st.Unit != "":
		st.SecondaryUnit = st.Unit
		st.Quantity, st.Unit = qty, unit
		st.note(span, "pair adopted, previous unit demoted")
	default:
		p.mergeWithTieBreak(st, span, qty, unit, true)
	}
}

// mergeWithTieBreak settles a span against a fully set primary pair.
// Basic units (cups, ounces, grams and kin) outrank other units; when the
// span alone carries a basic unit it takes over the primary slot.
func (p *Parser) mergeWithTieBreak(st *ParseState, span, qty, unit string, multiply bool) {
	parenBasic := vocab.IsBasicUnit(unit)
	currentBasic := vocab.IsBasicUnit(st.Unit)

	switch {
	case parenBasic == currentBasic:
		st.SecondaryQuantity, st.SecondaryUnit = qty, unit
		st.note(span, "pair demoted to secondary")
	case parenBasic:
		st.SecondaryQuantity, st.SecondaryUnit = st.Quantity, st.Unit
		if multiply {
			st.Quantity = multiplyQuantities(st.Quantity, qty)
		} else {
			st.Quantity = qty
		}
		st.Unit = unit
		st.note(span, "basic unit promoted to primary")
	default:
		st.SecondaryQuantity, st.SecondaryUnit = qty, unit
		st.note(span, "non-basic pair demoted to secondary")
	}
}

func multiplyQuantities(a, b string) string {
	x, okA := parseNumber(a)
	y, okB := parseNumber(b)
	if !okA || !okB {
		slog.Warn("quantities do not multiply", "a", a, "b", b)
		return a
	}
	return formatNumber(x * y)
}
