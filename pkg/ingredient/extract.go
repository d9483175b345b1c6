package ingredient

import (
	"log/slog"

	"github.com/mealcraft/ingredientparser/pkg/ingredient/vocab"
)

// extractQuantityUnit pulls the primary quantity and unit out of the
// normalized text. Matching is tiered: a number adjacent to a basic unit
// wins, then a number adjacent to any other unit, then the first number
// and first unit found independently anywhere in the text.
func (p *Parser) extractQuantityUnit(st *ParseState) {
	if q, u, ok := vocab.FindNumberUnitPair(st.Text, vocab.BasicUnitsSet); ok {
		st.Quantity, st.Unit = q, vocab.Singularize(u)
		return
	}
	if q, u, ok := vocab.FindNumberUnitPair(st.Text, vocab.NonBasicUnitsSet); ok {
		st.Quantity, st.Unit = q, vocab.Singularize(u)
		return
	}

	if q, ok := vocab.FirstNumber(st.Text); ok {
		st.Quantity = q
	}
	if u, ok := vocab.FirstUnit(st.Text, vocab.UnitsSet); ok {
		st.Unit = vocab.Singularize(u)
	}
	if st.Quantity == "" && st.Unit == "" {
		slog.Debug("no quantity or unit found", "text", st.Text)
	}
}
