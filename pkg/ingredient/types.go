// Package ingredient parses free-text recipe ingredient lines into a
// structured record: quantity, unit, food phrase, descriptors, dimensions
// and derived weight estimates.
package ingredient

import "github.com/mealcraft/ingredientparser/pkg/ingredient/gramweight"

// ParseState carries one line through the pipeline. It is created at the
// start of a parse call, mutated by every stage in order, and finalized
// into a Parsed record at the end. Nothing in it outlives the call.
type ParseState struct {
	Raw    string // original input, never mutated
	Text   string // working text, rewritten by every normalizer pass
	Staged string // snapshot taken just before parenthesis removal

	Parens     []string // raw parenthetical substrings, in order of appearance
	Dimensions []string // extracted dimension expressions like "2 inch"

	Quantity         string
	Unit             string
	StandardizedUnit string

	SecondaryQuantity         string
	SecondaryUnit             string
	StandardizedSecondaryUnit string

	Food          string
	Prep          []string
	SizeModifiers []string

	Density       *float64
	densityBand   *gramweight.Density
	GramWeight    string
	MinGramWeight string
	MaxGramWeight string

	IsRequired bool

	// Notes is the audit trail of parenthesis resolver decisions.
	Notes []string
}

func newParseState(raw string) *ParseState {
	return &ParseState{
		Raw:        raw,
		Text:       raw,
		IsRequired: true,
	}
}

// Parsed is the immutable result of one parse call.
type Parsed struct {
	Ingredient             string `json:"ingredient"`
	StandardizedIngredient string `json:"standardized_ingredient"`

	Food string `json:"food"`

	Quantity         string `json:"quantity"`
	Unit             string `json:"unit"`
	StandardizedUnit string `json:"standardized_unit"`

	SecondaryQuantity         string `json:"secondary_quantity"`
	SecondaryUnit             string `json:"secondary_unit"`
	StandardizedSecondaryUnit string `json:"standardized_secondary_unit"`

	Density       *float64 `json:"density"`
	GramWeight    string   `json:"gram_weight"`
	MinGramWeight string   `json:"min_gram_weight,omitempty"`
	MaxGramWeight string   `json:"max_gram_weight,omitempty"`

	Prep          []string `json:"prep"`
	SizeModifiers []string `json:"size_modifiers"`
	Dimensions    []string `json:"dimensions"`

	IsRequired bool `json:"is_required"`

	ParenthesisContent []string `json:"parenthesis_content"`
	ParenthesisNotes   []string `json:"parenthesis_notes,omitempty"`
}

func (s *ParseState) finalize() Parsed {
	return Parsed{
		Ingredient:             s.Raw,
		StandardizedIngredient: s.Text,
		Food:                   s.Food,

		Quantity:         s.Quantity,
		Unit:             s.Unit,
		StandardizedUnit: s.StandardizedUnit,

		SecondaryQuantity:         s.SecondaryQuantity,
		SecondaryUnit:             s.SecondaryUnit,
		StandardizedSecondaryUnit: s.StandardizedSecondaryUnit,

		Density:       s.Density,
		GramWeight:    s.GramWeight,
		MinGramWeight: s.MinGramWeight,
		MaxGramWeight: s.MaxGramWeight,

		Prep:          s.Prep,
		SizeModifiers: s.SizeModifiers,
		Dimensions:    s.Dimensions,

		IsRequired: s.IsRequired,

		ParenthesisContent: s.Parens,
		ParenthesisNotes:   s.Notes,
	}
}
