package ingredient

import (
	"log/slog"
	"strings"

	"github.com/mealcraft/ingredientparser/pkg/ingredient/vocab"
)

// Parser turns ingredient lines into Parsed records. The zero-value
// vocabulary is shared and immutable; a Parser only carries the caller's
// extensions on top of it, so a single Parser is safe for concurrent use.
type Parser struct {
	prepWords map[string]bool
	stopWords map[string]bool
	densities map[string]float64
}

// Option configures a Parser.
type Option func(*Parser)

// WithPrepWords adds preparation words recognized on top of the built-in
// vocabulary.
func WithPrepWords(words ...string) Option {
	return func(p *Parser) {
		for _, w := range words {
			p.prepWords[strings.ToLower(w)] = true
		}
	}
}

// WithStopWords adds stop words stripped during food extraction.
func WithStopWords(words ...string) Option {
	return func(p *Parser) {
		for _, w := range words {
			p.stopWords[strings.ToLower(w)] = true
		}
	}
}

// WithDensities registers food densities in g/ml that take precedence
// over the built-in density table.
func WithDensities(densities map[string]float64) Option {
	return func(p *Parser) {
		for food, d := range densities {
			p.densities[strings.ToLower(food)] = d
		}
	}
}

// New builds a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		prepWords: make(map[string]bool, len(vocab.PrepWords)),
		stopWords: make(map[string]bool, len(vocab.StopWords)),
		densities: make(map[string]float64),
	}
	for w := range vocab.PrepWords {
		p.prepWords[w] = true
	}
	for w := range vocab.StopWords {
		p.stopWords[w] = true
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the full pipeline over one ingredient line.
func (p *Parser) Parse(line string) Parsed {
	st := newParseState(line)
	p.normalize(st)
	p.extractQuantityUnit(st)
	p.resolveParentheses(st)
	p.postprocess(st)

	slog.Debug("parsed ingredient line",
		"input", line, "food", st.Food, "quantity", st.Quantity, "unit", st.Unit)
	return st.finalize()
}

var defaultParser = New()

// Parse parses one ingredient line with the default Parser.
func Parse(line string) Parsed {
	return defaultParser.Parse(line)
}
