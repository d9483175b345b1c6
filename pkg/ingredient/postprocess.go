package ingredient

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/mealcraft/ingredientparser/pkg/ingredient/gramweight"
	"github.com/mealcraft/ingredientparser/pkg/ingredient/vocab"
)

// postprocess runs the stages that turn the extracted quantity/unit state
// into the final record: canonical units, the food phrase, descriptors,
// weight estimates and the required flag.
func (p *Parser) postprocess(st *ParseState) {
	p.standardizeUnits(st)
	p.prioritizeWeightUnits(st)
	p.extractFood(st)
	p.extractDescriptors(st)
	p.computeDensity(st)
	p.computeGramWeight(st)
	p.applyFoodUnitFallback(st)
	p.applyDefaultQuantity(st)
	p.computeRequiredFlag(st)
}

func (p *Parser) standardizeUnits(st *ParseState) {
	if s, ok := vocab.UnitToStandard[st.Unit]; ok {
		st.StandardizedUnit = s
	}
	if s, ok := vocab.UnitToStandard[st.SecondaryUnit]; ok {
		st.StandardizedSecondaryUnit = s
	}
}

// prioritizeWeightUnits promotes a weight measurement out of the secondary
// slot: "1 cup (240 g)" reports grams as the primary unit.
func (p *Parser) prioritizeWeightUnits(st *ParseState) {
	if vocab.IsWeightUnit(st.Unit) || !vocab.IsWeightUnit(st.SecondaryUnit) {
		return
	}
	st.Quantity, st.SecondaryQuantity = st.SecondaryQuantity, st.Quantity
	st.Unit, st.SecondaryUnit = st.SecondaryUnit, st.Unit
	st.StandardizedUnit, st.StandardizedSecondaryUnit = st.StandardizedSecondaryUnit, st.StandardizedUnit
}

var nonFoodChars = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)

// extractFood reduces the parenthesis-free text to the food phrase.
// Compound foods that token stripping would mangle are checked first.
func (p *Parser) extractFood(st *ParseState) {
	lowered := strings.ToLower(st.Text)
	for _, phrase := range vocab.EdgeCaseFoodPhrases {
		if strings.Contains(lowered, phrase) {
			st.Food = vocab.EdgeCaseFoods[phrase]
			return
		}
	}

	toks := vocab.Tokenize(st.Text)
	var kept []string
	for i := 0; i < len(toks); i++ {
		if i+1 < len(toks) {
			pair := strings.ToLower(toks[i] + " " + toks[i+1])
			if vocab.UnitsSet[pair] || vocab.SizeModifiers[pair] {
				i++
				continue
			}
		}
		if p.isStrippableToken(toks[i]) {
			continue
		}
		kept = append(kept, toks[i])
	}

	food := strings.Join(kept, " ")
	food = nonFoodChars.ReplaceAllString(food, "")
	food = strings.TrimSpace(vocab.Whitespace.ReplaceAllString(food, " "))
	st.Food = strings.ToLower(food)
	if st.Food == "" {
		slog.Debug("no food phrase left after stripping", "text", st.Text)
	}
}

// isStrippableToken reports whether a token is structural rather than part
// of the food phrase.
func (p *Parser) isStrippableToken(tok string) bool {
	lower := strings.ToLower(tok)
	switch {
	case vocab.IsNumber(tok):
		return true
	case vocab.UnitsSet[tok] || vocab.UnitsSet[lower]:
		return true
	case p.prepWords[lower]:
		return true
	case strings.HasSuffix(lower, "ly") && !vocab.ApproximateStrings[lower]:
		return true
	case vocab.UnitModifiers[lower]:
		return true
	case vocab.DimensionUnitsSet[lower]:
		return true
	case vocab.ApproximateStrings[lower]:
		return true
	case vocab.SizeModifiers[lower]:
		return true
	case p.stopWords[lower]:
		return true
	}
	return false
}

// extractDescriptors pulls preparation and size words out of the staged
// snapshot, which still carries the parenthetical spans.
func (p *Parser) extractDescriptors(st *ParseState) {
	toks := vocab.Tokenize(strings.ToLower(st.Staged))

	prep := map[string]bool{}
	size := map[string]bool{}
	for i, tok := range toks {
		if p.prepWords[tok] {
			prep[tok] = true
		}
		if vocab.LyWord.MatchString(tok) && !vocab.ApproximateStrings[tok] {
			prep[tok] = true
		}
		if vocab.SizeModifiers[tok] {
			size[tok] = true
		}
		if i+1 < len(toks) && vocab.SizeModifiers[tok+" "+toks[i+1]] {
			size[tok+" "+toks[i+1]] = true
		}
	}

	st.Prep = sortedWords(prep)
	st.SizeModifiers = sortedWords(size)
}

func sortedWords(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// computeDensity resolves a g/ml density for the food when any resolved
// unit is volumetric. Caller-supplied densities win over the built-ins.
func (p *Parser) computeDensity(st *ParseState) {
	if !vocab.IsVolumeUnit(st.Unit) && !vocab.IsVolumeUnit(st.SecondaryUnit) {
		return
	}
	if d, ok := p.densities[st.Food]; ok {
		st.Density = &d
		return
	}
	if d, ok := gramweight.LookupDensity(st.Food); ok {
		st.Density = &d.Grams
		st.densityBand = &d
	}
}

// computeGramWeight estimates the gram weight, trying in order: a direct
// weight-unit conversion, volume times density, a per-item average weight
// for unitless countable foods, and animal protein cut weights.
func (p *Parser) computeGramWeight(st *ParseState) {
	qty := 1.0
	if q, ok := parseNumber(st.Quantity); ok {
		qty = q
	}

	if factor, ok := gramweight.WeightToGrams(st.StandardizedUnit); ok {
		st.GramWeight = formatNumber(qty * factor)
		return
	}

	if factor, ok := gramweight.VolumeToMilliliters(st.StandardizedUnit); ok && st.Density != nil {
		ml := qty * factor
		st.GramWeight = formatNumber(ml * *st.Density)
		if st.densityBand != nil {
			st.MinGramWeight = formatNumber(ml * st.densityBand.Min)
			st.MaxGramWeight = formatNumber(ml * st.densityBand.Max)
		}
		return
	}

	if st.Unit == "" {
		if w, ok := gramweight.LookupItemWeight(st.Food); ok {
			st.GramWeight = formatNumber(qty * w)
			return
		}
	}

	for _, unit := range []string{st.Unit, st.SecondaryUnit} {
		cut := strings.ToLower(vocab.Singularize(unit))
		if w, ok := gramweight.CutWeight(cut); ok {
			st.GramWeight = formatNumber(qty * w)
			return
		}
	}
}

// applyFoodUnitFallback fills in a unit implied by the food itself
// ("2 tortillas" counts tortillas).
func (p *Parser) applyFoodUnitFallback(st *ParseState) {
	if st.Unit != "" {
		return
	}
	for _, tok := range vocab.Tokenize(strings.ToLower(st.Text)) {
		if u, ok := vocab.FoodUnits[tok]; ok {
			st.Unit = u
			return
		}
	}
}

// applyDefaultQuantity assumes one of a measured unit when no quantity
// survived ("cup of sugar" means one cup).
func (p *Parser) applyDefaultQuantity(st *ParseState) {
	if st.Quantity != "" || st.StandardizedUnit == "" {
		return
	}
	if vocab.IsWeightUnit(st.StandardizedUnit) || vocab.IsVolumeUnit(st.StandardizedUnit) {
		st.Quantity = "1"
	}
}

// computeRequiredFlag combines the flag of the parenthesis-free text with
// the flag of every parenthetical span. Any optional marker anywhere makes
// the line optional, unless a required marker overrides it in that part.
func (p *Parser) computeRequiredFlag(st *ParseState) {
	required := requiredFromText(st.Text)
	for _, span := range st.Parens {
		required = required && requiredFromText(span)
	}
	st.IsRequired = required
}

func requiredFromText(text string) bool {
	lowered := strings.ToLower(text)
	if vocab.RequiredMarker.MatchString(lowered) {
		return true
	}
	if vocab.OptionalMarker.MatchString(lowered) {
		return false
	}
	for _, tok := range vocab.Tokenize(lowered) {
		if vocab.RequiredMarkers[tok] {
			return true
		}
		if vocab.OptionalMarkers[tok] {
			return false
		}
	}
	return true
}
