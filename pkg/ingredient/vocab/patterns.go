package vocab

import (
	"regexp"
	"sort"
	"strings"
)

// Compiled pattern primitives shared by the pipeline. All are built once at
// init from the vocabulary tables above.
var (
	// Number matches a decimal number token.
	Number = regexp.MustCompile(`\d+(?:\.\d+)?`)

	// Fraction matches an ASCII "n/d" fraction with decimal endpoints allowed.
	Fraction = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*(\d+(?:\.\d+)?)`)

	// Percentage matches expressions like "2%" or "2 percent".
	Percentage = regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*(?:%|percent)`)

	// InchSymbol matches a number immediately followed by an inch mark.
	InchSymbol = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:"|″|”|'')`)

	// DigitBeforeUnicodeFraction finds a digit glued to a vulgar fraction
	// glyph so a space can be forced in before NFKC expansion.
	DigitBeforeUnicodeFraction = regexp.MustCompile(`(\d)([¼½¾⅐⅑⅒⅓⅔⅕⅖⅗⅘⅙⅚⅛⅜⅝⅞])`)

	// Emoji covers the common emoji blocks.
	Emoji = regexp.MustCompile(`[\x{1F000}-\x{1FAFF}\x{2600}-\x{27BF}\x{2B00}-\x{2BFF}\x{FE0F}]`)

	// LettersThenDigits and DigitsThenLetters split glued tokens ("1cup").
	LettersThenDigits = regexp.MustCompile(`([a-zA-Z]+)(\d+)`)
	DigitsThenLetters = regexp.MustCompile(`(\d+)([a-zA-Z]+)`)

	// RangeWithUnits matches "<number> <word> - <number> <word>" so a unit
	// duplicated on both sides of a range can be dropped.
	RangeWithUnits = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([a-zA-Z.]+)\s*-+\s*(\d+(?:\.\d+)?)\s*([a-zA-Z.]+)`)

	// XAfterNumber matches the multiplication "x" after a number.
	XAfterNumber = regexp.MustCompile(`(\d+(?:\.\d+)?\s*)[xX](\s+|\s*\d)`)

	// SpacedNumbers matches two whitespace-adjacent number tokens.
	SpacedNumbers = regexp.MustCompile(`(\d+(?:\.\d+)?)\s+(\d+(?:\.\d+)?)`)

	// Range notations, all normalized to "<n> - <n>".
	DashRange    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*-+\s*(\d+(?:\.\d+)?)`)
	BetweenRange = regexp.MustCompile(`(?i)\bbetween\s+(\d+(?:\.\d+)?)\s+(?:and|&)\s+(\d+(?:\.\d+)?)`)
	ToRange      = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s+to\s+(\d+(?:\.\d+)?)`)
	OrRange      = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s+or\s+(\d+(?:\.\d+)?)`)

	// AddSeparated matches two numbers joined by an addition word or symbol.
	AddSeparated = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:\+|plus|and|&)\s*(\d+(?:\.\d+)?)`)

	// Parenthesis matches one non-nested parenthetical span with delimiters.
	Parenthesis = regexp.MustCompile(`\([^()]*\)`)

	// BareArticle matches a standalone "a" or "an".
	BareArticle = regexp.MustCompile(`(?i)\b(?:a|an)\b`)

	// Whitespace matches runs of whitespace.
	Whitespace = regexp.MustCompile(`\s+`)

	// LyWord matches adverbs ending in "ly".
	LyWord = regexp.MustCompile(`\b[a-zA-Z]+ly\b`)

	// PrefixedNumberWord matches compound number words ("twenty five").
	PrefixedNumberWord = regexp.MustCompile(`(?i)\b(twenty|thirty|forty|fifty|sixty|seventy|eighty|ninety)[\s-]+(one|two|three|four|five|six|seven|eight|nine)\b`)

	// NumberWord matches a single spelled-out number.
	NumberWord *regexp.Regexp

	// NumberWithFractionWord matches "<number> <fraction word>" ("1 half").
	NumberWithFractionWord *regexp.Regexp

	// DimensionExpr matches "<number> <length unit>" chains, optionally
	// joined with an "x" ("2 cm x 3 cm").
	DimensionExpr *regexp.Regexp

	// OptionalMarker and RequiredMarker match the flag words. Boundaries
	// keep "unrequired" from reading as "required".
	OptionalMarker = regexp.MustCompile(`(?i)\b(?:optional|unrequired)\b`)
	RequiredMarker = regexp.MustCompile(`(?i)\b(?:required|requirement)\b`)
)

// hyphenConjunction holds the rewrites removing hyphen padding
// around "to", "or", "and" and "&" ("1-to-3" -> "1 to 3").
var hyphenConjunction = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\s*-+\s*(to|or|and|&)\s*-+\s*`), " $1 "},
	{regexp.MustCompile(`\s*-+\s*(to|or|and|&)(\s)`), " $1$2"},
	{regexp.MustCompile(`(\s)(to|or|and|&)\s*-+\s*`), "$1$2 "},
}

// CleanConjunctionHyphens removes hyphen padding around conjunction words.
func CleanConjunctionHyphens(text string) string {
	for _, h := range hyphenConjunction {
		text = h.re.ReplaceAllString(text, h.repl)
	}
	return text
}

// CasualQuantityRule pairs a compiled phrase pattern with its numeric value
// and the final word to keep when that word doubles as a unit
// ("a pinch" -> "1 pinch", but "a couple" -> "2").
type CasualQuantityRule struct {
	Re       *regexp.Regexp
	Value    float64
	KeepWord string
}

// CasualQuantityRules holds the casual-quantity rewrites in match order,
// longest phrase first.
var CasualQuantityRules []CasualQuantityRule

func init() {
	phrases := make([]string, 0, len(CasualQuantities))
	for p := range CasualQuantities {
		phrases = append(phrases, p)
	}
	// longest first so "a tiny bit" wins over "a bit"
	sort.Slice(phrases, func(i, j int) bool { return len(phrases[i]) > len(phrases[j]) })

	for _, p := range phrases {
		words := strings.Fields(p)
		last := words[len(words)-1]
		keep := ""
		// "a pinch" keeps its unit word, "a handful" (worth 5) does not
		if UnitsSet[last] && CasualQuantities[p] == 1 {
			keep = last
		}
		CasualQuantityRules = append(CasualQuantityRules, CasualQuantityRule{
			Re:       regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`),
			Value:    CasualQuantities[p],
			KeepWord: keep,
		})
	}

	NumberWord = regexp.MustCompile(`(?i)\b(` + alternation(keys(NumberWords)) + `)\b`)
	NumberWithFractionWord = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)[\s-]+(` + alternation(keys(FractionWords)) + `)\b`)

	dim := `(?:` + alternation(flatKeys(DimensionUnits)) + `)`
	num := `\d+(?:\.\d+)?`
	DimensionExpr = regexp.MustCompile(num + `[\s-]*` + dim + `\b(?:\s*[xX]\s*` + num + `[\s-]*` + dim + `\b)*`)
}

// IsNumber reports whether tok is a bare decimal number.
func IsNumber(tok string) bool {
	return numberToken.MatchString(tok)
}

var numberToken = regexp.MustCompile(`^\d+(?:\.\d+)?$`)

// CleanToken strips clinging punctuation that is never part of a vocabulary
// entry. Dots are kept since spellings like "oz." carry one.
func CleanToken(tok string) string {
	return strings.Trim(tok, ",;:!?()[]")
}

// Tokenize splits text on whitespace and cleans each token.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	toks := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := CleanToken(f); t != "" {
			toks = append(toks, t)
		}
	}
	return toks
}

// FindNumberUnitPair scans tokens left to right for the first number token
// directly followed by a unit spelling from the given set. Two-token unit
// spellings like "fluid ounce" are tried before single tokens.
func FindNumberUnitPair(text string, unitSet map[string]bool) (quantity, unit string, ok bool) {
	toks := Tokenize(text)
	for i := 0; i < len(toks)-1; i++ {
		if !IsNumber(toks[i]) {
			continue
		}
		if i+2 < len(toks) {
			if pair := toks[i+1] + " " + toks[i+2]; unitSet[pair] {
				return toks[i], pair, true
			}
		}
		if unitSet[toks[i+1]] {
			return toks[i], toks[i+1], true
		}
	}
	return "", "", false
}

// FirstNumber returns the first number token anywhere in the text.
func FirstNumber(text string) (string, bool) {
	if m := Number.FindString(text); m != "" {
		return m, true
	}
	return "", false
}

// FirstUnit returns the first unit spelling anywhere in the text.
func FirstUnit(text string, unitSet map[string]bool) (string, bool) {
	toks := Tokenize(text)
	for i, tok := range toks {
		if i+1 < len(toks) {
			if pair := tok + " " + toks[i+1]; unitSet[pair] {
				return pair, true
			}
		}
		if unitSet[tok] {
			return tok, true
		}
	}
	return "", false
}

func keys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func flatKeys(m map[string][]string) []string {
	var out []string
	for name, aliases := range m {
		out = append(out, name)
		out = append(out, aliases...)
	}
	return out
}

// alternation builds a regex alternation with longer entries first so
// greedy prefixes ("fluid ounces") win over their stems ("fluid ounce").
func alternation(words []string) string {
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}
