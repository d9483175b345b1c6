package ingredient

import (
	"html"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mealcraft/ingredientparser/pkg/ingredient/vocab"
)

// A normalizePass rewrites the working text of a ParseState. Passes run in
// the order declared in normalizePasses; several depend on the rewrites of
// the passes before them (fractions must be decimal before numbers merge,
// ranges must be fixed before they are averaged).
type normalizePass struct {
	name string
	fn   func(*Parser, *ParseState)
}

var normalizePasses = []normalizePass{
	{"drop_special_dashes", (*Parser).dropSpecialDashes},
	{"strip_percentages", (*Parser).stripPercentages},
	{"replace_inch_symbol", (*Parser).replaceInchSymbol},
	{"replace_casual_quantities", (*Parser).replaceCasualQuantities},
	{"replace_prefixed_number_words", (*Parser).replacePrefixedNumberWords},
	{"replace_number_words", (*Parser).replaceNumberWords},
	{"replace_fraction_words", (*Parser).replaceFractionWords},
	{"clean_html_and_unicode", (*Parser).cleanHTMLAndUnicode},
	{"replace_fraction_slash", (*Parser).replaceFractionSlash},
	{"remove_emoji", (*Parser).removeEmoji},
	{"fractions_to_decimals", (*Parser).fractionsToDecimals},
	{"force_whitespace", (*Parser).forceWhitespace},
	{"drop_repeat_units_in_ranges", (*Parser).dropRepeatUnitsInRanges},
	{"extract_dimensions", (*Parser).extractDimensions},
	{"remove_x_separators", (*Parser).removeXSeparators},
	{"clean_hyphen_padded_conjunctions", (*Parser).cleanHyphenPaddedConjunctions},
	{"merge_spaced_numbers", (*Parser).mergeSpacedNumbers},
	{"fix_ranges", (*Parser).fixRanges},
	{"sum_added_numbers", (*Parser).sumAddedNumbers},
	{"replace_bare_articles", (*Parser).replaceBareArticles},
	{"average_ranges", (*Parser).averageRanges},
	{"separate_parenthesis", (*Parser).separateParenthesis},
	{"collapse_whitespace", (*Parser).collapseWhitespace},
}

func (p *Parser) normalize(st *ParseState) {
	for _, pass := range normalizePasses {
		before := st.Text
		pass.fn(p, st)
		if st.Text != before {
			slog.Debug("normalize pass rewrote text",
				"pass", pass.name, "before", before, "after", st.Text)
		}
	}
}

var specialDashes = strings.NewReplacer("—", "-", "–", "-", "~", "-")

func (p *Parser) dropSpecialDashes(st *ParseState) {
	st.Text = specialDashes.Replace(st.Text)
}

func (p *Parser) stripPercentages(st *ParseState) {
	st.Text = vocab.Percentage.ReplaceAllString(st.Text, " ")
}

func (p *Parser) replaceInchSymbol(st *ParseState) {
	st.Text = vocab.InchSymbol.ReplaceAllString(st.Text, "$1 inch")
}

func (p *Parser) replaceCasualQuantities(st *ParseState) {
	for _, rule := range vocab.CasualQuantityRules {
		repl := formatNumber(rule.Value)
		if rule.KeepWord != "" {
			repl += " " + rule.KeepWord
		}
		st.Text = rule.Re.ReplaceAllString(st.Text, repl)
	}
}

func (p *Parser) replacePrefixedNumberWords(st *ParseState) {
	st.Text = vocab.PrefixedNumberWord.ReplaceAllStringFunc(st.Text, func(m string) string {
		sub := vocab.PrefixedNumberWord.FindStringSubmatch(m)
		tens := vocab.NumberWords[strings.ToLower(sub[1])]
		ones := vocab.NumberWords[strings.ToLower(sub[2])]
		return formatNumber(tens + ones)
	})
}

func (p *Parser) replaceNumberWords(st *ParseState) {
	st.Text = vocab.NumberWord.ReplaceAllStringFunc(st.Text, func(m string) string {
		return formatNumber(vocab.NumberWords[strings.ToLower(m)])
	})
}

func (p *Parser) replaceFractionWords(st *ParseState) {
	st.Text = vocab.NumberWithFractionWord.ReplaceAllStringFunc(st.Text, func(m string) string {
		sub := vocab.NumberWithFractionWord.FindStringSubmatch(m)
		n, ok := parseNumber(sub[1])
		if !ok {
			slog.Warn("unparseable number before fraction word", "match", m)
			return m
		}
		return formatNumber(n * vocab.FractionWords[strings.ToLower(sub[2])])
	})
}

// cleanHTMLAndUnicode decodes HTML entities and folds unicode vulgar
// fractions into ASCII via NFKC. A space is forced in between a digit and
// a following fraction glyph first, otherwise NFKC would fuse "2½" into
// the misleading "21/2".
func (p *Parser) cleanHTMLAndUnicode(st *ParseState) {
	text := html.UnescapeString(st.Text)
	text = vocab.DigitBeforeUnicodeFraction.ReplaceAllString(text, "$1 $2")
	st.Text = norm.NFKC.String(text)
}

func (p *Parser) replaceFractionSlash(st *ParseState) {
	st.Text = strings.ReplaceAll(st.Text, "⁄", "/")
}

func (p *Parser) removeEmoji(st *ParseState) {
	st.Text = vocab.Emoji.ReplaceAllString(st.Text, "")
}

func (p *Parser) fractionsToDecimals(st *ParseState) {
	st.Text = vocab.Fraction.ReplaceAllStringFunc(st.Text, func(m string) string {
		sub := vocab.Fraction.FindStringSubmatch(m)
		num, okN := parseNumber(sub[1])
		den, okD := parseNumber(sub[2])
		if !okN || !okD || den == 0 {
			slog.Warn("unconvertible fraction left in place", "match", m)
			return m
		}
		return formatNumber(num / den)
	})
}

func (p *Parser) forceWhitespace(st *ParseState) {
	st.Text = vocab.LettersThenDigits.ReplaceAllString(st.Text, "$1 $2")
	st.Text = vocab.DigitsThenLetters.ReplaceAllString(st.Text, "$1 $2")
}

// dropRepeatUnitsInRanges turns "1 cup - 2 cups" into "1 - 2 cups". The
// unit only drops when both spellings standardize to the same unit.
func (p *Parser) dropRepeatUnitsInRanges(st *ParseState) {
	st.Text = vocab.RangeWithUnits.ReplaceAllStringFunc(st.Text, func(m string) string {
		sub := vocab.RangeWithUnits.FindStringSubmatch(m)
		first := vocab.UnitToStandard[sub[2]]
		second := vocab.UnitToStandard[sub[4]]
		if first == "" || first != second {
			return m
		}
		return sub[1] + " - " + sub[3] + " " + sub[4]
	})
}

func (p *Parser) extractDimensions(st *ParseState) {
	for _, m := range vocab.DimensionExpr.FindAllString(st.Text, -1) {
		st.Dimensions = append(st.Dimensions, strings.TrimSpace(m))
	}
	if len(st.Dimensions) > 0 {
		st.Text = vocab.DimensionExpr.ReplaceAllString(st.Text, " ")
	}
}

func (p *Parser) removeXSeparators(st *ParseState) {
	st.Text = vocab.XAfterNumber.ReplaceAllString(st.Text, "$1 $2")
}

func (p *Parser) cleanHyphenPaddedConjunctions(st *ParseState) {
	st.Text = vocab.CleanConjunctionHyphens(st.Text)
}

// mergeSpacedNumbers collapses two adjacent numbers into one: a second
// number below one is a fractional tail and is added ("2 0.5" -> "2.5"),
// anything else is a multiplier ("2 15" -> "30").
func (p *Parser) mergeSpacedNumbers(st *ParseState) {
	for vocab.SpacedNumbers.MatchString(st.Text) {
		merged := vocab.SpacedNumbers.ReplaceAllStringFunc(st.Text, func(m string) string {
			sub := vocab.SpacedNumbers.FindStringSubmatch(m)
			first, okF := parseNumber(sub[1])
			second, okS := parseNumber(sub[2])
			if !okF || !okS {
				slog.Warn("unmergeable adjacent numbers", "match", m)
				return m
			}
			if second < 1.0 {
				return formatNumber(first + second)
			}
			return formatNumber(first * second)
		})
		if merged == st.Text {
			break
		}
		st.Text = merged
	}
}

// fixRanges folds every range notation down to "n - n" and collapses
// ranges whose two endpoints carry the same value.
func (p *Parser) fixRanges(st *ParseState) {
	st.Text = vocab.BetweenRange.ReplaceAllString(st.Text, "$1 - $2")
	st.Text = vocab.ToRange.ReplaceAllString(st.Text, "$1 - $2")
	st.Text = vocab.OrRange.ReplaceAllString(st.Text, "$1 - $2")
	st.Text = vocab.DashRange.ReplaceAllString(st.Text, "$1 - $2")

	st.Text = vocab.DashRange.ReplaceAllStringFunc(st.Text, func(m string) string {
		sub := vocab.DashRange.FindStringSubmatch(m)
		lo, okL := parseNumber(sub[1])
		hi, okH := parseNumber(sub[2])
		if okL && okH && lo == hi {
			return formatNumber(lo)
		}
		return m
	})
}

func (p *Parser) sumAddedNumbers(st *ParseState) {
	st.Text = vocab.AddSeparated.ReplaceAllStringFunc(st.Text, func(m string) string {
		sub := vocab.AddSeparated.FindStringSubmatch(m)
		a, okA := parseNumber(sub[1])
		b, okB := parseNumber(sub[2])
		if !okA || !okB {
			slog.Warn("unsummable added numbers", "match", m)
			return m
		}
		return formatNumber(a + b)
	})
}

// replaceBareArticles rewrites a standalone "a" or "an" to "1", but only
// when the text carries no numeric quantity at all ("a pinch of salt").
func (p *Parser) replaceBareArticles(st *ParseState) {
	if vocab.Number.MatchString(st.Text) {
		return
	}
	st.Text = vocab.BareArticle.ReplaceAllString(st.Text, "1")
}

func (p *Parser) averageRanges(st *ParseState) {
	st.Text = vocab.DashRange.ReplaceAllStringFunc(st.Text, func(m string) string {
		sub := vocab.DashRange.FindStringSubmatch(m)
		lo, okL := parseNumber(sub[1])
		hi, okH := parseNumber(sub[2])
		if !okL || !okH {
			slog.Warn("unaverageable range", "match", m)
			return m
		}
		return formatNumber((lo + hi) / 2)
	})
}

// separateParenthesis snapshots the text, records each parenthetical span
// and removes the spans from the working text. Later stages read the
// descriptors back out of the snapshot.
func (p *Parser) separateParenthesis(st *ParseState) {
	st.Staged = st.Text
	st.Parens = vocab.Parenthesis.FindAllString(st.Text, -1)
	if len(st.Parens) > 0 {
		st.Text = vocab.Parenthesis.ReplaceAllString(st.Text, " ")
	}
}

func (p *Parser) collapseWhitespace(st *ParseState) {
	st.Text = strings.TrimSpace(vocab.Whitespace.ReplaceAllString(st.Text, " "))
}
