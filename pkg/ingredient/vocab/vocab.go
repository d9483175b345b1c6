// Package vocab holds the read-only vocabulary tables the ingredient
// pipeline matches against: unit spellings, number and fraction words,
// descriptor vocabularies and stop words. Everything here is built once
// at init and never mutated afterwards.
package vocab

import (
	"sort"
	"strings"
)

// NumberWords maps spelled-out numbers to their numeric values.
var NumberWords = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19, "twenty": 20, "thirty": 30, "forty": 40,
	"fifty": 50, "sixty": 60, "seventy": 70, "eighty": 80,
	"ninety": 90, "hundred": 100,
}

// FractionWords maps fraction words to their decimal values.
var FractionWords = map[string]float64{
	"half": 0.5, "halves": 0.5,
	"quarter": 0.25, "quarters": 0.25,
	"third": 1.0 / 3, "thirds": 1.0 / 3,
	"fourth": 0.25, "fourths": 0.25,
	"fifth": 0.2, "fifths": 0.2,
	"sixth": 1.0 / 6, "sixths": 1.0 / 6,
	"seventh": 1.0 / 7, "sevenths": 1.0 / 7,
	"eighth": 0.125, "eighths": 0.125,
	"ninth": 1.0 / 9, "ninths": 1.0 / 9,
	"tenth": 0.1, "tenths": 0.1,
	"eleventh": 1.0 / 11, "elevenths": 1.0 / 11,
	"twelfth": 1.0 / 12, "twelfths": 1.0 / 12,
}

// CasualQuantities maps vague quantity phrases to fixed numeric values.
// Multi-word phrases must be replaced before single words so that
// "a couple" never degrades into a bare "a".
var CasualQuantities = map[string]float64{
	"a couple":   2,
	"a few":      3,
	"a tiny bit": 1,
	"a bit":      1,
	"a handful":  5,
	"a pinch":    1,
	"a dash":     1,
	"a dallop":   1,
	"a drop":     1,
	"tad":        1,
	"smidgen":    1,
	"touch":      1,
}

// Units maps every canonical unit name to its accepted spellings.
var Units = map[string][]string{
	"bag":           {"bag", "bags"},
	"bagful":        {"bagful", "bagfuls"},
	"bottle":        {"bottle", "bottles"},
	"bottleful":     {"bottleful", "bottlefuls"},
	"bowl":          {"bowl", "bowls"},
	"bowlful":       {"bowlful", "bowlfuls"},
	"box":           {"box", "boxes"},
	"boxful":        {"boxful", "boxfuls"},
	"breast":        {"breast", "breasts"},
	"bulb":          {"bulb", "bulbs"},
	"bun":           {"bun", "buns"},
	"bunch":         {"bunch", "bunches"},
	"can":           {"can", "cans"},
	"canful":        {"canful", "canfuls"},
	"container":     {"container", "containers"},
	"cube":          {"cube", "cubes"},
	"cup":           {"cup", "cups", "C", "c"},
	"cupful":        {"cupful", "cupfuls"},
	"dallop":        {"dallop", "dallops"},
	"dash":          {"dash", "dashes"},
	"drop":          {"drop", "drops"},
	"drumstick":     {"drumstick", "drumsticks"},
	"ear":           {"ear", "ears"},
	"envelope":      {"envelope", "envelopes"},
	"filet":         {"filet", "filets"},
	"fillet":        {"fillet", "fillets"},
	"fluid ounce":   {"fluid ounce", "fluid ounces", "fl oz", "fl ozs", "fluid oz", "fluid ozs"},
	"gallon":        {"gallon", "gallons", "gal", "gals"},
	"glass":         {"glass", "glasses"},
	"gram":          {"gram", "grams", "g"},
	"handful":       {"handful", "handfuls"},
	"head":          {"head", "heads"},
	"jar":           {"jar", "jars"},
	"jarful":        {"jarful", "jarfuls"},
	"kilogram":      {"kilogram", "kilograms", "kg", "kgs"},
	"leg":           {"leg", "legs"},
	"link":          {"link", "links"},
	"liter":         {"liter", "liters", "l"},
	"loaf":          {"loaf", "loaves"},
	"milligram":     {"milligram", "milligrams", "mg", "mgs"},
	"milliliter":    {"milliliter", "milliliters", "ml", "mls"},
	"ounce":         {"ounce", "ounces", "oz", "ozs", "oz.", "ozs."},
	"package":       {"package", "packages", "pkg", "pkgs"},
	"packageful":    {"packageful", "packagefuls"},
	"packet":        {"packet", "packets"},
	"patty":         {"patty", "patties"},
	"piece":         {"piece", "pieces"},
	"pinch":         {"pinch", "pinches"},
	"pint":          {"pint", "pints", "pt", "pts"},
	"plate":         {"plate", "plates"},
	"portion":       {"portion", "portions"},
	"pound":         {"pound", "pounds", "lb", "lbs", "lb.", "lbs."},
	"quart":         {"quart", "quarts", "qt", "qts"},
	"rim":           {"rim", "rims"},
	"roll":          {"roll", "rolls"},
	"scoop":         {"scoop", "scoops"},
	"sheet":         {"sheet", "sheets"},
	"slice":         {"slice", "slices"},
	"sprig":         {"sprig", "sprigs"},
	"stalk":         {"stalk", "stalks"},
	"stick":         {"stick", "sticks"},
	"strip":         {"strip", "strips"},
	"tablespoon":    {"tablespoon", "tablespoons", "tbsp", "tbsps", "tbsp.", "tbsps.", "tbl", "tbls", "tbl.", "tbls.", "T", "tbs", "tbs."},
	"tablespoonful": {"tablespoonful", "tablespoonfuls"},
	"teaspoon":      {"teaspoon", "teaspoons", "tsp", "tsps", "tsp.", "tspn", "tspns", "tspn.", "tspns.", "ts", "t", "t."},
	"teaspoonful":   {"teaspoonful", "teaspoonfuls"},
	"thigh":         {"thigh", "thighs"},
	"tube":          {"tube", "tubes"},
	"wheel":         {"wheel", "wheels"},
	"wing":          {"wing", "wings"},
}

// BasicUnits is the core imperial/metric volume and weight subset of Units,
// as opposed to the long tail of container and cut specific units.
var BasicUnits = map[string][]string{
	"teaspoon":      Units["teaspoon"],
	"tablespoon":    Units["tablespoon"],
	"teaspoonful":   Units["teaspoonful"],
	"tablespoonful": Units["tablespoonful"],
	"cup":           Units["cup"],
	"pint":          Units["pint"],
	"quart":         Units["quart"],
	"gallon":        Units["gallon"],
	"fluid ounce":   Units["fluid ounce"],
	"milliliter":    Units["milliliter"],
	"liter":         Units["liter"],
	"ounce":         Units["ounce"],
	"pound":         Units["pound"],
	"milligram":     Units["milligram"],
	"gram":          Units["gram"],
	"kilogram":      Units["kilogram"],
}

// VolumeUnits is the volumetric subset of Units.
var VolumeUnits = map[string][]string{
	"cup":         Units["cup"],
	"fluid ounce": Units["fluid ounce"],
	"gallon":      Units["gallon"],
	"liter":       Units["liter"],
	"milliliter":  Units["milliliter"],
	"pint":        Units["pint"],
	"quart":       Units["quart"],
	"tablespoon":  Units["tablespoon"],
	"teaspoon":    Units["teaspoon"],
}

// WeightUnits is the weight subset of Units.
var WeightUnits = map[string][]string{
	"ounce":     Units["ounce"],
	"pound":     Units["pound"],
	"gram":      Units["gram"],
	"kilogram":  Units["kilogram"],
	"milligram": Units["milligram"],
}

// DimensionUnits are length units used for dimensions like "2 inch pieces".
// They are kept out of Units so "2 inch" never parses as a measurement.
// The spelling "in" is deliberately absent: it collides with the preposition.
var DimensionUnits = map[string][]string{
	"centimeter": {"centimeter", "centimeters", "cm", "cms"},
	"foot":       {"foot", "feet", "ft", "fts"},
	"inch":       {"inch", "inches", "ins"},
	"meter":      {"meter", "meters", "m", "ms"},
	"millimeter": {"millimeter", "millimeters", "mm", "mms"},
}

// UnitModifiers describe how a unit is measured ("packed cup", "heaping tablespoon").
var UnitModifiers = newSet(
	"round", "rounded", "level", "leveled", "heaping", "heaped", "scant",
	"even", "generous", "packed", "sifted", "unsifted", "light", "lightly",
	"heavy", "heavily", "firmly", "tightly", "smooth", "small", "medium",
	"large", "big", "tiny", "modest", "hefty", "roughly",
)

// SizeModifiers describe the size of the ingredient itself.
var SizeModifiers = newSet(
	"extra small", "extra-small", "small", "medium", "large",
	"extra large", "extra-large", "big", "tiny", "modest",
)

// PrepWords are preparation verbs in past-participle form.
var PrepWords = newSet(
	"chopped", "diced", "minced", "sliced", "slivered", "julienned",
	"emulsified", "grated", "crushed", "mashed", "peeled", "seeded",
	"cored", "trimmed", "halved", "quartered", "squeezed", "zested",
	"juiced", "cubed", "shredded", "pitted",
)

// ApproximateStrings flag a quantity as an estimate rather than an exact value.
var ApproximateStrings = newSet(
	"about", "bout", "around", "approximately", "approx", "approx.",
	"appx", "appx.", "nearly", "almost", "roughly", "estimated",
	"estimate", "est.", "est", "estim", "estim.",
)

// PerUnitStrings mark a quantity as applying to each item ("4 lbs each").
var PerUnitStrings = newSet("each", "per", "apiece", "a piece", "per each")

// OptionalMarkers and RequiredMarkers drive the required/optional flag.
var (
	OptionalMarkers = newSet("option", "options", "optional", "opt.", "opts.", "opt", "opts", "unrequired")
	RequiredMarkers = newSet("required", "requirement", "req.", "req")
)

// EdgeCaseFoods are compound foods that the stripping passes would mangle,
// checked verbatim before any token removal. Keys are matched against the
// normalized text, which has already had its hyphen padding cleaned.
var EdgeCaseFoods = map[string]string{
	"half-and-half":              "half-and-half",
	"half and half":              "half-and-half",
	"five-spice":                 "five-spice",
	"five spice":                 "five-spice",
	"mirepoix":                   "mirepoix",
	"everything bagel seasoning": "everything bagel seasoning",
}

// FoodUnits are foods that act as their own countable unit
// ("2 tortillas" has an implied unit of "tortilla").
var FoodUnits = map[string]string{
	"tortilla": "tortilla", "tortillas": "tortilla",
	"egg": "egg", "eggs": "egg",
	"clove": "clove", "cloves": "clove",
	"potato": "potato", "potatoes": "potato",
	"banana": "banana", "bananas": "banana",
	"apple": "apple", "apples": "apple",
	"onion": "onion", "onions": "onion",
	"carrot": "carrot", "carrots": "carrot",
	"pepper": "pepper", "peppers": "pepper",
	"lemon": "lemon", "lemons": "lemon",
	"lime": "lime", "limes": "lime",
}

// StopWords is a generic english stop word list, pruned of tokens that
// collide with unit abbreviations (c, g, t, ts, ml, m).
var StopWords = newSet(strings.Fields(`
a able about above across act actually added after afterwards again against
ain all allow allows almost alone along already also although always am among
amongst amount an and another any anybody anyhow anymore anyone anything
anyway anyways anywhere apart apparently appear appreciate appropriate
approximately are around as aside ask asking associated at available away
awfully back be became because become becomes becoming been before beforehand
begin beginning begins behind being believe below beside besides best better
between beyond bill both bottom brief briefly but by call came can cannot
cant cause causes certain certainly changes clearly come comes concerning
consequently consider considering contain containing contains corresponding
could couldnt course currently date definitely describe described despite
detail did different do does doing done down downwards due during each edu
effect eight eighty either eleven else elsewhere empty end ending enough
entirely especially et etc even ever every everybody everyone everything
everywhere exactly example except far few fifteen fifth fify fill find fire
first five fix followed following follows for former formerly forth forty
found four from front full further furthermore gave get gets getting give
given gives giving go goes going gone got gotten greetings had hadn happens
hardly has hasnt have having he hed hello help hence her here hereafter
hereby herein heres hereupon hers herself hes hi hid him himself his hither
home hopefully how howbeit however hundred if ignored immediate immediately
importance important in inasmuch inc indeed index indicate indicated
indicates information inner insofar instead interest into invention inward
is it itd its itself just keep keeps kept know known knows largely last
lately later latter latterly least les less lest let lets like liked likely
line little look looking looks love loved loving lovingly made mainly make
makes many may maybe me mean means meantime meanwhile merely might mill
million mine miss more moreover most mostly move mr mrs much must my myself
name namely nay near nearly necessarily necessary need needs neither never
nevertheless new next nine ninety no nobody non none nonetheless noone nor
normally nos not noted nothing novel now nowhere obtain obtained obviously
of off often oh ok okay old omitted on once one ones only onto or ord other
others otherwise ought our ours ourselves out outside over overall owing own
page pagecount pages par part particular particularly past per perhaps
placed please plus poorly possible possibly potentially predominantly
present presumably previously primarily probably promptly proud provides put
quickly quite ran rather readily really reasonably recent recently ref refs
regarding regardless regards related relatively research respectively
resulted resulting results right run said same saw say saying says sec
second secondly section see seeing seem seemed seeming seems seen self
selves sensible sent serious seriously serve served serves serving seven
several shall she shed shes should show showed shown showns shows side
significant significantly similar similarly since sincere six sixty slightly
so some somebody somehow someone somethan something sometime sometimes
somewhat somewhere soon sorry specifically specified specify specifying
still stop strongly sub substantially successfully such sufficiently suggest
sup sure system take taken taking tell ten tends than thank thanks thanx
that thats the their theirs them themselves then thence there thereafter
thereby thered therefore therein thereof therere theres thereto thereupon
these they theyd theyre thin think third this thorough thoroughly those thou
though thoughh thousand three through throughout thru thus til tip together
too took top toward towards tried tries truly try trying twelve twenty twice
two under unfortunately unless unlike unlikely until unto up upon ups us use
used useful usefully usefulness uses using usually value various very via
viz vol vols want wants was wasnt way we wed welcome well went were werent
what whatever whats when whence whenever where whereafter whereas whereby
wherein wheres whereupon wherever whether which while whim whither who whod
whoever whole whom whomever whos whose why widely will willing wish with
within without wonder wont words world would wouldnt www yes yet you youd
your youre yours yourself yourselves zero
`)...)

// Derived lookup sets. The flattened sets are variable initializers so Go
// builds them in dependency order before any init() in the package runs
// (patterns.go's init consults UnitsSet).
var (
	UnitsSet          = flatten(Units)
	BasicUnitsSet     = flatten(BasicUnits)
	VolumeUnitsSet    = flatten(VolumeUnits)
	WeightUnitsSet    = flatten(WeightUnits)
	DimensionUnitsSet = flatten(DimensionUnits)

	NonBasicUnitsSet map[string]bool

	// UnitToStandard maps every unit spelling to its canonical name.
	UnitToStandard map[string]string

	// SingularUnit maps a plural unit spelling to the singular spelling
	// within the same unit family ("cups" -> "cup", "loaves" -> "loaf").
	SingularUnit map[string]string

	// EdgeCaseFoodPhrases lists the EdgeCaseFoods keys longest first, the
	// order they must be matched in.
	EdgeCaseFoodPhrases []string
)

func init() {
	NonBasicUnitsSet = make(map[string]bool, len(UnitsSet))
	for alias := range UnitsSet {
		if !BasicUnitsSet[alias] {
			NonBasicUnitsSet[alias] = true
		}
	}

	UnitToStandard = make(map[string]string)
	for name, aliases := range Units {
		UnitToStandard[name] = name
		for _, alias := range aliases {
			UnitToStandard[alias] = name
		}
	}

	SingularUnit = make(map[string]string)
	for _, aliases := range Units {
		inFamily := make(map[string]bool, len(aliases))
		for _, alias := range aliases {
			inFamily[alias] = true
		}
		for _, alias := range aliases {
			if s, ok := singularOf(alias, inFamily); ok {
				SingularUnit[alias] = s
			}
		}
	}

	for phrase := range EdgeCaseFoods {
		EdgeCaseFoodPhrases = append(EdgeCaseFoodPhrases, phrase)
	}
	// longest first so "half-and-half" is tried before any shorter phrase
	sort.Slice(EdgeCaseFoodPhrases, func(i, j int) bool {
		if len(EdgeCaseFoodPhrases[i]) != len(EdgeCaseFoodPhrases[j]) {
			return len(EdgeCaseFoodPhrases[i]) > len(EdgeCaseFoodPhrases[j])
		}
		return EdgeCaseFoodPhrases[i] < EdgeCaseFoodPhrases[j]
	})
}

// singularOf derives the singular spelling of alias if the family contains it.
func singularOf(alias string, family map[string]bool) (string, bool) {
	if s := strings.TrimSuffix(alias, "s"); s != alias && family[s] {
		return s, true
	}
	if s := strings.TrimSuffix(alias, "es"); s != alias && family[s] {
		return s, true
	}
	if strings.HasSuffix(alias, "ies") {
		if s := alias[:len(alias)-3] + "y"; family[s] {
			return s, true
		}
	}
	if strings.HasSuffix(alias, "ves") {
		if s := alias[:len(alias)-3] + "f"; family[s] {
			return s, true
		}
	}
	return "", false
}

// Singularize folds a plural unit spelling down to its singular form.
// Spellings with no known plural come back unchanged.
func Singularize(unit string) string {
	if s, ok := SingularUnit[unit]; ok {
		return s
	}
	return unit
}

// IsWeightUnit reports whether the unit spelling denotes a weight.
func IsWeightUnit(unit string) bool { return WeightUnitsSet[unit] }

// IsVolumeUnit reports whether the unit spelling denotes a volume.
func IsVolumeUnit(unit string) bool { return VolumeUnitsSet[unit] }

// IsBasicUnit reports whether the unit spelling is in the core
// imperial/metric volume and weight set.
func IsBasicUnit(unit string) bool { return BasicUnitsSet[unit] }

func newSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func flatten(table map[string][]string) map[string]bool {
	set := make(map[string]bool)
	for name, aliases := range table {
		set[name] = true
		for _, alias := range aliases {
			set[alias] = true
		}
	}
	return set
}
