package gramweight

// Density describes a food's mass per milliliter, with band endpoints for
// foods whose packing varies (flour sifted vs scooped).
type Density struct {
	Grams float64 // g/ml, midpoint estimate
	Min   float64
	Max   float64
}

// foodDensities maps a food phrase to its density band. Keys are matched
// fuzzily, so spellings like "all purpose flour" still land on "flour".
var foodDensities = map[string]Density{
	"water":                {1.0, 1.0, 1.0},
	"milk":                 {1.03, 1.02, 1.05},
	"whole milk":           {1.03, 1.02, 1.05},
	"buttermilk":           {1.03, 1.02, 1.05},
	"heavy cream":          {0.99, 0.97, 1.01},
	"half-and-half":        {1.01, 1.0, 1.02},
	"flour":                {0.53, 0.45, 0.59},
	"all purpose flour":    {0.53, 0.45, 0.59},
	"whole wheat flour":    {0.54, 0.48, 0.6},
	"bread flour":          {0.55, 0.48, 0.61},
	"cake flour":           {0.48, 0.42, 0.54},
	"cornmeal":             {0.66, 0.6, 0.72},
	"cornstarch":           {0.54, 0.48, 0.6},
	"sugar":                {0.85, 0.8, 0.9},
	"granulated sugar":     {0.85, 0.8, 0.9},
	"brown sugar":          {0.72, 0.6, 0.93},
	"powdered sugar":       {0.56, 0.5, 0.62},
	"honey":                {1.42, 1.38, 1.45},
	"maple syrup":          {1.32, 1.3, 1.34},
	"molasses":             {1.4, 1.38, 1.42},
	"corn syrup":           {1.38, 1.36, 1.4},
	"butter":               {0.911, 0.9, 0.92},
	"oil":                  {0.92, 0.91, 0.93},
	"olive oil":            {0.918, 0.91, 0.92},
	"vegetable oil":        {0.92, 0.91, 0.93},
	"canola oil":           {0.92, 0.91, 0.93},
	"coconut oil":          {0.924, 0.92, 0.93},
	"sesame oil":           {0.92, 0.91, 0.93},
	"salt":                 {1.22, 1.15, 1.28},
	"kosher salt":          {0.69, 0.6, 0.76},
	"baking soda":          {0.92, 0.85, 0.98},
	"baking powder":        {0.9, 0.85, 0.97},
	"cocoa powder":         {0.52, 0.45, 0.59},
	"rice":                 {0.85, 0.78, 0.92},
	"oats":                 {0.41, 0.35, 0.47},
	"rolled oats":          {0.41, 0.35, 0.47},
	"yogurt":               {1.03, 1.0, 1.06},
	"greek yogurt":         {1.05, 1.02, 1.08},
	"sour cream":           {0.98, 0.96, 1.0},
	"mayonnaise":           {0.91, 0.9, 0.93},
	"ketchup":              {1.14, 1.1, 1.18},
	"soy sauce":            {1.16, 1.13, 1.19},
	"vinegar":              {1.01, 1.0, 1.02},
	"tomato sauce":         {1.03, 1.0, 1.06},
	"tomato paste":         {1.1, 1.07, 1.13},
	"peanut butter":        {1.09, 1.05, 1.13},
	"chicken broth":        {1.0, 1.0, 1.01},
	"chicken stock":        {1.0, 1.0, 1.01},
	"vegetable broth":      {1.0, 1.0, 1.01},
	"beef broth":           {1.0, 1.0, 1.01},
	"wine":                 {0.99, 0.98, 1.0},
	"cream cheese":         {1.01, 0.99, 1.03},
	"shredded cheese":      {0.38, 0.34, 0.42},
	"parmesan cheese":      {0.42, 0.38, 0.46},
	"breadcrumbs":          {0.46, 0.4, 0.52},
	"chocolate chips":      {0.72, 0.68, 0.76},
	"coconut milk":         {0.97, 0.95, 0.99},
	"vanilla extract":      {0.88, 0.87, 0.89},
}

// volumeToMilliliters converts a canonical volume unit name to ml.
var volumeToMilliliters = map[string]float64{
	"cup":         236.588,
	"tablespoon":  14.787,
	"teaspoon":    4.929,
	"fluid ounce": 29.574,
	"pint":        473.176,
	"quart":       946.353,
	"gallon":      3785.41,
	"milliliter":  1.0,
	"liter":       1000.0,
}

// weightToGrams converts a canonical weight unit name to grams.
var weightToGrams = map[string]float64{
	"ounce":     28.35,
	"pound":     453.59,
	"gram":      1.0,
	"kilogram":  1000.0,
	"milligram": 0.001,
}

// itemWeights holds average per-item gram weights for countable foods.
var itemWeights = map[string]float64{
	"egg":          50,
	"egg yolk":     18,
	"egg white":    33,
	"banana":       118,
	"apple":        182,
	"orange":       131,
	"lemon":        58,
	"lime":         44,
	"onion":        110,
	"shallot":      30,
	"garlic clove": 3,
	"clove garlic": 3,
	"carrot":       61,
	"celery stalk": 40,
	"potato":       213,
	"sweet potato": 130,
	"tomato":       123,
	"avocado":      136,
	"bell pepper":  119,
	"jalapeno":     14,
	"cucumber":     201,
	"zucchini":     196,
	"tortilla":     45,
	"slice bread":  29,
	"bread slice":  29,
	"bagel":        105,
	"peach":        150,
	"pear":         178,
}

// cutWeights holds average gram weights for animal protein cuts that show
// up as the unit of a line ("2 chicken breasts").
var cutWeights = map[string]float64{
	"breast":     174,
	"thigh":      83,
	"drumstick":  71,
	"wing":       21,
	"leg":        156,
	"fillet":     170,
	"filet":      170,
	"cutlet":     113,
	"patty":      112,
	"link":       68,
	"strip":      30,
	"tenderloin": 120,
}
