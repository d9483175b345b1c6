// Package gramweight estimates gram weights for parsed ingredient lines
// from reference tables: food densities, per-item average weights and
// animal protein cut weights.
package gramweight

import (
	"sort"

	"github.com/mealcraft/ingredientparser/pkg/fuzzymatch"
)

// Food phrases rarely match table keys verbatim, so lookups go through a
// fuzzy match with a fixed floor. Item weight lookups use a stricter floor
// since a wrong per-item weight is worse than none.
const (
	densityMatchFloor = 0.7
	itemMatchFloor    = 0.85
)

var (
	densityKeys []string
	itemKeys    []string
)

func init() {
	for k := range foodDensities {
		densityKeys = append(densityKeys, k)
	}
	sort.Strings(densityKeys)
	for k := range itemWeights {
		itemKeys = append(itemKeys, k)
	}
	sort.Strings(itemKeys)
}

// LookupDensity finds the density band for a food phrase.
func LookupDensity(food string) (Density, bool) {
	if food == "" {
		return Density{}, false
	}
	if d, ok := foodDensities[food]; ok {
		return d, true
	}
	m, ok := fuzzymatch.BestMatch(food, densityKeys, densityMatchFloor)
	if !ok {
		return Density{}, false
	}
	return foodDensities[m.Candidate], true
}

// VolumeToMilliliters returns the milliliter factor for a canonical
// volume unit name.
func VolumeToMilliliters(standardUnit string) (float64, bool) {
	f, ok := volumeToMilliliters[standardUnit]
	return f, ok
}

// WeightToGrams returns the gram factor for a canonical weight unit name.
func WeightToGrams(standardUnit string) (float64, bool) {
	f, ok := weightToGrams[standardUnit]
	return f, ok
}

// LookupItemWeight finds the average per-item gram weight for a countable
// food phrase.
func LookupItemWeight(food string) (float64, bool) {
	if food == "" {
		return 0, false
	}
	if w, ok := itemWeights[food]; ok {
		return w, true
	}
	m, ok := fuzzymatch.BestMatch(food, itemKeys, itemMatchFloor)
	if !ok {
		return 0, false
	}
	return itemWeights[m.Candidate], true
}

// CutWeight returns the average gram weight for an animal protein cut used
// as a unit ("2 chicken breasts"). The unit must already be singular.
func CutWeight(unit string) (float64, bool) {
	w, ok := cutWeights[unit]
	return w, ok
}
