package ingredient

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders v rounded to three decimal places, with integral
// values printed without a decimal point ("3" rather than "3.0").
func formatNumber(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseNumber reads a decimal quantity string produced by the normalizer.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
