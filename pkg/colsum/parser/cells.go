package parser

import (
	"math"
	"strconv"
)

// ParseNumber reports whether a raw cell value is numeric and returns it.
// Integers are tried first, then decimals. Blank cells, text, boolean
// literals, error literals and non-finite values are not numeric.
func ParseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	// Try float
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
