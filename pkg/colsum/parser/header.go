// Package parser provides streaming readers over xlsx sheets.
package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MaxHeaderScan is the number of leading rows searched for the target
// column when no header row is configured.
const MaxHeaderScan = 50

// FindColumn returns the 0-based index of the first header equal to name.
// Matching is exact unless normalize is set, in which case both sides are
// trimmed and NFKC-folded (so "CO₂" and "CO2" compare equal).
func FindColumn(headers []string, name string, normalize bool) (int, bool) {
	if normalize {
		name = normalizeHeader(name)
	}
	for i, h := range headers {
		if normalize {
			h = normalizeHeader(h)
		}
		if h == name {
			return i, true
		}
	}
	return -1, false
}

func normalizeHeader(s string) string {
	return norm.NFKC.String(strings.TrimSpace(s))
}
