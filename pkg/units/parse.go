package units

import (
	"strconv"
	"strings"
)

// ParseNumber parses a form value as a finite decimal number.
// Surrounding whitespace is ignored; "", "NaN" and "Inf" are rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}

// NumberOrZero parses s and falls back to zero when it is not a number.
// Validation always runs before conversion, so the fallback only affects
// optional or already-rejected input.
func NumberOrZero(s string) float64 {
	v, _ := ParseNumber(s)
	return v
}
