package model

import (
	"strconv"
	"strings"
)

// ParseNumeric parses free-form numeric input. Comma decimal separators
// are accepted and surrounding whitespace is ignored. On unparsable
// input the previous value is returned with ok=false so callers can
// revert the field instead of propagating garbage.
func ParseNumeric(text string, previous float64) (float64, bool) {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return previous, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return previous, false
	}
	return v, true
}

// FormatNumber renders a value for templates and displays. Integral
// values drop the decimal part entirely, everything else keeps the
// shortest exact representation.
func FormatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
