package ledger

import (
	"strconv"
	"strings"
)

// ParseNumber converts free-text numeric input to a float. Empty or
// unparseable input yields 0: form fields are deliberately permissive
// instead of rejecting bad input.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseNumberDefault is ParseNumber with a fallback for empty input.
// Driver registration suggests the standard rate when the field is
// left blank; editing an existing driver does not (historical
// asymmetry, kept on purpose).
func ParseNumberDefault(s string, def float64) float64 {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return ParseNumber(s)
}

// PlayHours combines the hours and minutes form fields into a
// fractional hour count.
func PlayHours(hoursField, minutesField string) float64 {
	return ParseNumber(hoursField) + ParseNumber(minutesField)/60
}
