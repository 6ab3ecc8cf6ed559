package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	unitSuffixRe = regexp.MustCompile(`(?i)m²|m2`)
	nonNumericRe = regexp.MustCompile(`[^\d.,]`)
	groupedRe    = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)
)

// SanitizeNumber parses a number out of free-form client input, tolerating
// currency symbols and unit suffixes ("120m2" -> 120, "1.500€" -> 1500,
// "2.5" -> 2.5). A dot is treated as a Spanish thousands separator when the
// digits follow the d{1,3}(.ddd)+ grouping, and as a decimal point
// otherwise; a comma is always a decimal separator. Anything unparseable
// coerces to 0, never to a missing value.
func SanitizeNumber(raw string) float64 {
	s := unitSuffixRe.ReplaceAllString(raw, "")
	s = nonNumericRe.ReplaceAllString(s, "")
	if s == "" {
		return 0
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
		s = strings.ReplaceAll(s, ",", "")
	} else if groupedRe.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return value
}
