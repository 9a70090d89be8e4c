package filter

import (
	"strconv"
	"strings"
)

// ParseAmount reads a numeric value out of a possibly formatted string:
// currency symbols, thousands separators and unit suffixes are stripped
// before parsing ("R 389,900" -> 389900, "2.0L" -> 2). Empty or
// unparseable input yields 0 rather than an error so that one bad
// record never aborts a filter pass.
func ParseAmount(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseMileage reads kilometers out of a formatted mileage string by
// keeping digits only ("15,000" -> 15000). Anything without digits,
// "N/A" included, parses to 0.
func ParseMileage(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return v
}

// ParseEngineLiters reads engine displacement in liters from a stored
// capacity value by dropping the "L" unit suffix ("2.0L" -> 2.0). A
// missing or malformed value parses to 0, which fails any positive
// minimum bound.
func ParseEngineLiters(s string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, "L", ""))
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
