// Package normalize coerces heterogeneous numeric-like inputs into validated
// non-negative quantities. All functions are pure.
package normalize

import (
	"strconv"
	"strings"

	"effectif-engine/pkg/core/model"
)

// Amount is a parsed quantity. Present distinguishes an explicit 0 from a
// blank or unparsable input: callers aggregate absent as 0 but may display
// it distinctly.
type Amount struct {
	Value   float64
	Present bool
}

// Absent is the sentinel returned for blank or unparsable inputs
var Absent = Amount{}

// Or returns the amount's value, or def when the amount is absent
func (a Amount) Or(def float64) float64 {
	if !a.Present {
		return def
	}
	return a.Value
}

// ParseAmount parses a locale-formatted scalar: thousands separators
// (space, non-breaking space, apostrophe, or the grouping char), comma or
// dot decimals. When both "." and "," appear, the rightmost one is the
// decimal separator. More than one decimal marker after cleaning makes the
// input unparsable. Negative values are clamped to 0.
func ParseAmount(raw string) Amount {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Absent
	}

	// Strip grouping characters that are never decimal separators
	for _, sep := range []string{" ", " ", " ", "'"} {
		s = strings.ReplaceAll(s, sep, "")
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")

	switch {
	case hasDot && hasComma:
		// Rightmost separator is the decimal one, the other is grouping
		if strings.LastIndex(s, ".") > strings.LastIndex(s, ",") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		}
	case hasComma:
		if strings.Count(s, ",") > 1 {
			// Repeated comma is a grouping character
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case hasDot:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	// A second decimal marker surviving the cleanup is an error
	if strings.Count(s, ".") > 1 {
		return Absent
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Absent
	}
	if v < 0 {
		v = 0
	}
	return Amount{Value: v, Present: true}
}

// Clamp rejects negative quantities, flooring them at 0
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// ToDaily converts a quantity to its daily equivalent. Annual volumes are
// spread over the working calendar; daily volumes pass through. An unknown
// period is treated as daily, which is the ingestion default.
func ToDaily(quantity float64, period model.Period, workingDaysPerYear int) float64 {
	quantity = Clamp(quantity)
	if period == model.PeriodAnnual && workingDaysPerYear > 0 {
		return quantity / float64(workingDaysPerYear)
	}
	return quantity
}

// ToAnnual converts a quantity to its annual equivalent
func ToAnnual(quantity float64, period model.Period, workingDaysPerYear int) float64 {
	quantity = Clamp(quantity)
	if period == model.PeriodAnnual {
		return quantity
	}
	return quantity * float64(workingDaysPerYear)
}
