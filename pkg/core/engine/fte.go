package engine

import "math"

// DeriveFTE divides a daily workload by the net capacity per worker per day.
// A zero capacity makes the requirement undefined: the caller must surface
// it, not coerce it to 0.
func DeriveFTE(dailyHours, netHoursPerDay float64) (float64, bool) {
	if netHoursPerDay == 0 {
		return 0, false
	}
	return dailyHours / netHoursPerDay, true
}

// CeilTarget applies the staffing-target rounding policy: any fractional
// requirement rounds up to the next whole worker. This is the only rounding
// that may produce an etp_arrondi; display rounding is a separate operation.
func CeilTarget(etpCalcule float64) int {
	if etpCalcule <= 0 {
		return 0
	}
	return int(math.Ceil(etpCalcule))
}

// DisplayRound rounds a fractional total to two decimals for KPI display.
// It must never be used to derive a staffing target.
func DisplayRound(v float64) float64 {
	return math.Round(v*100) / 100
}
