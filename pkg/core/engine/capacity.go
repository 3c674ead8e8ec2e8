package engine

// NetHoursPerDay derives the net available hours per worker per day from the
// base shift duration, the productivity percentage and the non-productive
// idle time. The result is floored at 0; a 0 net capacity short-circuits FTE
// derivation downstream.
func NetHoursPerDay(baseShiftHours, productivityPct, idleMinutesPerDay float64) float64 {
	net := baseShiftHours*(productivityPct/100) - idleMinutesPerDay/MinutesPerHour
	if net < 0 {
		return 0
	}
	return net
}
