package model

import "fmt"

const (
	// DefaultBaseShiftHours is the base shift duration used when the caller
	// does not override it
	DefaultBaseShiftHours = 8.0

	// DefaultWorkingDaysPerYear is used to annualize daily capacity
	DefaultWorkingDaysPerYear = 264
)

// Parameters is the immutable parameter set threaded through each engine
// call. It is a plain value, never a process-wide singleton: concurrent
// simulations for different scopes carry their own copy.
type Parameters struct {
	ProductivityPct    float64 `json:"productivity_pct" validate:"gte=0,lte=200"`
	IdleMinutesPerDay  float64 `json:"idle_minutes_per_day" validate:"gte=0"`
	ShiftCount         int     `json:"shift_count" validate:"gte=1,lte=3"`
	BaseShiftHours     float64 `json:"base_shift_hours" validate:"gte=0"`
	WorkingDaysPerYear int     `json:"working_days_per_year" validate:"gt=0"`

	// Paired distribution percentages. Each pair must sum to 100.
	PctLocal         float64 `json:"pct_local" validate:"gte=0,lte=100"`
	PctAxes          float64 `json:"pct_axes" validate:"gte=0,lte=100"`
	PctNational      float64 `json:"pct_national" validate:"gte=0,lte=100"`
	PctInternational float64 `json:"pct_international" validate:"gte=0,lte=100"`
	PctParticuliers  float64 `json:"pct_particuliers" validate:"gte=0,lte=100"`
	PctEntreprises   float64 `json:"pct_entreprises" validate:"gte=0,lte=100"`
}

// DefaultParameters returns the parameter set used when the caller supplies
// nothing: full productivity, no idle time, single shift, standard calendar,
// even splits.
func DefaultParameters() Parameters {
	return Parameters{
		ProductivityPct:    100,
		IdleMinutesPerDay:  0,
		ShiftCount:         1,
		BaseShiftHours:     DefaultBaseShiftHours,
		WorkingDaysPerYear: DefaultWorkingDaysPerYear,
		PctLocal:           50,
		PctAxes:            50,
		PctNational:        50,
		PctInternational:   50,
		PctParticuliers:    50,
		PctEntreprises:     50,
	}
}

// CheckPairs verifies that every paired percentage sums to exactly 100.
// Struct-tag validation cannot express cross-field sums, so this runs after it.
func (p Parameters) CheckPairs() error {
	pairs := []struct {
		name string
		a, b float64
	}{
		{"local/axes", p.PctLocal, p.PctAxes},
		{"national/international", p.PctNational, p.PctInternational},
		{"particuliers/entreprises", p.PctParticuliers, p.PctEntreprises},
	}
	for _, pair := range pairs {
		if pair.a+pair.b != 100 {
			return fmt.Errorf("percentage pair %s sums to %g, want 100", pair.name, pair.a+pair.b)
		}
	}
	return nil
}
