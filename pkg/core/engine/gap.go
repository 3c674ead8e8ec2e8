package engine

import "effectif-engine/pkg/core/model"

// Load ratio bands, in percent. The decision table is independent of the
// raw ecart sign: both signals are reported side by side.
const (
	RatioRecruter   = 110 // above: understaffed
	RatioSurveiller = 102 // from here to RatioRecruter: watch
	RatioOptimiser  = 85  // below: overstaffed
)

// Ecart computes the signed staffing gap, target minus actual
func Ecart(etpArrondi, effectifActuel int) int {
	return etpArrondi - effectifActuel
}

// LoadRatio computes etp_calcule / effectif_actuel as a percentage.
// Undefined (nil) when effectif_actuel is 0.
func LoadRatio(etpCalcule float64, effectifActuel int) *float64 {
	if effectifActuel == 0 {
		return nil
	}
	ratio := etpCalcule / float64(effectifActuel) * 100
	return &ratio
}

// Decide maps the load ratio to a staffing decision. With no current
// staffing the ratio is undefined: any required work means recruiting,
// otherwise there is nothing to adjust.
func Decide(etpCalcule float64, effectifActuel int) model.Decision {
	ratio := LoadRatio(etpCalcule, effectifActuel)
	if ratio == nil {
		if etpCalcule > 0 {
			return model.DecisionRecruter
		}
		return model.DecisionMaintenir
	}

	switch {
	case *ratio > RatioRecruter:
		return model.DecisionRecruter
	case *ratio >= RatioSurveiller:
		return model.DecisionSurveiller
	case *ratio < RatioOptimiser:
		return model.DecisionOptimiser
	default:
		return model.DecisionMaintenir
	}
}
