// Package scoring computes the weighted multi-criteria complexity score of a
// centre and maps it to an ordinal class. There is exactly one scoring
// engine: the network endpoint and the client fallback both call into this
// package, so identical inputs produce identical classes by construction.
package scoring

import "effectif-engine/pkg/core/model"

// Criterion is one weighted component of the global score. Subscore
// normalizes a centre metric to [0, 1]; the scorer combines sub-scores via
// the declared weights.
type Criterion interface {
	Name() string
	Weight() float64
	Subscore(m model.CentreMetrics) float64
}

// saturate maps a raw value onto [0, 1] against a saturation ceiling:
// values at or above the ceiling score 1
func saturate(value, ceiling float64) float64 {
	if ceiling <= 0 || value <= 0 {
		return 0
	}
	score := value / ceiling
	if score > 1 {
		return 1
	}
	return score
}
