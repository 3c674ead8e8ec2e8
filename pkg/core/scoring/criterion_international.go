package scoring

import "effectif-engine/pkg/core/model"

// InternationalCriterion scores a centre by its share of international
// flows. The metric is already a percentage, so the sub-score is the share
// itself on [0, 1] with no saturation ceiling.
type InternationalCriterion struct {
	weight float64
}

// NewInternationalCriterion creates an InternationalCriterion with the
// given weight
func NewInternationalCriterion(weight float64) *InternationalCriterion {
	return &InternationalCriterion{weight: weight}
}

func (c *InternationalCriterion) Name() string {
	return "International"
}

func (c *InternationalCriterion) Weight() float64 {
	return c.weight
}

func (c *InternationalCriterion) Subscore(m model.CentreMetrics) float64 {
	return saturate(m.InternationalPct, 100)
}
