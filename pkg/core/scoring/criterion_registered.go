package scoring

import "effectif-engine/pkg/core/model"

// RegisteredCriterion scores a centre by its registered-mail volume, which
// carries per-item signature and tracking work
type RegisteredCriterion struct {
	weight     float64
	saturation float64
}

// NewRegisteredCriterion creates a RegisteredCriterion with the given weight
// and saturation ceiling
func NewRegisteredCriterion(weight, saturation float64) *RegisteredCriterion {
	return &RegisteredCriterion{weight: weight, saturation: saturation}
}

func (c *RegisteredCriterion) Name() string {
	return "RegisteredMail"
}

func (c *RegisteredCriterion) Weight() float64 {
	return c.weight
}

func (c *RegisteredCriterion) Subscore(m model.CentreMetrics) float64 {
	return saturate(m.RegisteredMail, c.saturation)
}
