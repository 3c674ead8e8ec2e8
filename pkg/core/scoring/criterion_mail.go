package scoring

import "effectif-engine/pkg/core/model"

// OrdinaryMailCriterion scores a centre by its bulk ordinary-mail volume
type OrdinaryMailCriterion struct {
	weight     float64
	saturation float64
}

// NewOrdinaryMailCriterion creates an OrdinaryMailCriterion with the given
// weight and saturation ceiling
func NewOrdinaryMailCriterion(weight, saturation float64) *OrdinaryMailCriterion {
	return &OrdinaryMailCriterion{weight: weight, saturation: saturation}
}

func (c *OrdinaryMailCriterion) Name() string {
	return "OrdinaryMail"
}

func (c *OrdinaryMailCriterion) Weight() float64 {
	return c.weight
}

func (c *OrdinaryMailCriterion) Subscore(m model.CentreMetrics) float64 {
	return saturate(m.OrdinaryMail, c.saturation)
}
