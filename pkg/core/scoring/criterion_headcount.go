package scoring

import "effectif-engine/pkg/core/model"

// HeadcountCriterion scores a centre by the size of its current workforce:
// managing a larger staff is itself a complexity driver
type HeadcountCriterion struct {
	weight     float64
	saturation float64
}

// NewHeadcountCriterion creates a HeadcountCriterion with the given weight
// and saturation ceiling
func NewHeadcountCriterion(weight, saturation float64) *HeadcountCriterion {
	return &HeadcountCriterion{weight: weight, saturation: saturation}
}

func (c *HeadcountCriterion) Name() string {
	return "Headcount"
}

func (c *HeadcountCriterion) Weight() float64 {
	return c.weight
}

func (c *HeadcountCriterion) Subscore(m model.CentreMetrics) float64 {
	return saturate(float64(m.Headcount), c.saturation)
}
