package scoring

import "effectif-engine/pkg/core/model"

// ParcelsCriterion scores a centre by its daily parcel volume.
//
// Subscore:
//   - Linear in volume up to the saturation ceiling
//   - Clamped to 1 above it: beyond that size every centre is equally complex
type ParcelsCriterion struct {
	weight     float64
	saturation float64
}

// NewParcelsCriterion creates a ParcelsCriterion with the given weight and
// saturation ceiling
func NewParcelsCriterion(weight, saturation float64) *ParcelsCriterion {
	return &ParcelsCriterion{weight: weight, saturation: saturation}
}

func (c *ParcelsCriterion) Name() string {
	return "Parcels"
}

func (c *ParcelsCriterion) Weight() float64 {
	return c.weight
}

func (c *ParcelsCriterion) Subscore(m model.CentreMetrics) float64 {
	return saturate(m.ParcelVolume, c.saturation)
}
