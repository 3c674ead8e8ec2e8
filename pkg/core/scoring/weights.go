package scoring

// Default criterion weights. They must sum to 1; NewScorer enforces this
// for custom weight sets as well.
const (
	// WeightParcels is the heaviest criterion: parcel handling dominates
	// the workload complexity of a centre.
	WeightParcels = 0.30

	// WeightRegistered weighs registered mail, which carries per-item
	// signature and tracking work.
	WeightRegistered = 0.20

	// WeightOrdinaryMail weighs bulk ordinary mail volume.
	WeightOrdinaryMail = 0.20

	// WeightHeadcount weighs the size of the centre's current workforce.
	WeightHeadcount = 0.20

	// WeightInternational weighs the share of international flows, which
	// adds customs and routing complexity.
	WeightInternational = 0.10
)

// Default saturation ceilings: the metric value at which a criterion
// sub-score reaches 1. Calibrated for daily volumes of a large centre.
const (
	SaturationParcels      = 2000.0
	SaturationRegistered   = 1000.0
	SaturationOrdinaryMail = 50000.0
	SaturationHeadcount    = 150.0
)

// DefaultCriteria returns the standard criterion set
func DefaultCriteria() []Criterion {
	return []Criterion{
		NewParcelsCriterion(WeightParcels, SaturationParcels),
		NewRegisteredCriterion(WeightRegistered, SaturationRegistered),
		NewOrdinaryMailCriterion(WeightOrdinaryMail, SaturationOrdinaryMail),
		NewHeadcountCriterion(WeightHeadcount, SaturationHeadcount),
		NewInternationalCriterion(WeightInternational),
	}
}
