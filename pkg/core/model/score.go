package model

// Classe is the ordinal complexity class of a centre, D lowest to A highest
type Classe string

const (
	ClasseA Classe = "A"
	ClasseB Classe = "B"
	ClasseC Classe = "C"
	ClasseD Classe = "D"
)

// Rank returns the ordinal position of the class (D=0 .. A=3).
// Unknown classes rank below D.
func (c Classe) Rank() int {
	switch c {
	case ClasseA:
		return 3
	case ClasseB:
		return 2
	case ClasseC:
		return 1
	case ClasseD:
		return 0
	}
	return -1
}

func (c Classe) IsValid() bool {
	return c == ClasseA || c == ClasseB || c == ClasseC || c == ClasseD
}

// Impact is the verdict of a simulated class against the current class
type Impact string

const (
	ImpactPromotion    Impact = "Promotion"
	ImpactReclassement Impact = "Reclassement"
	ImpactStable       Impact = "Stable"
)

// Provenance records which scoring path produced a result
type Provenance string

const (
	ProvenanceServer         Provenance = "server"
	ProvenanceClientFallback Provenance = "client-fallback"
)

// Contributor is one criterion's weighted contribution to a global score,
// reported for explainability
type Contributor struct {
	Criterion    string  `json:"criterion"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// ScoreResult is the scoring outcome for one centre
type ScoreResult struct {
	CentreID        string        `json:"centre_id"`
	GlobalScore     float64       `json:"global_score"`
	CurrentClasse   Classe        `json:"current_classe"`
	SimulatedClasse Classe        `json:"simulated_classe"`
	Impact          Impact        `json:"impact"`
	TopContributors []Contributor `json:"top_contributors"`
	Provenance      Provenance    `json:"provenance"`
}

// CentreMetrics is the raw input a centre's score is computed from.
// Both the authoritative and the fallback path consume exactly this shape,
// which is what makes their results equivalent by construction.
type CentreMetrics struct {
	CentreID         string  `json:"centre_id" validate:"required"`
	CurrentClasse    Classe  `json:"current_classe"`
	ParcelVolume     float64 `json:"parcel_volume" validate:"gte=0"`
	RegisteredMail   float64 `json:"registered_mail" validate:"gte=0"`
	OrdinaryMail     float64 `json:"ordinary_mail" validate:"gte=0"`
	Headcount        int     `json:"headcount" validate:"gte=0"`
	InternationalPct float64 `json:"international_pct" validate:"gte=0,lte=100"`
}
