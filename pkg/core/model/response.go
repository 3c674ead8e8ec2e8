package model

// KPIBlock is the headline figures of a simulation. EtpCalcule is
// display-rounded for the KPI tile only; staffing targets always come from
// the per-row ceiling policy.
type KPIBlock struct {
	EtpActuel   int     `json:"etp_actuel"`
	EtpCalcule  float64 `json:"etp_calcule"`
	EcartGlobal int     `json:"ecart_global"`
	NbCentres   int     `json:"nb_centres"`
}

// CategoryShare is one slice of the distribution-by-category chart
type CategoryShare struct {
	Category string  `json:"category"`
	Hours    float64 `json:"hours"`
}

// GapEntry is one bar of the top-gaps chart
type GapEntry struct {
	OwnerID string `json:"owner_id"`
	Label   string `json:"label"`
	Ecart   int    `json:"ecart"`
}

// FlowSplit is one percentage pair applied to the total daily workload
type FlowSplit struct {
	Pair   string  `json:"pair"`
	LabelA string  `json:"label_a"`
	LabelB string  `json:"label_b"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
}

// Charts carries the pre-aggregated series the caller renders
type Charts struct {
	DistributionByCategory []CategoryShare `json:"distribution_by_category"`
	TopGaps                []GapEntry      `json:"top_gaps"`
	FlowSplits             []FlowSplit     `json:"flow_splits"`
}

// SimulationMetadata describes one engine invocation
type SimulationMetadata struct {
	SimulationID string `json:"simulation_id"`
	Scope        Scope  `json:"scope"`
	ScopeID      string `json:"scope_id,omitempty"`
	StartedAt    string `json:"started_at"`
	CompletedAt  string `json:"completed_at"`
	DurationMs   int64  `json:"duration_ms"`
}

// SimulationResponse is the full engine output for one request
type SimulationResponse struct {
	Metadata SimulationMetadata `json:"metadata"`
	Rows     []SimulationResult `json:"rows"`
	KPIs     KPIBlock           `json:"kpis"`
	Charts   *Charts            `json:"charts,omitempty"`
	Warnings []Warning          `json:"warnings"`
}

// ScoringSummary aggregates a scoring campaign
type ScoringSummary struct {
	Total      int `json:"total"`
	Impacted   int `json:"impacted"`
	Promotions int `json:"promotions"`
	Downgrades int `json:"downgrades"`
}

// ScoringResponse is the outcome of a classification campaign
type ScoringResponse struct {
	CampaignID string         `json:"campaign_id"`
	Results    []ScoreResult  `json:"results"`
	Summary    ScoringSummary `json:"summary"`
}
