package model

// SimulationRequest is the engine's boundary contract, independent of
// transport: one stateless request per simulation.
type SimulationRequest struct {
	Scope      Scope          `json:"scope" validate:"required"`
	ScopeID    string         `json:"scope_id"`
	Parameters Parameters     `json:"parameters"`
	Volumes    []VolumeRecord `json:"volumes" validate:"dive"`
}

// ScoringRequest asks for a classification run over a set of centres
type ScoringRequest struct {
	CampaignID string          `json:"campaign_id"`
	Centres    []CentreMetrics `json:"centres" validate:"required,dive"`
}
