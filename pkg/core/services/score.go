package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"effectif-engine/pkg/core/model"
	"effectif-engine/pkg/core/scoring"
)

// AuthoritativeScorer is the remote, server-computed scoring path. A nil
// client means scoring runs locally from the start.
type AuthoritativeScorer interface {
	ScoreCampaign(ctx context.Context, req model.ScoringRequest) (*model.ScoringResponse, error)
}

// ScoreCampaign classifies a set of centres. The authoritative path is
// tried first; if it is unavailable the same scoring engine recomputes the
// campaign locally and the results carry client-fallback provenance. Both
// paths run the identical formula, so the class verdicts match for
// identical inputs.
func ScoreCampaign(ctx context.Context, client AuthoritativeScorer, scorer *scoring.Scorer, logger *zap.Logger, req model.ScoringRequest) (*model.ScoringResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid scoring request: %w", err)
	}
	if req.CampaignID == "" {
		req.CampaignID = uuid.New().String()
	}

	logger.Debug("Starting scoring campaign",
		zap.String("campaign_id", req.CampaignID),
		zap.Int("centres", len(req.Centres)))

	if client != nil {
		resp, err := client.ScoreCampaign(ctx, req)
		if err == nil {
			logger.Info("Authoritative scoring completed",
				zap.String("campaign_id", req.CampaignID),
				zap.Int("results", len(resp.Results)))
			return resp, nil
		}
		if !errors.Is(err, model.ErrBackendUnavailable) {
			return nil, fmt.Errorf("authoritative scoring failed: %w", err)
		}
		logger.Warn("Scoring backend unavailable, recomputing locally",
			zap.String("campaign_id", req.CampaignID),
			zap.Error(err))
	}

	resp := LocalScoreCampaign(scorer, req, model.ProvenanceClientFallback)
	logger.Info("Local scoring completed",
		zap.String("campaign_id", req.CampaignID),
		zap.String("provenance", string(model.ProvenanceClientFallback)),
		zap.Int("results", len(resp.Results)))
	return resp, nil
}

// ServerScoreCampaign is the authoritative entry point: it validates the
// campaign and scores it with server provenance.
func ServerScoreCampaign(scorer *scoring.Scorer, logger *zap.Logger, req model.ScoringRequest) (*model.ScoringResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid scoring request: %w", err)
	}
	if req.CampaignID == "" {
		req.CampaignID = uuid.New().String()
	}

	resp := LocalScoreCampaign(scorer, req, model.ProvenanceServer)
	logger.Info("Authoritative scoring completed",
		zap.String("campaign_id", req.CampaignID),
		zap.Int("results", len(resp.Results)))
	return resp, nil
}

// LocalScoreCampaign runs the scoring engine over a campaign and stamps the
// given provenance. The server endpoint and the client fallback both call
// this function.
func LocalScoreCampaign(scorer *scoring.Scorer, req model.ScoringRequest, provenance model.Provenance) *model.ScoringResponse {
	results := make([]model.ScoreResult, 0, len(req.Centres))
	summary := model.ScoringSummary{Total: len(req.Centres)}

	for _, centre := range req.Centres {
		result := scorer.Score(centre)
		result.Provenance = provenance
		results = append(results, result)

		switch result.Impact {
		case model.ImpactPromotion:
			summary.Promotions++
			summary.Impacted++
		case model.ImpactReclassement:
			summary.Downgrades++
			summary.Impacted++
		}
	}

	return &model.ScoringResponse{
		CampaignID: req.CampaignID,
		Results:    results,
		Summary:    summary,
	}
}
