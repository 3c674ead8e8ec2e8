// Package services orchestrates the sizing and scoring pipelines behind
// store and client interfaces. Each invocation is stateless: inputs in,
// structured results out, nothing retained between calls.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"effectif-engine/pkg/core/distribution"
	"effectif-engine/pkg/core/engine"
	"effectif-engine/pkg/core/model"
	"effectif-engine/pkg/core/referential"
	"effectif-engine/pkg/core/rollup"
)

// TopGapsCount is how many owners feed the top-gaps chart
const TopGapsCount = 5

var validate = validator.New()

// SimulationStore defines the reference data a simulation needs. The engine
// itself performs no I/O; implementations load from Postgres, files, or
// fixtures.
type SimulationStore interface {
	GetTasks(ctx context.Context) ([]model.Task, error)
	GetHierarchy(ctx context.Context, scope model.Scope, scopeID string) (model.Hierarchy, error)
	GetVolumes(ctx context.Context, scope model.Scope, scopeID string) ([]model.VolumeRecord, error)
}

// Simulate runs the full sizing pipeline for one request: referential
// lookup, per-post costing and FTE derivation, gap analysis, then
// hierarchical roll-up. Volumes supplied in the request take precedence
// over stored ones.
func Simulate(ctx context.Context, store SimulationStore, logger *zap.Logger, req model.SimulationRequest) (*model.SimulationResponse, error) {
	start := time.Now()

	params, err := resolveParameters(req.Parameters)
	if err != nil {
		return nil, err
	}
	if !req.Scope.IsValid() {
		return nil, fmt.Errorf("invalid scope %q", req.Scope)
	}

	logger.Debug("Starting simulation",
		zap.String("scope", string(req.Scope)),
		zap.String("scope_id", req.ScopeID),
		zap.Int("inline_volumes", len(req.Volumes)))

	// Step 1: load the task referential
	tasks, err := store.GetTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load task referential: %w", err)
	}
	ref, err := referential.New(tasks)
	if err != nil {
		return nil, fmt.Errorf("invalid task referential: %w", err)
	}
	logger.Debug("Referential loaded", zap.Int("tasks", ref.Len()))

	// Step 2: load the organizational hierarchy for the requested scope
	hierarchy, err := store.GetHierarchy(ctx, req.Scope, req.ScopeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load hierarchy: %w", err)
	}
	logger.Debug("Hierarchy loaded",
		zap.Int("posts", len(hierarchy.Posts)),
		zap.Int("centres", len(hierarchy.Centres)),
		zap.Int("directions", len(hierarchy.Directions)))

	// Step 3: resolve volumes
	volumes := req.Volumes
	if len(volumes) == 0 {
		volumes, err = store.GetVolumes(ctx, req.Scope, req.ScopeID)
		if err != nil {
			return nil, fmt.Errorf("failed to load volumes: %w", err)
		}
	}

	// Owner ids are resolved once here; downstream lookups are exact
	volumesByOwner, warnings := groupVolumesByOwner(volumes, hierarchy.Posts)

	// Step 4: size every post
	var rows []model.SimulationResult
	postAggs := make(map[string][]rollup.Aggregate)
	familyHours := make(map[string]float64)
	var familyOrder []string

	for _, post := range hierarchy.Posts {
		result, hours, postWarnings := engine.SizePost(ref, post, volumesByOwner[post.ID], params)
		warnings = append(warnings, postWarnings...)
		rows = append(rows, result)
		postAggs[post.CentreID] = append(postAggs[post.CentreID], rollup.FromPost(result))

		for _, family := range hours.Families {
			if _, seen := familyHours[family]; !seen {
				familyOrder = append(familyOrder, family)
			}
			familyHours[family] += hours.ByFamily[family]
		}
	}

	// Step 5: roll up through the hierarchy
	centreAggs := make(map[string][]rollup.Aggregate)
	for _, centre := range hierarchy.Centres {
		agg := rollup.Centre(centre, postAggs[centre.ID])
		rows = append(rows, agg.Result)
		centreAggs[centre.DirectionID] = append(centreAggs[centre.DirectionID], agg)
	}

	var directionAggs []rollup.Aggregate
	for _, direction := range hierarchy.Directions {
		agg := rollup.Direction(direction, centreAggs[direction.ID])
		rows = append(rows, agg.Result)
		directionAggs = append(directionAggs, agg)
	}

	top := topAggregate(req.Scope, rows, directionAggs)
	if req.Scope == model.ScopeNation {
		rows = append(rows, top.Result)
	}

	logger.Info("Simulation completed",
		zap.Int("rows", len(rows)),
		zap.Int("warnings", len(warnings)),
		zap.Float64("etp_calcule", top.Result.EtpCalcule),
		zap.Int("ecart_global", top.Result.Ecart))

	if warnings == nil {
		warnings = []model.Warning{}
	}

	now := time.Now().UTC()
	elapsed := time.Since(start)
	return &model.SimulationResponse{
		Metadata: model.SimulationMetadata{
			SimulationID: uuid.New().String(),
			Scope:        req.Scope,
			ScopeID:      req.ScopeID,
			StartedAt:    now.Add(-elapsed).Format(time.RFC3339),
			CompletedAt:  now.Format(time.RFC3339),
			DurationMs:   elapsed.Milliseconds(),
		},
		Rows: rows,
		KPIs: model.KPIBlock{
			EtpActuel:   top.Result.EffectifActuel,
			EtpCalcule:  engine.DisplayRound(top.Result.EtpCalcule),
			EcartGlobal: top.Result.Ecart,
			NbCentres:   len(hierarchy.Centres),
		},
		Charts:   buildCharts(familyHours, familyOrder, rows, params),
		Warnings: warnings,
	}, nil
}

// resolveParameters fills defaults for an empty parameter set and validates
// the result, including the cross-field percentage pairs
func resolveParameters(p model.Parameters) (model.Parameters, error) {
	if p == (model.Parameters{}) {
		return model.DefaultParameters(), nil
	}
	if p.BaseShiftHours == 0 {
		p.BaseShiftHours = model.DefaultBaseShiftHours
	}
	if p.WorkingDaysPerYear == 0 {
		p.WorkingDaysPerYear = model.DefaultWorkingDaysPerYear
	}
	if err := validate.Struct(p); err != nil {
		return p, fmt.Errorf("invalid parameters: %w", err)
	}
	if err := p.CheckPairs(); err != nil {
		return p, fmt.Errorf("invalid parameters: %w", err)
	}
	return p, nil
}

// groupVolumesByOwner indexes volumes by their canonical owner id, warning
// on owners outside the hierarchy
func groupVolumesByOwner(volumes []model.VolumeRecord, posts []model.Post) (map[string][]model.VolumeRecord, []model.Warning) {
	known := make(map[string]bool, len(posts))
	for _, post := range posts {
		known[post.ID] = true
	}

	grouped := make(map[string][]model.VolumeRecord)
	var warnings []model.Warning
	warned := make(map[string]bool)

	for _, vol := range volumes {
		if !known[vol.OwnerID] {
			if !warned[vol.OwnerID] {
				warned[vol.OwnerID] = true
				warnings = append(warnings, model.Warning{
					Code:    model.WarningUnknownOwner,
					OwnerID: vol.OwnerID,
					Detail:  fmt.Sprintf("owner %q is not part of the simulated hierarchy, volume ignored", vol.OwnerID),
				})
			}
			continue
		}
		grouped[vol.OwnerID] = append(grouped[vol.OwnerID], vol)
	}
	return grouped, warnings
}

// topAggregate picks the node whose figures feed the KPI block: the national
// roll-up for nation scope, otherwise the row matching the requested scope,
// falling back to a roll-up over everything sized.
func topAggregate(scope model.Scope, rows []model.SimulationResult, directions []rollup.Aggregate) rollup.Aggregate {
	if scope == model.ScopeNation {
		return rollup.Nation(directions)
	}

	// The requested scope's own row is the last one appended for that level
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].Scope == scope {
			return rollup.Aggregate{Result: rows[i]}
		}
	}
	return rollup.Aggregate{}
}

// buildCharts assembles the pre-aggregated series: workload distribution by
// task family, the largest absolute staffing gaps among leaf posts, and the
// total daily workload split by each percentage pair
func buildCharts(familyHours map[string]float64, familyOrder []string, rows []model.SimulationResult, params model.Parameters) *model.Charts {
	charts := &model.Charts{
		DistributionByCategory: make([]model.CategoryShare, 0, len(familyOrder)),
		TopGaps:                make([]model.GapEntry, 0, TopGapsCount),
	}

	for _, family := range familyOrder {
		charts.DistributionByCategory = append(charts.DistributionByCategory, model.CategoryShare{
			Category: family,
			Hours:    familyHours[family],
		})
	}

	var leaves []model.SimulationResult
	for _, row := range rows {
		if row.Scope == model.ScopePost && !row.Undefined {
			leaves = append(leaves, row)
		}
	}
	sortByAbsEcart(leaves)
	for i := 0; i < len(leaves) && i < TopGapsCount; i++ {
		charts.TopGaps = append(charts.TopGaps, model.GapEntry{
			OwnerID: leaves[i].OwnerID,
			Label:   leaves[i].Label,
			Ecart:   leaves[i].Ecart,
		})
	}

	var totalDaily float64
	for _, family := range familyOrder {
		totalDaily += familyHours[family]
	}
	pairs := []struct {
		pair, labelA, labelB string
		pctA, pctB           float64
	}{
		{"local/axes", "local", "axes", params.PctLocal, params.PctAxes},
		{"national/international", "national", "international", params.PctNational, params.PctInternational},
		{"particuliers/entreprises", "particuliers", "entreprises", params.PctParticuliers, params.PctEntreprises},
	}
	for _, p := range pairs {
		// Pairs were validated upstream, Split cannot fail here
		a, b, _ := distribution.Split(totalDaily, p.pctA, p.pctB)
		charts.FlowSplits = append(charts.FlowSplits, model.FlowSplit{
			Pair:   p.pair,
			LabelA: p.labelA,
			LabelB: p.labelB,
			A:      a,
			B:      b,
		})
	}
	return charts
}
