package rollup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"effectif-engine/pkg/core/model"
)

func postResult(id string, cat model.LaborCategory, etp float64, effectif int, arrondi int) model.SimulationResult {
	return model.SimulationResult{
		OwnerID:        id,
		Scope:          model.ScopePost,
		Categorie:      cat,
		EtpCalcule:     etp,
		EtpArrondi:     arrondi,
		EffectifActuel: effectif,
	}
}

func TestCentre_SumsRawNotRounded(t *testing.T) {
	// Three posts at 0.4 etp each: summing rounded targets would give 3,
	// the parent target must come from the raw sum 1.2 -> 2
	posts := []Aggregate{
		FromPost(postResult("p1", model.LaborMOD, 0.4, 1, 1)),
		FromPost(postResult("p2", model.LaborMOD, 0.4, 1, 1)),
		FromPost(postResult("p3", model.LaborMOD, 0.4, 1, 1)),
	}

	agg := Centre(model.Centre{ID: "c1", Label: "Centre Test"}, posts)
	assert.InDelta(t, 1.2, agg.Result.EtpCalcule, 1e-9)
	assert.Equal(t, 2, agg.Result.EtpArrondi)
	assert.Equal(t, 3, agg.Result.EffectifActuel)
	assert.Equal(t, -1, agg.Result.Ecart)
}

func TestCentre_CategorySubtotals(t *testing.T) {
	posts := []Aggregate{
		FromPost(postResult("p1", model.LaborMOD, 2.5, 3, 3)),
		FromPost(postResult("p2", model.LaborMOD, 1.5, 1, 2)),
		FromPost(postResult("p3", model.LaborMOI, 2.0, 2, 2)),
	}

	agg := Centre(model.Centre{ID: "c1"}, posts)
	assert.InDelta(t, 4.0, agg.MOD.EtpCalcule, 1e-9)
	assert.InDelta(t, 2.0, agg.MOI.EtpCalcule, 1e-9)
	assert.Equal(t, 4, agg.MOD.Effectif)
	assert.Equal(t, 2, agg.MOI.Effectif)

	// MOD + MOI reconstitutes the level total
	assert.InDelta(t, agg.Result.EtpCalcule, agg.MOD.EtpCalcule+agg.MOI.EtpCalcule, 1e-9)
	assert.Equal(t, agg.Result.EffectifActuel, agg.MOD.Effectif+agg.MOI.Effectif)
}

func TestCentre_UndefinedExcludedFromSumsIncludedInCounts(t *testing.T) {
	undef := postResult("p2", model.LaborMOD, 0, 2, 0)
	undef.Undefined = true

	posts := []Aggregate{
		FromPost(postResult("p1", model.LaborMOD, 3.0, 3, 3)),
		FromPost(undef),
	}

	agg := Centre(model.Centre{ID: "c1"}, posts)
	assert.InDelta(t, 3.0, agg.Result.EtpCalcule, 1e-9)
	// Headcount of the undefined post still counts
	assert.Equal(t, 5, agg.Result.EffectifActuel)
	assert.Equal(t, 2, agg.NbPostes)
	assert.Equal(t, 1, agg.NbUndefined)
}

func TestHierarchy_ThreeLevels(t *testing.T) {
	c1 := Centre(model.Centre{ID: "c1", Label: "Centre 1"}, []Aggregate{
		FromPost(postResult("p1", model.LaborMOD, 2.3, 2, 3)),
		FromPost(postResult("p2", model.LaborMOI, 1.0, 1, 1)),
	})
	c2 := Centre(model.Centre{ID: "c2", Label: "Centre 2"}, []Aggregate{
		FromPost(postResult("p3", model.LaborMOD, 4.6, 5, 5)),
	})

	dir := Direction(model.Direction{ID: "d1", Label: "Direction Est"}, []Aggregate{c1, c2})
	assert.InDelta(t, 7.9, dir.Result.EtpCalcule, 1e-9)
	assert.Equal(t, 8, dir.Result.EtpArrondi)
	assert.Equal(t, 8, dir.Result.EffectifActuel)
	assert.Equal(t, 3, dir.NbPostes)
	assert.InDelta(t, 6.9, dir.MOD.EtpCalcule, 1e-9)
	assert.InDelta(t, 1.0, dir.MOI.EtpCalcule, 1e-9)

	nat := Nation([]Aggregate{dir})
	assert.Equal(t, model.ScopeNation, nat.Result.Scope)
	assert.InDelta(t, dir.Result.EtpCalcule, nat.Result.EtpCalcule, 1e-9)
	assert.Equal(t, dir.Result.EtpArrondi, nat.Result.EtpArrondi)
}

func TestCombine_ChildSumMatchesParent(t *testing.T) {
	// Σ children.etp_calcule == parent.etp_calcule within fp tolerance
	children := []Aggregate{
		FromPost(postResult("p1", model.LaborMOD, 0.1, 1, 1)),
		FromPost(postResult("p2", model.LaborMOD, 0.2, 1, 1)),
		FromPost(postResult("p3", model.LaborMOD, 0.3, 1, 1)),
	}
	parent := Combine(model.ScopeCentre, "c1", "", children)

	var sum float64
	for _, child := range children {
		sum += child.Result.EtpCalcule
	}
	assert.InDelta(t, sum, parent.Result.EtpCalcule, 1e-9)
}

func TestCombine_EmptyChildren(t *testing.T) {
	parent := Combine(model.ScopeCentre, "c1", "Vide", nil)
	assert.Zero(t, parent.Result.EtpCalcule)
	assert.Zero(t, parent.Result.EtpArrondi)
	assert.Equal(t, model.DecisionMaintenir, parent.Result.Decision)
	require.Nil(t, parent.Result.Ratio)
}
