// Package rollup aggregates post-level sizing results up the organizational
// hierarchy: post -> centre -> direction -> nation.
//
// Parent figures are always re-derived from the summed raw etp_calcule of
// the children, never from their already-rounded targets: rounding is
// applied at the level being displayed so rounding error never compounds up
// the tree.
package rollup

import (
	"effectif-engine/pkg/core/engine"
	"effectif-engine/pkg/core/model"
)

// CategoryTotal is a labor-category sub-total carried at every level.
// MOD + MOI always reconstitutes the level total.
type CategoryTotal struct {
	EtpCalcule float64 `json:"etp_calcule"`
	Effectif   int     `json:"effectif"`
}

// Aggregate is one rolled-up node: the level's own sizing row plus its
// labor-category breakdown and contributor counts. Undefined contributors
// (zero-capacity posts) are excluded from the etp sums but included in the
// counts, so the caller can see how much of the tree is unsized.
type Aggregate struct {
	Result      model.SimulationResult `json:"result"`
	MOD         CategoryTotal          `json:"mod"`
	MOI         CategoryTotal          `json:"moi"`
	NbPostes    int                    `json:"nb_postes"`
	NbUndefined int                    `json:"nb_undefined"`
}

// FromPost lifts one post row into an aggregate so it can be combined with
// its siblings
func FromPost(result model.SimulationResult) Aggregate {
	agg := Aggregate{Result: result, NbPostes: 1}
	if result.Undefined {
		agg.NbUndefined = 1
	}

	total := CategoryTotal{Effectif: result.EffectifActuel}
	if !result.Undefined {
		total.EtpCalcule = result.EtpCalcule
	}
	switch result.Categorie {
	case model.LaborMOI:
		agg.MOI = total
	default:
		agg.MOD = total
	}
	return agg
}

// Combine rolls children up into one parent node at the given scope.
// Sub-totals sum independently per labor category; the parent's rounded
// target and gap come from its own summed etp_calcule.
func Combine(scope model.Scope, ownerID, label string, children []Aggregate) Aggregate {
	parent := Aggregate{
		Result: model.SimulationResult{
			OwnerID: ownerID,
			Label:   label,
			Scope:   scope,
		},
	}

	for _, child := range children {
		parent.MOD.EtpCalcule += child.MOD.EtpCalcule
		parent.MOD.Effectif += child.MOD.Effectif
		parent.MOI.EtpCalcule += child.MOI.EtpCalcule
		parent.MOI.Effectif += child.MOI.Effectif
		parent.Result.TotalHeures += child.Result.TotalHeures
		parent.NbPostes += child.NbPostes
		parent.NbUndefined += child.NbUndefined
	}

	parent.Result.EtpCalcule = parent.MOD.EtpCalcule + parent.MOI.EtpCalcule
	parent.Result.EffectifActuel = parent.MOD.Effectif + parent.MOI.Effectif
	parent.Result.EtpArrondi = engine.CeilTarget(parent.Result.EtpCalcule)
	parent.Result.Ecart = engine.Ecart(parent.Result.EtpArrondi, parent.Result.EffectifActuel)
	parent.Result.Decision = engine.Decide(parent.Result.EtpCalcule, parent.Result.EffectifActuel)
	parent.Result.Ratio = engine.LoadRatio(parent.Result.EtpCalcule, parent.Result.EffectifActuel)
	return parent
}

// Centre rolls post aggregates up into a centre node
func Centre(centre model.Centre, posts []Aggregate) Aggregate {
	return Combine(model.ScopeCentre, centre.ID, centre.Label, posts)
}

// Direction rolls centre aggregates up into a direction node
func Direction(direction model.Direction, centres []Aggregate) Aggregate {
	return Combine(model.ScopeDirection, direction.ID, direction.Label, centres)
}

// Nation rolls direction aggregates up into the national node
func Nation(directions []Aggregate) Aggregate {
	return Combine(model.ScopeNation, "nation", "National", directions)
}
