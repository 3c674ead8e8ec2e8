package engine

import (
	"effectif-engine/pkg/core/model"
	"effectif-engine/pkg/core/referential"
)

// SizePost produces the full sizing row for one post.
//
// MOD posts are task-costed: volumes are priced against the referential and
// the requirement is derived from net capacity. MOI posts are not
// task-costed and are counted at their actual headcount. A MOD post with
// zero net capacity yields an Undefined row: its requirement cannot be
// computed and is never reported as 0.
func SizePost(ref *referential.Referential, post model.Post, volumes []model.VolumeRecord, params model.Parameters) (model.SimulationResult, HoursResult, []model.Warning) {
	result := model.SimulationResult{
		OwnerID:        post.ID,
		Label:          post.Label,
		Scope:          model.ScopePost,
		Categorie:      post.Category,
		EffectifActuel: post.EffectifActuel,
	}

	if post.Category == model.LaborMOI {
		result.EtpCalcule = float64(post.EffectifActuel)
		result.EtpArrondi = post.EffectifActuel
		result.Ecart = 0
		result.Decision = Decide(result.EtpCalcule, post.EffectifActuel)
		result.Ratio = LoadRatio(result.EtpCalcule, post.EffectifActuel)
		return result, HoursResult{ByFamily: map[string]float64{}}, nil
	}

	hours, warnings := ComputeHours(ref, volumes, params)
	result.TotalHeures = hours.AnnualHours

	net := NetHoursPerDay(params.BaseShiftHours, params.ProductivityPct, params.IdleMinutesPerDay)
	etp, ok := DeriveFTE(hours.DailyHours, net)
	if !ok {
		result.Undefined = true
		return result, hours, warnings
	}

	result.EtpCalcule = etp
	result.EtpArrondi = CeilTarget(etp)
	result.Ecart = Ecart(result.EtpArrondi, post.EffectifActuel)
	result.Decision = Decide(etp, post.EffectifActuel)
	result.Ratio = LoadRatio(etp, post.EffectifActuel)
	return result, hours, warnings
}
