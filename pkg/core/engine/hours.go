// Package engine implements the sizing formulas: required hours, net
// capacity, FTE derivation and staffing gaps. Everything here is pure; the
// caller supplies inputs and stores results.
package engine

import (
	"fmt"

	"effectif-engine/pkg/core/model"
	"effectif-engine/pkg/core/normalize"
	"effectif-engine/pkg/core/referential"
)

// MinutesPerHour converts referential unit times to hours
const MinutesPerHour = 60.0

// HoursResult is the costed workload of one owner
type HoursResult struct {
	DailyHours  float64
	AnnualHours float64
	// ByFamily groups daily hours by task family, feeding the
	// distribution-by-category chart. Families holds its keys in
	// first-appearance order so callers iterate deterministically.
	ByFamily map[string]float64
	Families []string
}

// ComputeHours costs an owner's volumes against the referential:
// hours = Σ quantity × unit_time_minutes / 60, with quantities sharing a
// task code summed before multiplication. Volumes referencing a code absent
// from the referential contribute zero hours and surface as data-quality
// warnings, never as fatal errors.
func ComputeHours(ref *referential.Referential, volumes []model.VolumeRecord, params model.Parameters) (HoursResult, []model.Warning) {
	result := HoursResult{ByFamily: make(map[string]float64)}
	var warnings []model.Warning

	// Daily quantities bucketed by task code, preserving first-appearance
	// order so warnings and totals are deterministic
	quantities := make(map[string]float64)
	var codes []string
	unknown := make(map[string]bool)

	for _, vol := range volumes {
		task, ok := ref.Lookup(vol.TaskCode)
		if !ok {
			if !unknown[vol.TaskCode] {
				unknown[vol.TaskCode] = true
				warnings = append(warnings, model.Warning{
					Code:    model.WarningUnknownTask,
					OwnerID: vol.OwnerID,
					Detail:  fmt.Sprintf("task code %q not in referential, contributes zero hours", vol.TaskCode),
				})
			}
			continue
		}
		if _, seen := quantities[task.Code]; !seen {
			codes = append(codes, task.Code)
		}
		quantities[task.Code] += normalize.ToDaily(vol.Quantity, vol.Period, params.WorkingDaysPerYear)
	}

	for _, code := range codes {
		task, _ := ref.Lookup(code)
		hours := quantities[code] * task.UnitTimeMinutes / MinutesPerHour
		result.DailyHours += hours
		if _, seen := result.ByFamily[task.Family]; !seen {
			result.Families = append(result.Families, task.Family)
		}
		result.ByFamily[task.Family] += hours
	}

	result.AnnualHours = result.DailyHours * float64(params.WorkingDaysPerYear)
	return result, warnings
}
