package services

import (
	"sort"

	"effectif-engine/pkg/core/model"
)

// sortByAbsEcart orders results by absolute staffing gap, largest first,
// with owner id as the deterministic tie-break
func sortByAbsEcart(results []model.SimulationResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := absInt(results[i].Ecart), absInt(results[j].Ecart)
		if a != b {
			return a > b
		}
		return results[i].OwnerID < results[j].OwnerID
	})
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
