package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"effectif-engine/pkg/core/model"
)

const testReferential = `tasks:
  - code: TRI_CO
    name: Tri courrier ordinaire
    family: Tri
    unitTimeMinutes: 3
    unit: pli
  - code: DIST_COLIS
    name: Distribution colis
    family: Distribution
    unitTimeMinutes: 6
    unit: colis
`

const testScenario = `directions:
  - id: d1
    label: Direction Nord
centres:
  - id: c1
    label: Centre Alpha
    classe: B
    direction: d1
  - id: c2
    label: Centre Beta
    direction: d1
posts:
  - id: p1
    label: Guichet Alpha
    category: MOD
    centre: c1
    effectif: 5
  - id: p2
    label: Encadrement Alpha
    category: MOI
    centre: c1
    effectif: 2
  - id: p3
    label: Guichet Beta
    category: MOD
    centre: c2
    effectif: 3
volumes:
  - owner: p1
    task: TRI_CO
    quantity: "1 200"
    period: daily
  - owner: p3
    task: DIST_COLIS
    quantity: "12,5"
    period: daily
  - owner: p3
    task: TRI_CO
    quantity: "n/a"
    period: daily
`

func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	refPath := filepath.Join(dir, "referential.yaml")
	scenarioPath := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(refPath, []byte(testReferential), 0o644))
	require.NoError(t, os.WriteFile(scenarioPath, []byte(testScenario), 0o644))
	return refPath, scenarioPath
}

func TestNew_LoadsTasksAndHierarchy(t *testing.T) {
	refPath, scenarioPath := writeFixtures(t)

	store, err := New(refPath, scenarioPath)
	require.NoError(t, err)

	tasks, err := store.GetTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "TRI_CO", tasks[0].Code)

	hierarchy, err := store.GetHierarchy(context.Background(), model.ScopeNation, "")
	require.NoError(t, err)
	assert.Len(t, hierarchy.Posts, 3)
	assert.Len(t, hierarchy.Centres, 2)
	assert.Len(t, hierarchy.Directions, 1)
	assert.Equal(t, model.ClasseB, hierarchy.Centres[0].Classe)
	assert.Equal(t, model.LaborMOI, hierarchy.Posts[1].Category)
}

func TestNew_NormalizesQuantities(t *testing.T) {
	refPath, scenarioPath := writeFixtures(t)

	store, err := New(refPath, scenarioPath)
	require.NoError(t, err)

	volumes, err := store.GetVolumes(context.Background(), model.ScopeNation, "")
	require.NoError(t, err)
	require.Len(t, volumes, 3)
	assert.Equal(t, 1200.0, volumes[0].Quantity)
	assert.Equal(t, 12.5, volumes[1].Quantity)
	assert.Equal(t, 0.0, volumes[2].Quantity)

	warnings := store.DataWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, model.WarningUnparsableVolume, warnings[0].Code)
	assert.Equal(t, "p3", warnings[0].OwnerID)
}

func TestGetHierarchy_ScopeFiltering(t *testing.T) {
	refPath, scenarioPath := writeFixtures(t)

	store, err := New(refPath, scenarioPath)
	require.NoError(t, err)

	tests := []struct {
		name        string
		scope       model.Scope
		scopeID     string
		wantPosts   int
		wantCentres int
	}{
		{name: "single post", scope: model.ScopePost, scopeID: "p1", wantPosts: 1, wantCentres: 0},
		{name: "centre with its posts", scope: model.ScopeCentre, scopeID: "c1", wantPosts: 2, wantCentres: 1},
		{name: "direction with everything below", scope: model.ScopeDirection, scopeID: "d1", wantPosts: 3, wantCentres: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sub, err := store.GetHierarchy(context.Background(), tc.scope, tc.scopeID)
			require.NoError(t, err)
			assert.Len(t, sub.Posts, tc.wantPosts)
			assert.Len(t, sub.Centres, tc.wantCentres)
		})
	}
}

func TestGetHierarchy_UnknownScopeID(t *testing.T) {
	refPath, scenarioPath := writeFixtures(t)

	store, err := New(refPath, scenarioPath)
	require.NoError(t, err)

	_, err = store.GetHierarchy(context.Background(), model.ScopeCentre, "missing")
	assert.Error(t, err)
}

func TestGetVolumes_ScopedToOwners(t *testing.T) {
	refPath, scenarioPath := writeFixtures(t)

	store, err := New(refPath, scenarioPath)
	require.NoError(t, err)

	volumes, err := store.GetVolumes(context.Background(), model.ScopeCentre, "c2")
	require.NoError(t, err)
	require.Len(t, volumes, 2)
	for _, vol := range volumes {
		assert.Equal(t, "p3", vol.OwnerID)
	}
}

func TestNew_RejectsBadCategory(t *testing.T) {
	dir := t.TempDir()
	refPath := filepath.Join(dir, "referential.yaml")
	scenarioPath := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(refPath, []byte(testReferential), 0o644))
	bad := `posts:
  - id: p1
    label: Guichet
    category: TEMP
    centre: c1
    effectif: 1
`
	require.NoError(t, os.WriteFile(scenarioPath, []byte(bad), 0o644))

	_, err := New(refPath, scenarioPath)
	assert.ErrorContains(t, err, "unknown category")
}
