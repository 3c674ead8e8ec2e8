package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "effectif_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `referentialPath: referentiel.yaml
scenarioPath: scenario.yaml
serverAddr: ":8080"
workingDaysPerYear: 264
baseShiftHours: 8
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "referentiel.yaml", cfg.ReferentialPath)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, 264, cfg.WorkingDaysPerYear)
}

func TestLoadFromPath_MissingReferential(t *testing.T) {
	path := writeConfig(t, `serverAddr: ":8080"`)
	_, err := LoadFromPath(path)
	assert.ErrorContains(t, err, "validation failed")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "referentialPath: [unclosed")
	_, err := LoadFromPath(path)
	assert.ErrorContains(t, err, "parse")
}

func TestLoadFromPath_BadBackendURL(t *testing.T) {
	path := writeConfig(t, `referentialPath: ref.yaml
scoringBackendURL: "not a url"
`)
	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPath_CustomWeights(t *testing.T) {
	path := writeConfig(t, `referentialPath: ref.yaml
weights:
  parcels: 0.4
  registered: 0.2
  ordinaryMail: 0.2
  headcount: 0.1
  international: 0.1
classCuts:
  a: 0.8
  b: 0.6
  c: 0.3
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	scorer, err := cfg.BuildScorer()
	require.NoError(t, err)
	assert.NotNil(t, scorer)
}

func TestLoadFromPath_WeightsMustSumToOne(t *testing.T) {
	path := writeConfig(t, `referentialPath: ref.yaml
weights:
  parcels: 0.9
  registered: 0.2
  ordinaryMail: 0.2
  headcount: 0.1
  international: 0.1
`)
	_, err := LoadFromPath(path)
	assert.ErrorContains(t, err, "validation failed")
}

func TestBuildScorer_Defaults(t *testing.T) {
	cfg := &Config{ReferentialPath: "ref.yaml"}
	scorer, err := cfg.BuildScorer()
	require.NoError(t, err)
	assert.NotNil(t, scorer)
}

func TestLoadWithEnv_NotFound(t *testing.T) {
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	_, err = LoadWithEnv("nonexistent")
	assert.ErrorContains(t, err, "not found")
}
