package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"effectif-engine/pkg/core/scoring"
)

// Weights overrides the criterion weight vector. The five weights must sum
// to 1.
type Weights struct {
	Parcels       float64 `yaml:"parcels" validate:"gte=0,lte=1"`
	Registered    float64 `yaml:"registered" validate:"gte=0,lte=1"`
	OrdinaryMail  float64 `yaml:"ordinaryMail" validate:"gte=0,lte=1"`
	Headcount     float64 `yaml:"headcount" validate:"gte=0,lte=1"`
	International float64 `yaml:"international" validate:"gte=0,lte=1"`
}

// Config represents the application configuration
type Config struct {
	ReferentialPath    string  `yaml:"referentialPath" validate:"required"`
	ScenarioPath       string  `yaml:"scenarioPath,omitempty"`
	PostgresDSN        string  `yaml:"postgresDSN,omitempty"`
	ScoringBackendURL  string  `yaml:"scoringBackendURL,omitempty" validate:"omitempty,url"`
	ServerAddr         string  `yaml:"serverAddr,omitempty"`
	WorkingDaysPerYear int     `yaml:"workingDaysPerYear,omitempty" validate:"omitempty,gt=0"`
	BaseShiftHours     float64 `yaml:"baseShiftHours,omitempty" validate:"omitempty,gt=0"`

	ClassCuts *scoring.ClassCuts `yaml:"classCuts,omitempty"`
	Weights   *Weights           `yaml:"weights,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from effectif_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration for a specific environment
// (effectif_config_<env>.yaml), falling back to the plain file name when
// env is empty.
func LoadWithEnv(env string) (*Config, error) {
	name := "effectif_config.yaml"
	if env != "" {
		name = fmt.Sprintf("effectif_config_%s.yaml", env)
	}

	configPath, err := findConfigFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, including the scorer the
// weight overrides would build
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Building the scorer catches weight vectors that do not sum to 1
	if _, err := cfg.BuildScorer(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// BuildScorer assembles the scoring engine from the configured weights and
// cut points, using the package defaults for anything unset
func (cfg *Config) BuildScorer() (*scoring.Scorer, error) {
	cuts := scoring.DefaultClassCuts()
	if cfg.ClassCuts != nil {
		cuts = *cfg.ClassCuts
	}

	criteria := scoring.DefaultCriteria()
	if cfg.Weights != nil {
		w := cfg.Weights
		criteria = []scoring.Criterion{
			scoring.NewParcelsCriterion(w.Parcels, scoring.SaturationParcels),
			scoring.NewRegisteredCriterion(w.Registered, scoring.SaturationRegistered),
			scoring.NewOrdinaryMailCriterion(w.OrdinaryMail, scoring.SaturationOrdinaryMail),
			scoring.NewHeadcountCriterion(w.Headcount, scoring.SaturationHeadcount),
			scoring.NewInternationalCriterion(w.International),
		}
	}

	return scoring.NewScorer(criteria, cuts)
}

// findConfigFile searches for the named file in the current directory and
// the home directory
func findConfigFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", name)
}
