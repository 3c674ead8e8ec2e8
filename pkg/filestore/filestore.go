// Package filestore implements the simulation store from YAML files: a
// referential file plus a scenario file holding the hierarchy and its raw
// volumes. Quantities in scenario files are raw strings as exported from
// spreadsheets; they go through the normalizer at load time.
package filestore

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"effectif-engine/pkg/core/model"
	"effectif-engine/pkg/core/normalize"
	"effectif-engine/pkg/core/referential"
)

// Store serves reference data parsed once at construction
type Store struct {
	tasks     []model.Task
	hierarchy model.Hierarchy
	volumes   []model.VolumeRecord
	warnings  []model.Warning
}

type postEntry struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Category string `yaml:"category"`
	Centre   string `yaml:"centre"`
	Effectif int    `yaml:"effectif"`
}

type centreEntry struct {
	ID        string `yaml:"id"`
	Label     string `yaml:"label"`
	Classe    string `yaml:"classe"`
	Direction string `yaml:"direction"`
}

type directionEntry struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type volumeEntry struct {
	Owner    string `yaml:"owner"`
	Task     string `yaml:"task"`
	Quantity string `yaml:"quantity"`
	Period   string `yaml:"period"`
}

type scenarioFile struct {
	Posts      []postEntry      `yaml:"posts"`
	Centres    []centreEntry    `yaml:"centres"`
	Directions []directionEntry `yaml:"directions"`
	Volumes    []volumeEntry    `yaml:"volumes"`
}

// New loads a store from a referential file and a scenario file
func New(referentialPath, scenarioPath string) (*Store, error) {
	ref, err := referential.LoadFile(referentialPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load referential: %w", err)
	}

	data, err := os.ReadFile(scenarioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario scenarioFile
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	store := &Store{tasks: ref.Tasks()}
	if err := store.buildHierarchy(scenario); err != nil {
		return nil, err
	}
	store.buildVolumes(scenario)
	return store, nil
}

func (s *Store) buildHierarchy(scenario scenarioFile) error {
	for _, entry := range scenario.Directions {
		s.hierarchy.Directions = append(s.hierarchy.Directions, model.Direction{
			ID:    entry.ID,
			Label: entry.Label,
		})
	}
	for _, entry := range scenario.Centres {
		classe := model.Classe(entry.Classe)
		if entry.Classe != "" && !classe.IsValid() {
			return fmt.Errorf("centre %s has unknown classe %q", entry.ID, entry.Classe)
		}
		s.hierarchy.Centres = append(s.hierarchy.Centres, model.Centre{
			ID:          entry.ID,
			Label:       entry.Label,
			Classe:      classe,
			DirectionID: entry.Direction,
		})
	}
	for _, entry := range scenario.Posts {
		category := model.LaborCategory(entry.Category)
		if !category.IsValid() {
			return fmt.Errorf("post %s has unknown category %q", entry.ID, entry.Category)
		}
		if entry.Effectif < 0 {
			return fmt.Errorf("post %s has negative effectif %d", entry.ID, entry.Effectif)
		}
		s.hierarchy.Posts = append(s.hierarchy.Posts, model.Post{
			ID:             entry.ID,
			Label:          entry.Label,
			Category:       category,
			CentreID:       entry.Centre,
			EffectifActuel: entry.Effectif,
		})
	}
	return nil
}

func (s *Store) buildVolumes(scenario scenarioFile) {
	for _, entry := range scenario.Volumes {
		amount := normalize.ParseAmount(entry.Quantity)
		if !amount.Present && entry.Quantity != "" {
			s.warnings = append(s.warnings, model.Warning{
				Code:    model.WarningUnparsableVolume,
				OwnerID: entry.Owner,
				Detail:  fmt.Sprintf("quantity %q for task %s could not be parsed, treated as 0", entry.Quantity, entry.Task),
			})
		}

		period := model.PeriodDaily
		if model.Period(entry.Period) == model.PeriodAnnual {
			period = model.PeriodAnnual
		}

		s.volumes = append(s.volumes, model.VolumeRecord{
			OwnerID:  entry.Owner,
			TaskCode: entry.Task,
			Quantity: amount.Or(0),
			Period:   period,
		})
	}
}

// GetTasks returns the referential entries
func (s *Store) GetTasks(ctx context.Context) ([]model.Task, error) {
	return s.tasks, nil
}

// GetHierarchy returns the slice of the tree visible from the requested
// scope: the matching node plus everything below it.
func (s *Store) GetHierarchy(ctx context.Context, scope model.Scope, scopeID string) (model.Hierarchy, error) {
	switch scope {
	case model.ScopeNation:
		return s.hierarchy, nil

	case model.ScopeDirection:
		sub := model.Hierarchy{}
		for _, direction := range s.hierarchy.Directions {
			if direction.ID == scopeID {
				sub.Directions = append(sub.Directions, direction)
			}
		}
		if len(sub.Directions) == 0 {
			return sub, fmt.Errorf("direction %q not found", scopeID)
		}
		centreIDs := make(map[string]bool)
		for _, centre := range s.hierarchy.Centres {
			if centre.DirectionID == scopeID {
				sub.Centres = append(sub.Centres, centre)
				centreIDs[centre.ID] = true
			}
		}
		for _, post := range s.hierarchy.Posts {
			if centreIDs[post.CentreID] {
				sub.Posts = append(sub.Posts, post)
			}
		}
		return sub, nil

	case model.ScopeCentre:
		sub := model.Hierarchy{}
		for _, centre := range s.hierarchy.Centres {
			if centre.ID == scopeID {
				sub.Centres = append(sub.Centres, centre)
			}
		}
		if len(sub.Centres) == 0 {
			return sub, fmt.Errorf("centre %q not found", scopeID)
		}
		for _, post := range s.hierarchy.Posts {
			if post.CentreID == scopeID {
				sub.Posts = append(sub.Posts, post)
			}
		}
		return sub, nil

	case model.ScopePost:
		sub := model.Hierarchy{}
		for _, post := range s.hierarchy.Posts {
			if post.ID == scopeID {
				sub.Posts = append(sub.Posts, post)
			}
		}
		if len(sub.Posts) == 0 {
			return sub, fmt.Errorf("post %q not found", scopeID)
		}
		return sub, nil
	}

	return model.Hierarchy{}, fmt.Errorf("invalid scope %q", scope)
}

// GetVolumes returns the scenario volumes owned by posts inside the
// requested scope
func (s *Store) GetVolumes(ctx context.Context, scope model.Scope, scopeID string) ([]model.VolumeRecord, error) {
	if scope == model.ScopeNation {
		return s.volumes, nil
	}

	sub, err := s.GetHierarchy(ctx, scope, scopeID)
	if err != nil {
		return nil, err
	}
	owners := make(map[string]bool, len(sub.Posts))
	for _, post := range sub.Posts {
		owners[post.ID] = true
	}

	var volumes []model.VolumeRecord
	for _, vol := range s.volumes {
		if owners[vol.OwnerID] {
			volumes = append(volumes, vol)
		}
	}
	return volumes, nil
}

// DataWarnings returns the parse warnings collected at load time
func (s *Store) DataWarnings() []model.Warning {
	return s.warnings
}
