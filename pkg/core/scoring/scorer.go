package scoring

import (
	"fmt"
	"math"
	"sort"

	"effectif-engine/pkg/core/model"
)

// TopContributors is how many criteria are reported for explainability
const TopContributors = 3

// weightTolerance absorbs fp error when checking that weights sum to 1
const weightTolerance = 1e-9

// ClassCuts are the global-score cut points mapping a score to a class:
// score >= A gives class A, >= B gives B, >= C gives C, below is D.
type ClassCuts struct {
	A float64 `yaml:"a" json:"a"`
	B float64 `yaml:"b" json:"b"`
	C float64 `yaml:"c" json:"c"`
}

// DefaultClassCuts returns the standard cut points
func DefaultClassCuts() ClassCuts {
	return ClassCuts{A: 0.75, B: 0.50, C: 0.25}
}

// Classify maps a global score to its ordinal class
func Classify(score float64, cuts ClassCuts) model.Classe {
	switch {
	case score >= cuts.A:
		return model.ClasseA
	case score >= cuts.B:
		return model.ClasseB
	case score >= cuts.C:
		return model.ClasseC
	default:
		return model.ClasseD
	}
}

// ImpactOf compares a simulated class against the current one
func ImpactOf(current, simulated model.Classe) model.Impact {
	switch {
	case simulated.Rank() > current.Rank():
		return model.ImpactPromotion
	case simulated.Rank() < current.Rank():
		return model.ImpactReclassement
	default:
		return model.ImpactStable
	}
}

// Scorer combines weighted criterion sub-scores into a global score and a
// class verdict
type Scorer struct {
	criteria []Criterion
	cuts     ClassCuts
}

// NewScorer builds a scorer, rejecting weight vectors that do not sum to 1
func NewScorer(criteria []Criterion, cuts ClassCuts) (*Scorer, error) {
	if len(criteria) == 0 {
		return nil, fmt.Errorf("at least one criterion is required")
	}
	var sum float64
	for _, c := range criteria {
		if c.Weight() < 0 {
			return nil, fmt.Errorf("criterion %s has negative weight %g", c.Name(), c.Weight())
		}
		sum += c.Weight()
	}
	if math.Abs(sum-1) > weightTolerance {
		return nil, fmt.Errorf("criterion weights sum to %g, want 1", sum)
	}
	return &Scorer{criteria: criteria, cuts: cuts}, nil
}

// DefaultScorer returns a scorer with the standard criteria and cut points
func DefaultScorer() *Scorer {
	s, err := NewScorer(DefaultCriteria(), DefaultClassCuts())
	if err != nil {
		// Default weights are constants that sum to 1
		panic(err)
	}
	return s
}

// Score computes the full result for one centre: global score, simulated
// class, impact against the current class, and the top contributing
// criteria by weighted contribution.
func (s *Scorer) Score(m model.CentreMetrics) model.ScoreResult {
	contributors := make([]model.Contributor, 0, len(s.criteria))
	var global float64

	for _, c := range s.criteria {
		contribution := c.Weight() * c.Subscore(m)
		global += contribution
		contributors = append(contributors, model.Contributor{
			Criterion:    c.Name(),
			Weight:       c.Weight(),
			Contribution: contribution,
		})
	}

	// Order by contribution, name as the deterministic tie-break
	sort.SliceStable(contributors, func(i, j int) bool {
		if contributors[i].Contribution != contributors[j].Contribution {
			return contributors[i].Contribution > contributors[j].Contribution
		}
		return contributors[i].Criterion < contributors[j].Criterion
	})
	if len(contributors) > TopContributors {
		contributors = contributors[:TopContributors]
	}

	simulated := Classify(global, s.cuts)
	return model.ScoreResult{
		CentreID:        m.CentreID,
		GlobalScore:     global,
		CurrentClasse:   m.CurrentClasse,
		SimulatedClasse: simulated,
		Impact:          ImpactOf(m.CurrentClasse, simulated),
		TopContributors: contributors,
	}
}
