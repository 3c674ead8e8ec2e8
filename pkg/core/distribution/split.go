// Package distribution divides aggregate volumes into sub-flows using paired
// percentages and supports reverse inference from edited sub-flows.
package distribution

import (
	"fmt"
	"math"

	"effectif-engine/pkg/core/normalize"
)

// Side selects one of the two sub-flows of a pair
type Side int

const (
	SideA Side = iota
	SideB
)

// Flow is one aggregate with its two sub-flows
type Flow struct {
	Aggregate float64
	A         float64
	B         float64
}

// Split applies forward-mode distribution: both sub-flows are derived from
// the aggregate and rounded independently. The pair must sum to 100.
func Split(aggregate, pctA, pctB float64) (a, b float64, err error) {
	if pctA+pctB != 100 {
		return 0, 0, fmt.Errorf("percentages %g + %g do not sum to 100", pctA, pctB)
	}
	aggregate = normalize.Clamp(aggregate)
	a = math.Round(aggregate * pctA / 100)
	b = math.Round(aggregate * pctB / 100)
	return a, b, nil
}

// Combine applies reverse-mode distribution: the aggregate is recomputed
// from the edited sub-flows.
func Combine(a, b float64) float64 {
	return normalize.Clamp(a) + normalize.Clamp(b)
}

// Balance returns the pair resulting from a single-percentage edit: the
// edited value is clamped to [0,100] and the counterpart absorbs the rest,
// so the pair always sums to exactly 100.
func Balance(edited float64) (float64, float64) {
	if edited < 0 {
		edited = 0
	}
	if edited > 100 {
		edited = 100
	}
	return edited, 100 - edited
}

// Splitter holds a percentage pair and the aggregates currently split by it.
// Each mutation fires exactly one mode: aggregate edits run forward
// distribution, sub-flow edits run reverse inference, and percentage edits
// re-run forward distribution over every held aggregate.
type Splitter struct {
	pctA  float64
	pctB  float64
	flows map[string]*Flow
}

// NewSplitter creates a splitter for a percentage pair summing to 100
func NewSplitter(pctA, pctB float64) (*Splitter, error) {
	if pctA+pctB != 100 {
		return nil, fmt.Errorf("percentages %g + %g do not sum to 100", pctA, pctB)
	}
	return &Splitter{
		pctA:  pctA,
		pctB:  pctB,
		flows: make(map[string]*Flow),
	}, nil
}

// Percents returns the current percentage pair
func (s *Splitter) Percents() (float64, float64) {
	return s.pctA, s.pctB
}

// SetAggregate records an aggregate edit: forward mode, both sub-flows are
// overwritten.
func (s *Splitter) SetAggregate(id string, v float64) Flow {
	v = normalize.Clamp(v)
	a, b, _ := Split(v, s.pctA, s.pctB)
	f := &Flow{Aggregate: v, A: a, B: b}
	s.flows[id] = f
	return *f
}

// SetSubFlow records a sub-flow edit: reverse mode, the aggregate is
// overwritten and the other sub-flow is left untouched.
func (s *Splitter) SetSubFlow(id string, side Side, v float64) Flow {
	f, ok := s.flows[id]
	if !ok {
		f = &Flow{}
		s.flows[id] = f
	}
	v = normalize.Clamp(v)
	if side == SideA {
		f.A = v
	} else {
		f.B = v
	}
	f.Aggregate = Combine(f.A, f.B)
	return *f
}

// SetPercentA records a percentage edit: the pair is auto-balanced and
// forward-mode distribution re-runs over all currently held aggregates.
func (s *Splitter) SetPercentA(pctA float64) {
	s.pctA, s.pctB = Balance(pctA)
	for _, f := range s.flows {
		f.A, f.B, _ = Split(f.Aggregate, s.pctA, s.pctB)
	}
}

// Flow returns the current state of one aggregate
func (s *Splitter) Flow(id string) (Flow, bool) {
	f, ok := s.flows[id]
	if !ok {
		return Flow{}, false
	}
	return *f, true
}
