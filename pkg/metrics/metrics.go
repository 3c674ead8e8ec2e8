// Package metrics provides Prometheus observability metrics for the sizing
// engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for the application
var Registry = prometheus.NewRegistry()

// factory registers metrics to our custom Registry directly
var factory = promauto.With(Registry)

// SimulationsTotal counts engine invocations by requested scope
var SimulationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "effectif",
	Name:      "simulations_total",
	Help:      "Number of sizing simulations run, by scope",
}, []string{"scope"})

// SimulationDuration observes end-to-end simulation latency
var SimulationDuration = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "effectif",
	Name:      "simulation_duration_seconds",
	Help:      "End-to-end duration of one simulation",
	Buckets:   prometheus.DefBuckets,
})

// WarningsTotal counts data-quality warnings surfaced alongside results
var WarningsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "effectif",
	Name:      "warnings_total",
	Help:      "Data-quality warnings attached to simulation results, by code",
}, []string{"code"})

// ZeroCapacityTotal counts owners whose requirement was undefined
var ZeroCapacityTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "effectif",
	Name:      "zero_capacity_total",
	Help:      "Owners reported with an undefined FTE requirement due to zero net capacity",
})

// ScoringCampaignsTotal counts scoring campaigns by provenance
var ScoringCampaignsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "effectif",
	Name:      "scoring_campaigns_total",
	Help:      "Scoring campaigns run, by result provenance",
}, []string{"provenance"})
