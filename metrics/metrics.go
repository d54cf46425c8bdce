// Package metrics declares the Prometheus collectors exported by the planner.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Plan outcome labels.
const (
	OutcomeFound   = "found"
	OutcomeNoPlan  = "no_plan"
	OutcomeInvalid = "invalid"
)

var (
	ModelsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "planner_models_built_total",
		Help: "Decision models built from obstacle maps.",
	})

	ModelStates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_model_states",
		Help:    "Number of states in each built model.",
		Buckets: prometheus.ExponentialBuckets(4, 4, 8),
	})

	SolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_solve_duration_seconds",
		Help:    "Time spent building and solving one map.",
		Buckets: prometheus.DefBuckets,
	})

	PlanOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_plan_outcomes_total",
		Help: "Planning requests by outcome.",
	}, []string{"outcome"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_cache_lookups_total",
		Help: "Plan cache lookups by result.",
	}, []string{"result"})
)
