// Package metrics provides Prometheus metrics for the advisory service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationsTotal counts generation calls by selection path
	// (soil_match|shuffled) and whether padding was needed.
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vyaas",
			Subsystem: "recommend",
			Name:      "generations_total",
			Help:      "Total number of recommendation generations by selection path",
		},
		[]string{"path", "padded"},
	)

	MarketSnapshotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vyaas",
			Subsystem: "market",
			Name:      "snapshots_total",
			Help:      "Total number of synthetic market snapshots by view",
		},
		[]string{"view"},
	)

	PlanLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vyaas",
			Subsystem: "plan",
			Name:      "lookups_total",
			Help:      "Total number of plan lookups by result (exact|fallback)",
		},
		[]string{"result"},
	)

	StorageFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vyaas",
			Subsystem: "storage",
			Name:      "fallbacks_total",
			Help:      "Storage failures answered from in-memory state, by operation",
		},
		[]string{"op"},
	)

	TasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vyaas",
			Subsystem: "task",
			Name:      "finished_total",
			Help:      "Simulated background tasks by kind and final state",
		},
		[]string{"kind", "state"},
	)
)
