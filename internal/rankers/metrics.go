package rankers

import (
	"session-analytics/internal/shared/metrics"
)

var (
	// metricCategoriesRankedTotal counts distinct categories considered by the
	// ranking pass across runs.
	metricCategoriesRankedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRank,
			Name:      "categories_ranked_total",
		},
		[]string{},
	)

	// metricTopSessionsSelectedTotal counts top-session records persisted
	// across runs.
	metricTopSessionsSelectedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRank,
			Name:      "top_sessions_selected_total",
		},
		[]string{},
	)
)
