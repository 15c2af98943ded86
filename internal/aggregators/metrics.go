package aggregators

import (
	"session-analytics/internal/shared/metrics"
)

const dropReasonNoUser = "no_user"

var (
	// metricSessionsAggregatedTotal counts session aggregates produced across runs.
	metricSessionsAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "sessions_aggregated_total",
		},
		[]string{},
	)

	// metricSessionsDroppedTotal counts sessions dropped during aggregation,
	// labeled by reason. Currently the only reason is a session whose user id
	// has no demographic record (inner-join semantics).
	metricSessionsDroppedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "sessions_dropped_total",
		},
		[]string{"reason"},
	)
)
