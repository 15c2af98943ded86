package filters

import (
	"session-analytics/internal/shared/metrics"
)

var (
	// metricSessionsMatchedTotal counts sessions that passed the task's filter
	// criteria across runs.
	metricSessionsMatchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFilter,
			Name:      "sessions_matched_total",
		},
		[]string{},
	)
)
