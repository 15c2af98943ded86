package analyzers

import (
	"session-analytics/internal/shared/metrics"
)

const (
	runStatusSuccess = "success"
	runStatusFailure = "failure"
)

var (
	// metricTaskRunsTotal counts completed task runs by outcome.
	metricTaskRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubTask,
			Name:      "runs_total",
		},
		[]string{"status"},
	)
)
