package extractors

import (
	"session-analytics/internal/shared/metrics"
)

var (
	// metricSessionsExtractedTotal counts sessions picked by the stratified
	// sampler across runs.
	metricSessionsExtractedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExtract,
			Name:      "sessions_extracted_total",
		},
		[]string{},
	)
)
