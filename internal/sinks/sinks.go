// Package sinks holds the persistence boundary of the pipeline: one insert
// per produced output record. Duplicate writes caused by a retried partition
// are an accepted risk of the execution model and are not deduplicated here.
package sinks

import (
	"context"

	"session-analytics/internal/models"
)

//go:generate mockgen -source=sinks.go -destination=./mocks/sinks_mock.go -package=mocks

// SessionDetailSink persists one original action row of a selected session.
type SessionDetailSink interface {
	Insert(ctx context.Context, detail *models.SessionDetail) error
}

// SessionRandomExtractSink persists one stratified-sampled session.
type SessionRandomExtractSink interface {
	Insert(ctx context.Context, extract *models.SessionRandomExtract) error
}

// SessionAggrStatSink persists the bucketed statistics record of a run.
type SessionAggrStatSink interface {
	Insert(ctx context.Context, stat *models.SessionAggrStat) error
}

// TopCategorySink persists one top-10 category record.
type TopCategorySink interface {
	Insert(ctx context.Context, category *models.TopCategory) error
}

// TopSessionSink persists one top-session record.
type TopSessionSink interface {
	Insert(ctx context.Context, session *models.TopSession) error
}
