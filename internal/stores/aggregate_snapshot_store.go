package stores

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"session-analytics/internal/codecs"
	"session-analytics/internal/models"
	"session-analytics/internal/shared/filestorages"
)

// AggregateSnapshotStore persists the matched session aggregates of a run in
// their delimited encoded form, one record per line. The snapshot is the
// serialization boundary between the filtering pass and any re-driven
// sampling or ranking pass, so it goes through the field codec rather than
// JSON.
//
//go:generate mockgen -source=aggregate_snapshot_store.go -destination=./mocks/aggregate_snapshot_store_mock.go -package=mocks
type AggregateSnapshotStore interface {
	Put(ctx context.Context, taskID int64, aggregates []*models.SessionAggregate) error
	Get(ctx context.Context, taskID int64) ([]*models.SessionAggregate, error)
}

type aggregateSnapshotStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewAggregateSnapshotStore(fileStorage filestorages.FileStorage) AggregateSnapshotStore {
	return &aggregateSnapshotStore{fileStorage: fileStorage, dir: "snapshots"}
}

func (s *aggregateSnapshotStore) Put(ctx context.Context, taskID int64, aggregates []*models.SessionAggregate) error {
	var b strings.Builder
	for _, agg := range aggregates {
		b.WriteString(codecs.EncodeSessionAggregate(agg))
		b.WriteString("\n")
	}

	key := s.getKey(taskID)
	if _, err := s.fileStorage.Put(ctx, key, strings.NewReader(b.String())); err != nil {
		return fmt.Errorf("failed to put aggregate snapshot: %w", err)
	}
	return nil
}

func (s *aggregateSnapshotStore) Get(ctx context.Context, taskID int64) ([]*models.SessionAggregate, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(taskID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get aggregate snapshot: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read aggregate snapshot: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	aggregates := make([]*models.SessionAggregate, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		agg, err := codecs.DecodeSessionAggregate(line)
		if err != nil {
			return nil, fmt.Errorf("failed to decode aggregate snapshot record: %w", err)
		}
		aggregates = append(aggregates, agg)
	}
	return aggregates, nil
}

func (s *aggregateSnapshotStore) getKey(taskID int64) string {
	return fmt.Sprintf("%s/%d.aggr", s.dir, taskID)
}
