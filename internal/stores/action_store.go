package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"session-analytics/internal/models"
	"session-analytics/internal/shared/filestorages"
)

// ActionStore reads raw user-visit action records from the warehouse. Records
// are partitioned by day, one JSON array per date under actions/.
//
//go:generate mockgen -source=action_store.go -destination=./mocks/action_store_mock.go -package=mocks
type ActionStore interface {
	// FindByDateRange returns every action record whose date falls inside the
	// inclusive [startDate, endDate] range. Days without a partition yield no
	// records.
	FindByDateRange(ctx context.Context, startDate, endDate string) ([]*models.ActionRecord, error)
}

type actionStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewActionStore(fileStorage filestorages.FileStorage) ActionStore {
	return &actionStore{fileStorage: fileStorage, dir: "actions"}
}

func (s *actionStore) FindByDateRange(ctx context.Context, startDate, endDate string) ([]*models.ActionRecord, error) {
	start, err := time.Parse(models.DateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(models.DateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %q before start date %q", endDate, startDate)
	}

	var actions []*models.ActionRecord
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		partition, err := s.readPartition(ctx, day.Format(models.DateLayout))
		if err != nil {
			return nil, err
		}
		actions = append(actions, partition...)
	}
	return actions, nil
}

func (s *actionStore) readPartition(ctx context.Context, date string) ([]*models.ActionRecord, error) {
	key := fmt.Sprintf("%s/%s.json", s.dir, date)
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get action partition %s: %w", date, err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read action partition %s: %w", date, err)
	}
	var partition []*models.ActionRecord
	if err := json.Unmarshal(data, &partition); err != nil {
		return nil, fmt.Errorf("failed to unmarshal action partition %s: %w", date, err)
	}
	return partition, nil
}
