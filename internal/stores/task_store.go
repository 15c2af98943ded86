package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"session-analytics/internal/models"
	"session-analytics/internal/shared/filestorages"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

//go:generate mockgen -source=task_store.go -destination=./mocks/task_store_mock.go -package=mocks
type TaskStore interface {
	Get(ctx context.Context, taskID int64) (*models.Task, error)
}

type taskStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewTaskStore(fileStorage filestorages.FileStorage) TaskStore {
	return &taskStore{fileStorage: fileStorage, dir: "tasks"}
}

func (s *taskStore) Get(ctx context.Context, taskID int64) (*models.Task, error) {
	key := fmt.Sprintf("%s/%d.json", s.dir, taskID)
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read task: %w", err)
	}
	var task models.Task
	if err := json.Unmarshal(data, &task); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task: %w", err)
	}
	return &task, nil
}
