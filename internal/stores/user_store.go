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

//go:generate mockgen -source=user_store.go -destination=./mocks/user_store_mock.go -package=mocks
type UserStore interface {
	FindAll(ctx context.Context) ([]*models.UserRecord, error)
}

type userStore struct {
	fileStorage filestorages.FileStorage
	key         string
}

func NewUserStore(fileStorage filestorages.FileStorage) UserStore {
	return &userStore{fileStorage: fileStorage, key: "users/users.json"}
}

func (s *userStore) FindAll(ctx context.Context) ([]*models.UserRecord, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user records: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read user records: %w", err)
	}
	var users []*models.UserRecord
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user records: %w", err)
	}
	return users, nil
}
