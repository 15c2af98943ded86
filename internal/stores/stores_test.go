package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"session-analytics/internal/models"
	"session-analytics/internal/shared/filestorages"
)

func newTestStorage(t *testing.T) filestorages.FileStorage {
	t.Helper()
	storage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}

func putJSON(t *testing.T, storage filestorages.FileStorage, key string, value any) {
	t.Helper()
	data, err := json.Marshal(value)
	require.NoError(t, err)
	_, err = storage.Put(context.Background(), key, bytes.NewReader(data))
	require.NoError(t, err)
}

func TestTaskStore_Get(t *testing.T) {
	t.Parallel()

	t.Run("reads a stored task", func(t *testing.T) {
		t.Parallel()
		storage := newTestStorage(t)
		putJSON(t, storage, "tasks/42.json", &models.Task{
			TaskID:    42,
			TaskName:  "session analysis",
			TaskParam: `{"startDate":"2019-02-26","endDate":"2019-02-26"}`,
		})

		task, err := NewTaskStore(storage).Get(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), task.TaskID)
		assert.Equal(t, "session analysis", task.TaskName)
	})

	t.Run("missing task yields ErrTaskNotFound", func(t *testing.T) {
		t.Parallel()
		_, err := NewTaskStore(newTestStorage(t)).Get(context.Background(), 99)
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("malformed task JSON fails", func(t *testing.T) {
		t.Parallel()
		storage := newTestStorage(t)
		_, err := storage.Put(context.Background(), "tasks/7.json", bytes.NewReader([]byte("{broken")))
		require.NoError(t, err)

		_, err = NewTaskStore(storage).Get(context.Background(), 7)
		require.Error(t, err)
	})
}

func TestActionStore_FindByDateRange(t *testing.T) {
	t.Parallel()

	actionAt := func(sessionID, date string) *models.ActionRecord {
		return &models.ActionRecord{
			Date:       date,
			SessionID:  sessionID,
			ActionTime: date + " 10:00:00",
		}
	}

	t.Run("concatenates day partitions in date order", func(t *testing.T) {
		t.Parallel()
		storage := newTestStorage(t)
		putJSON(t, storage, "actions/2019-02-26.json", []*models.ActionRecord{actionAt("s1", "2019-02-26")})
		putJSON(t, storage, "actions/2019-02-27.json", []*models.ActionRecord{actionAt("s2", "2019-02-27")})

		actions, err := NewActionStore(storage).FindByDateRange(context.Background(), "2019-02-26", "2019-02-27")

		require.NoError(t, err)
		require.Len(t, actions, 2)
		assert.Equal(t, "s1", actions[0].SessionID)
		assert.Equal(t, "s2", actions[1].SessionID)
	})

	t.Run("days without a partition yield no records", func(t *testing.T) {
		t.Parallel()
		storage := newTestStorage(t)
		putJSON(t, storage, "actions/2019-02-27.json", []*models.ActionRecord{actionAt("s1", "2019-02-27")})

		actions, err := NewActionStore(storage).FindByDateRange(context.Background(), "2019-02-26", "2019-02-28")

		require.NoError(t, err)
		require.Len(t, actions, 1)
	})

	t.Run("excludes partitions outside the range", func(t *testing.T) {
		t.Parallel()
		storage := newTestStorage(t)
		putJSON(t, storage, "actions/2019-02-25.json", []*models.ActionRecord{actionAt("early", "2019-02-25")})
		putJSON(t, storage, "actions/2019-02-26.json", []*models.ActionRecord{actionAt("inside", "2019-02-26")})

		actions, err := NewActionStore(storage).FindByDateRange(context.Background(), "2019-02-26", "2019-02-26")

		require.NoError(t, err)
		require.Len(t, actions, 1)
		assert.Equal(t, "inside", actions[0].SessionID)
	})

	t.Run("invalid dates fail", func(t *testing.T) {
		t.Parallel()
		store := NewActionStore(newTestStorage(t))

		_, err := store.FindByDateRange(context.Background(), "26-02-2019", "2019-02-26")
		require.Error(t, err)

		_, err = store.FindByDateRange(context.Background(), "2019-02-27", "2019-02-26")
		require.Error(t, err)
	})
}

func TestUserStore_FindAll(t *testing.T) {
	t.Parallel()

	t.Run("reads all demographic records", func(t *testing.T) {
		t.Parallel()
		storage := newTestStorage(t)
		putJSON(t, storage, "users/users.json", []*models.UserRecord{
			{UserID: 1, City: "hanoi"},
			{UserID: 2, City: "saigon"},
		})

		users, err := NewUserStore(storage).FindAll(context.Background())

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "hanoi", users[0].City)
	})

	t.Run("missing user file yields no records", func(t *testing.T) {
		t.Parallel()
		users, err := NewUserStore(newTestStorage(t)).FindAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestAggregateSnapshotStore(t *testing.T) {
	t.Parallel()

	t.Run("round-trips matched aggregates", func(t *testing.T) {
		t.Parallel()
		store := NewAggregateSnapshotStore(newTestStorage(t))
		aggregates := []*models.SessionAggregate{
			{SessionID: "s1", SearchKeywords: "phone,laptop", VisitLength: 8, StepLength: 3, StartTime: "2019-02-26 10:00:01", Age: 25, City: "hanoi"},
			{SessionID: "s2", VisitLength: 45, StepLength: 40, StartTime: "2019-02-26 12:00:00", Age: 35, City: "saigon"},
		}

		require.NoError(t, store.Put(context.Background(), 1, aggregates))
		got, err := store.Get(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, aggregates, got)
	})

	t.Run("missing snapshot yields no aggregates", func(t *testing.T) {
		t.Parallel()
		got, err := NewAggregateSnapshotStore(newTestStorage(t)).Get(context.Background(), 404)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("put replaces the previous snapshot", func(t *testing.T) {
		t.Parallel()
		store := NewAggregateSnapshotStore(newTestStorage(t))
		first := []*models.SessionAggregate{{SessionID: "s1", StepLength: 1}}
		second := []*models.SessionAggregate{{SessionID: "s2", StepLength: 1}}

		require.NoError(t, store.Put(context.Background(), 1, first))
		require.NoError(t, store.Put(context.Background(), 1, second))

		got, err := store.Get(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "s2", got[0].SessionID)
	})

	t.Run("keys are per task", func(t *testing.T) {
		t.Parallel()
		store := NewAggregateSnapshotStore(newTestStorage(t))
		require.NoError(t, store.Put(context.Background(), 1, []*models.SessionAggregate{{SessionID: "s1", StepLength: 1}}))

		got, err := store.Get(context.Background(), 2)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
