package rankers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"session-analytics/internal/models"
	"session-analytics/internal/sinks/mocks"
)

func newSelectorHarness(t *testing.T) (TopSessionSelector, *[]*models.TopSession, *[]*models.SessionDetail) {
	t.Helper()
	ctrl := gomock.NewController(t)

	var topSessions []*models.TopSession
	topSessionSink := mocks.NewMockTopSessionSink(ctrl)
	topSessionSink.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, session *models.TopSession) error {
			topSessions = append(topSessions, session)
			return nil
		}).AnyTimes()

	var details []*models.SessionDetail
	detailSink := mocks.NewMockSessionDetailSink(ctrl)
	detailSink.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, detail *models.SessionDetail) error {
			details = append(details, detail)
			return nil
		}).AnyTimes()

	return NewTopSessionSelector(topSessionSink, detailSink), &topSessions, &details
}

func clicksOf(sessionID string, categoryID int64, count int) []*models.SessionDetail {
	details := make([]*models.SessionDetail, count)
	for i := range details {
		details[i] = clickDetail(sessionID, categoryID)
	}
	return details
}

func TestTopSessionSelector_SelectTopSessions(t *testing.T) {
	t.Parallel()

	topCategories := []*models.CategoryCount{{CategoryID: 7}}

	t.Run("orders sessions by click count with stable ties", func(t *testing.T) {
		t.Parallel()
		selector, topSessions, _ := newSelectorHarness(t)
		var details []*models.SessionDetail
		details = append(details, clicksOf("s1", 7, 5)...)
		details = append(details, clicksOf("s2", 7, 9)...)
		details = append(details, clicksOf("s3", 7, 9)...)
		details = append(details, clicksOf("s4", 7, 1)...)

		err := selector.SelectTopSessions(context.Background(), 42, topCategories, details)

		require.NoError(t, err)
		require.Len(t, *topSessions, 4)
		got := make([]string, 4)
		for i, session := range *topSessions {
			got[i] = session.SessionID
		}
		// s2 displaces s1; s3 ties s2 and lands after it; s4 trails.
		assert.Equal(t, []string{"s2", "s3", "s1", "s4"}, got)
		assert.Equal(t, int64(42), (*topSessions)[0].TaskID)
		assert.Equal(t, int64(9), (*topSessions)[0].ClickCount)
	})

	t.Run("ignores categories outside the top list", func(t *testing.T) {
		t.Parallel()
		selector, topSessions, _ := newSelectorHarness(t)
		var details []*models.SessionDetail
		details = append(details, clicksOf("s1", 7, 2)...)
		details = append(details, clicksOf("s2", 99, 50)...)

		err := selector.SelectTopSessions(context.Background(), 1, topCategories, details)

		require.NoError(t, err)
		require.Len(t, *topSessions, 1)
		assert.Equal(t, "s1", (*topSessions)[0].SessionID)
	})

	t.Run("keeps at most ten sessions per category", func(t *testing.T) {
		t.Parallel()
		selector, topSessions, _ := newSelectorHarness(t)
		var details []*models.SessionDetail
		for i := 0; i < 15; i++ {
			details = append(details, clicksOf(string(rune('a'+i)), 7, i+1)...)
		}

		err := selector.SelectTopSessions(context.Background(), 1, topCategories, details)

		require.NoError(t, err)
		require.Len(t, *topSessions, 10)
		assert.Equal(t, int64(15), (*topSessions)[0].ClickCount)
		assert.Equal(t, int64(6), (*topSessions)[9].ClickCount)
	})

	t.Run("persists detail rows of winning sessions only", func(t *testing.T) {
		t.Parallel()
		selector, _, persistedDetails := newSelectorHarness(t)
		var details []*models.SessionDetail
		details = append(details, clicksOf("s1", 7, 2)...)
		details = append(details, clicksOf("s2", 99, 3)...)

		err := selector.SelectTopSessions(context.Background(), 1, topCategories, details)

		require.NoError(t, err)
		require.Len(t, *persistedDetails, 2)
		for _, detail := range *persistedDetails {
			assert.Equal(t, "s1", detail.SessionID)
		}
	})

	t.Run("counts click fields only", func(t *testing.T) {
		t.Parallel()
		selector, topSessions, _ := newSelectorHarness(t)
		details := []*models.SessionDetail{
			clickDetail("s1", 7),
			{SessionID: "s2", OrderCategoryIDs: "7,7,7"},
			{SessionID: "s2", PayCategoryIDs: "7"},
		}

		err := selector.SelectTopSessions(context.Background(), 1, topCategories, details)

		require.NoError(t, err)
		require.Len(t, *topSessions, 1)
		assert.Equal(t, "s1", (*topSessions)[0].SessionID)
	})

	t.Run("no top categories selects nothing", func(t *testing.T) {
		t.Parallel()
		selector, topSessions, persistedDetails := newSelectorHarness(t)

		err := selector.SelectTopSessions(context.Background(), 1, nil, clicksOf("s1", 7, 3))

		require.NoError(t, err)
		assert.Empty(t, *topSessions)
		assert.Empty(t, *persistedDetails)
	})
}

func TestTopSessionsOf(t *testing.T) {
	t.Parallel()

	t.Run("equal counts keep scan order", func(t *testing.T) {
		t.Parallel()
		winners := topSessionsOf([]sessionClicks{
			{sessionID: "first", clickCount: 4},
			{sessionID: "second", clickCount: 4},
			{sessionID: "third", clickCount: 4},
		})
		require.Len(t, winners, 3)
		assert.Equal(t, "first", winners[0].sessionID)
		assert.Equal(t, "second", winners[1].sessionID)
		assert.Equal(t, "third", winners[2].sessionID)
	})

	t.Run("strictly greater count displaces and shifts right", func(t *testing.T) {
		t.Parallel()
		winners := topSessionsOf([]sessionClicks{
			{sessionID: "low", clickCount: 1},
			{sessionID: "mid", clickCount: 5},
			{sessionID: "high", clickCount: 9},
		})
		require.Len(t, winners, 3)
		assert.Equal(t, "high", winners[0].sessionID)
		assert.Equal(t, "mid", winners[1].sessionID)
		assert.Equal(t, "low", winners[2].sessionID)
	})

	t.Run("eleventh lowest is dropped", func(t *testing.T) {
		t.Parallel()
		var clicks []sessionClicks
		for i := 1; i <= 11; i++ {
			clicks = append(clicks, sessionClicks{sessionID: string(rune('a' + i)), clickCount: int64(i)})
		}
		winners := topSessionsOf(clicks)
		require.Len(t, winners, 10)
		assert.Equal(t, int64(11), winners[0].clickCount)
		assert.Equal(t, int64(2), winners[9].clickCount)
	})
}
