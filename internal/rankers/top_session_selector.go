package rankers

import (
	"context"

	"session-analytics/internal/engine"
	"session-analytics/internal/models"
	"session-analytics/internal/shared/loggers"
	"session-analytics/internal/sinks"
)

const topSessionSlots = 10

//go:generate mockgen -source=top_session_selector.go -destination=./mocks/top_session_selector_mock.go -package=mocks
type TopSessionSelector interface {
	// SelectTopSessions finds, for each top category, the 10 sessions with the
	// most clicks on that category. It persists one TopSession per winner and
	// one SessionDetail per action row of a winning session.
	SelectTopSessions(ctx context.Context, taskID int64, topCategories []*models.CategoryCount, details []*models.SessionDetail) error
}

type topSessionSelector struct {
	topSessionSink sinks.TopSessionSink
	detailSink     sinks.SessionDetailSink
}

func NewTopSessionSelector(topSessionSink sinks.TopSessionSink, detailSink sinks.SessionDetailSink) TopSessionSelector {
	return &topSessionSelector{
		topSessionSink: topSessionSink,
		detailSink:     detailSink,
	}
}

// sessionClicks is one session's click count on one category.
type sessionClicks struct {
	sessionID  string
	clickCount int64
}

func (s *topSessionSelector) SelectTopSessions(ctx context.Context, taskID int64, topCategories []*models.CategoryCount, details []*models.SessionDetail) error {
	logger := loggers.Ctx(ctx)

	// Per-session click counts per category. Only the click field counts here.
	sessionPairs := make([]engine.Pair[string, *models.SessionDetail], len(details))
	for i, detail := range details {
		sessionPairs[i] = engine.Pair[string, *models.SessionDetail]{Key: detail.SessionID, Value: detail}
	}
	var categoryClicks []engine.Pair[int64, sessionClicks]
	for _, session := range engine.GroupByKey(sessionPairs) {
		var clickPairs []engine.Pair[int64, *models.SessionDetail]
		for _, detail := range session.Value {
			if detail.ClickCategoryID == nil {
				continue
			}
			clickPairs = append(clickPairs, engine.Pair[int64, *models.SessionDetail]{Key: *detail.ClickCategoryID, Value: detail})
		}
		for _, counted := range engine.CountByKey(clickPairs) {
			categoryClicks = append(categoryClicks, engine.Pair[int64, sessionClicks]{
				Key:   counted.Key,
				Value: sessionClicks{sessionID: session.Key, clickCount: counted.Value},
			})
		}
	}

	// Restrict to the top categories.
	topPairs := make([]engine.Pair[int64, int64], len(topCategories))
	for i, category := range topCategories {
		topPairs[i] = engine.Pair[int64, int64]{Key: category.CategoryID, Value: category.CategoryID}
	}
	restricted := engine.Join(topPairs, categoryClicks)

	relevantClicks := make([]engine.Pair[int64, sessionClicks], len(restricted))
	for i, joined := range restricted {
		relevantClicks[i] = engine.Pair[int64, sessionClicks]{Key: joined.Key, Value: joined.Value.Right}
	}

	winnerIDs := make(map[string]struct{})
	for _, category := range engine.GroupByKey(relevantClicks) {
		for _, winner := range topSessionsOf(category.Value) {
			record := &models.TopSession{
				TaskID:     taskID,
				CategoryID: category.Key,
				SessionID:  winner.sessionID,
				ClickCount: winner.clickCount,
			}
			if err := s.topSessionSink.Insert(ctx, record); err != nil {
				return err
			}
			winnerIDs[winner.sessionID] = struct{}{}
			metricTopSessionsSelectedTotal.WithLabelValues().Inc()
		}
	}

	logger.Debug().Msgf("selected %d distinct top sessions across %d categories", len(winnerIDs), len(topCategories))

	// One detail row per action of a winning session.
	for _, detail := range details {
		if _, won := winnerIDs[detail.SessionID]; !won {
			continue
		}
		if err := s.detailSink.Insert(ctx, detail); err != nil {
			return err
		}
	}
	return nil
}

// topSessionsOf scans one category's (session, count) pairs once, keeping the
// 10 highest counts in a fixed slot array. A pair lands in the first empty
// slot, or displaces the first slot whose count it strictly exceeds, shifting
// the rest right and dropping the 10th. Equal counts never displace, so ties
// keep scan order.
func topSessionsOf(clicks []sessionClicks) []sessionClicks {
	slots := make([]*sessionClicks, topSessionSlots)
	for i := range clicks {
		candidate := clicks[i]
		for slot := 0; slot < topSessionSlots; slot++ {
			if slots[slot] == nil {
				slots[slot] = &candidate
				break
			}
			if candidate.clickCount > slots[slot].clickCount {
				copy(slots[slot+1:], slots[slot:topSessionSlots-1])
				slots[slot] = &candidate
				break
			}
		}
	}
	winners := make([]sessionClicks, 0, topSessionSlots)
	for _, slot := range slots {
		if slot == nil {
			break
		}
		winners = append(winners, *slot)
	}
	return winners
}
