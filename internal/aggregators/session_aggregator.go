package aggregators

import (
	"context"
	"strconv"
	"time"

	"session-analytics/internal/codecs"
	"session-analytics/internal/engine"
	"session-analytics/internal/models"
	"session-analytics/internal/shared/loggers"
)

//go:generate mockgen -source=session_aggregator.go -destination=./mocks/session_aggregator_mock.go -package=mocks
type SessionAggregator interface {
	// Aggregate folds raw action records into one summary per session id and
	// enriches each summary with the owning user's demographics. A session
	// whose user has no demographic record is dropped; a malformed action
	// timestamp aborts the run.
	Aggregate(ctx context.Context, actions []*models.ActionRecord, users []*models.UserRecord) ([]*models.SessionAggregate, error)
}

type sessionAggregator struct {
	pool *engine.Pool
}

func NewSessionAggregator(pool *engine.Pool) SessionAggregator {
	return &sessionAggregator{pool: pool}
}

// partialAggregate is the per-session fold result before the demographics join.
type partialAggregate struct {
	sessionID        string
	searchKeywords   string
	clickCategoryIDs string
	visitLength      int64
	stepLength       int64
	startTime        string
}

func (a *sessionAggregator) Aggregate(ctx context.Context, actions []*models.ActionRecord, users []*models.UserRecord) ([]*models.SessionAggregate, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started aggregating %d action records into sessions", len(actions))

	sessionPairs := make([]engine.Pair[string, *models.ActionRecord], len(actions))
	for i, action := range actions {
		sessionPairs[i] = engine.Pair[string, *models.ActionRecord]{Key: action.SessionID, Value: action}
	}
	sessionGroups := engine.GroupByKey(sessionPairs)

	// Fold every session once, re-keyed by user id for the demographics join.
	userPartials, err := engine.Map(ctx, a.pool, sessionGroups,
		func(ctx context.Context, group engine.Pair[string, []*models.ActionRecord]) (engine.Pair[int64, *partialAggregate], error) {
			return a.foldSession(group.Key, group.Value)
		})
	if err != nil {
		return nil, err
	}

	userPairs := make([]engine.Pair[int64, *models.UserRecord], len(users))
	for i, user := range users {
		userPairs[i] = engine.Pair[int64, *models.UserRecord]{Key: user.UserID, Value: user}
	}

	// Inner join: sessions without a demographic row are dropped, not failed.
	joined := engine.Join(userPartials, userPairs)

	aggregates := make([]*models.SessionAggregate, 0, len(joined))
	for _, pair := range joined {
		partial := pair.Value.Left
		user := pair.Value.Right
		aggregates = append(aggregates, &models.SessionAggregate{
			SessionID:        partial.sessionID,
			SearchKeywords:   partial.searchKeywords,
			ClickCategoryIDs: partial.clickCategoryIDs,
			VisitLength:      partial.visitLength,
			StepLength:       partial.stepLength,
			StartTime:        partial.startTime,
			Age:              user.Age,
			Professional:     user.Professional,
			City:             user.City,
			Sex:              user.Sex,
		})
	}

	metricSessionsAggregatedTotal.WithLabelValues().Add(float64(len(aggregates)))
	dropped := len(sessionGroups) - len(aggregates)
	if dropped > 0 {
		metricSessionsDroppedTotal.WithLabelValues(dropReasonNoUser).Add(float64(dropped))
		logger.Debug().Msgf("dropped %d sessions without a demographic record", dropped)
	}

	return aggregates, nil
}

// foldSession iterates one session's actions once: dedup keyword and click
// category accumulation in first-seen order, min/max action time, step count.
func (a *sessionAggregator) foldSession(sessionID string, actions []*models.ActionRecord) (engine.Pair[int64, *partialAggregate], error) {
	var searchKeywords, clickCategoryIDs string
	var startTime, endTime time.Time

	for i, action := range actions {
		searchKeywords = codecs.AppendToken(searchKeywords, action.SearchKeyword)
		if action.ClickCategoryID != nil {
			clickCategoryIDs = codecs.AppendToken(clickCategoryIDs, strconv.FormatInt(*action.ClickCategoryID, 10))
		}

		actionTime, err := models.ParseActionTime(action.ActionTime)
		if err != nil {
			return engine.Pair[int64, *partialAggregate]{}, errMalformedActionTime(sessionID, err)
		}
		if i == 0 || actionTime.Before(startTime) {
			startTime = actionTime
		}
		if i == 0 || actionTime.After(endTime) {
			endTime = actionTime
		}
	}

	partial := &partialAggregate{
		sessionID:        sessionID,
		searchKeywords:   searchKeywords,
		clickCategoryIDs: clickCategoryIDs,
		visitLength:      int64(endTime.Sub(startTime) / time.Second),
		stepLength:       int64(len(actions)),
		startTime:        startTime.Format(models.TimeLayout),
	}
	return engine.Pair[int64, *partialAggregate]{Key: actions[0].UserID, Value: partial}, nil
}
