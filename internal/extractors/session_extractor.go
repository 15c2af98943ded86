package extractors

import (
	"context"

	"session-analytics/internal/engine"
	"session-analytics/internal/models"
	"session-analytics/internal/shared/loggers"
	"session-analytics/internal/sinks"
)

// dayHourLayout keys sessions by the calendar hour their start time falls in.
const dayHourLayout = "2006-01-02_15"

// RandSource provides uniform integers over [0, n). math/rand.Rand satisfies
// it; tests inject a seeded source.
type RandSource interface {
	Intn(n int) int
}

//go:generate mockgen -source=session_extractor.go -destination=./mocks/session_extractor_mock.go -package=mocks
type SessionExtractor interface {
	// Extract picks up to sampleCount matched sessions, spread near-uniformly
	// across the days present and proportionally across each day's hours. It
	// persists one SessionRandomExtract per picked session and one
	// SessionDetail per action row belonging to a picked session.
	Extract(ctx context.Context, taskID int64, matched []*models.SessionAggregate, actions []*models.ActionRecord, sampleCount int, random RandSource) error
}

type sessionExtractor struct {
	pool        *engine.Pool
	extractSink sinks.SessionRandomExtractSink
	detailSink  sinks.SessionDetailSink
}

func NewSessionExtractor(pool *engine.Pool, extractSink sinks.SessionRandomExtractSink, detailSink sinks.SessionDetailSink) SessionExtractor {
	return &sessionExtractor{
		pool:        pool,
		extractSink: extractSink,
		detailSink:  detailSink,
	}
}

func (e *sessionExtractor) Extract(ctx context.Context, taskID int64, matched []*models.SessionAggregate, actions []*models.ActionRecord, sampleCount int, random RandSource) error {
	logger := loggers.Ctx(ctx)

	bucketed, err := engine.Map(ctx, e.pool, matched,
		func(_ context.Context, agg *models.SessionAggregate) (engine.Pair[string, *models.SessionAggregate], error) {
			startTime, parseErr := models.ParseActionTime(agg.StartTime)
			if parseErr != nil {
				return engine.Pair[string, *models.SessionAggregate]{}, errMalformedStartTime(agg.SessionID, parseErr)
			}
			return engine.Pair[string, *models.SessionAggregate]{
				Key:   startTime.Format(dayHourLayout),
				Value: agg,
			}, nil
		})
	if err != nil {
		return err
	}

	indexTable := buildIndexTable(engine.CountByKey(bucketed), sampleCount, random)
	if len(indexTable) == 0 {
		logger.Debug().Msg("no day-hour buckets to extract from")
		return nil
	}

	// The index table is complete before any worker sees it.
	broadcast := engine.NewBroadcast(indexTable)

	selectedIDs := make(map[string]struct{})
	for _, bucket := range engine.GroupByKey(bucketed) {
		indices, ok := broadcast.Value()[bucket.Key]
		if !ok {
			continue
		}
		for position, agg := range bucket.Value {
			if _, picked := indices[position]; !picked {
				continue
			}
			extract := &models.SessionRandomExtract{
				TaskID:           taskID,
				SessionID:        agg.SessionID,
				StartTime:        agg.StartTime,
				SearchKeywords:   agg.SearchKeywords,
				ClickCategoryIDs: agg.ClickCategoryIDs,
			}
			if err := e.extractSink.Insert(ctx, extract); err != nil {
				return err
			}
			selectedIDs[agg.SessionID] = struct{}{}
		}
	}

	metricSessionsExtractedTotal.WithLabelValues().Add(float64(len(selectedIDs)))
	logger.Debug().Msgf("extracted %d of %d matched sessions", len(selectedIDs), len(matched))

	// One detail row per original action of a picked session.
	selectedActions, err := engine.Filter(ctx, e.pool, actions,
		func(_ context.Context, action *models.ActionRecord) (bool, error) {
			_, picked := selectedIDs[action.SessionID]
			return picked, nil
		})
	if err != nil {
		return err
	}
	return engine.ForEach(ctx, e.pool, selectedActions,
		func(ctx context.Context, action *models.ActionRecord) error {
			return e.detailSink.Insert(ctx, models.SessionDetailFromAction(taskID, action))
		})
}

// buildIndexTable computes, per day-hour bucket, the set of 0-based positions
// to pick. Budget is divided evenly across distinct days, then spread across
// each day's hours proportionally to their session counts. Indices are drawn
// without replacement; a collision redraws.
func buildIndexTable(bucketCounts []engine.Pair[string, int64], sampleCount int, random RandSource) map[string]map[int]struct{} {
	dayPairs := make([]engine.Pair[string, engine.Pair[string, int64]], len(bucketCounts))
	for i, bucket := range bucketCounts {
		day := bucket.Key[:len("2006-01-02")]
		dayPairs[i] = engine.Pair[string, engine.Pair[string, int64]]{Key: day, Value: bucket}
	}
	days := engine.GroupByKey(dayPairs)
	if len(days) == 0 {
		return nil
	}
	extractNumberPerDay := sampleCount / len(days)

	indexTable := make(map[string]map[int]struct{})
	for _, day := range days {
		var dayTotal int64
		for _, hour := range day.Value {
			dayTotal += hour.Value
		}
		if dayTotal == 0 {
			continue
		}
		for _, hour := range day.Value {
			hourCount := int(hour.Value)
			quota := int(float64(hourCount) / float64(dayTotal) * float64(extractNumberPerDay))
			if quota > hourCount {
				quota = hourCount
			}
			if quota == 0 {
				continue
			}
			indices := make(map[int]struct{}, quota)
			for len(indices) < quota {
				index := random.Intn(hourCount)
				if _, taken := indices[index]; taken {
					continue
				}
				indices[index] = struct{}{}
			}
			indexTable[hour.Key] = indices
		}
	}
	return indexTable
}
