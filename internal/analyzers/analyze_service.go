package analyzers

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	"session-analytics/internal/aggregators"
	"session-analytics/internal/engine"
	"session-analytics/internal/extractors"
	"session-analytics/internal/filters"
	"session-analytics/internal/models"
	"session-analytics/internal/rankers"
	"session-analytics/internal/shared/loggers"
	"session-analytics/internal/shared/validators"
	"session-analytics/internal/sinks"
	"session-analytics/internal/stores"
)

//go:generate mockgen -source=analyze_service.go -destination=./mocks/analyze_service_mock.go -package=mocks
type AnalyzeService interface {
	// RunTask executes the full analysis pipeline for one stored task: load
	// and validate the task parameters, aggregate the window's sessions,
	// filter and accumulate statistics, extract a stratified sample, persist
	// the bucketed statistics, rank categories and select top sessions.
	RunTask(ctx context.Context, taskID int64) error
}

// Deps bundles the collaborators of the analyze service.
type Deps struct {
	Pool          *engine.Pool
	TaskStore     stores.TaskStore
	ActionStore   stores.ActionStore
	UserStore     stores.UserStore
	SnapshotStore stores.AggregateSnapshotStore
	Aggregator    aggregators.SessionAggregator
	Filter        filters.SessionFilter
	Extractor     extractors.SessionExtractor
	Ranker        rankers.CategoryRanker
	Selector      rankers.TopSessionSelector
	StatSink      sinks.SessionAggrStatSink
	SampleCount   int
	Random        extractors.RandSource
}

type analyzeService struct {
	deps     Deps
	validate *validators.Validate
}

func NewAnalyzeService(deps Deps) AnalyzeService {
	return &analyzeService{deps: deps, validate: validators.New()}
}

func (s *analyzeService) RunTask(ctx context.Context, taskID int64) error {
	if err := s.runTask(ctx, taskID); err != nil {
		metricTaskRunsTotal.WithLabelValues(runStatusFailure).Inc()
		return err
	}
	metricTaskRunsTotal.WithLabelValues(runStatusSuccess).Inc()
	return nil
}

func (s *analyzeService) runTask(ctx context.Context, taskID int64) error {
	logger := loggers.Ctx(ctx)
	logger.Info().Int64(loggers.FieldTaskID, taskID).Msg("started analysis task")

	task, err := s.deps.TaskStore.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, stores.ErrTaskNotFound) {
			return errTaskNotFound(taskID)
		}
		return errInternalTaskStoreFailed(err)
	}
	params, err := s.decodeTaskParams(task)
	if err != nil {
		return err
	}

	actions, err := s.deps.ActionStore.FindByDateRange(ctx, params.StartDate, params.EndDate)
	if err != nil {
		return errInternalActionStoreFailed(err)
	}
	users, err := s.deps.UserStore.FindAll(ctx)
	if err != nil {
		return errInternalUserStoreFailed(err)
	}
	logger.Debug().Msgf("loaded %d actions and %d users for window [%s, %s]", len(actions), len(users), params.StartDate, params.EndDate)

	aggregates, err := s.deps.Aggregator.Aggregate(ctx, actions, users)
	if err != nil {
		return err
	}

	accumulator := engine.NewStatAccumulator()
	matched, err := s.deps.Filter.FilterAndAccumulate(ctx, aggregates, params, accumulator)
	if err != nil {
		return err
	}
	if err := s.deps.SnapshotStore.Put(ctx, taskID, matched); err != nil {
		return errInternalSnapshotStoreFailed(err)
	}

	matchedActions, matchedDetails, err := s.matchedDetailRows(ctx, taskID, matched, actions)
	if err != nil {
		return err
	}

	if err := s.deps.Extractor.Extract(ctx, taskID, matched, matchedActions, s.deps.SampleCount, s.deps.Random); err != nil {
		return err
	}

	// The accumulator is authoritative only now: the filtering pass and the
	// extraction re-pass over its output have fully completed.
	if err := s.deps.StatSink.Insert(ctx, aggrStatOf(taskID, accumulator)); err != nil {
		return errInternalStatSinkFailed(err)
	}

	topCategories, err := s.deps.Ranker.RankTopCategories(ctx, taskID, matchedDetails)
	if err != nil {
		return err
	}
	if err := s.deps.Selector.SelectTopSessions(ctx, taskID, topCategories, matchedDetails); err != nil {
		return err
	}

	logger.Info().Int64(loggers.FieldTaskID, taskID).Msgf("finished analysis task: %d matched sessions, %d top categories", len(matched), len(topCategories))
	return nil
}

func (s *analyzeService) decodeTaskParams(task *models.Task) (*models.TaskParams, error) {
	var params models.TaskParams
	if err := json.Unmarshal([]byte(task.TaskParam), &params); err != nil {
		return nil, errMalformedTaskParams(task.TaskID, err)
	}
	if err := s.validate.Struct(&params); err != nil {
		return nil, errInvalidTaskParams(task.TaskID, err)
	}
	return &params, nil
}

// matchedDetailRows restricts the raw actions to the matched sessions and
// projects them into detail rows for the ranking passes.
func (s *analyzeService) matchedDetailRows(ctx context.Context, taskID int64, matched []*models.SessionAggregate, actions []*models.ActionRecord) ([]*models.ActionRecord, []*models.SessionDetail, error) {
	matchedIDs := make(map[string]struct{}, len(matched))
	for _, agg := range matched {
		matchedIDs[agg.SessionID] = struct{}{}
	}
	matchedActions, err := engine.Filter(ctx, s.deps.Pool, actions,
		func(_ context.Context, action *models.ActionRecord) (bool, error) {
			_, ok := matchedIDs[action.SessionID]
			return ok, nil
		})
	if err != nil {
		return nil, nil, err
	}
	details, err := engine.Map(ctx, s.deps.Pool, matchedActions,
		func(_ context.Context, action *models.ActionRecord) (*models.SessionDetail, error) {
			return models.SessionDetailFromAction(taskID, action), nil
		})
	if err != nil {
		return nil, nil, err
	}
	return matchedActions, details, nil
}

// aggrStatOf turns the accumulator counts into the persisted statistics
// record. Each ratio is bucket/total rounded half-up to 2 decimal places; a
// zero total leaves every ratio 0.
func aggrStatOf(taskID int64, accumulator *engine.StatAccumulator) *models.SessionAggrStat {
	total := accumulator.Count(filters.KeySessionCount)
	ratio := func(bucket string) float64 {
		if total == 0 {
			return 0
		}
		return math.Round(float64(accumulator.Count(bucket))/float64(total)*100) / 100
	}
	return &models.SessionAggrStat{
		TaskID:       taskID,
		SessionCount: total,

		VisitLength1s3sRatio:   ratio(filters.KeyVisit1s3s),
		VisitLength4s6sRatio:   ratio(filters.KeyVisit4s6s),
		VisitLength7s9sRatio:   ratio(filters.KeyVisit7s9s),
		VisitLength10s30sRatio: ratio(filters.KeyVisit10s30s),
		VisitLength30s60sRatio: ratio(filters.KeyVisit30s60s),
		VisitLength1m3mRatio:   ratio(filters.KeyVisit1m3m),
		VisitLength3m10mRatio:  ratio(filters.KeyVisit3m10m),
		VisitLength10m30mRatio: ratio(filters.KeyVisit10m30m),
		VisitLength30mRatio:    ratio(filters.KeyVisit30m),

		StepLength13Ratio:   ratio(filters.KeyStep13),
		StepLength46Ratio:   ratio(filters.KeyStep46),
		StepLength79Ratio:   ratio(filters.KeyStep79),
		StepLength1030Ratio: ratio(filters.KeyStep1030),
		StepLength3060Ratio: ratio(filters.KeyStep3060),
		StepLength60Ratio:   ratio(filters.KeyStep60),
	}
}
