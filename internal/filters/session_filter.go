package filters

import (
	"context"
	"strconv"

	"session-analytics/internal/codecs"
	"session-analytics/internal/engine"
	"session-analytics/internal/models"
	"session-analytics/internal/shared/loggers"
)

//go:generate mockgen -source=session_filter.go -destination=./mocks/session_filter_mock.go -package=mocks
type SessionFilter interface {
	// FilterAndAccumulate keeps the aggregates that satisfy every criterion
	// the task parameters carry, recording a session_count increment and one
	// visit-length and one step-length bucket increment per match. Absent
	// criteria match everything; an all-absent parameter set keeps every
	// session.
	FilterAndAccumulate(ctx context.Context, aggregates []*models.SessionAggregate, params *models.TaskParams, acc *engine.StatAccumulator) ([]*models.SessionAggregate, error)
}

type sessionFilter struct {
	pool *engine.Pool
}

func NewSessionFilter(pool *engine.Pool) SessionFilter {
	return &sessionFilter{pool: pool}
}

func (f *sessionFilter) FilterAndAccumulate(ctx context.Context, aggregates []*models.SessionAggregate, params *models.TaskParams, acc *engine.StatAccumulator) ([]*models.SessionAggregate, error) {
	logger := loggers.Ctx(ctx)

	matched, err := engine.Filter(ctx, f.pool, aggregates,
		func(_ context.Context, agg *models.SessionAggregate) (bool, error) {
			if !matchesParams(agg, params) {
				return false, nil
			}
			acc.Add(KeySessionCount)
			accumulateVisitLength(acc, agg.VisitLength)
			accumulateStepLength(acc, agg.StepLength)
			return true, nil
		})
	if err != nil {
		return nil, err
	}

	metricSessionsMatchedTotal.WithLabelValues().Add(float64(len(matched)))
	logger.Debug().Msgf("matched %d of %d sessions against task parameters", len(matched), len(aggregates))
	return matched, nil
}

// matchesParams evaluates criteria in a fixed order, short-circuiting on the
// first failure: age bounds, professional, city, sex, keywords, category ids.
func matchesParams(agg *models.SessionAggregate, params *models.TaskParams) bool {
	if params.StartAge != nil && agg.Age < *params.StartAge {
		return false
	}
	if params.EndAge != nil && agg.Age > *params.EndAge {
		return false
	}
	if len(params.Professionals) > 0 && !containsString(params.Professionals, agg.Professional) {
		return false
	}
	if len(params.Cities) > 0 && !containsString(params.Cities, agg.City) {
		return false
	}
	if params.Sex != "" && agg.Sex != params.Sex {
		return false
	}
	if len(params.Keywords) > 0 && !anyTokenMatches(agg.SearchKeywords, params.Keywords) {
		return false
	}
	if len(params.CategoryIDs) > 0 {
		wanted := make([]string, len(params.CategoryIDs))
		for i, id := range params.CategoryIDs {
			wanted[i] = strconv.FormatInt(id, 10)
		}
		if !anyTokenMatches(agg.ClickCategoryIDs, wanted) {
			return false
		}
	}
	return true
}

func containsString(haystack []string, needle string) bool {
	for _, candidate := range haystack {
		if candidate == needle {
			return true
		}
	}
	return false
}

// anyTokenMatches reports whether any wanted value appears among the
// comma-joined tokens.
func anyTokenMatches(joined string, wanted []string) bool {
	for _, token := range codecs.SplitTokens(joined) {
		if containsString(wanted, token) {
			return true
		}
	}
	return false
}

// accumulateVisitLength buckets a visit length in seconds. A zero-length
// visit falls in no bucket.
func accumulateVisitLength(acc *engine.StatAccumulator, visitLength int64) {
	switch {
	case visitLength >= 1 && visitLength <= 3:
		acc.Add(KeyVisit1s3s)
	case visitLength >= 4 && visitLength <= 6:
		acc.Add(KeyVisit4s6s)
	case visitLength >= 7 && visitLength <= 9:
		acc.Add(KeyVisit7s9s)
	case visitLength >= 10 && visitLength <= 30:
		acc.Add(KeyVisit10s30s)
	case visitLength > 30 && visitLength <= 60:
		acc.Add(KeyVisit30s60s)
	case visitLength > 60 && visitLength <= 180:
		acc.Add(KeyVisit1m3m)
	case visitLength > 180 && visitLength <= 600:
		acc.Add(KeyVisit3m10m)
	case visitLength > 600 && visitLength <= 1800:
		acc.Add(KeyVisit10m30m)
	case visitLength > 1800:
		acc.Add(KeyVisit30m)
	}
}

func accumulateStepLength(acc *engine.StatAccumulator, stepLength int64) {
	switch {
	case stepLength >= 1 && stepLength <= 3:
		acc.Add(KeyStep13)
	case stepLength >= 4 && stepLength <= 6:
		acc.Add(KeyStep46)
	case stepLength >= 7 && stepLength <= 9:
		acc.Add(KeyStep79)
	case stepLength >= 10 && stepLength <= 30:
		acc.Add(KeyStep1030)
	case stepLength > 30 && stepLength <= 60:
		acc.Add(KeyStep3060)
	case stepLength > 60:
		acc.Add(KeyStep60)
	}
}
