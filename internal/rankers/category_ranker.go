package rankers

import (
	"context"

	"session-analytics/internal/codecs"
	"session-analytics/internal/engine"
	"session-analytics/internal/models"
	"session-analytics/internal/shared/loggers"
	"session-analytics/internal/sinks"
)

const topCategoryCount = 10

//go:generate mockgen -source=category_ranker.go -destination=./mocks/category_ranker_mock.go -package=mocks
type CategoryRanker interface {
	// RankTopCategories counts clicks, orders and pays per category across the
	// matched sessions' detail rows, ranks categories by the composite
	// descending key (click, order, pay) and persists the top 10. The ordered
	// top-10 list is returned for the top-session pass.
	RankTopCategories(ctx context.Context, taskID int64, details []*models.SessionDetail) ([]*models.CategoryCount, error)
}

type categoryRanker struct {
	sink sinks.TopCategorySink
}

func NewCategoryRanker(sink sinks.TopCategorySink) CategoryRanker {
	return &categoryRanker{sink: sink}
}

func (r *categoryRanker) RankTopCategories(ctx context.Context, taskID int64, details []*models.SessionDetail) ([]*models.CategoryCount, error) {
	logger := loggers.Ctx(ctx)

	var categoryIDs []int64
	var clickPairs, orderPairs, payPairs []engine.Pair[int64, int64]
	for _, detail := range details {
		if detail.ClickCategoryID != nil {
			categoryIDs = append(categoryIDs, *detail.ClickCategoryID)
			clickPairs = append(clickPairs, engine.Pair[int64, int64]{Key: *detail.ClickCategoryID, Value: 1})
		}
		orderIDs, err := codecs.ParseIDList(detail.OrderCategoryIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range orderIDs {
			categoryIDs = append(categoryIDs, id)
			orderPairs = append(orderPairs, engine.Pair[int64, int64]{Key: id, Value: 1})
		}
		payIDs, err := codecs.ParseIDList(detail.PayCategoryIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range payIDs {
			categoryIDs = append(categoryIDs, id)
			payPairs = append(payPairs, engine.Pair[int64, int64]{Key: id, Value: 1})
		}
	}

	distinctIDs := engine.Distinct(categoryIDs)
	idPairs := make([]engine.Pair[int64, int64], len(distinctIDs))
	for i, id := range distinctIDs {
		idPairs[i] = engine.Pair[int64, int64]{Key: id, Value: id}
	}

	sum := func(a, b int64) int64 { return a + b }
	clickCounts := engine.ReduceByKey(clickPairs, sum)
	orderCounts := engine.ReduceByKey(orderPairs, sum)
	payCounts := engine.ReduceByKey(payPairs, sum)

	// Three chained left outer joins, defaulting an unmatched role to 0.
	counts := make([]engine.Pair[int64, *models.CategoryCount], 0, len(distinctIDs))
	for _, joined := range engine.LeftOuterJoin(idPairs, clickCounts) {
		count := &models.CategoryCount{CategoryID: joined.Key}
		if joined.Value.RightOk {
			count.ClickCount = joined.Value.Right
		}
		counts = append(counts, engine.Pair[int64, *models.CategoryCount]{Key: joined.Key, Value: count})
	}
	for _, joined := range engine.LeftOuterJoin(counts, orderCounts) {
		if joined.Value.RightOk {
			joined.Value.Left.OrderCount = joined.Value.Right
		}
	}
	for _, joined := range engine.LeftOuterJoin(counts, payCounts) {
		if joined.Value.RightOk {
			joined.Value.Left.PayCount = joined.Value.Right
		}
	}

	ranked := engine.SortBy(counts, func(a, b engine.Pair[int64, *models.CategoryCount]) bool {
		return lessByCompositeKey(b.Value, a.Value)
	})
	top := engine.Take(ranked, topCategoryCount)

	topCategories := make([]*models.CategoryCount, 0, len(top))
	for _, pair := range top {
		count := pair.Value
		record := &models.TopCategory{
			TaskID:     taskID,
			CategoryID: count.CategoryID,
			ClickCount: count.ClickCount,
			OrderCount: count.OrderCount,
			PayCount:   count.PayCount,
		}
		if err := r.sink.Insert(ctx, record); err != nil {
			return nil, err
		}
		topCategories = append(topCategories, count)
	}

	metricCategoriesRankedTotal.WithLabelValues().Add(float64(len(distinctIDs)))
	logger.Debug().Msgf("ranked %d categories, kept top %d", len(distinctIDs), len(topCategories))
	return topCategories, nil
}

// lessByCompositeKey orders category counts ascending by the lexicographic
// (click, order, pay) key.
func lessByCompositeKey(a, b *models.CategoryCount) bool {
	if a.ClickCount != b.ClickCount {
		return a.ClickCount < b.ClickCount
	}
	if a.OrderCount != b.OrderCount {
		return a.OrderCount < b.OrderCount
	}
	return a.PayCount < b.PayCount
}
