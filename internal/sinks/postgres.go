package sinks

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"session-analytics/internal/models"
)

// PostgresSinks implements every sink interface over one shared connection
// pool. Table shapes mirror the result store this pipeline reports into.
type PostgresSinks struct {
	db *sql.DB
}

// NewPostgresSinks opens a connection pool for the given DSN. The pool is
// lazy; connectivity is verified by the first insert.
func NewPostgresSinks(dsn string) (*PostgresSinks, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open result store: %w", err)
	}
	return &PostgresSinks{db: db}, nil
}

// Close releases the connection pool.
func (s *PostgresSinks) Close() error {
	return s.db.Close()
}

// SessionDetail returns the session-detail sink.
func (s *PostgresSinks) SessionDetail() SessionDetailSink { return sessionDetailSink{db: s.db} }

// SessionRandomExtract returns the session-random-extract sink.
func (s *PostgresSinks) SessionRandomExtract() SessionRandomExtractSink {
	return sessionRandomExtractSink{db: s.db}
}

// SessionAggrStat returns the aggregate-statistics sink.
func (s *PostgresSinks) SessionAggrStat() SessionAggrStatSink { return sessionAggrStatSink{db: s.db} }

// TopCategory returns the top-category sink.
func (s *PostgresSinks) TopCategory() TopCategorySink { return topCategorySink{db: s.db} }

// TopSession returns the top-session sink.
func (s *PostgresSinks) TopSession() TopSessionSink { return topSessionSink{db: s.db} }

type sessionDetailSink struct{ db *sql.DB }

func (s sessionDetailSink) Insert(ctx context.Context, detail *models.SessionDetail) error {
	const query = `insert into session_detail
		(task_id, user_id, session_id, page_id, action_time, search_keyword,
		 click_category_id, click_product_id, order_category_ids, order_product_ids,
		 pay_category_ids, pay_product_ids)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	_, err := s.db.ExecContext(ctx, query,
		detail.TaskID, detail.UserID, detail.SessionID, detail.PageID,
		detail.ActionTime, detail.SearchKeyword,
		detail.ClickCategoryID, detail.ClickProductID,
		detail.OrderCategoryIDs, detail.OrderProductIDs,
		detail.PayCategoryIDs, detail.PayProductIDs)
	if err != nil {
		return fmt.Errorf("failed to insert session detail: %w", err)
	}
	return nil
}

type sessionRandomExtractSink struct{ db *sql.DB }

func (s sessionRandomExtractSink) Insert(ctx context.Context, extract *models.SessionRandomExtract) error {
	const query = `insert into session_random_extract
		(task_id, session_id, start_time, search_keywords, click_category_ids)
		values ($1,$2,$3,$4,$5)`
	_, err := s.db.ExecContext(ctx, query,
		extract.TaskID, extract.SessionID, extract.StartTime,
		extract.SearchKeywords, extract.ClickCategoryIDs)
	if err != nil {
		return fmt.Errorf("failed to insert session random extract: %w", err)
	}
	return nil
}

type sessionAggrStatSink struct{ db *sql.DB }

func (s sessionAggrStatSink) Insert(ctx context.Context, stat *models.SessionAggrStat) error {
	const query = `insert into session_aggr_stat
		(task_id, session_count,
		 visit_length_1s_3s_ratio, visit_length_4s_6s_ratio, visit_length_7s_9s_ratio,
		 visit_length_10s_30s_ratio, visit_length_30s_60s_ratio, visit_length_1m_3m_ratio,
		 visit_length_3m_10m_ratio, visit_length_10m_30m_ratio, visit_length_30m_ratio,
		 step_length_1_3_ratio, step_length_4_6_ratio, step_length_7_9_ratio,
		 step_length_10_30_ratio, step_length_30_60_ratio, step_length_60_ratio)
		values ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`
	_, err := s.db.ExecContext(ctx, query,
		stat.TaskID, stat.SessionCount,
		stat.VisitLength1s3sRatio, stat.VisitLength4s6sRatio, stat.VisitLength7s9sRatio,
		stat.VisitLength10s30sRatio, stat.VisitLength30s60sRatio, stat.VisitLength1m3mRatio,
		stat.VisitLength3m10mRatio, stat.VisitLength10m30mRatio, stat.VisitLength30mRatio,
		stat.StepLength13Ratio, stat.StepLength46Ratio, stat.StepLength79Ratio,
		stat.StepLength1030Ratio, stat.StepLength3060Ratio, stat.StepLength60Ratio)
	if err != nil {
		return fmt.Errorf("failed to insert session aggr stat: %w", err)
	}
	return nil
}

type topCategorySink struct{ db *sql.DB }

func (s topCategorySink) Insert(ctx context.Context, category *models.TopCategory) error {
	const query = `insert into top10_category
		(task_id, category_id, click_count, order_count, pay_count)
		values ($1,$2,$3,$4,$5)`
	_, err := s.db.ExecContext(ctx, query,
		category.TaskID, category.CategoryID,
		category.ClickCount, category.OrderCount, category.PayCount)
	if err != nil {
		return fmt.Errorf("failed to insert top category: %w", err)
	}
	return nil
}

type topSessionSink struct{ db *sql.DB }

func (s topSessionSink) Insert(ctx context.Context, session *models.TopSession) error {
	const query = `insert into top10_session
		(task_id, category_id, session_id, click_count)
		values ($1,$2,$3,$4)`
	_, err := s.db.ExecContext(ctx, query,
		session.TaskID, session.CategoryID, session.SessionID, session.ClickCount)
	if err != nil {
		return fmt.Errorf("failed to insert top session: %w", err)
	}
	return nil
}
