package app

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"session-analytics/internal/aggregators"
	"session-analytics/internal/analyzers"
	"session-analytics/internal/engine"
	"session-analytics/internal/extractors"
	"session-analytics/internal/filters"
	internalhttp "session-analytics/internal/http"
	"session-analytics/internal/rankers"
	"session-analytics/internal/shared/configs"
	"session-analytics/internal/shared/filestorages"
	"session-analytics/internal/shared/loggers"
	"session-analytics/internal/shared/ulid"
	"session-analytics/internal/sinks"
	"session-analytics/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	analyzeService analyzers.AnalyzeService
	resultSinks    *sinks.PostgresSinks
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "session-analytics").
		Logger()

	// Initialize warehouse blob store
	fileStorage, err := filestorages.NewFileStorage(config.Warehouse.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize warehouse storage: %w", err)
	}

	// Initialize result sinks
	resultSinks, err := sinks.NewPostgresSinks(config.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize result sinks: %w", err)
	}

	// Initialize the analysis pipeline
	pool := engine.NewPool(config.Engine.Parallelism)
	analyzeService := analyzers.NewAnalyzeService(analyzers.Deps{
		Pool:          pool,
		TaskStore:     stores.NewTaskStore(fileStorage),
		ActionStore:   stores.NewActionStore(fileStorage),
		UserStore:     stores.NewUserStore(fileStorage),
		SnapshotStore: stores.NewAggregateSnapshotStore(fileStorage),
		Aggregator:    aggregators.NewSessionAggregator(pool),
		Filter:        filters.NewSessionFilter(pool),
		Extractor:     extractors.NewSessionExtractor(pool, resultSinks.SessionRandomExtract(), resultSinks.SessionDetail()),
		Ranker:        rankers.NewCategoryRanker(resultSinks.TopCategory()),
		Selector:      rankers.NewTopSessionSelector(resultSinks.TopSession(), resultSinks.SessionDetail()),
		StatSink:      resultSinks.SessionAggrStat(),
		SampleCount:   config.Extract.SessionSampleCount,
		Random:        rand.New(rand.NewSource(time.Now().UnixNano())),
	})

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(analyzeService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:         config,
		appLogger:      appLogger,
		server:         server,
		analyzeService: analyzeService,
		resultSinks:    resultSinks,
	}, nil
}

// RunTask executes one analysis task and returns when every stage has
// completed and persisted.
func (app *App) RunTask(ctx context.Context, taskID int64) error {
	runID := ulid.NewULID()
	runLogger := app.appLogger.With().
		Str(loggers.FieldComponent, "analyzer").
		Str(loggers.FieldRunID, runID).
		Logger()
	return app.analyzeService.RunTask(runLogger.WithContext(ctx), taskID)
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting session-analytics service on port %d (log_level=%s, warehouse_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Warehouse.RootDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Close result sink connections
	if err := app.resultSinks.Close(); err != nil {
		return fmt.Errorf("result sink close failed: %w", err)
	}
	app.appLogger.Info().Msg("Result sinks closed")

	return nil
}
