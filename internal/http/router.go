package http

import (
	"net/http"

	"session-analytics/internal/analyzers"
	"session-analytics/internal/shared/loggers"
	"session-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(analyzeService analyzers.AnalyzeService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	runTaskHandler := NewRunTaskHandler(analyzeService)

	// Routes
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/tasks/{taskID}/run", errorHandlingAdapter(runTaskHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
