package http

import (
	"net/http"
	"strconv"

	"session-analytics/internal/analyzers"

	"github.com/go-chi/chi/v5"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type runTaskHandler struct {
	analyzeService analyzers.AnalyzeService
}

func NewRunTaskHandler(analyzeService analyzers.AnalyzeService) AppHttpHandler {
	return &runTaskHandler{
		analyzeService: analyzeService,
	}
}

// Handle processes POST /tasks/{taskID}/run requests. The run is synchronous;
// a 200 means every pipeline stage completed and persisted.
func (h *runTaskHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	taskID, err := strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
	if err != nil {
		return errInvalidTaskID(chi.URLParam(r, "taskID"), err)
	}
	if err := h.analyzeService.RunTask(r.Context(), taskID); err != nil {
		return err
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
