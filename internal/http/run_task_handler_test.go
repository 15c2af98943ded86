package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	analyzermocks "session-analytics/internal/analyzers/mocks"
	"session-analytics/internal/shared/loggers"
	"session-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, mockAnalyzeService *analyzermocks.MockAnalyzeService) http.Handler {
	t.Helper()
	logger, err := loggers.New("info")
	require.NoError(t, err)
	return NewRouter(mockAnalyzeService, logger)
}

func TestRunTaskHandler_Success(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	mockAnalyzeService := analyzermocks.NewMockAnalyzeService(ctrl)
	mockAnalyzeService.EXPECT().
		RunTask(gomock.Any(), int64(42)).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/tasks/42/run", nil)
	rr := httptest.NewRecorder()
	newTestRouter(t, mockAnalyzeService).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRunTaskHandler_NonNumericTaskID(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	mockAnalyzeService := analyzermocks.NewMockAnalyzeService(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/tasks/not-a-number/run", nil)
	rr := httptest.NewRecorder()
	newTestRouter(t, mockAnalyzeService).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, codeInvalidTaskID, errorResponse.ErrorCode)
}

func TestRunTaskHandler_ServiceError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	mockAnalyzeService := analyzermocks.NewMockAnalyzeService(ctrl)
	mockAnalyzeService.EXPECT().
		RunTask(gomock.Any(), int64(7)).
		Return(svcerrors.NewInvalidArgumentError("TSK_1000", "task 7 does not exist", nil))

	req := httptest.NewRequest(http.MethodPost, "/tasks/7/run", nil)
	rr := httptest.NewRecorder()
	newTestRouter(t, mockAnalyzeService).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "TSK_1000", errorResponse.ErrorCode)
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	newTestRouter(t, analyzermocks.NewMockAnalyzeService(ctrl)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
