package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alba-sim/internal/adapter/usecase"
	"alba-sim/internal/core/port"
	"alba-sim/internal/core/port/mocks"
)

func testHandler(t *testing.T, repo port.ReportRepository) http.Handler {
	t.Helper()
	return NewHandler(usecase.NewReportService(repo), slog.New(slog.NewTextHandler(io.Discard, nil))).Router()
}

func TestFunnelStatsEndpoint(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)
	repo.On("CountEventsByKind", mock.Anything, mock.Anything).
		Return(map[string]int64{"view": 100, "click": 20, "submit": 5}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/stats/funnel?from=2024-01-01T00:00:00Z&to=2024-01-31T00:00:00Z", nil)
	testHandler(t, repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got port.FunnelStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(100), got.Views)
	assert.Equal(t, int64(20), got.Clicks)
	assert.Equal(t, int64(5), got.Submits)
	assert.InDelta(t, 0.2, got.ClickRate, 1e-9)
	assert.InDelta(t, 0.25, got.SubmitRate, 1e-9)
}

func TestFunnelStatsBadPeriod(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/funnel?from=yesterday", nil)
	testHandler(t, repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFunnelStatsRepositoryFailure(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)
	repo.On("CountEventsByKind", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/funnel", nil)
	testHandler(t, repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestExperimentStatsEndpoint(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)
	repo.On("ExperimentStatsByArm", mock.Anything).
		Return([]port.ArmStats{
			{Arm: "control", Sends: 100, Applied: 2, ApplyRate: 0.02},
			{Arm: "variant_b", Sends: 210, Applied: 21, ApplyRate: 0.1},
		}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/experiment", nil)
	testHandler(t, repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []port.ArmStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "control", got[0].Arm)
	assert.Equal(t, int64(21), got[1].Applied)
}

func TestSampleSizeEndpoint(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/experiment/sample-size?baseline=0.02&mde=0.015", nil)
	testHandler(t, repo).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got port.SampleSizeResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 916, got.PerGroup)
	assert.Equal(t, 1832, got.Total)
	assert.InDelta(t, 0.05, got.Alpha, 1e-9)
	assert.InDelta(t, 0.8, got.Power, 1e-9)
}

func TestSampleSizeEndpointValidation(t *testing.T) {
	repo := mocks.NewMockReportRepository(t)
	h := testHandler(t, repo)

	for _, target := range []string{
		"/api/v1/experiment/sample-size",
		"/api/v1/experiment/sample-size?baseline=0.02&mde=abc",
		"/api/v1/experiment/sample-size?baseline=0.02&mde=0.015&alpha=2",
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}
