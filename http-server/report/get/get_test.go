package get

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kitchen-golang/internal/capacity"
	"kitchen-golang/internal/report"
	"kitchen-golang/internal/service/reporting"
)

type MockReportBuilder struct {
	mock.Mock
}

func (m *MockReportBuilder) BuildReport(ctx context.Context, p reporting.Params) (*reporting.Result, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reporting.Result), args.Error(1)
}

func (m *MockReportBuilder) LaborParams(ctx context.Context) (report.LaborParams, error) {
	args := m.Called(ctx)
	return args.Get(0).(report.LaborParams), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetReport_Success(t *testing.T) {
	builder := new(MockReportBuilder)

	builder.On("LaborParams", mock.Anything).Return(report.LaborParams{DailyWage: 480, OverheadPct: 10, UtilityPct: 5}, nil)
	builder.On("BuildReport", mock.Anything, mock.MatchedBy(func(p reporting.Params) bool {
		return p.Search == "" && !p.Strict && p.Range.NumDays() == 2
	})).Return(&reporting.Result{
		Rows: []*report.Row{
			{JobID: 1, JobCode: "235001"},
		},
		Summary: capacity.RangeSummary{CapacityMinutes: 480},
	}, nil)

	handler := GetReport(discardLogger(), builder)

	req := httptest.NewRequest(http.MethodGet, "/api/report?from=2025-09-01&to=2025-09-02", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ResponseReport
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Rows, 1)
	assert.Equal(t, "235001", resp.Rows[0].JobCode)
	assert.Equal(t, 1, resp.TotalRows)
	assert.Equal(t, 1, resp.Page)

	builder.AssertExpectations(t)
}

func TestGetReport_InvalidRange(t *testing.T) {
	builder := new(MockReportBuilder)

	handler := GetReport(discardLogger(), builder)

	req := httptest.NewRequest(http.MethodGet, "/api/report?from=2025-09-05&to=2025-09-01", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	builder.AssertNotCalled(t, "BuildReport", mock.Anything, mock.Anything)
}

func TestGetReport_FetchFailureIsNotAnEmptyReport(t *testing.T) {
	builder := new(MockReportBuilder)

	builder.On("LaborParams", mock.Anything).Return(report.LaborParams{DailyWage: 480}, nil)
	builder.On("BuildReport", mock.Anything, mock.Anything).Return(nil, errors.New("day fetch failed"))

	handler := GetReport(discardLogger(), builder)

	req := httptest.NewRequest(http.MethodGet, "/api/report?from=2025-09-01&to=2025-09-02", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ResponseReport
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "no data for this range", resp.Error)
	assert.Empty(t, resp.Rows)
}

func TestGetReport_PercentageOverrides(t *testing.T) {
	builder := new(MockReportBuilder)

	builder.On("LaborParams", mock.Anything).Return(report.LaborParams{DailyWage: 480, OverheadPct: 10, UtilityPct: 5}, nil)
	builder.On("BuildReport", mock.Anything, mock.MatchedBy(func(p reporting.Params) bool {
		return p.Labor.OverheadPct == 12 && p.Labor.UtilityPct == 7 && p.Labor.DailyWage == 480
	})).Return(&reporting.Result{}, nil)

	handler := GetReport(discardLogger(), builder)

	req := httptest.NewRequest(http.MethodGet, "/api/report?from=2025-09-01&to=2025-09-01&overhead_pct=12&utility_pct=7", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	builder.AssertExpectations(t)
}
