package get

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"

	"proxima-dashboard/internal/service/schedule"
)

type MockCalendar struct {
	mock.Mock
}

func (m *MockCalendar) Calendar(ctx context.Context, from, to string) ([]schedule.Day, error) {
	args := m.Called(ctx, from, to)
	days, _ := args.Get(0).([]schedule.Day)
	return days, args.Error(1)
}

func TestGetSchedule_Range(t *testing.T) {
	days := []schedule.Day{{Date: "2024-03-04", Global: "HOLIDAY", Entries: []schedule.Entry{}}}
	mockCal := new(MockCalendar)
	mockCal.On("Calendar", mock.Anything, "2024-03-04", "2024-03-04").Return(days, nil)

	handler := GetSchedule(slog.Default(), mockCal)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule?from=2024-03-04&to=2024-03-04", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, days, resp.Days)
	mockCal.AssertExpectations(t)
}

func TestGetSchedule_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"bad range", fmt.Errorf("wrap: %w", schedule.ErrInvalidRange), http.StatusBadRequest},
		{"storage error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCal := new(MockCalendar)
			mockCal.On("Calendar", mock.Anything, "2024-03-10", "2024-03-04").Return(nil, tt.err)

			handler := GetSchedule(slog.Default(), mockCal)

			req := httptest.NewRequest(http.MethodGet, "/api/schedule?from=2024-03-10&to=2024-03-04", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCurrentWeek(t *testing.T) {
	tests := []struct {
		now      string
		from, to string
	}{
		{"2024-03-06", "2024-03-04", "2024-03-10"},
		{"2024-03-04", "2024-03-04", "2024-03-10"},
		{"2024-03-10", "2024-03-04", "2024-03-10"},
	}

	for _, tt := range tests {
		now, err := time.Parse("2006-01-02", tt.now)
		require.NoError(t, err)

		from, to := currentWeek(now)
		assert.Equal(t, tt.from, from, tt.now)
		assert.Equal(t, tt.to, to, tt.now)
	}
}
