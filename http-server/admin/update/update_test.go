package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"log/slog"

	"proxima-dashboard/internal/storage"
)

type MockUpdateRatesProvider struct {
	mock.Mock
}

func (m *MockUpdateRatesProvider) UpdateWorkerRates(ctx context.Context, rates []storage.WorkerRate) error {
	return m.Called(ctx, rates).Error(0)
}

func TestUpdateWorkerRatesAdmin_Success(t *testing.T) {
	m := new(MockUpdateRatesProvider)
	m.On("UpdateWorkerRates", mock.Anything, []storage.WorkerRate{
		{Worker: "Piet", HourlyRate: 45},
		{Worker: "Klaas", HourlyRate: 0},
	}).Return(nil)

	handler := UpdateWorkerRatesAdmin(slog.Default(), m)

	body := `[{"worker": "Piet", "hourly_rate": 45}, {"worker": "Klaas", "hourly_rate": 0}]`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/workers/rates", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	m.AssertExpectations(t)
}

func TestUpdateWorkerRatesAdmin_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
		code   int
	}{
		{"wrong method", http.MethodPost, `[]`, http.StatusMethodNotAllowed},
		{"invalid json", http.MethodPut, `[`, http.StatusBadRequest},
		{"negative rate", http.MethodPut, `[{"worker": "Piet", "hourly_rate": -5}]`, http.StatusBadRequest},
		{"missing worker", http.MethodPut, `[{"hourly_rate": 5}]`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockUpdateRatesProvider)
			handler := UpdateWorkerRatesAdmin(slog.Default(), m)

			req := httptest.NewRequest(tt.method, "/api/admin/workers/rates", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.code, rr.Code)
			m.AssertNotCalled(t, "UpdateWorkerRates", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateWorkerRatesAdmin_StorageError(t *testing.T) {
	m := new(MockUpdateRatesProvider)
	m.On("UpdateWorkerRates", mock.Anything, mock.Anything).Return(assert.AnError)

	handler := UpdateWorkerRatesAdmin(slog.Default(), m)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/workers/rates", strings.NewReader(`[{"worker": "Piet", "hourly_rate": 1}]`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
