package get

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"

	"proxima-dashboard/internal/storage"
)

type MockOrders struct {
	mock.Mock
}

func (m *MockOrders) GetAllOrders(ctx context.Context) ([]storage.WorkOrder, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]storage.WorkOrder)
	return orders, args.Error(1)
}

func (m *MockOrders) GetOrder(ctx context.Context, id string) (storage.WorkOrder, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(storage.WorkOrder), args.Error(1)
}

func newRouter(m *MockOrders) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/orders", GetOrders(slog.Default(), m))
	r.Get("/api/orders/{orderId}", GetOrder(slog.Default(), m))
	return r
}

func TestGetOrders(t *testing.T) {
	value := 12000.0
	mockOrders := new(MockOrders)
	mockOrders.On("GetAllOrders", mock.Anything).Return([]storage.WorkOrder{
		{ID: "o1", OrderNumber: "24-001", Client: "Acme", OrderValue: &value},
		{ID: "o2", OrderNumber: "24-002", Client: "Bouw BV"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rr := httptest.NewRecorder()
	newRouter(mockOrders).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []storage.WorkOrder
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	require.Len(t, resp, 2)
	require.NotNil(t, resp[0].OrderValue)
	assert.Equal(t, 12000.0, *resp[0].OrderValue)
	assert.Nil(t, resp[1].OrderValue)
}

func TestGetOrders_EmptyIsArray(t *testing.T) {
	mockOrders := new(MockOrders)
	mockOrders.On("GetAllOrders", mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rr := httptest.NewRecorder()
	newRouter(mockOrders).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestGetOrder(t *testing.T) {
	tests := []struct {
		name       string
		order      storage.WorkOrder
		err        error
		wantStatus int
	}{
		{"found", storage.WorkOrder{ID: "o1", OrderNumber: "24-001"}, nil, http.StatusOK},
		{"not found", storage.WorkOrder{}, storage.ErrOrderNotFound, http.StatusNotFound},
		{"storage error", storage.WorkOrder{}, assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrders := new(MockOrders)
			mockOrders.On("GetOrder", mock.Anything, "o1").Return(tt.order, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/api/orders/o1", nil)
			rr := httptest.NewRecorder()
			newRouter(mockOrders).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			mockOrders.AssertExpectations(t)
		})
	}
}
