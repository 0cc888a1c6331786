package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"proxima-dashboard/internal/storage"
)

type Orders interface {
	GetAllOrders(ctx context.Context) ([]storage.WorkOrder, error)
	GetOrder(ctx context.Context, id string) (storage.WorkOrder, error)
}

// GetOrders feeds the order selector of the dashboard.
func GetOrders(log *slog.Logger, orders Orders) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.get.GetOrders"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := orders.GetAllOrders(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load orders")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if list == nil {
			list = []storage.WorkOrder{}
		}

		render.JSON(w, r, list)
	}
}

func GetOrder(log *slog.Logger, orders Orders) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.get.GetOrder"

		id := chi.URLParam(r, "orderId")
		if id == "" {
			http.Error(w, "Bad request: missing order id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		order, err := orders.GetOrder(ctx, id)
		if errors.Is(err, storage.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load order")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, order)
	}
}
