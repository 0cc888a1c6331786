package remove

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

type OrderDeleter interface {
	DeleteOrder(ctx context.Context, id string) error
}

type Response struct {
	Status string `json:"status"`
}

// DeleteOrder removes an order with its logs and invoices.
func DeleteOrder(log *slog.Logger, deleter OrderDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.remove.DeleteOrder"

		id := chi.URLParam(r, "orderId")
		if id == "" {
			http.Error(w, "Bad request: missing order id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err := deleter.DeleteOrder(ctx, id)
		if errors.Is(err, storage.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to delete order", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("order deleted", slog.String("order_id", id))

		render.JSON(w, r, Response{Status: "deleted"})
	}
}
