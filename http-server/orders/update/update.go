package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"proxima-dashboard/internal/constants"
	"proxima-dashboard/internal/storage"
)

var validate = validator.New()

type OrderUpdater interface {
	UpdateOrder(ctx context.Context, o storage.WorkOrder) error
}

type Response struct {
	Status string `json:"status"`
}

func UpdateOrder(log *slog.Logger, updater OrderUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.update.UpdateOrder"

		id := chi.URLParam(r, "orderId")
		if id == "" {
			http.Error(w, "Bad request: missing order id", http.StatusBadRequest)
			return
		}

		var req storage.SaveOrder
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		req.OrderNumber = strings.TrimSpace(req.OrderNumber)
		req.Client = strings.TrimSpace(req.Client)
		if req.Status == "" {
			req.Status = storage.StatusPending
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "Bad request: "+err.Error(), http.StatusBadRequest)
			return
		}
		if !constants.OrderStatuses[req.Status] {
			http.Error(w, "Bad request: unknown status "+req.Status, http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err := updater.UpdateOrder(ctx, storage.WorkOrder{
			ID:          id,
			OrderNumber: req.OrderNumber,
			Client:      req.Client,
			OrderValue:  req.OrderValue,
			HourBudget:  req.HourBudget,
			Status:      req.Status,
		})
		if errors.Is(err, storage.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to update order", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("order updated", slog.String("order_id", id))

		render.JSON(w, r, Response{Status: "updated"})
	}
}
