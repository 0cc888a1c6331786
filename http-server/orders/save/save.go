package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"proxima-dashboard/internal/constants"
	"proxima-dashboard/internal/storage"
)

var validate = validator.New()

type OrderSaver interface {
	SaveOrder(ctx context.Context, o storage.WorkOrder) error
}

func SaveOrder(log *slog.Logger, saver OrderSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.save.SaveOrder"

		var req storage.SaveOrder
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
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

		order := storage.WorkOrder{
			ID:          "ord_" + uuid.NewString(),
			OrderNumber: req.OrderNumber,
			Client:      req.Client,
			OrderValue:  req.OrderValue,
			HourBudget:  req.HourBudget,
			Status:      req.Status,
			CreatedAt:   time.Now().UnixMilli(),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveOrder(ctx, order); err != nil {
			log.Error("failed to save order", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("order created", slog.String("order_id", order.ID), slog.String("order_number", order.OrderNumber))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, order)
	}
}
