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
	"proxima-dashboard/internal/storage"
)

var validate = validator.New()

type InvoiceSaver interface {
	SaveInvoice(ctx context.Context, inv storage.PurchaseInvoice) error
}

func SaveInvoice(log *slog.Logger, saver InvoiceSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invoices.save.SaveInvoice"

		var req storage.SaveInvoice
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		req.Supplier = strings.TrimSpace(req.Supplier)
		req.Description = strings.TrimSpace(req.Description)

		if err := validate.Struct(req); err != nil {
			http.Error(w, "Bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		inv := storage.PurchaseInvoice{
			ID:          "inv_" + uuid.NewString(),
			OrderID:     req.OrderID,
			Supplier:    req.Supplier,
			Description: req.Description,
			Amount:      req.Amount,
			Date:        req.Date,
			Category:    req.Category,
			Timestamp:   time.Now().UnixMilli(),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveInvoice(ctx, inv); err != nil {
			log.Error("failed to save invoice", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, inv)
	}
}
