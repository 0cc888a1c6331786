package remove

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type InvoiceDeleter interface {
	DeleteInvoice(ctx context.Context, id string) error
}

type Response struct {
	Status string `json:"status"`
}

func DeleteInvoice(log *slog.Logger, deleter InvoiceDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invoices.remove.DeleteInvoice"

		id := chi.URLParam(r, "invoiceId")
		if id == "" {
			http.Error(w, "Bad request: missing invoice id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteInvoice(ctx, id); err != nil {
			log.Error("failed to delete invoice", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("invoice deleted", slog.String("invoice_id", id))

		render.JSON(w, r, Response{Status: "deleted"})
	}
}
