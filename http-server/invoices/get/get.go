package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"proxima-dashboard/internal/service/statistics"
	"proxima-dashboard/internal/storage"
)

type InvoiceProvider interface {
	GetAllInvoices(ctx context.Context) ([]storage.PurchaseInvoice, error)
}

type Response struct {
	Invoices []storage.PurchaseInvoice `json:"invoices"`
	Totals   map[string]float64        `json:"totals"`
	Total    float64                   `json:"total"`
}

func GetInvoices(log *slog.Logger, provider InvoiceProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invoices.get.GetInvoices"

		selection := r.URL.Query().Get("order_id")
		if selection == "" {
			selection = statistics.AllOrders
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		all, err := provider.GetAllInvoices(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load invoices")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		invoices := statistics.SelectInvoices(all, selection)
		if invoices == nil {
			invoices = []storage.PurchaseInvoice{}
		}

		var total float64
		for _, inv := range invoices {
			total += inv.Amount
		}

		render.JSON(w, r, Response{
			Invoices: invoices,
			Totals:   statistics.InvoiceTotals(invoices),
			Total:    total,
		})
	}
}
