package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"proxima-dashboard/internal/service/statistics"
)

type ReportProvider interface {
	Report(ctx context.Context, selection string) (statistics.Report, error)
}

// GetStatistics returns the hour, budget and cost report. ?order_id=<id>
// narrows it to one order, missing or ALL means every order.
func GetStatistics(log *slog.Logger, reports ReportProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.statistics.get.GetStatistics"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		selection := r.URL.Query().Get("order_id")
		if selection == "" {
			selection = statistics.AllOrders
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		report, err := reports.Report(ctx, selection)
		if err != nil {
			log.Error("failed to build statistics", slog.String("selection", selection), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Debug("statistics built",
			slog.String("selection", selection),
			slog.Int("logs", len(report.Registry)),
		)

		render.JSON(w, r, report)
	}
}
