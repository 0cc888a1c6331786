package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"proxima-dashboard/internal/service/statistics"
)

type LogRegistry interface {
	Registry(ctx context.Context, selection string) ([]statistics.RegistryRow, error)
}

type Response struct {
	Logs  []statistics.RegistryRow `json:"logs"`
	Total int                      `json:"total"`
}

func GetLogs(log *slog.Logger, registry LogRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.logs.get.GetLogs"

		selection := r.URL.Query().Get("order_id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rows, err := registry.Registry(ctx, selection)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load log registry")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if rows == nil {
			rows = []statistics.RegistryRow{}
		}

		render.JSON(w, r, Response{Logs: rows, Total: len(rows)})
	}
}
