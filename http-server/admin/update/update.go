package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"proxima-dashboard/internal/storage"
)

var validate = validator.New()

type UpdateRatesProvider interface {
	UpdateWorkerRates(ctx context.Context, rates []storage.WorkerRate) error
}

func UpdateWorkerRatesAdmin(log *slog.Logger, update UpdateRatesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.update.UpdateWorkerRatesAdmin"

		if r.Method != http.MethodPut {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var rates []storage.WorkerRate
		if err := json.NewDecoder(r.Body).Decode(&rates); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Var(rates, "required,dive"); err != nil {
			http.Error(w, "Bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := update.UpdateWorkerRates(ctx, rates); err != nil {
			log.Error("failed to update worker rates", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("worker rates updated", slog.Int("count", len(rates)))

		w.WriteHeader(http.StatusOK)
	}
}
