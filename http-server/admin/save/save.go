package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"proxima-dashboard/internal/storage"
)

var validate = validator.New()

type WorkerCreator interface {
	CreateWorker(ctx context.Context, w storage.SaveWorker) error
}

func CreateWorkerAdmin(log *slog.Logger, creator WorkerCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.save.CreateWorkerAdmin"

		var worker storage.SaveWorker
		if err := json.NewDecoder(r.Body).Decode(&worker); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		worker.Name = strings.TrimSpace(worker.Name)

		if err := validate.Struct(worker); err != nil {
			http.Error(w, "Bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err := creator.CreateWorker(ctx, worker)
		if errors.Is(err, storage.ErrWorkerExists) {
			http.Error(w, "Worker already exists", http.StatusConflict)
			return
		}
		if err != nil {
			log.Error("failed to create worker", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("worker created", slog.String("worker", worker.Name))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, worker)
	}
}
