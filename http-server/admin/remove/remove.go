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

type WorkerDeleter interface {
	DeleteWorker(ctx context.Context, name string) error
}

type Response struct {
	Status string `json:"status"`
}

func DeleteWorkerAdmin(log *slog.Logger, deleter WorkerDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.remove.DeleteWorkerAdmin"

		name := chi.URLParam(r, "name")
		if name == "" {
			http.Error(w, "Bad request: missing worker", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err := deleter.DeleteWorker(ctx, name)
		if errors.Is(err, storage.ErrWorkerNotFound) {
			http.Error(w, "Worker not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to delete worker", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("worker deleted", slog.String("worker", name))

		render.JSON(w, r, Response{Status: "deleted"})
	}
}
