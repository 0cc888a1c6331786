package remove

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"proxima-dashboard/internal/service/access"
	"proxima-dashboard/internal/storage"
)

type LogDeleter interface {
	Delete(ctx context.Context, password, orderID, logID string, m access.LogMutator) error
}

type Request struct {
	Password string `json:"password"`
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func DeleteWorkLog(log *slog.Logger, gate LogDeleter, mutator access.LogMutator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.logs.remove.DeleteWorkLog"

		orderID := chi.URLParam(r, "orderId")
		logID := chi.URLParam(r, "logId")

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err := gate.Delete(ctx, req.Password, orderID, logID, mutator)
		switch {
		case errors.Is(err, access.ErrWrongPassword):
			log.Warn("wrong admin password", slog.String("op", op), slog.String("log_id", logID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, Response{Status: "error", Error: "wrong password"})
			return
		case errors.Is(err, storage.ErrLogNotFound):
			http.Error(w, "Work log not found", http.StatusNotFound)
			return
		case err != nil:
			log.Error("failed to delete work log", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("work log deleted", slog.String("order_id", orderID), slog.String("log_id", logID))

		render.JSON(w, r, Response{Status: "deleted"})
	}
}
