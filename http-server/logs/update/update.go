package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"proxima-dashboard/internal/service/access"
	"proxima-dashboard/internal/storage"
)

var validate = validator.New()

type LogEditor interface {
	Edit(ctx context.Context, password, orderID, logID string, hours float64, note string, m access.LogMutator) error
}

type Request struct {
	Password string  `json:"password"`
	Hours    float64 `json:"hours" validate:"gte=0,lte=24"`
	Note     string  `json:"note"`
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// UpdateWorkLog changes hours and note of one log after the admin password
// check. A wrong password answers 403 and may simply be retried.
func UpdateWorkLog(log *slog.Logger, gate LogEditor, mutator access.LogMutator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.logs.update.UpdateWorkLog"

		orderID := chi.URLParam(r, "orderId")
		logID := chi.URLParam(r, "logId")

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "Bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err := gate.Edit(ctx, req.Password, orderID, logID, req.Hours, req.Note, mutator)
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
			log.Error("failed to update work log", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("work log updated", slog.String("order_id", orderID), slog.String("log_id", logID))

		render.JSON(w, r, Response{Status: "updated"})
	}
}
