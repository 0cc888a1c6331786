package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"proxima-dashboard/internal/storage"
)

var validate = validator.New()

type WorkLogSaver interface {
	SaveWorkLog(ctx context.Context, l storage.WorkLog) error
}

func SaveWorkLog(log *slog.Logger, saver WorkLogSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.logs.save.SaveWorkLog"

		var req storage.SaveWorkLog
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			log.Warn("invalid work log", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		entry := storage.WorkLog{
			ID:        uuid.NewString(),
			OrderID:   req.OrderID,
			Worker:    req.Worker,
			Date:      req.Date,
			Hours:     req.Hours,
			Category:  req.Category,
			Activity:  req.Activity,
			Note:      req.Note,
			Timestamp: time.Now().UnixMilli(),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveWorkLog(ctx, entry); err != nil {
			log.Error("failed to save work log", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("work log saved",
			slog.String("id", entry.ID),
			slog.String("order_id", entry.OrderID),
			slog.Float64("hours", entry.Hours),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, entry)
	}
}
