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

type Response struct {
	Status string `json:"status"`
}

type AvailabilityDeleter interface {
	DeleteAvailability(ctx context.Context, id string) error
}

type AbsenceDeleter interface {
	DeleteRecurringAbsence(ctx context.Context, id string) error
}

type GlobalDayDeleter interface {
	DeleteGlobalDay(ctx context.Context, date string) error
}

func DeleteAvailability(log *slog.Logger, deleter AvailabilityDeleter) http.HandlerFunc {
	return deleteBy(log, "handlers.schedule.remove.DeleteAvailability", "id", storage.ErrAvailabilityNotFound, deleter.DeleteAvailability)
}

func DeleteRecurringAbsence(log *slog.Logger, deleter AbsenceDeleter) http.HandlerFunc {
	return deleteBy(log, "handlers.schedule.remove.DeleteRecurringAbsence", "id", storage.ErrAbsenceNotFound, deleter.DeleteRecurringAbsence)
}

// DeleteGlobalDay turns a closed day back into a normal working day.
func DeleteGlobalDay(log *slog.Logger, deleter GlobalDayDeleter) http.HandlerFunc {
	return deleteBy(log, "handlers.schedule.remove.DeleteGlobalDay", "date", storage.ErrGlobalDayNotFound, deleter.DeleteGlobalDay)
}

func deleteBy(log *slog.Logger, op, param string, notFound error, del func(ctx context.Context, key string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, param)
		if key == "" {
			http.Error(w, "Bad request: missing "+param, http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err := del(ctx, key)
		if errors.Is(err, notFound) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("failed to delete", slog.String("op", op), slog.String(param, key), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: "deleted"})
	}
}
