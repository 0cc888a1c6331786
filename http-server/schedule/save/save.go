package save

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"proxima-dashboard/internal/service/schedule"
	"proxima-dashboard/internal/storage"
)

var validate = validator.New()

type AvailabilitySaver interface {
	SaveAvailabilities(ctx context.Context, list []storage.Availability) error
}

type AbsenceSaver interface {
	SaveRecurringAbsence(ctx context.Context, a storage.RecurringAbsence) error
}

type GlobalDaySaver interface {
	SaveGlobalDay(ctx context.Context, d storage.GlobalDay) error
}

type Response struct {
	Status string `json:"status"`
	Saved  int    `json:"saved"`
}

// SaveAvailabilities upserts a batch of planner cells. Entries without an
// id get a new one.
func SaveAvailabilities(log *slog.Logger, saver AvailabilitySaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.save.SaveAvailabilities"

		var req storage.SaveAvailabilities
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "Bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		for i, a := range req.Availabilities {
			if !schedule.ValidAvailabilityType(a.Type) {
				http.Error(w, fmt.Sprintf("Availability %d: unknown type %q", i, a.Type), http.StatusBadRequest)
				return
			}
			if a.ID == "" {
				req.Availabilities[i].ID = "av_" + uuid.NewString()
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveAvailabilities(ctx, req.Availabilities); err != nil {
			log.Error("failed to save availabilities", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("availabilities saved", slog.Int("saved_count", len(req.Availabilities)))

		render.JSON(w, r, map[string]any{
			"status":         "success",
			"saved":          len(req.Availabilities),
			"availabilities": req.Availabilities,
		})
	}
}

// SaveRecurringAbsence stores an absence. The weekday always follows the
// start date.
func SaveRecurringAbsence(log *slog.Logger, saver AbsenceSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.save.SaveRecurringAbsence"

		var req storage.RecurringAbsence
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(req); err != nil {
			http.Error(w, "Bad request: "+err.Error(), http.StatusBadRequest)
			return
		}

		day, err := schedule.DayOfWeek(req.StartDate)
		if err != nil {
			http.Error(w, "Bad request: "+err.Error(), http.StatusBadRequest)
			return
		}
		req.DayOfWeek = day

		if req.ID == "" {
			req.ID = "abs_" + uuid.NewString()
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SaveRecurringAbsence(ctx, req); err != nil {
			log.Error("failed to save recurring absence", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, req)
	}
}

func SaveGlobalDay(log *slog.Logger, saver GlobalDaySaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.save.SaveGlobalDay"

		var req storage.GlobalDay
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

		if err := saver.SaveGlobalDay(ctx, req); err != nil {
			log.Error("failed to save global day", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Info("global day saved", slog.String("date", req.Date), slog.String("type", req.Type))

		render.JSON(w, r, Response{Status: "success", Saved: 1})
	}
}
