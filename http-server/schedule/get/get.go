package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"proxima-dashboard/internal/service/schedule"
)

type Calendar interface {
	Calendar(ctx context.Context, from, to string) ([]schedule.Day, error)
}

type Response struct {
	From string         `json:"from"`
	To   string         `json:"to"`
	Days []schedule.Day `json:"days"`
}

// GetSchedule answers the planner for ?from=&to=. Without a range it shows
// the current week starting on Monday.
func GetSchedule(log *slog.Logger, cal Calendar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.get.GetSchedule"

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" && to == "" {
			from, to = currentWeek(time.Now())
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		days, err := cal.Calendar(ctx, from, to)
		if errors.Is(err, schedule.ErrInvalidRange) {
			http.Error(w, "Bad request: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load schedule")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{From: from, To: to, Days: days})
	}
}

func currentWeek(now time.Time) (string, string) {
	offset := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -offset)
	return monday.Format("2006-01-02"), monday.AddDate(0, 0, 6).Format("2006-01-02")
}
