package storage

import "errors"

var (
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrAbsenceNotFound      = errors.New("recurring absence not found")
	ErrGlobalDayNotFound    = errors.New("global day not found")
)

// Availability marks a worker on one date. Type is WORK, ABSENT, VACATION,
// SICK or ADV, optionally suffixed with _MORNING or _AFTERNOON.
type Availability struct {
	ID     string `json:"id"`
	Worker string `json:"worker" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Type   string `json:"type" validate:"required"`
}

type SaveAvailabilities struct {
	Availabilities []Availability `json:"availabilities" validate:"required,min=1,dive"`
}

// RecurringAbsence repeats on DayOfWeek (0 is Sunday) for NumberOfWeeks
// weeks counted from StartDate.
type RecurringAbsence struct {
	ID            string `json:"id"`
	Worker        string `json:"worker" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=SICK VACATION ABSENT"`
	TimeOfDay     string `json:"time_of_day" validate:"required,oneof=MORNING AFTERNOON ALL_DAY"`
	DayOfWeek     int    `json:"day_of_week"`
	StartDate     string `json:"start_date" validate:"required,datetime=2006-01-02"`
	NumberOfWeeks int    `json:"number_of_weeks" validate:"gte=1,lte=52"`
	Note          string `json:"note,omitempty"`
}

// GlobalDay closes the workshop for everyone on Date.
type GlobalDay struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Type string `json:"type" validate:"required,oneof=HOLIDAY ADV"`
}
