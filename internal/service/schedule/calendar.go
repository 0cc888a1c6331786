package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"proxima-dashboard/internal/constants"
	"proxima-dashboard/internal/storage"
)

const (
	dateLayout = "2006-01-02"
	// MaxDays bounds one calendar request.
	MaxDays = 366
)

var ErrInvalidRange = errors.New("invalid date range")

type Part string

const (
	Full      Part = "FULL"
	Morning   Part = "MORNING"
	Afternoon Part = "AFTERNOON"
)

type Source string

const (
	FromAvailability Source = "availability"
	FromRecurring    Source = "recurring"
)

type Entry struct {
	ID     string `json:"id"`
	Worker string `json:"worker"`
	Type   string `json:"type"`
	Part   Part   `json:"part"`
	Source Source `json:"source"`
}

type Day struct {
	Date string `json:"date"`
	// Global is HOLIDAY or ADV when the whole workshop is off.
	Global  string  `json:"global,omitempty"`
	Entries []Entry `json:"entries"`
}

type Input struct {
	Availabilities []storage.Availability
	Absences       []storage.RecurringAbsence
	GlobalDays     []storage.GlobalDay
}

// ParseAvailabilityType splits a planner type such as SICK_MORNING into
// its main type and the part of the day.
func ParseAvailabilityType(s string) (string, Part) {
	main, part, ok := strings.Cut(s, "_")
	if !ok {
		return s, Full
	}
	return main, Part(part)
}

func ValidAvailabilityType(s string) bool {
	main, part := ParseAvailabilityType(s)
	if !constants.AvailabilityTypes[main] {
		return false
	}
	return part == Full || part == Morning || part == Afternoon
}

// DayOfWeek returns the weekday of an ISO date, 0 is Sunday.
func DayOfWeek(date string) (int, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, err
	}
	return int(d.Weekday()), nil
}

// AbsenceOn reports whether a recurring absence falls on day.
func AbsenceOn(a storage.RecurringAbsence, day time.Time) bool {
	if int(day.Weekday()) != a.DayOfWeek {
		return false
	}

	start, err := time.Parse(dateLayout, a.StartDate)
	if err != nil {
		return false
	}

	diff := int(day.Sub(start).Hours() / 24)
	if diff < 0 {
		return false
	}
	return diff/7 < a.NumberOfWeeks
}

func absencePart(timeOfDay string) Part {
	switch timeOfDay {
	case "MORNING":
		return Morning
	case "AFTERNOON":
		return Afternoon
	}
	return Full
}

// ParseRange validates an inclusive from..to range of ISO dates.
func ParseRange(from, to string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from: %v", ErrInvalidRange, err)
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to: %v", ErrInvalidRange, err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s is before %s", ErrInvalidRange, to, from)
	}
	if int(end.Sub(start).Hours()/24) >= MaxDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: more than %d days", ErrInvalidRange, MaxDays)
	}
	return start, end, nil
}

// Calendar lays out every day between start and end inclusive. Dated
// availabilities come before recurring absences on the same day.
func Calendar(in Input, start, end time.Time) []Day {
	globals := make(map[string]string, len(in.GlobalDays))
	for _, g := range in.GlobalDays {
		globals[g.Date] = g.Type
	}

	byDate := make(map[string][]storage.Availability)
	for _, a := range in.Availabilities {
		byDate[a.Date] = append(byDate[a.Date], a)
	}

	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		iso := d.Format(dateLayout)
		day := Day{Date: iso, Global: globals[iso], Entries: []Entry{}}

		for _, a := range byDate[iso] {
			main, part := ParseAvailabilityType(a.Type)
			day.Entries = append(day.Entries, Entry{ID: a.ID, Worker: a.Worker, Type: main, Part: part, Source: FromAvailability})
		}

		for _, a := range in.Absences {
			if AbsenceOn(a, d) {
				day.Entries = append(day.Entries, Entry{ID: a.ID, Worker: a.Worker, Type: a.Type, Part: absencePart(a.TimeOfDay), Source: FromRecurring})
			}
		}

		days = append(days, day)
	}

	return days
}
