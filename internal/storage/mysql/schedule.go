package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"proxima-dashboard/internal/storage"
)

func (s *Storage) GetAllAvailabilities(ctx context.Context) ([]storage.Availability, error) {
	const op = "storage.mysql.GetAllAvailabilities"

	rows, err := s.db.QueryContext(ctx, `SELECT id, worker, av_date, type FROM availabilities ORDER BY av_date ASC, worker ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: query availabilities: %w", op, err)
	}
	defer rows.Close()

	var list []storage.Availability
	for rows.Next() {
		var (
			a    storage.Availability
			date sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Worker, &date, &a.Type); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		a.Date = normalizeDate(date.String)
		list = append(list, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return list, nil
}

// SaveAvailabilities upserts the whole batch in one transaction.
func (s *Storage) SaveAvailabilities(ctx context.Context, list []storage.Availability) error {
	const op = "storage.mysql.SaveAvailabilities"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO availabilities (id, worker, av_date, type)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			worker = VALUES(worker),
			av_date = VALUES(av_date),
			type = VALUES(type)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	for _, a := range list {
		if _, err := stmt.ExecContext(ctx, a.ID, a.Worker, a.Date, a.Type); err != nil {
			return fmt.Errorf("%s: id=%s worker=%s: %w", op, a.ID, a.Worker, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

func (s *Storage) DeleteAvailability(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteAvailability"

	res, err := s.db.ExecContext(ctx, `DELETE FROM availabilities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: id=%s: %w", op, id, err)
	}

	return expectAffected(res, op, id, storage.ErrAvailabilityNotFound)
}

func (s *Storage) GetRecurringAbsences(ctx context.Context) ([]storage.RecurringAbsence, error) {
	const op = "storage.mysql.GetRecurringAbsences"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, worker, type, time_of_day, day_of_week, start_date, number_of_weeks, note
		FROM recurring_absences
		ORDER BY start_date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: query absences: %w", op, err)
	}
	defer rows.Close()

	var list []storage.RecurringAbsence
	for rows.Next() {
		var (
			a     storage.RecurringAbsence
			start sql.NullString
			note  sql.NullString
		)
		err := rows.Scan(&a.ID, &a.Worker, &a.Type, &a.TimeOfDay, &a.DayOfWeek, &start, &a.NumberOfWeeks, &note)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		a.StartDate = normalizeDate(start.String)
		a.Note = note.String
		list = append(list, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return list, nil
}

func (s *Storage) SaveRecurringAbsence(ctx context.Context, a storage.RecurringAbsence) error {
	const op = "storage.mysql.SaveRecurringAbsence"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO recurring_absences (id, worker, type, time_of_day, day_of_week, start_date, number_of_weeks, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			worker = VALUES(worker),
			type = VALUES(type),
			time_of_day = VALUES(time_of_day),
			day_of_week = VALUES(day_of_week),
			start_date = VALUES(start_date),
			number_of_weeks = VALUES(number_of_weeks),
			note = VALUES(note)
	`, a.ID, a.Worker, a.Type, a.TimeOfDay, a.DayOfWeek, a.StartDate, a.NumberOfWeeks, nullString(a.Note))
	if err != nil {
		return fmt.Errorf("%s: id=%s: %w", op, a.ID, err)
	}

	return nil
}

func (s *Storage) DeleteRecurringAbsence(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteRecurringAbsence"

	res, err := s.db.ExecContext(ctx, `DELETE FROM recurring_absences WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: id=%s: %w", op, id, err)
	}

	return expectAffected(res, op, id, storage.ErrAbsenceNotFound)
}

func (s *Storage) GetGlobalDays(ctx context.Context) ([]storage.GlobalDay, error) {
	const op = "storage.mysql.GetGlobalDays"

	rows, err := s.db.QueryContext(ctx, `SELECT day_date, type FROM global_days ORDER BY day_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: query global days: %w", op, err)
	}
	defer rows.Close()

	var days []storage.GlobalDay
	for rows.Next() {
		var (
			d    storage.GlobalDay
			date sql.NullString
		)
		if err := rows.Scan(&date, &d.Type); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		d.Date = normalizeDate(date.String)
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return days, nil
}

// SaveGlobalDay sets the type of a date, one type per date.
func (s *Storage) SaveGlobalDay(ctx context.Context, d storage.GlobalDay) error {
	const op = "storage.mysql.SaveGlobalDay"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO global_days (day_date, type) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE type = VALUES(type)
	`, d.Date, d.Type)
	if err != nil {
		return fmt.Errorf("%s: date=%s: %w", op, d.Date, err)
	}

	return nil
}

func (s *Storage) DeleteGlobalDay(ctx context.Context, date string) error {
	const op = "storage.mysql.DeleteGlobalDay"

	res, err := s.db.ExecContext(ctx, `DELETE FROM global_days WHERE day_date = ?`, date)
	if err != nil {
		return fmt.Errorf("%s: date=%s: %w", op, date, err)
	}

	return expectAffected(res, op, date, storage.ErrGlobalDayNotFound)
}
