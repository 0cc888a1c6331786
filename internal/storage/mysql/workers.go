package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"proxima-dashboard/internal/storage"
)

const errDuplicateEntry = 1062

func (s *Storage) GetAllWorkers(ctx context.Context) ([]storage.WorkerRate, error) {
	const op = "storage.mysql.GetAllWorkers"

	rows, err := s.db.QueryContext(ctx, `SELECT name, hourly_rate FROM workers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: query workers: %w", op, err)
	}
	defer rows.Close()

	var workers []storage.WorkerRate
	for rows.Next() {
		var (
			w    storage.WorkerRate
			rate sql.NullFloat64
		)

		if err := rows.Scan(&w.Worker, &rate); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		w.HourlyRate = rate.Float64

		workers = append(workers, w)
	}

	return workers, rows.Err()
}

// GetWorkerRates returns only workers with a rate set. Missing workers cost
// nothing in the statistics.
func (s *Storage) GetWorkerRates(ctx context.Context) (storage.RateTable, error) {
	const op = "storage.mysql.GetWorkerRates"

	rows, err := s.db.QueryContext(ctx, `SELECT name, hourly_rate FROM workers WHERE hourly_rate IS NOT NULL`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	rates := storage.RateTable{}
	for rows.Next() {
		var (
			name string
			rate float64
		)
		if err := rows.Scan(&name, &rate); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		rates[name] = rate
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return rates, nil
}

func (s *Storage) UpdateWorkerRates(ctx context.Context, rates []storage.WorkerRate) error {
	const op = "storage.mysql.UpdateWorkerRates"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO workers (name, hourly_rate)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE hourly_rate = VALUES(hourly_rate)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	for _, r := range rates {
		if _, err := stmt.ExecContext(ctx, r.Worker, r.HourlyRate); err != nil {
			return fmt.Errorf("%s: worker=%s: %w", op, r.Worker, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

func (s *Storage) CreateWorker(ctx context.Context, w storage.SaveWorker) error {
	const op = "storage.mysql.CreateWorker"

	_, err := s.db.ExecContext(ctx, `INSERT INTO workers (name, hourly_rate) VALUES (?, ?)`, w.Name, nullFloat(w.HourlyRate))
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
			return fmt.Errorf("%s: name=%s: %w", op, w.Name, storage.ErrWorkerExists)
		}
		return fmt.Errorf("%s: name=%s: %w", op, w.Name, err)
	}

	return nil
}

// DeleteWorker drops the worker and the planning that belongs to them.
// Logged hours are history and stay.
func (s *Storage) DeleteWorker(ctx context.Context, name string) error {
	const op = "storage.mysql.DeleteWorker"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM availabilities WHERE worker = ?`, name); err != nil {
		return fmt.Errorf("%s: delete availabilities of %s: %w", op, name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM recurring_absences WHERE worker = ?`, name); err != nil {
		return fmt.Errorf("%s: delete absences of %s: %w", op, name, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM workers WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("%s: name=%s: %w", op, name, err)
	}
	if err := expectAffected(res, op, name, storage.ErrWorkerNotFound); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}
