package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"proxima-dashboard/internal/storage"
)

const dateLayout = "2006-01-02"

func (s *Storage) GetAllWorkLogs(ctx context.Context) ([]storage.WorkLog, error) {
	const op = "storage.mysql.GetAllWorkLogs"

	stmt := `
		SELECT id, order_id, worker, log_date, hours, category, activity, note, created_ts
		FROM work_logs
		ORDER BY created_ts ASC
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: query work logs: %w", op, err)
	}
	defer rows.Close()

	var logs []storage.WorkLog
	for rows.Next() {
		var (
			l                        storage.WorkLog
			date                     sql.NullString
			hours                    sql.NullFloat64
			category, activity, note sql.NullString
		)

		err := rows.Scan(&l.ID, &l.OrderID, &l.Worker, &date, &hours, &category, &activity, &note, &l.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		l.Date = normalizeDate(date.String)
		l.Hours = hours.Float64
		l.Category = category.String
		l.Activity = activity.String
		l.Note = note.String

		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return logs, nil
}

func (s *Storage) SaveWorkLog(ctx context.Context, l storage.WorkLog) error {
	const op = "storage.mysql.SaveWorkLog"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO work_logs (id, order_id, worker, log_date, hours, category, activity, note, created_ts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, l.ID, l.OrderID, l.Worker, l.Date, l.Hours, nullString(l.Category), nullString(l.Activity), l.Note, l.Timestamp)
	if err != nil {
		return fmt.Errorf("%s: insert log for order %s: %w", op, l.OrderID, err)
	}

	return nil
}

func (s *Storage) UpdateWorkLog(ctx context.Context, orderID, logID string, hours float64, note string) error {
	const op = "storage.mysql.UpdateWorkLog"

	res, err := s.db.ExecContext(ctx, `
		UPDATE work_logs SET hours = ?, note = ? WHERE id = ? AND order_id = ?
	`, hours, note, logID, orderID)
	if err != nil {
		return fmt.Errorf("%s: id=%s: %w", op, logID, err)
	}

	return expectAffected(res, op, logID, storage.ErrLogNotFound)
}

func (s *Storage) DeleteWorkLog(ctx context.Context, orderID, logID string) error {
	const op = "storage.mysql.DeleteWorkLog"

	res, err := s.db.ExecContext(ctx, `DELETE FROM work_logs WHERE id = ? AND order_id = ?`, logID, orderID)
	if err != nil {
		return fmt.Errorf("%s: id=%s: %w", op, logID, err)
	}

	return expectAffected(res, op, logID, storage.ErrLogNotFound)
}

// expectAffected maps zero affected rows to notFound. The DSN sets
// clientFoundRows so an UPDATE with unchanged values still counts.
func expectAffected(res sql.Result, op, id string, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: id=%s: %w", op, id, notFound)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// normalizeDate turns a DATE column into YYYY-MM-DD whether or not the
// connection has parseTime enabled.
func normalizeDate(s string) string {
	if len(s) < len(dateLayout) {
		return s
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(dateLayout)
	}
	return s[:len(dateLayout)]
}
