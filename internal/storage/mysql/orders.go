package mysql

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"proxima-dashboard/internal/storage"
)

func (s *Storage) GetAllOrders(ctx context.Context) ([]storage.WorkOrder, error) {
	const op = "storage.mysql.GetAllOrders"

	stmt := `
		SELECT id, order_number, client, order_value, hour_budget, status, created_at
		FROM work_orders
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: query orders: %w", op, err)
	}
	defer rows.Close()

	var orders []storage.WorkOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return orders, nil
}

func (s *Storage) GetOrder(ctx context.Context, id string) (storage.WorkOrder, error) {
	const op = "storage.mysql.GetOrder"

	row := s.db.QueryRowContext(ctx, `
		SELECT id, order_number, client, order_value, hour_budget, status, created_at
		FROM work_orders
		WHERE id = ?
	`, id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.WorkOrder{}, storage.ErrOrderNotFound
	}
	if err != nil {
		return storage.WorkOrder{}, fmt.Errorf("%s: id=%s: %w", op, id, err)
	}

	return o, nil
}

func (s *Storage) SaveOrder(ctx context.Context, o storage.WorkOrder) error {
	const op = "storage.mysql.SaveOrder"

	budget, err := encodeBudget(o.HourBudget)
	if err != nil {
		return fmt.Errorf("%s: hour_budget: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO work_orders (id, order_number, client, order_value, hour_budget, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, o.ID, o.OrderNumber, o.Client, nullFloat(o.OrderValue), budget, o.Status, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: insert order %s: %w", op, o.OrderNumber, err)
	}

	return nil
}

// UpdateOrder rewrites everything except id and created_at.
func (s *Storage) UpdateOrder(ctx context.Context, o storage.WorkOrder) error {
	const op = "storage.mysql.UpdateOrder"

	budget, err := encodeBudget(o.HourBudget)
	if err != nil {
		return fmt.Errorf("%s: hour_budget: %w", op, err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE work_orders
		SET order_number = ?, client = ?, order_value = ?, hour_budget = ?, status = ?
		WHERE id = ?
	`, o.OrderNumber, o.Client, nullFloat(o.OrderValue), budget, o.Status, o.ID)
	if err != nil {
		return fmt.Errorf("%s: id=%s: %w", op, o.ID, err)
	}

	return expectAffected(res, op, o.ID, storage.ErrOrderNotFound)
}

// DeleteOrder removes the order together with its logs and invoices.
func (s *Storage) DeleteOrder(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteOrder"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM work_logs WHERE order_id = ?`, id); err != nil {
		return fmt.Errorf("%s: delete logs of %s: %w", op, id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM purchase_invoices WHERE order_id = ?`, id); err != nil {
		return fmt.Errorf("%s: delete invoices of %s: %w", op, id, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM work_orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: id=%s: %w", op, id, err)
	}
	if err := expectAffected(res, op, id, storage.ErrOrderNotFound); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(sc scanner) (storage.WorkOrder, error) {
	var (
		o      storage.WorkOrder
		value  sql.NullFloat64
		budget []byte
	)

	if err := sc.Scan(&o.ID, &o.OrderNumber, &o.Client, &value, &budget, &o.Status, &o.CreatedAt); err != nil {
		return o, err
	}

	if value.Valid {
		v := value.Float64
		o.OrderValue = &v
	}

	b, err := decodeBudget(budget)
	if err != nil {
		return o, fmt.Errorf("order %s: hour_budget: %w", o.ID, err)
	}
	o.HourBudget = b

	return o, nil
}

// decodeBudget keeps numbers as json.Number so that odd values from the
// spreadsheet import survive until the statistics coerce them.
func decodeBudget(raw []byte) (storage.HourBudget, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var b storage.HourBudget
	if err := dec.Decode(&b); err != nil {
		return nil, err
	}
	return b, nil
}

func encodeBudget(b storage.HourBudget) (any, error) {
	if b == nil {
		return nil, nil
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
