package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"proxima-dashboard/internal/storage"
)

func (s *Storage) GetAllInvoices(ctx context.Context) ([]storage.PurchaseInvoice, error) {
	const op = "storage.mysql.GetAllInvoices"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, supplier, description, amount, invoice_date, category, created_ts
		FROM purchase_invoices
		ORDER BY created_ts ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: query invoices: %w", op, err)
	}
	defer rows.Close()

	var invoices []storage.PurchaseInvoice
	for rows.Next() {
		var (
			inv         storage.PurchaseInvoice
			description sql.NullString
			amount      sql.NullFloat64
			date        sql.NullString
		)

		err := rows.Scan(&inv.ID, &inv.OrderID, &inv.Supplier, &description, &amount, &date, &inv.Category, &inv.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		inv.Description = description.String
		inv.Amount = amount.Float64
		inv.Date = normalizeDate(date.String)

		invoices = append(invoices, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return invoices, nil
}

func (s *Storage) SaveInvoice(ctx context.Context, inv storage.PurchaseInvoice) error {
	const op = "storage.mysql.SaveInvoice"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO purchase_invoices (id, order_id, supplier, description, amount, invoice_date, category, created_ts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			order_id = VALUES(order_id),
			supplier = VALUES(supplier),
			description = VALUES(description),
			amount = VALUES(amount),
			invoice_date = VALUES(invoice_date),
			category = VALUES(category)
	`, inv.ID, inv.OrderID, inv.Supplier, inv.Description, inv.Amount, inv.Date, inv.Category, inv.Timestamp)
	if err != nil {
		return fmt.Errorf("%s: id=%s: %w", op, inv.ID, err)
	}

	return nil
}

func (s *Storage) DeleteInvoice(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteInvoice"

	if _, err := s.db.ExecContext(ctx, `DELETE FROM purchase_invoices WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%s: id=%s: %w", op, id, err)
	}

	return nil
}
