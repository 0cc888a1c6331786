package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"proxima-dashboard/internal/config"
)

type Storage struct {
	db *sql.DB
}

func DSN(cfg config.Config) string {
	c := mysql.NewConfig()
	c.User = cfg.DBUser
	c.Passwd = cfg.DBPassword
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.DBHost, strconv.Itoa(cfg.DBPort))
	c.DBName = cfg.DBName
	c.ParseTime = cfg.ParseTime
	c.ClientFoundRows = true
	return c.FormatDSN()
}

func New(cfg config.Config) (*Storage, error) {
	const op = "storage.mysql.New"

	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open db: %w", op, err)
	}

	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// NewWithDB wraps an already opened connection.
func NewWithDB(db *sql.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Close() error {
	return s.db.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS work_orders (
		id VARCHAR(64) PRIMARY KEY,
		order_number VARCHAR(64) NOT NULL,
		client VARCHAR(255) NOT NULL DEFAULT '',
		order_value DECIMAL(14,2) NULL,
		hour_budget JSON NULL,
		status VARCHAR(32) NOT NULL DEFAULT '',
		created_at BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS work_logs (
		id VARCHAR(64) PRIMARY KEY,
		order_id VARCHAR(64) NOT NULL,
		worker VARCHAR(128) NOT NULL,
		log_date DATE NOT NULL,
		hours DECIMAL(6,2) NULL,
		category VARCHAR(16) NULL,
		activity VARCHAR(128) NULL,
		note TEXT NULL,
		created_ts BIGINT NOT NULL,
		INDEX idx_work_logs_order (order_id)
	)`,
	`CREATE TABLE IF NOT EXISTS purchase_invoices (
		id VARCHAR(64) PRIMARY KEY,
		order_id VARCHAR(64) NOT NULL,
		supplier VARCHAR(255) NOT NULL,
		description TEXT NULL,
		amount DECIMAL(14,2) NULL,
		invoice_date DATE NOT NULL,
		category VARCHAR(32) NOT NULL,
		created_ts BIGINT NOT NULL,
		INDEX idx_purchase_invoices_order (order_id)
	)`,
	`CREATE TABLE IF NOT EXISTS workers (
		name VARCHAR(128) PRIMARY KEY,
		hourly_rate DECIMAL(10,2) NULL
	)`,
	`CREATE TABLE IF NOT EXISTS availabilities (
		id VARCHAR(64) PRIMARY KEY,
		worker VARCHAR(128) NOT NULL,
		av_date DATE NOT NULL,
		type VARCHAR(32) NOT NULL,
		INDEX idx_availabilities_date (av_date)
	)`,
	`CREATE TABLE IF NOT EXISTS recurring_absences (
		id VARCHAR(64) PRIMARY KEY,
		worker VARCHAR(128) NOT NULL,
		type VARCHAR(16) NOT NULL,
		time_of_day VARCHAR(16) NOT NULL,
		day_of_week TINYINT NOT NULL,
		start_date DATE NOT NULL,
		number_of_weeks INT NOT NULL,
		note TEXT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS global_days (
		day_date DATE PRIMARY KEY,
		type VARCHAR(16) NOT NULL
	)`,
}

// Migrate creates the tables when they are missing.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.mysql.Migrate"

	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
