package storage

import "errors"

var (
	ErrWorkerExists   = errors.New("worker already exists")
	ErrWorkerNotFound = errors.New("worker not found")
)

type WorkerRate struct {
	Worker     string  `json:"worker" validate:"required"`
	HourlyRate float64 `json:"hourly_rate" validate:"gte=0"`
}

// RateTable maps a worker name to the hourly rate.
type RateTable map[string]float64

type SaveWorker struct {
	Name       string   `json:"name" validate:"required,max=128"`
	HourlyRate *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
}
