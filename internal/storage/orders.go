package storage

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrLogNotFound   = errors.New("work log not found")
)

type WorkOrder struct {
	ID          string     `json:"id"`
	OrderNumber string     `json:"order_number"`
	Client      string     `json:"client"`
	OrderValue  *float64   `json:"order_value,omitempty"`
	HourBudget  HourBudget `json:"hour_budget,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   int64      `json:"created_at"`
}

// HourBudget is the planned hours per category as imported from the order
// spreadsheet. Values are kept raw and may be missing, strings or garbage.
type HourBudget map[string]any

const (
	BudgetKBW     = "kbw"
	BudgetPLW     = "plw"
	BudgetMontage = "montage"
	BudgetWVB     = "wvb"
	BudgetRVS     = "rvs"
	BudgetReis    = "reis"
)

const StatusPending = "In afwachting"

// SaveOrder is the body of an order create or update. An empty Status
// means pending.
type SaveOrder struct {
	OrderNumber string     `json:"order_number" validate:"required"`
	Client      string     `json:"client"`
	OrderValue  *float64   `json:"order_value" validate:"omitempty,gte=0"`
	HourBudget  HourBudget `json:"hour_budget"`
	Status      string     `json:"status"`
}
