package statistics

import (
	"sort"

	"proxima-dashboard/internal/storage"
)

type RegistryRow struct {
	storage.WorkLog
	OrderNumber string `json:"order_number"`
	Client      string `json:"client"`
}

// BuildLogRegistry joins each log with its order and returns the rows newest
// first. Logs pointing at an unknown order get empty order fields.
func BuildLogRegistry(logs []storage.WorkLog, orders []storage.WorkOrder) []RegistryRow {
	byID := make(map[string]storage.WorkOrder, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}

	rows := make([]RegistryRow, 0, len(logs))
	for _, l := range logs {
		row := RegistryRow{WorkLog: l}
		if o, ok := byID[l.OrderID]; ok {
			row.OrderNumber = o.OrderNumber
			row.Client = o.Client
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Timestamp > rows[j].Timestamp
	})

	return rows
}
