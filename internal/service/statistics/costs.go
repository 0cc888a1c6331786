package statistics

import (
	"proxima-dashboard/internal/constants"
	"proxima-dashboard/internal/storage"
)

// CostStats holds money totals for the selection. ContractValue, Margin and
// MarginPct are nil when no selected order carries a contract value.
type CostStats struct {
	LaborCost     float64  `json:"labor_cost"`
	PurchaseCost  float64  `json:"purchase_cost"`
	TotalCost     float64  `json:"total_cost"`
	ContractValue *float64 `json:"contract_value"`
	Margin        *float64 `json:"margin"`
	MarginPct     *float64 `json:"margin_pct"`
}

func ComputeCostStats(logs []storage.WorkLog, invoices []storage.PurchaseInvoice, orders []storage.WorkOrder, rates storage.RateTable) CostStats {
	var stats CostStats

	for _, l := range logs {
		stats.LaborCost += finite(l.Hours) * finite(rates[l.Worker])
	}

	for _, inv := range invoices {
		stats.PurchaseCost += finite(inv.Amount)
	}

	stats.TotalCost = stats.LaborCost + stats.PurchaseCost

	var contract float64
	for _, o := range orders {
		if o.OrderValue != nil {
			contract += finite(*o.OrderValue)
		}
	}

	if contract != 0 {
		stats.ContractValue = &contract
	}

	if contract > 0 {
		margin := contract - stats.TotalCost
		pct := margin / contract * 100
		stats.Margin = &margin
		stats.MarginPct = &pct
	}

	return stats
}

// InvoiceTotals sums invoice amounts per purchase category. Every known
// category is present, unknown categories are added as they appear.
func InvoiceTotals(invoices []storage.PurchaseInvoice) map[string]float64 {
	totals := make(map[string]float64, len(constants.InvoiceCategories))
	for _, c := range constants.InvoiceCategories {
		totals[c] = 0
	}
	for _, inv := range invoices {
		totals[inv.Category] += finite(inv.Amount)
	}
	return totals
}
