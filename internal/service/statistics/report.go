package statistics

import (
	"math"

	"proxima-dashboard/internal/storage"
)

// Input is everything the report is computed from.
type Input struct {
	Orders   []storage.WorkOrder
	Logs     []storage.WorkLog
	Invoices []storage.PurchaseInvoice
	Rates    storage.RateTable
}

type BudgetBar struct {
	Category Category `json:"category"`
	Logged   float64  `json:"logged"`
	Budget   float64  `json:"budget"`
	// FillPct is capped at 100, a zero budget means no budget and 0% fill.
	FillPct float64 `json:"fill_pct"`
	Over    bool    `json:"over"`
	Diff    float64 `json:"diff"`
}

type Slice struct {
	Category Category `json:"category"`
	Hours    float64  `json:"hours"`
	Share    float64  `json:"share"`
}

type Report struct {
	Selection     string             `json:"selection"`
	SelectedOrder *storage.WorkOrder `json:"selected_order"`
	Hours         HourStats          `json:"hours"`
	Budget        []BudgetBar        `json:"budget"`
	Distribution  []Slice            `json:"distribution"`
	Costs         CostStats          `json:"costs"`
	InvoiceTotals map[string]float64 `json:"invoice_totals"`
	Registry      []RegistryRow      `json:"registry"`
}

// Build filters the input down to selection and derives the full report.
// It never mutates the input.
func Build(in Input, selection string) Report {
	if selection == "" {
		selection = AllOrders
	}

	orders := SelectOrders(in.Orders, selection)
	logs := SelectLogs(in.Logs, selection)
	invoices := SelectInvoices(in.Invoices, selection)

	hours := ComputeHourStats(orders, logs)

	r := Report{
		Selection:     selection,
		Hours:         hours,
		Budget:        BudgetBars(hours),
		Distribution:  Distribution(hours),
		Costs:         ComputeCostStats(logs, invoices, orders, in.Rates),
		InvoiceTotals: InvoiceTotals(invoices),
		Registry:      BuildLogRegistry(logs, in.Orders),
	}

	if selection != AllOrders && len(orders) > 0 {
		o := orders[0]
		r.SelectedOrder = &o
	}

	return r
}

func BudgetBars(h HourStats) []BudgetBar {
	bars := make([]BudgetBar, 0, len(Categories))
	for _, c := range Categories {
		b := h.Categories[c]
		bar := BudgetBar{
			Category: c,
			Logged:   b.Logged,
			Budget:   b.Budget,
			Diff:     math.Abs(b.Budget - b.Logged),
		}
		if b.Budget > 0 {
			bar.FillPct = math.Min(b.Logged/b.Budget*100, 100)
			bar.Over = b.Logged > b.Budget
		}
		bars = append(bars, bar)
	}
	return bars
}

// Distribution returns the donut slices, skipping empty categories.
func Distribution(h HourStats) []Slice {
	var total float64
	for _, c := range Categories {
		if v := h.Categories[c].Logged; v > 0 {
			total += v
		}
	}
	if total == 0 {
		return nil
	}

	var slices []Slice
	for _, c := range Categories {
		v := h.Categories[c].Logged
		if v <= 0 {
			continue
		}
		slices = append(slices, Slice{Category: c, Hours: v, Share: v / total * 100})
	}
	return slices
}
