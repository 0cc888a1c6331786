package statistics

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"proxima-dashboard/internal/constants"
	"proxima-dashboard/internal/storage"
)

type Category string

const (
	KBW     Category = "KBW"
	PLW     Category = "PLW"
	Montage Category = "MONTAGE"
	WVB     Category = "WVB"
	RVS     Category = "RVS"
	Reis    Category = "REIS"
)

// Categories is the fixed display order of the buckets.
var Categories = []Category{KBW, PLW, Montage, WVB, Reis, RVS}

var budgetKeys = map[Category]string{
	KBW:     storage.BudgetKBW,
	PLW:     storage.BudgetPLW,
	Montage: storage.BudgetMontage,
	WVB:     storage.BudgetWVB,
	RVS:     storage.BudgetRVS,
	Reis:    storage.BudgetReis,
}

type Bucket struct {
	Logged float64 `json:"logged"`
	Budget float64 `json:"budget"`
}

type HourStats struct {
	Categories  map[Category]Bucket `json:"categories"`
	Total       float64             `json:"total"`
	TotalBudget float64             `json:"total_budget"`
}

// ComputeHourStats sums budgets of orders and logged hours per bucket.
func ComputeHourStats(orders []storage.WorkOrder, logs []storage.WorkLog) HourStats {
	stats := HourStats{Categories: make(map[Category]Bucket, len(Categories))}
	for _, c := range Categories {
		stats.Categories[c] = Bucket{}
	}

	for _, o := range orders {
		if o.HourBudget == nil {
			continue
		}
		for _, c := range Categories {
			v := toNumber(o.HourBudget[budgetKeys[c]])
			b := stats.Categories[c]
			b.Budget += v
			stats.Categories[c] = b
			stats.TotalBudget += v
		}
	}

	for _, l := range logs {
		h := finite(l.Hours)
		stats.Total += h

		c, ok := BucketFor(l)
		if !ok {
			continue
		}
		b := stats.Categories[c]
		b.Logged += h
		stats.Categories[c] = b
	}

	return stats
}

// BucketFor returns the category a log counts towards. Logs without a known
// category only count towards the grand total.
func BucketFor(l storage.WorkLog) (Category, bool) {
	switch Category(l.Category) {
	case KBW, PLW, WVB, RVS, Reis:
		return Category(l.Category), true
	case Montage:
		if constants.TravelActivities[strings.ToUpper(l.Activity)] {
			return Reis, true
		}
		return Montage, true
	}
	return "", false
}

// toNumber coerces a raw budget value to a number, anything unusable is 0.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finite(f)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return finite(f)
	case bool:
		if n {
			return 1
		}
		return 0
	}
	return 0
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
