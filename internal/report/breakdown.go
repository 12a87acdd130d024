// Package report turns computed estimates into human-readable artifacts:
// a tabular breakdown, CSV, a plain-text summary and a structured JSON
// export envelope. It never recomputes anything.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"dq-calculator/internal/models"
)

// Row is one line of the tabular breakdown projection.
type Row struct {
	Component     string
	Days          int
	Percentage    string
	RawDays       float64
	RawPercentage float64
	Cost          decimal.Decimal
}

// Rows projects a breakdown into table rows with percentages and costs.
// Percentages guard against a zero total: the engine's floor should prevent
// one, but the formatter must not crash if fed one anyway.
func Rows(breakdown *models.Breakdown, totalDays int, pricePerDay decimal.Decimal) []Row {
	rows := make([]Row, 0, breakdown.Len())
	for _, item := range breakdown.Items() {
		pct := 0.0
		if totalDays > 0 {
			pct = item.Days / float64(totalDays) * 100
		}
		rows = append(rows, Row{
			Component:     item.Component,
			Days:          int(item.Days),
			Percentage:    fmt.Sprintf("%.1f%%", pct),
			RawDays:       item.Days,
			RawPercentage: pct,
			Cost:          pricePerDay.Mul(decimal.NewFromFloat(item.Days)).Round(2),
		})
	}
	return rows
}
