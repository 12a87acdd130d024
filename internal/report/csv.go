// internal/report/csv.go
package report

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "dq-calculator/internal/common/errors"
	"dq-calculator/internal/models"
)

var csvHeader = []string{"Component", "Days", "Percentage", "Raw_Days", "Raw_Percentage"}

// CSVBreakdown renders the breakdown as CSV, one row per non-zero component.
func CSVBreakdown(breakdown *models.Breakdown, totalDays int) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return "", apperrors.NewReportGenerationFailedError("csv", err)
	}
	for _, row := range Rows(breakdown, totalDays, decimal.Zero) {
		record := []string{
			row.Component,
			strconv.Itoa(row.Days),
			row.Percentage,
			strconv.FormatFloat(row.RawDays, 'f', -1, 64),
			strconv.FormatFloat(row.RawPercentage, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return "", apperrors.NewReportGenerationFailedError("csv", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", apperrors.NewReportGenerationFailedError("csv", err)
	}
	return sb.String(), nil
}
