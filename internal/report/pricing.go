// internal/report/pricing.go
package report

import (
	"github.com/shopspring/decimal"

	"dq-calculator/internal/common/config"
)

// ResolvePrice returns the effective day rate. An override is clamped into
// the configured bounds; a zero override, or any override when overrides are
// disabled, falls back to the default rate.
func ResolvePrice(p config.Pricing, override float64) decimal.Decimal {
	if override <= 0 || !p.AllowAdminOverride {
		return decimal.NewFromFloat(p.DefaultPricePerDay)
	}
	if override < p.MinPriceOverride {
		override = p.MinPriceOverride
	}
	if override > p.MaxPriceOverride {
		override = p.MaxPriceOverride
	}
	return decimal.NewFromFloat(override)
}

// Cost converts a day count to money at the given rate.
func Cost(totalDays int, pricePerDay decimal.Decimal) decimal.Decimal {
	return pricePerDay.Mul(decimal.NewFromInt(int64(totalDays))).Round(2)
}
