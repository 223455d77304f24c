package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product identifies a panel family/thickness combination from the products
// catalog (e.g. isodec-eps at 100mm).
//
// Monetary representation:
//   - PricePerM2 is the tax-inclusive list price per square meter. No tax is
//     ever added downstream.
//
// Products are immutable after catalog load and keyed by (family, thickness).
type Product struct {
	Family      string          `json:"family"`
	ThicknessMm int             `json:"thickness_mm"`
	PricePerM2  decimal.Decimal `json:"price_per_m2"`
	// UsableWidthM is the effective coverage width of one panel once overlap
	// is discounted, in meters.
	UsableWidthM decimal.Decimal `json:"usable_width_m"`
	// SpanLimitM is the manufacturer's absolute self-supporting span
	// (autoportancia) in meters, before any safety margin.
	SpanLimitM decimal.Decimal `json:"span_limit_m"`
	// ThermalCoefficient is the U value (W/m²K) of the panel.
	ThermalCoefficient decimal.Decimal `json:"thermal_coefficient"`
}

// Key returns the catalog lookup key for the product.
func (p Product) Key() string {
	return ProductKey(p.Family, p.ThicknessMm)
}

func ProductKey(family string, thicknessMm int) string {
	return fmt.Sprintf("%s/%d", family, thicknessMm)
}

// IsZero reports whether the product is the not-found zero value.
func (p Product) IsZero() bool {
	return p.Family == "" && p.ThicknessMm == 0
}
