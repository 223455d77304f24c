package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationStatus represents the lifecycle of a persisted quotation
// (cotización).
//
// Domain notes:
//   - The cotizador is the source of truth for quotation state.
//   - Status transitions are driven by the conversational front-end once the
//     customer reacts to the quoted total.

type QuotationStatus string

const (
	QuotationStatusPendiente QuotationStatus = "pendiente"
	QuotationStatusAprobada  QuotationStatus = "aprobada"
	QuotationStatusRechazada QuotationStatus = "rechazada"
	QuotationStatusCancelada QuotationStatus = "cancelada"
)

// QuotationRequest carries everything needed to compute one quotation.
type QuotationRequest struct {
	ProductFamily      string          `json:"product_family"`
	ThicknessMm        int             `json:"thickness_mm"`
	LengthM            decimal.Decimal `json:"length_m"`
	WidthM             decimal.Decimal `json:"width_m"`
	SpanM              decimal.Decimal `json:"span_m"`
	ConstructionSystem string          `json:"construction_system"`
	DiscountPercent    decimal.Decimal `json:"discount_percent"`
	IncludeAccessories bool            `json:"include_accessories"`
}

// AutoportanciaValidation is the outcome of checking a requested span against
// a product's structural limit. Created fresh per validation, never mutated.
type AutoportanciaValidation struct {
	RequestedSpanM decimal.Decimal `json:"requested_span_m"`
	MaxSpanM       decimal.Decimal `json:"max_span_m"`
	SafeMaxSpanM   decimal.Decimal `json:"safe_max_span_m"`
	IsValid        bool            `json:"is_valid"`
	// ExcessPercent is how far the requested span exceeds the safe maximum,
	// zero when valid. Rounded to 2 places for presentation.
	ExcessPercent  decimal.Decimal `json:"excess_percent"`
	Recommendation string          `json:"recommendation"`
	// AlternativeThicknessesMm lists same-family thicknesses whose safe span
	// covers the request, ascending.
	AlternativeThicknessesMm []int `json:"alternative_thicknesses_mm"`
}

// QuotationLineItem is one priced row of the quotation.
type QuotationLineItem struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category ItemCategory    `json:"category"`
	UnitKind UnitMeasureKind `json:"unit_kind"`
	Quantity decimal.Decimal `json:"quantity"`
	// UnitPrice is the catalog unit price used; zero when PricePending.
	UnitPrice decimal.Decimal `json:"unit_price"`
	// LineTotal is rounded half-up to 2 places at creation.
	LineTotal    decimal.Decimal `json:"line_total"`
	PricePending bool            `json:"price_pending,omitempty"`
}

// QuotationResult is the full computed quotation. Assembled once per request
// and never mutated afterwards.
//
// Monetary invariants:
//   - Catalog prices are tax-inclusive; GrandTotal never adds tax on top.
//   - DiscountPercent applies multiplicatively to the exact subtotal;
//     rounding happens once, on the discounted figure.
type QuotationResult struct {
	Product    Product                 `json:"product"`
	Request    QuotationRequest        `json:"request"`
	AreaM2     decimal.Decimal         `json:"area_m2"`
	Validation AutoportanciaValidation `json:"validation"`
	LineItems  []QuotationLineItem     `json:"line_items"`
	Subtotal   decimal.Decimal         `json:"subtotal"`
	// DiscountApplied is the absolute amount subtracted from the subtotal.
	DiscountApplied decimal.Decimal `json:"discount_applied"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	// PendingPriceWarnings lists SKUs quoted without a known price.
	PendingPriceWarnings []string `json:"pending_price_warnings"`
	// Verified is true when every line carries a known price and the
	// autoportancia check passed.
	Verified bool `json:"verified"`
}

// Quotation is the persisted aggregate stored in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The full QuotationResult is kept as a JSON document for auditability; the
// scalar columns exist for listing and conditional updates.
type Quotation struct {
	ID        string          `json:"id"`
	Status    QuotationStatus `json:"status"`
	Result    QuotationResult `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
