package response

import (
	"time"

	"paneltec_cotizador/internal/domain/entities"
)

// Monetary fields are serialized as fixed 2-decimal strings: this is the
// presentation boundary where the round-half-up policy has already been
// applied, and strings keep clients from reintroducing binary floats.

type LineItemResponse struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	UnitKind     string `json:"unit_kind"`
	Quantity     string `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	LineTotal    string `json:"line_total"`
	PricePending bool   `json:"price_pending,omitempty"`
}

type ValidationResponse struct {
	RequestedSpanM           string `json:"requested_span_m"`
	MaxSpanM                 string `json:"max_span_m"`
	SafeMaxSpanM             string `json:"safe_max_span_m"`
	IsValid                  bool   `json:"is_valid"`
	ExcessPercent            string `json:"excess_percent"`
	Recommendation           string `json:"recommendation"`
	AlternativeThicknessesMm []int  `json:"alternative_thicknesses_mm"`
}

type QuotationResponse struct {
	QuotationID          string             `json:"quotation_id"`
	ID                   string             `json:"id"`
	Status               string             `json:"status"`
	ProductFamily        string             `json:"product_family"`
	ThicknessMm          int                `json:"thickness_mm"`
	AreaM2               string             `json:"area_m2"`
	Validation           ValidationResponse `json:"validation"`
	LineItems            []LineItemResponse `json:"line_items"`
	Subtotal             string             `json:"subtotal"`
	DiscountApplied      string             `json:"discount_applied"`
	GrandTotal           string             `json:"grand_total"`
	PendingPriceWarnings []string           `json:"pending_price_warnings"`
	Verified             bool               `json:"verified"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	r := q.Result
	resp := QuotationResponse{
		QuotationID:          q.ID,
		ID:                   q.ID,
		Status:               string(q.Status),
		ProductFamily:        r.Product.Family,
		ThicknessMm:          r.Product.ThicknessMm,
		AreaM2:               r.AreaM2.String(),
		Validation:           fromValidation(r.Validation),
		LineItems:            make([]LineItemResponse, 0, len(r.LineItems)),
		Subtotal:             r.Subtotal.StringFixed(2),
		DiscountApplied:      r.DiscountApplied.StringFixed(2),
		GrandTotal:           r.GrandTotal.StringFixed(2),
		PendingPriceWarnings: r.PendingPriceWarnings,
		Verified:             r.Verified,
		CreatedAt:            q.CreatedAt,
		UpdatedAt:            q.UpdatedAt,
	}
	if resp.PendingPriceWarnings == nil {
		resp.PendingPriceWarnings = []string{}
	}
	for _, item := range r.LineItems {
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			SKU:          item.SKU,
			Name:         item.Name,
			Category:     string(item.Category),
			UnitKind:     string(item.UnitKind),
			Quantity:     item.Quantity.String(),
			UnitPrice:    item.UnitPrice.StringFixed(2),
			LineTotal:    item.LineTotal.StringFixed(2),
			PricePending: item.PricePending,
		})
	}
	return resp
}

func fromValidation(v entities.AutoportanciaValidation) ValidationResponse {
	out := ValidationResponse{
		RequestedSpanM:           v.RequestedSpanM.String(),
		MaxSpanM:                 v.MaxSpanM.String(),
		SafeMaxSpanM:             v.SafeMaxSpanM.String(),
		IsValid:                  v.IsValid,
		ExcessPercent:            v.ExcessPercent.StringFixed(2),
		Recommendation:           v.Recommendation,
		AlternativeThicknessesMm: v.AlternativeThicknessesMm,
	}
	if out.AlternativeThicknessesMm == nil {
		out.AlternativeThicknessesMm = []int{}
	}
	return out
}
