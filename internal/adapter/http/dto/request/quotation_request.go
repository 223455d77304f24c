package request

import (
	"github.com/shopspring/decimal"

	"paneltec_cotizador/internal/domain/entities"
)

// QuotationRequest is the payload accepted by POST /quotations. Geometry and
// discount values bind to decimals so the engine never sees a binary float.
type QuotationRequest struct {
	ProductFamily      string          `json:"product_family" binding:"required"`
	ThicknessMm        int             `json:"thickness_mm" binding:"required"`
	LengthM            decimal.Decimal `json:"length_m" binding:"required"`
	WidthM             decimal.Decimal `json:"width_m" binding:"required"`
	SpanM              decimal.Decimal `json:"span_m" binding:"required"`
	ConstructionSystem string          `json:"construction_system"`
	DiscountPercent    decimal.Decimal `json:"discount_percent"`
	IncludeAccessories bool            `json:"include_accessories"`
}

func (r QuotationRequest) ToEntity() entities.QuotationRequest {
	return entities.QuotationRequest{
		ProductFamily:      r.ProductFamily,
		ThicknessMm:        r.ThicknessMm,
		LengthM:            r.LengthM,
		WidthM:             r.WidthM,
		SpanM:              r.SpanM,
		ConstructionSystem: r.ConstructionSystem,
		DiscountPercent:    r.DiscountPercent,
		IncludeAccessories: r.IncludeAccessories,
	}
}
