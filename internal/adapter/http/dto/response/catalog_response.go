package response

import (
	"paneltec_cotizador/internal/domain/entities"
)

type ProductResponse struct {
	Family             string `json:"family"`
	ThicknessMm        int    `json:"thickness_mm"`
	PricePerM2         string `json:"price_per_m2"`
	UsableWidthM       string `json:"usable_width_m"`
	SpanLimitM         string `json:"span_limit_m"`
	ThermalCoefficient string `json:"thermal_coefficient"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		Family:             p.Family,
		ThicknessMm:        p.ThicknessMm,
		PricePerM2:         p.PricePerM2.StringFixed(2),
		UsableWidthM:       p.UsableWidthM.String(),
		SpanLimitM:         p.SpanLimitM.String(),
		ThermalCoefficient: p.ThermalCoefficient.String(),
	}
}

type AccessoryResponse struct {
	SKU                 string `json:"sku"`
	Name                string `json:"name"`
	Category            string `json:"category"`
	UnitKind            string `json:"unit_kind"`
	NominalPieceLengthM string `json:"nominal_piece_length_m"`
	UnitPrice           string `json:"unit_price"`
	PricePending        bool   `json:"price_pending,omitempty"`
}

func FromAccessory(e entities.CatalogEntry) AccessoryResponse {
	return AccessoryResponse{
		SKU:                 e.SKU,
		Name:                e.Name,
		Category:            e.Category,
		UnitKind:            string(e.UnitKind),
		NominalPieceLengthM: e.NominalPieceLengthM.String(),
		UnitPrice:           e.UnitPrice.StringFixed(2),
		PricePending:        e.PricePending,
	}
}

type SystemResponse struct {
	SystemID           string   `json:"system_id"`
	Description        string   `json:"description"`
	CompatibleFamilies []string `json:"compatible_families"`
}

func FromSystem(r entities.BOMSystemRule) SystemResponse {
	return SystemResponse{
		SystemID:           r.SystemID,
		Description:        r.Description,
		CompatibleFamilies: r.CompatibleFamilies,
	}
}
