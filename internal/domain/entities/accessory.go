package entities

import "github.com/shopspring/decimal"

// UnitMeasureKind is the pricing basis of a catalog entry.
//
// The kind decides the line total formula and nothing else:
//   - piece:         quantity × unit price
//   - linear-length: quantity × nominal piece length × unit price
//   - area:          total area m² × unit price
//
// NominalPieceLengthM is physical metadata about the piece; it participates in
// pricing only for linear-length entries. Multiplying it into a piece-priced
// entry is the defect class this type exists to prevent.
type UnitMeasureKind string

const (
	UnitPiece        UnitMeasureKind = "piece"
	UnitLinearLength UnitMeasureKind = "linear-length"
	UnitArea         UnitMeasureKind = "area"
)

func (k UnitMeasureKind) Valid() bool {
	switch k {
	case UnitPiece, UnitLinearLength, UnitArea:
		return true
	}
	return false
}

// Compatibility restricts an accessory to panel families and a thickness range.
// Zero MinThicknessMm/MaxThicknessMm means unrestricted on that side; an empty
// family list means compatible with every family.
type Compatibility struct {
	Families       []string `json:"families"`
	MinThicknessMm int      `json:"min_thickness_mm"`
	MaxThicknessMm int      `json:"max_thickness_mm"`
}

// CatalogEntry is one purchasable accessory SKU (perfilería, fixings,
// sealants). Immutable after catalog load; indexed by SKU and by category.
type CatalogEntry struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	UnitKind UnitMeasureKind `json:"unit_kind"`
	// NominalPieceLengthM is the length of one physical piece in meters.
	// Informational for piece-priced entries.
	NominalPieceLengthM decimal.Decimal `json:"nominal_piece_length_m"`
	// UnitPrice is tax-inclusive. When PricePending is true the price is
	// unknown and the entry contributes zero to any subtotal.
	UnitPrice     decimal.Decimal `json:"unit_price"`
	PricePending  bool            `json:"price_pending"`
	Compatibility Compatibility   `json:"compatibility"`
}

// CompatibleWith reports whether the entry can be quoted for the given panel
// family and thickness.
func (e CatalogEntry) CompatibleWith(family string, thicknessMm int) bool {
	if len(e.Compatibility.Families) > 0 {
		found := false
		for _, f := range e.Compatibility.Families {
			if f == family {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if e.Compatibility.MinThicknessMm > 0 && thicknessMm < e.Compatibility.MinThicknessMm {
		return false
	}
	if e.Compatibility.MaxThicknessMm > 0 && thicknessMm > e.Compatibility.MaxThicknessMm {
		return false
	}
	return true
}
