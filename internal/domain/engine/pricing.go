package engine

import (
	"github.com/shopspring/decimal"

	"paneltec_cotizador/internal/domain/entities"
)

// round2 quantizes a monetary value to 2 decimal places, half up. Applied
// only where a value is presented or summed into a total, never to
// intermediate multiplicands.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PriceLineItem converts a quantity plus its resolved catalog entry into a
// priced line, branching on the entry's unit-of-measure kind:
//
//	piece          quantity × unit price
//	linear-length  quantity × nominal piece length × unit price
//	area           total area m² × unit price
//
// NominalPieceLengthM is metadata about the physical piece and enters the
// price only for linear-length entries; for piece-priced entries it is
// ignored even when present.
//
// A pending-price entry produces a flagged line with zero contribution. A
// zero quantity produces no line at all; the second return is false.
func PriceLineItem(entry entities.CatalogEntry, category entities.ItemCategory, quantity, totalAreaM2 decimal.Decimal) (entities.QuotationLineItem, bool) {
	if quantity.Sign() <= 0 {
		return entities.QuotationLineItem{}, false
	}

	item := entities.QuotationLineItem{
		SKU:      entry.SKU,
		Name:     entry.Name,
		Category: category,
		UnitKind: entry.UnitKind,
		Quantity: quantity,
	}

	if entry.PricePending {
		item.PricePending = true
		item.LineTotal = decimal.Zero
		return item, true
	}

	item.UnitPrice = entry.UnitPrice
	switch entry.UnitKind {
	case entities.UnitPiece:
		item.LineTotal = round2(quantity.Mul(entry.UnitPrice))
	case entities.UnitLinearLength:
		item.LineTotal = round2(quantity.Mul(entry.NominalPieceLengthM).Mul(entry.UnitPrice))
	case entities.UnitArea:
		item.LineTotal = round2(totalAreaM2.Mul(entry.UnitPrice))
	}
	return item, true
}
