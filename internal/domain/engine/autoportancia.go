// Package engine implements the quotation and bill-of-materials computation:
// span validation, quantity derivation, unit-of-measure pricing and final
// assembly. Everything here is a pure function of its inputs; all I/O lives
// in the catalog and adapter layers.
package engine

import (
	"fmt"

	"paneltec_cotizador/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DefaultSafetyMargin is the fractional reduction applied to a manufacturer's
// absolute span limit to obtain the conservative safe operating limit.
var DefaultSafetyMargin = decimal.RequireFromString("0.15")

var one = decimal.NewFromInt(1)
var hundred = decimal.NewFromInt(100)
var two = decimal.NewFromInt(2)

// ValidateAutoportancia checks a requested span against the product's
// structural limit with a safety margin and proposes remediation when the
// span is too large.
//
// familyProducts are the same-family candidates for the alternative-thickness
// search, ordered by ascending thickness (catalog order).
//
// An unknown or data-less product yields an invalid result with a "no data"
// recommendation instead of an error: a missing structural datum must not
// abort an otherwise valid quotation flow; the caller decides whether to
// block on it.
func ValidateAutoportancia(product entities.Product, familyProducts []entities.Product, requestedSpanM, safetyMargin decimal.Decimal) entities.AutoportanciaValidation {
	v := entities.AutoportanciaValidation{
		RequestedSpanM:           requestedSpanM,
		AlternativeThicknessesMm: []int{},
	}

	if product.IsZero() || product.SpanLimitM.Sign() <= 0 {
		v.IsValid = false
		v.Recommendation = "Sin datos de autoportancia disponibles para este producto; verificar con el fabricante antes de cotizar."
		return v
	}

	safeFactor := one.Sub(safetyMargin)
	v.MaxSpanM = product.SpanLimitM
	v.SafeMaxSpanM = product.SpanLimitM.Mul(safeFactor)

	if requestedSpanM.Cmp(v.SafeMaxSpanM) <= 0 {
		v.IsValid = true
		v.ExcessPercent = decimal.Zero
		v.Recommendation = fmt.Sprintf(
			"Luz solicitada de %s m dentro del límite seguro de %s m (autoportancia %s m con margen de seguridad).",
			requestedSpanM, v.SafeMaxSpanM, product.SpanLimitM)
		return v
	}

	v.IsValid = false
	v.ExcessPercent = requestedSpanM.Sub(v.SafeMaxSpanM).Div(v.SafeMaxSpanM).Mul(hundred).Round(2)

	// Smallest same-family thickness whose safe span covers the request.
	recommended := 0
	for _, candidate := range familyProducts {
		if candidate.SpanLimitM.Sign() <= 0 {
			continue
		}
		if candidate.SpanLimitM.Mul(safeFactor).Cmp(requestedSpanM) >= 0 {
			v.AlternativeThicknessesMm = append(v.AlternativeThicknessesMm, candidate.ThicknessMm)
			if recommended == 0 {
				recommended = candidate.ThicknessMm
			}
		}
	}

	if recommended != 0 {
		v.Recommendation = fmt.Sprintf(
			"Luz solicitada de %s m excede el límite seguro de %s m en %s%%. Se recomienda espesor de %d mm de la misma familia.",
			requestedSpanM, v.SafeMaxSpanM, v.ExcessPercent, recommended)
		return v
	}

	// No thickness covers the span: halving the effective span with an
	// intermediate support always brings it back under the limit that the
	// requested span already doubled past.
	target := requestedSpanM.Div(two)
	v.Recommendation = fmt.Sprintf(
		"Luz solicitada de %s m excede el límite seguro de %s m en %s%% y ningún espesor de la familia la cubre. Agregar un apoyo intermedio para reducir la luz efectiva a %s m.",
		requestedSpanM, v.SafeMaxSpanM, v.ExcessPercent, target)
	return v
}
