package engine

import (
	"errors"
	"fmt"

	"paneltec_cotizador/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidGeometry marks non-positive length, width or span. Input
	// error: the caller can surface it to the end user.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrMissingFormula marks a system rule referencing a formula kind the
	// engine does not implement. Configuration bug, must be fatal.
	ErrMissingFormula = errors.New("missing formula")
)

// QuantityMap maps item categories to computed quantities. Discrete items
// carry integer-valued decimals (ceiling applied); measured material stays
// fractional.
type QuantityMap map[entities.ItemCategory]decimal.Decimal

// ValidateGeometry rejects non-positive dimensions with the offending field
// named in the error.
func ValidateGeometry(lengthM, widthM, spanM decimal.Decimal) error {
	if lengthM.Sign() <= 0 {
		return fmt.Errorf("%w: length_m=%s", ErrInvalidGeometry, lengthM)
	}
	if widthM.Sign() <= 0 {
		return fmt.Errorf("%w: width_m=%s", ErrInvalidGeometry, widthM)
	}
	if spanM.Sign() <= 0 {
		return fmt.Errorf("%w: span_m=%s", ErrInvalidGeometry, spanM)
	}
	return nil
}

// ComputeQuantities evaluates every formula of the system rule over the
// geometry and the product's attributes.
//
// Rounding inside quantity formulas is always ceiling: under-provisioning
// material is the failure mode being avoided. Increasing lengthM or widthM
// never decreases any quantity.
func ComputeQuantities(rule entities.BOMSystemRule, product entities.Product, lengthM, widthM, spanM decimal.Decimal) (QuantityMap, error) {
	if err := ValidateGeometry(lengthM, widthM, spanM); err != nil {
		return nil, err
	}

	// Derived once, shared by every formula.
	area := lengthM.Mul(widthM)
	panelCount := widthM.Div(product.UsableWidthM).Ceil()
	supportCount := lengthM.Div(spanM).Add(one).Ceil()

	out := make(QuantityMap, len(rule.Formulas))
	for _, f := range rule.Formulas {
		qty, err := evalFormula(f, area, panelCount, supportCount, lengthM, widthM)
		if err != nil {
			return nil, err
		}
		out[f.Category] = qty
	}
	return out, nil
}

func evalFormula(f entities.FormulaSpec, area, panelCount, supportCount, lengthM, widthM decimal.Decimal) (decimal.Decimal, error) {
	factor := f.Factor
	if factor.Sign() <= 0 {
		factor = one
	}

	switch f.Kind {
	case entities.FormulaPanelCount:
		return panelCount, nil

	case entities.FormulaSupportCount:
		return supportCount, nil

	case entities.FormulaFixationGrid:
		return panelCount.Mul(supportCount).Mul(factor).Ceil(), nil

	case entities.FormulaPerSupport:
		return supportCount.Mul(factor).Ceil(), nil

	case entities.FormulaLinearPieces:
		run, err := linearRun(f.Dimension, lengthM, widthM)
		if err != nil {
			return decimal.Zero, err
		}
		return run.Div(f.PieceLengthM).Ceil(), nil

	case entities.FormulaJointSealant:
		joints := panelCount.Sub(one)
		if joints.Sign() <= 0 {
			return decimal.Zero, nil
		}
		return joints.Mul(lengthM).Div(f.CoverageM).Ceil(), nil

	case entities.FormulaAreaM2:
		return area, nil
	}

	return decimal.Zero, fmt.Errorf("%w: category %q references formula %q", ErrMissingFormula, f.Category, f.Kind)
}

func linearRun(dim entities.RunDimension, lengthM, widthM decimal.Decimal) (decimal.Decimal, error) {
	switch dim {
	case entities.RunWidth:
		return widthM, nil
	case entities.RunLength:
		return lengthM, nil
	case entities.RunLengthDouble:
		return lengthM.Mul(two), nil
	case entities.RunPerimeter:
		return lengthM.Add(widthM).Mul(two), nil
	}
	return decimal.Zero, fmt.Errorf("%w: unknown run dimension %q", ErrMissingFormula, dim)
}
