package engine

import (
	"errors"
	"fmt"

	"paneltec_cotizador/internal/catalog"
	"paneltec_cotizador/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductNotFound marks an unknown family/thickness combination.
	ErrProductNotFound = errors.New("product not found")
	// ErrSystemNotFound marks an unknown construction-system identifier.
	ErrSystemNotFound = errors.New("construction system not found")
	// ErrIncompatibleSystem marks a system that does not support the
	// requested panel family.
	ErrIncompatibleSystem = errors.New("construction system incompatible with product family")
	// ErrInvalidDiscount marks a discount outside [0, 100].
	ErrInvalidDiscount = errors.New("invalid discount percent")
	// ErrNoCompatibleAccessory marks a rule category with a non-zero quantity
	// and no accessory compatible with the product. Configuration defect.
	ErrNoCompatibleAccessory = errors.New("no compatible accessory for category")
)

// Assemble orchestrates the full quotation: product resolution, autoportancia
// validation (always run, never skipped), panel pricing from area, accessory
// quantities and pricing, and decimal-exact totals.
//
// Catalog prices are tax-inclusive by construction; no tax is added here.
// A failed autoportancia check is non-terminal: the result carries
// IsValid=false and the caller decides whether to block.
//
// The function is a single-pass, side-effect-free transformation: identical
// inputs over the same store produce identical results.
func Assemble(store *catalog.Store, req entities.QuotationRequest) (entities.QuotationResult, error) {
	product := store.GetProduct(req.ProductFamily, req.ThicknessMm)
	if product.IsZero() {
		return entities.QuotationResult{}, fmt.Errorf("%w: family=%q thickness_mm=%d", ErrProductNotFound, req.ProductFamily, req.ThicknessMm)
	}
	if err := ValidateGeometry(req.LengthM, req.WidthM, req.SpanM); err != nil {
		return entities.QuotationResult{}, err
	}
	if req.DiscountPercent.Sign() < 0 || req.DiscountPercent.Cmp(hundred) > 0 {
		return entities.QuotationResult{}, fmt.Errorf("%w: discount_percent=%s", ErrInvalidDiscount, req.DiscountPercent)
	}

	validation := ValidateAutoportancia(product, store.ProductsByFamily(req.ProductFamily), req.SpanM, DefaultSafetyMargin)

	area := req.LengthM.Mul(req.WidthM)
	result := entities.QuotationResult{
		Product:              product,
		Request:              req,
		AreaM2:               area,
		Validation:           validation,
		PendingPriceWarnings: []string{},
	}

	// The panel line comes straight from the products catalog: area priced at
	// the family/thickness list price.
	panelLine := entities.QuotationLineItem{
		SKU:       product.Key(),
		Name:      fmt.Sprintf("Panel %s %dmm", product.Family, product.ThicknessMm),
		Category:  entities.CategoryPanels,
		UnitKind:  entities.UnitArea,
		Quantity:  area,
		UnitPrice: product.PricePerM2,
		LineTotal: round2(area.Mul(product.PricePerM2)),
	}
	result.LineItems = append(result.LineItems, panelLine)

	if req.IncludeAccessories {
		rule := store.GetBOMRule(req.ConstructionSystem)
		if rule.IsZero() {
			return entities.QuotationResult{}, fmt.Errorf("%w: system=%q", ErrSystemNotFound, req.ConstructionSystem)
		}
		if !rule.SupportsFamily(req.ProductFamily) {
			return entities.QuotationResult{}, fmt.Errorf("%w: system=%q family=%q", ErrIncompatibleSystem, req.ConstructionSystem, req.ProductFamily)
		}

		quantities, err := ComputeQuantities(rule, product, req.LengthM, req.WidthM, req.SpanM)
		if err != nil {
			return entities.QuotationResult{}, err
		}

		// rule.Formulas preserves the catalog's declared order, which groups
		// line items as paneles / perfilería / fijaciones / selladores.
		for _, f := range rule.Formulas {
			if f.Category == entities.CategoryPanels {
				continue
			}
			qty := quantities[f.Category]
			if qty.Sign() <= 0 {
				continue
			}
			entry, err := resolveAccessory(store, f.Category, req.ProductFamily, req.ThicknessMm)
			if err != nil {
				return entities.QuotationResult{}, err
			}
			item, ok := PriceLineItem(entry, f.Category, qty, area)
			if !ok {
				continue
			}
			result.LineItems = append(result.LineItems, item)
			if item.PricePending {
				result.PendingPriceWarnings = append(result.PendingPriceWarnings, item.SKU)
			}
		}
	}

	subtotal := decimal.Zero
	for _, item := range result.LineItems {
		subtotal = subtotal.Add(item.LineTotal)
	}
	result.Subtotal = subtotal

	// Discount multiplies the exact subtotal; rounding happens once, on the
	// discounted figure.
	discounted := subtotal.Mul(one.Sub(req.DiscountPercent.Div(hundred)))
	result.GrandTotal = round2(discounted)
	result.DiscountApplied = subtotal.Sub(result.GrandTotal)

	result.Verified = validation.IsValid && len(result.PendingPriceWarnings) == 0
	return result, nil
}

// resolveAccessory picks the first catalog entry of the category compatible
// with the product, in catalog order.
func resolveAccessory(store *catalog.Store, category entities.ItemCategory, family string, thicknessMm int) (entities.CatalogEntry, error) {
	for _, entry := range store.GetAccessoriesByCategory(category) {
		if entry.CompatibleWith(family, thicknessMm) {
			return entry, nil
		}
	}
	return entities.CatalogEntry{}, fmt.Errorf("%w: category=%q family=%q thickness_mm=%d", ErrNoCompatibleAccessory, category, family, thicknessMm)
}
