package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"paneltec_cotizador/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ErrCatalogLoad wraps every load-time failure: malformed JSON, a missing
// field, or a dangling cross-catalog reference. These are deployment/data
// defects and must stop startup, never be swallowed.
var ErrCatalogLoad = errors.New("catalog load failed")

// Sources carries the three raw catalog documents.
type Sources struct {
	Products    []byte
	Accessories []byte
	BOMRules    []byte
}

// Store holds the three parsed catalogs and serves read-only lookups.
//
// A Store is immutable after Load. It is safe for concurrent readers; catalog
// updates are handled by building a new Store and swapping it via Holder.
type Store struct {
	products        map[string]entities.Product
	thicknessIndex  map[string][]entities.Product
	accessories     map[string]entities.CatalogEntry
	byCategory      map[entities.ItemCategory][]entities.CatalogEntry
	rules           map[string]entities.BOMSystemRule
	orderedFamilies []string
	orderedSystems  []string
}

type productDoc map[string]map[string]struct {
	Price              decimal.Decimal `json:"price"`
	UsableWidth        decimal.Decimal `json:"usableWidth"`
	SpanLimit          decimal.Decimal `json:"spanLimit"`
	ThermalCoefficient decimal.Decimal `json:"thermalCoefficient"`
}

type accessoryDoc []struct {
	SKU                string                 `json:"sku"`
	Name               string                 `json:"name"`
	Category           string                 `json:"category"`
	UnitMeasureKind    string                 `json:"unitMeasureKind"`
	NominalPieceLength decimal.Decimal        `json:"nominalPieceLength"`
	UnitPrice          *decimal.Decimal       `json:"unitPrice"`
	Compatibility      entities.Compatibility `json:"compatibility"`
}

type ruleDoc map[string]struct {
	Description        string   `json:"description"`
	CompatibleFamilies []string `json:"compatibleFamilies"`
	Formulas           []struct {
		Category    string          `json:"category"`
		Formula     string          `json:"formula"`
		Factor      decimal.Decimal `json:"factor"`
		Dimension   string          `json:"dimension"`
		PieceLength decimal.Decimal `json:"pieceLengthM"`
		Coverage    decimal.Decimal `json:"coverageM"`
	} `json:"formulas"`
}

// Load parses the three catalog documents and validates every cross-catalog
// reference. Loading is idempotent: identical sources produce a value-equal
// store.
func Load(src Sources) (*Store, error) {
	s := &Store{
		products:       map[string]entities.Product{},
		thicknessIndex: map[string][]entities.Product{},
		accessories:    map[string]entities.CatalogEntry{},
		byCategory:     map[entities.ItemCategory][]entities.CatalogEntry{},
		rules:          map[string]entities.BOMSystemRule{},
	}
	if err := s.loadProducts(src.Products); err != nil {
		return nil, err
	}
	if err := s.loadAccessories(src.Accessories); err != nil {
		return nil, err
	}
	if err := s.loadRules(src.BOMRules); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) loadProducts(raw []byte) error {
	var doc productDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: products: %v", ErrCatalogLoad, err)
	}
	if len(doc) == 0 {
		return fmt.Errorf("%w: products: empty document", ErrCatalogLoad)
	}
	for family, byThickness := range doc {
		for thicknessStr, entry := range byThickness {
			var thickness int
			if _, err := fmt.Sscanf(thicknessStr, "%d", &thickness); err != nil || thickness <= 0 {
				return fmt.Errorf("%w: products: family %q has invalid thickness key %q", ErrCatalogLoad, family, thicknessStr)
			}
			if entry.Price.Sign() <= 0 {
				return fmt.Errorf("%w: products: %s/%d: price must be positive, got %s", ErrCatalogLoad, family, thickness, entry.Price)
			}
			if entry.UsableWidth.Sign() <= 0 {
				return fmt.Errorf("%w: products: %s/%d: usableWidth must be positive, got %s", ErrCatalogLoad, family, thickness, entry.UsableWidth)
			}
			p := entities.Product{
				Family:             family,
				ThicknessMm:        thickness,
				PricePerM2:         entry.Price,
				UsableWidthM:       entry.UsableWidth,
				SpanLimitM:         entry.SpanLimit,
				ThermalCoefficient: entry.ThermalCoefficient,
			}
			s.products[p.Key()] = p
			s.thicknessIndex[family] = append(s.thicknessIndex[family], p)
		}
	}
	for family := range s.thicknessIndex {
		sort.Slice(s.thicknessIndex[family], func(i, j int) bool {
			return s.thicknessIndex[family][i].ThicknessMm < s.thicknessIndex[family][j].ThicknessMm
		})
		s.orderedFamilies = append(s.orderedFamilies, family)
	}
	sort.Strings(s.orderedFamilies)
	return nil
}

func (s *Store) loadAccessories(raw []byte) error {
	var doc accessoryDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: accessories: %v", ErrCatalogLoad, err)
	}
	for i, a := range doc {
		if a.SKU == "" {
			return fmt.Errorf("%w: accessories[%d]: missing sku", ErrCatalogLoad, i)
		}
		if _, dup := s.accessories[a.SKU]; dup {
			return fmt.Errorf("%w: accessories: duplicate sku %q", ErrCatalogLoad, a.SKU)
		}
		kind := entities.UnitMeasureKind(a.UnitMeasureKind)
		if !kind.Valid() {
			return fmt.Errorf("%w: accessories: sku %q: unknown unitMeasureKind %q", ErrCatalogLoad, a.SKU, a.UnitMeasureKind)
		}
		if kind == entities.UnitLinearLength && a.NominalPieceLength.Sign() <= 0 {
			return fmt.Errorf("%w: accessories: sku %q: linear-length entry requires a positive nominalPieceLength", ErrCatalogLoad, a.SKU)
		}
		entry := entities.CatalogEntry{
			SKU:                 a.SKU,
			Name:                a.Name,
			Category:            a.Category,
			UnitKind:            kind,
			NominalPieceLengthM: a.NominalPieceLength,
			Compatibility:       a.Compatibility,
		}
		// A missing or non-positive price marks the entry as pending: it can
		// still be quoted, contributing zero and a warning.
		if a.UnitPrice == nil || a.UnitPrice.Sign() <= 0 {
			entry.PricePending = true
		} else {
			entry.UnitPrice = *a.UnitPrice
		}
		s.accessories[a.SKU] = entry
		cat := entities.ItemCategory(a.Category)
		s.byCategory[cat] = append(s.byCategory[cat], entry)
	}
	return nil
}

func (s *Store) loadRules(raw []byte) error {
	var doc ruleDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: bom rules: %v", ErrCatalogLoad, err)
	}
	for systemID, r := range doc {
		rule := entities.BOMSystemRule{
			SystemID:           systemID,
			Description:        r.Description,
			CompatibleFamilies: r.CompatibleFamilies,
		}
		if len(r.Formulas) == 0 {
			return fmt.Errorf("%w: bom rule %q: no formulas", ErrCatalogLoad, systemID)
		}
		for _, family := range r.CompatibleFamilies {
			if len(s.thicknessIndex[family]) == 0 {
				return fmt.Errorf("%w: bom rule %q: compatible family %q not present in products catalog", ErrCatalogLoad, systemID, family)
			}
		}
		for _, f := range r.Formulas {
			spec := entities.FormulaSpec{
				Category:     entities.ItemCategory(f.Category),
				Kind:         entities.FormulaKind(f.Formula),
				Factor:       f.Factor,
				Dimension:    entities.RunDimension(f.Dimension),
				PieceLengthM: f.PieceLength,
				CoverageM:    f.Coverage,
			}
			if err := validateFormulaSpec(systemID, spec); err != nil {
				return err
			}
			// Every non-panel category the rule produces must have at least
			// one accessory to price it.
			if spec.Category != entities.CategoryPanels && len(s.byCategory[spec.Category]) == 0 {
				return fmt.Errorf("%w: bom rule %q: category %q has no matching accessories", ErrCatalogLoad, systemID, spec.Category)
			}
			rule.Formulas = append(rule.Formulas, spec)
		}
		s.rules[systemID] = rule
		s.orderedSystems = append(s.orderedSystems, systemID)
	}
	sort.Strings(s.orderedSystems)
	return nil
}

func validateFormulaSpec(systemID string, f entities.FormulaSpec) error {
	if f.Category == "" {
		return fmt.Errorf("%w: bom rule %q: formula with empty category", ErrCatalogLoad, systemID)
	}
	if !f.Kind.Valid() {
		return fmt.Errorf("%w: bom rule %q: category %q: unknown formula %q", ErrCatalogLoad, systemID, f.Category, f.Kind)
	}
	switch f.Kind {
	case entities.FormulaFixationGrid, entities.FormulaPerSupport:
		if f.Factor.Sign() <= 0 {
			return fmt.Errorf("%w: bom rule %q: category %q: formula %q requires a positive factor", ErrCatalogLoad, systemID, f.Category, f.Kind)
		}
	case entities.FormulaLinearPieces:
		if !f.Dimension.Valid() {
			return fmt.Errorf("%w: bom rule %q: category %q: unknown dimension %q", ErrCatalogLoad, systemID, f.Category, f.Dimension)
		}
		if f.PieceLengthM.Sign() <= 0 {
			return fmt.Errorf("%w: bom rule %q: category %q: linear-pieces requires a positive pieceLengthM", ErrCatalogLoad, systemID, f.Category)
		}
	case entities.FormulaJointSealant:
		if f.CoverageM.Sign() <= 0 {
			return fmt.Errorf("%w: bom rule %q: category %q: joint-sealant requires a positive coverageM", ErrCatalogLoad, systemID, f.Category)
		}
	}
	return nil
}

// GetProduct returns the product for (family, thickness); the zero Product
// when not found.
func (s *Store) GetProduct(family string, thicknessMm int) entities.Product {
	return s.products[entities.ProductKey(family, thicknessMm)]
}

// ProductsByFamily returns the family's products ordered by ascending
// thickness. The returned slice must not be mutated.
func (s *Store) ProductsByFamily(family string) []entities.Product {
	return s.thicknessIndex[family]
}

// Families returns all product families in lexical order.
func (s *Store) Families() []string {
	return s.orderedFamilies
}

// GetAccessoriesByCategory returns the category's entries in catalog order.
// The returned slice must not be mutated.
func (s *Store) GetAccessoriesByCategory(category entities.ItemCategory) []entities.CatalogEntry {
	return s.byCategory[category]
}

// GetAccessory returns the entry for a SKU; the zero value when not found.
func (s *Store) GetAccessory(sku string) (entities.CatalogEntry, bool) {
	e, ok := s.accessories[sku]
	return e, ok
}

// GetBOMRule returns the system rule; the zero rule when not found.
func (s *Store) GetBOMRule(systemID string) entities.BOMSystemRule {
	return s.rules[systemID]
}

// Systems returns all construction-system identifiers in lexical order.
func (s *Store) Systems() []string {
	return s.orderedSystems
}
