package entities

import "github.com/shopspring/decimal"

// ItemCategory names one BOM line category produced by a construction system.
type ItemCategory string

const (
	CategoryPanels              ItemCategory = "panels"
	CategorySupports            ItemCategory = "supports"
	CategoryFixationPoints      ItemCategory = "fixation-points"
	CategoryDripEdgeFront       ItemCategory = "drip-edge-front"
	CategoryDripEdgeLateral     ItemCategory = "drip-edge-lateral"
	CategorySealantTubes        ItemCategory = "sealant-tubes"
	CategoryRivets              ItemCategory = "rivets"
	CategoryNuts                ItemCategory = "nuts"
	CategoryAnchors             ItemCategory = "anchors"
	CategoryPerfileriaFasteners ItemCategory = "perfileria-fasteners"
)

// FormulaKind selects one of the closed set of quantity formulas implemented
// in the engine. BOM rule JSON only picks a kind and its parameters; no
// expression is ever evaluated from configuration.
type FormulaKind string

const (
	// FormulaPanelCount yields ceil(widthM / usable panel width).
	FormulaPanelCount FormulaKind = "panel-count"
	// FormulaSupportCount yields ceil(lengthM/spanM + 1).
	FormulaSupportCount FormulaKind = "support-count"
	// FormulaFixationGrid yields panelCount × supportCount × factor.
	FormulaFixationGrid FormulaKind = "fixation-grid"
	// FormulaPerSupport yields supportCount × factor.
	FormulaPerSupport FormulaKind = "per-support"
	// FormulaLinearPieces yields ceil(run(dimension) / pieceLengthM).
	FormulaLinearPieces FormulaKind = "linear-pieces"
	// FormulaJointSealant yields ceil((panelCount−1) × lengthM / coverageM).
	FormulaJointSealant FormulaKind = "joint-sealant"
	// FormulaAreaM2 yields lengthM × widthM as a decimal quantity.
	FormulaAreaM2 FormulaKind = "area-m2"
)

func (k FormulaKind) Valid() bool {
	switch k {
	case FormulaPanelCount, FormulaSupportCount, FormulaFixationGrid,
		FormulaPerSupport, FormulaLinearPieces, FormulaJointSealant, FormulaAreaM2:
		return true
	}
	return false
}

// RunDimension names the linear run a linear-pieces formula covers.
type RunDimension string

const (
	RunWidth        RunDimension = "width"
	RunLength       RunDimension = "length"
	RunLengthDouble RunDimension = "length-double"
	RunPerimeter    RunDimension = "perimeter"
)

func (d RunDimension) Valid() bool {
	switch d {
	case RunWidth, RunLength, RunLengthDouble, RunPerimeter:
		return true
	}
	return false
}

// FormulaSpec configures one category's quantity formula inside a system rule.
// Only the parameters relevant to the kind are set; load-time validation
// enforces presence.
type FormulaSpec struct {
	Category     ItemCategory    `json:"category"`
	Kind         FormulaKind     `json:"kind"`
	Factor       decimal.Decimal `json:"factor"`
	Dimension    RunDimension    `json:"dimension"`
	PieceLengthM decimal.Decimal `json:"piece_length_m"`
	CoverageM    decimal.Decimal `json:"coverage_m"`
}

// BOMSystemRule maps a construction-system identifier (e.g. metal-roof-eps)
// to the formulas that derive its bill of materials. Immutable after load.
type BOMSystemRule struct {
	SystemID           string        `json:"system_id"`
	Description        string        `json:"description"`
	CompatibleFamilies []string      `json:"compatible_families"`
	Formulas           []FormulaSpec `json:"formulas"`
}

// IsZero reports whether the rule is the not-found zero value.
func (r BOMSystemRule) IsZero() bool {
	return r.SystemID == ""
}

// SupportsFamily reports whether the system can be built with the family.
func (r BOMSystemRule) SupportsFamily(family string) bool {
	for _, f := range r.CompatibleFamilies {
		if f == family {
			return true
		}
	}
	return false
}
