package engine

import (
	"errors"
	"testing"

	"paneltec_cotizador/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func testRule(formulas ...entities.FormulaSpec) entities.BOMSystemRule {
	return entities.BOMSystemRule{
		SystemID:           "metal-roof-eps",
		CompatibleFamilies: []string{"isodec-eps"},
		Formulas:           formulas,
	}
}

func TestValidateGeometry(t *testing.T) {
	cases := []struct {
		name                string
		length, width, span string
		wantErr             bool
	}{
		{name: "valid", length: "10", width: "5", span: "5.5"},
		{name: "zero length", length: "0", width: "5", span: "5.5", wantErr: true},
		{name: "negative width", length: "10", width: "-1", span: "5.5", wantErr: true},
		{name: "zero span", length: "10", width: "5", span: "0", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateGeometry(dec(t, tc.length), dec(t, tc.width), dec(t, tc.span))
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidGeometry) {
					t.Fatalf("expected ErrInvalidGeometry, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestComputeQuantities(t *testing.T) {
	product := testProduct(t, 100, "5.5")

	t.Run("panel count ceils width over usable width", func(t *testing.T) {
		rule := testRule(entities.FormulaSpec{Category: entities.CategoryPanels, Kind: entities.FormulaPanelCount})
		// 5 / 1.12 = 4.46..., five panels.
		q, err := ComputeQuantities(rule, product, dec(t, "10"), dec(t, "5"), dec(t, "5.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q[entities.CategoryPanels].Equal(decimal.NewFromInt(5)) {
			t.Fatalf("expected 5 panels, got %s", q[entities.CategoryPanels])
		}
	})

	t.Run("support count is length over span plus one, ceiled", func(t *testing.T) {
		rule := testRule(entities.FormulaSpec{Category: entities.CategorySupports, Kind: entities.FormulaSupportCount})
		// 6 / 5.5 + 1 = 2.09..., three supports.
		q, err := ComputeQuantities(rule, product, dec(t, "6"), dec(t, "5"), dec(t, "5.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q[entities.CategorySupports].Equal(decimal.NewFromInt(3)) {
			t.Fatalf("expected 3 supports, got %s", q[entities.CategorySupports])
		}
	})

	t.Run("fixation grid multiplies panels by supports by factor", func(t *testing.T) {
		rule := testRule(entities.FormulaSpec{
			Category: entities.CategoryFixationPoints,
			Kind:     entities.FormulaFixationGrid,
			Factor:   decimal.NewFromInt(2),
		})
		// panels 5, supports 3, factor 2 -> 30.
		q, err := ComputeQuantities(rule, product, dec(t, "10"), dec(t, "5"), dec(t, "5.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q[entities.CategoryFixationPoints].Equal(decimal.NewFromInt(30)) {
			t.Fatalf("expected 30 fixation points, got %s", q[entities.CategoryFixationPoints])
		}
	})

	t.Run("per support multiplies supports by factor", func(t *testing.T) {
		rule := testRule(entities.FormulaSpec{
			Category: entities.CategoryAnchors,
			Kind:     entities.FormulaPerSupport,
			Factor:   decimal.NewFromInt(4),
		})
		q, err := ComputeQuantities(rule, product, dec(t, "10"), dec(t, "5"), dec(t, "5.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q[entities.CategoryAnchors].Equal(decimal.NewFromInt(12)) {
			t.Fatalf("expected 12 anchors, got %s", q[entities.CategoryAnchors])
		}
	})

	t.Run("linear pieces ceil the run over the piece length", func(t *testing.T) {
		cases := []struct {
			name string
			dim  entities.RunDimension
			want int64
		}{
			// piece length 3; length 10, width 5.
			{name: "width", dim: entities.RunWidth, want: 2},
			{name: "length", dim: entities.RunLength, want: 4},
			{name: "length-double", dim: entities.RunLengthDouble, want: 7},
			{name: "perimeter", dim: entities.RunPerimeter, want: 10},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rule := testRule(entities.FormulaSpec{
					Category:     entities.CategoryDripEdgeFront,
					Kind:         entities.FormulaLinearPieces,
					Dimension:    tc.dim,
					PieceLengthM: dec(t, "3"),
				})
				q, err := ComputeQuantities(rule, product, dec(t, "10"), dec(t, "5"), dec(t, "5.5"))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !q[entities.CategoryDripEdgeFront].Equal(decimal.NewFromInt(tc.want)) {
					t.Fatalf("expected %d pieces, got %s", tc.want, q[entities.CategoryDripEdgeFront])
				}
			})
		}
	})

	t.Run("joint sealant from panel joints", func(t *testing.T) {
		rule := testRule(entities.FormulaSpec{
			Category:  entities.CategorySealantTubes,
			Kind:      entities.FormulaJointSealant,
			CoverageM: dec(t, "6"),
		})
		// (5-1) joints * 10 m / 6 m per tube = 6.66..., seven tubes.
		q, err := ComputeQuantities(rule, product, dec(t, "10"), dec(t, "5"), dec(t, "5.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q[entities.CategorySealantTubes].Equal(decimal.NewFromInt(7)) {
			t.Fatalf("expected 7 tubes, got %s", q[entities.CategorySealantTubes])
		}
	})

	t.Run("single panel produces zero sealant", func(t *testing.T) {
		rule := testRule(entities.FormulaSpec{
			Category:  entities.CategorySealantTubes,
			Kind:      entities.FormulaJointSealant,
			CoverageM: dec(t, "6"),
		})
		// width 1 -> one panel, no joints.
		q, err := ComputeQuantities(rule, product, dec(t, "10"), dec(t, "1"), dec(t, "5.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q[entities.CategorySealantTubes].IsZero() {
			t.Fatalf("expected zero tubes, got %s", q[entities.CategorySealantTubes])
		}
	})

	t.Run("area formula returns exact area", func(t *testing.T) {
		rule := testRule(entities.FormulaSpec{Category: entities.CategoryPanels, Kind: entities.FormulaAreaM2})
		q, err := ComputeQuantities(rule, product, dec(t, "10.5"), dec(t, "5"), dec(t, "5.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q[entities.CategoryPanels].Equal(dec(t, "52.5")) {
			t.Fatalf("expected area 52.5, got %s", q[entities.CategoryPanels])
		}
	})

	t.Run("unknown formula kind fails", func(t *testing.T) {
		rule := testRule(entities.FormulaSpec{Category: entities.CategoryPanels, Kind: entities.FormulaKind("per-m3")})
		_, err := ComputeQuantities(rule, product, dec(t, "10"), dec(t, "5"), dec(t, "5.5"))
		if !errors.Is(err, ErrMissingFormula) {
			t.Fatalf("expected ErrMissingFormula, got %v", err)
		}
	})

	t.Run("monotonic in length", func(t *testing.T) {
		rule := testRule(
			entities.FormulaSpec{Category: entities.CategoryPanels, Kind: entities.FormulaPanelCount},
			entities.FormulaSpec{Category: entities.CategorySupports, Kind: entities.FormulaSupportCount},
			entities.FormulaSpec{Category: entities.CategorySealantTubes, Kind: entities.FormulaJointSealant, CoverageM: dec(t, "6")},
		)
		small, err := ComputeQuantities(rule, product, dec(t, "8"), dec(t, "5"), dec(t, "5.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		large, err := ComputeQuantities(rule, product, dec(t, "12"), dec(t, "5"), dec(t, "5.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for cat, qty := range small {
			if large[cat].Cmp(qty) < 0 {
				t.Fatalf("category %s decreased from %s to %s when length grew", cat, qty, large[cat])
			}
		}
	})
}
