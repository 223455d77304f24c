package catalog

import (
	"errors"
	"strings"
	"testing"

	"paneltec_cotizador/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const validProducts = `{
  "isodec-eps": {
    "100": { "price": 46.07, "usableWidth": 1.12, "spanLimit": 5.5, "thermalCoefficient": 0.36 },
    "50": { "price": 32.9, "usableWidth": 1.12, "spanLimit": 3.0, "thermalCoefficient": 0.68 }
  }
}`

const validAccessories = `[
  {
    "sku": "POL-C-100",
    "name": "Polín C 100",
    "category": "supports",
    "unitMeasureKind": "piece",
    "nominalPieceLength": 6.0,
    "unitPrice": 18.5,
    "compatibility": { "families": [] }
  },
  {
    "sku": "GOT-FRONT-3M",
    "name": "Gotero frontal 3m",
    "category": "drip-edge-front",
    "unitMeasureKind": "linear-length",
    "nominalPieceLength": 3.0,
    "unitPrice": 4.2,
    "compatibility": { "families": [] }
  },
  {
    "sku": "SELL-PUR-600",
    "name": "Sellador de poliuretano 600ml",
    "category": "sealant-tubes",
    "unitMeasureKind": "piece",
    "nominalPieceLength": 0,
    "compatibility": { "families": ["isodec-eps"] }
  }
]`

const validRules = `{
  "metal-roof-eps": {
    "description": "Techo metálico",
    "compatibleFamilies": ["isodec-eps"],
    "formulas": [
      { "category": "panels", "formula": "panel-count" },
      { "category": "supports", "formula": "support-count" },
      { "category": "sealant-tubes", "formula": "joint-sealant", "coverageM": 6.0 }
    ]
  }
}`

func validSources() Sources {
	return Sources{
		Products:    []byte(validProducts),
		Accessories: []byte(validAccessories),
		BOMRules:    []byte(validRules),
	}
}

func TestLoad(t *testing.T) {
	t.Run("valid sources", func(t *testing.T) {
		store, err := Load(validSources())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p := store.GetProduct("isodec-eps", 100)
		if p.IsZero() {
			t.Fatalf("expected isodec-eps/100")
		}
		if !p.PricePerM2.Equal(decimal.RequireFromString("46.07")) {
			t.Fatalf("expected price 46.07, got %s", p.PricePerM2)
		}

		if !store.GetProduct("isodec-eps", 75).IsZero() {
			t.Fatalf("expected zero product for unknown thickness")
		}

		family := store.ProductsByFamily("isodec-eps")
		if len(family) != 2 || family[0].ThicknessMm != 50 || family[1].ThicknessMm != 100 {
			t.Fatalf("expected family ordered by thickness, got %+v", family)
		}

		entry, ok := store.GetAccessory("SELL-PUR-600")
		if !ok {
			t.Fatalf("expected SELL-PUR-600")
		}
		if !entry.PricePending {
			t.Fatalf("expected missing unitPrice to mark the entry pending")
		}

		supports := store.GetAccessoriesByCategory(entities.CategorySupports)
		if len(supports) != 1 || supports[0].SKU != "POL-C-100" {
			t.Fatalf("unexpected supports: %+v", supports)
		}

		rule := store.GetBOMRule("metal-roof-eps")
		if rule.IsZero() || len(rule.Formulas) != 3 {
			t.Fatalf("unexpected rule: %+v", rule)
		}
		if systems := store.Systems(); len(systems) != 1 || systems[0] != "metal-roof-eps" {
			t.Fatalf("unexpected systems: %v", systems)
		}
	})

	t.Run("load is idempotent", func(t *testing.T) {
		a, err := Load(validSources())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := Load(validSources())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pa, pb := a.GetProduct("isodec-eps", 100), b.GetProduct("isodec-eps", 100)
		if pa.Key() != pb.Key() || !pa.PricePerM2.Equal(pb.PricePerM2) || !pa.SpanLimitM.Equal(pb.SpanLimitM) {
			t.Fatalf("expected value-equal products across loads, got %+v and %+v", pa, pb)
		}
	})

	cases := []struct {
		name    string
		mutate  func(*Sources)
		wantMsg string
	}{
		{
			name:    "malformed products json",
			mutate:  func(s *Sources) { s.Products = []byte("{") },
			wantMsg: "products",
		},
		{
			name:    "empty products",
			mutate:  func(s *Sources) { s.Products = []byte("{}") },
			wantMsg: "empty document",
		},
		{
			name: "non positive price",
			mutate: func(s *Sources) {
				s.Products = []byte(`{"isodec-eps":{"100":{"price":0,"usableWidth":1.12,"spanLimit":5.5}}}`)
			},
			wantMsg: "price must be positive",
		},
		{
			name: "non positive usable width",
			mutate: func(s *Sources) {
				s.Products = []byte(`{"isodec-eps":{"100":{"price":46.07,"usableWidth":0,"spanLimit":5.5}}}`)
			},
			wantMsg: "usableWidth must be positive",
		},
		{
			name: "invalid thickness key",
			mutate: func(s *Sources) {
				s.Products = []byte(`{"isodec-eps":{"-100":{"price":46.07,"usableWidth":1.12,"spanLimit":5.5}}}`)
			},
			wantMsg: "invalid thickness key",
		},
		{
			name: "duplicate accessory sku",
			mutate: func(s *Sources) {
				s.Accessories = []byte(`[
					{"sku":"POL-C-100","category":"supports","unitMeasureKind":"piece","unitPrice":1,"compatibility":{"families":[]}},
					{"sku":"POL-C-100","category":"supports","unitMeasureKind":"piece","unitPrice":1,"compatibility":{"families":[]}}
				]`)
			},
			wantMsg: "duplicate sku",
		},
		{
			name: "unknown unit measure kind",
			mutate: func(s *Sources) {
				s.Accessories = []byte(`[{"sku":"X","category":"supports","unitMeasureKind":"per-kg","unitPrice":1,"compatibility":{"families":[]}}]`)
			},
			wantMsg: "unknown unitMeasureKind",
		},
		{
			name: "linear length without nominal piece length",
			mutate: func(s *Sources) {
				s.Accessories = []byte(`[{"sku":"X","category":"supports","unitMeasureKind":"linear-length","unitPrice":1,"compatibility":{"families":[]}}]`)
			},
			wantMsg: "positive nominalPieceLength",
		},
		{
			name: "rule references unknown family",
			mutate: func(s *Sources) {
				s.BOMRules = []byte(`{"metal-roof-eps":{"compatibleFamilies":["isowall-eps"],"formulas":[{"category":"panels","formula":"panel-count"}]}}`)
			},
			wantMsg: "not present in products catalog",
		},
		{
			name: "rule without formulas",
			mutate: func(s *Sources) {
				s.BOMRules = []byte(`{"metal-roof-eps":{"compatibleFamilies":["isodec-eps"],"formulas":[]}}`)
			},
			wantMsg: "no formulas",
		},
		{
			name: "unknown formula kind",
			mutate: func(s *Sources) {
				s.BOMRules = []byte(`{"metal-roof-eps":{"compatibleFamilies":["isodec-eps"],"formulas":[{"category":"panels","formula":"per-kg"}]}}`)
			},
			wantMsg: "unknown formula",
		},
		{
			name: "fixation grid without factor",
			mutate: func(s *Sources) {
				s.BOMRules = []byte(`{"metal-roof-eps":{"compatibleFamilies":["isodec-eps"],"formulas":[{"category":"supports","formula":"fixation-grid"}]}}`)
			},
			wantMsg: "positive factor",
		},
		{
			name: "linear pieces with unknown dimension",
			mutate: func(s *Sources) {
				s.BOMRules = []byte(`{"metal-roof-eps":{"compatibleFamilies":["isodec-eps"],"formulas":[{"category":"supports","formula":"linear-pieces","dimension":"height","pieceLengthM":3}]}}`)
			},
			wantMsg: "unknown dimension",
		},
		{
			name: "joint sealant without coverage",
			mutate: func(s *Sources) {
				s.BOMRules = []byte(`{"metal-roof-eps":{"compatibleFamilies":["isodec-eps"],"formulas":[{"category":"sealant-tubes","formula":"joint-sealant"}]}}`)
			},
			wantMsg: "positive coverageM",
		},
		{
			name: "rule category without accessories",
			mutate: func(s *Sources) {
				s.BOMRules = []byte(`{"metal-roof-eps":{"compatibleFamilies":["isodec-eps"],"formulas":[{"category":"anchors","formula":"per-support","factor":4}]}}`)
			},
			wantMsg: "no matching accessories",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := validSources()
			tc.mutate(&src)
			_, err := Load(src)
			if !errors.Is(err, ErrCatalogLoad) {
				t.Fatalf("expected ErrCatalogLoad, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("expected message containing %q, got %q", tc.wantMsg, err)
			}
		})
	}
}
