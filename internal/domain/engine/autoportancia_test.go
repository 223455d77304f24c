package engine

import (
	"strings"
	"testing"

	"paneltec_cotizador/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func testProduct(t *testing.T, thicknessMm int, spanLimit string) entities.Product {
	t.Helper()
	return entities.Product{
		Family:       "isodec-eps",
		ThicknessMm:  thicknessMm,
		PricePerM2:   dec(t, "46.07"),
		UsableWidthM: dec(t, "1.12"),
		SpanLimitM:   dec(t, spanLimit),
	}
}

func TestValidateAutoportancia(t *testing.T) {
	family := []entities.Product{
		testProduct(t, 50, "3.0"),
		testProduct(t, 100, "5.5"),
		testProduct(t, 150, "7.2"),
	}

	t.Run("span within safe limit", func(t *testing.T) {
		v := ValidateAutoportancia(family[1], family, dec(t, "4.0"), DefaultSafetyMargin)
		if !v.IsValid {
			t.Fatalf("expected valid, got %+v", v)
		}
		if !v.SafeMaxSpanM.Equal(dec(t, "4.675")) {
			t.Fatalf("expected safe max 4.675, got %s", v.SafeMaxSpanM)
		}
		if !v.ExcessPercent.IsZero() {
			t.Fatalf("expected zero excess, got %s", v.ExcessPercent)
		}
	})

	t.Run("span exactly at safe limit is valid", func(t *testing.T) {
		v := ValidateAutoportancia(family[1], family, dec(t, "4.675"), DefaultSafetyMargin)
		if !v.IsValid {
			t.Fatalf("expected boundary span to be valid, got %+v", v)
		}
	})

	t.Run("span just over safe limit", func(t *testing.T) {
		v := ValidateAutoportancia(family[1], family, dec(t, "4.68"), DefaultSafetyMargin)
		if v.IsValid {
			t.Fatalf("expected invalid, got %+v", v)
		}
		if !v.ExcessPercent.Equal(dec(t, "0.11")) {
			t.Fatalf("expected excess 0.11, got %s", v.ExcessPercent)
		}
	})

	t.Run("recommends thicker panel from same family", func(t *testing.T) {
		v := ValidateAutoportancia(family[1], family, dec(t, "5.0"), DefaultSafetyMargin)
		if v.IsValid {
			t.Fatalf("expected invalid, got %+v", v)
		}
		// 150mm: 7.2 * 0.85 = 6.12 covers 5.0; 100mm does not.
		if len(v.AlternativeThicknessesMm) != 1 || v.AlternativeThicknessesMm[0] != 150 {
			t.Fatalf("expected alternative [150], got %v", v.AlternativeThicknessesMm)
		}
		if !strings.Contains(v.Recommendation, "150 mm") {
			t.Fatalf("expected 150 mm recommendation, got %q", v.Recommendation)
		}
	})

	t.Run("no thickness covers span recommends intermediate support", func(t *testing.T) {
		v := ValidateAutoportancia(family[2], family, dec(t, "10.0"), DefaultSafetyMargin)
		if v.IsValid {
			t.Fatalf("expected invalid, got %+v", v)
		}
		if len(v.AlternativeThicknessesMm) != 0 {
			t.Fatalf("expected no alternatives, got %v", v.AlternativeThicknessesMm)
		}
		if !strings.Contains(v.Recommendation, "apoyo intermedio") {
			t.Fatalf("expected intermediate support recommendation, got %q", v.Recommendation)
		}
		// Target span is half the requested one.
		if !strings.Contains(v.Recommendation, "5 m") {
			t.Fatalf("expected 5 m target in recommendation, got %q", v.Recommendation)
		}
	})

	t.Run("unknown product yields invalid with no data recommendation", func(t *testing.T) {
		v := ValidateAutoportancia(entities.Product{}, nil, dec(t, "4.0"), DefaultSafetyMargin)
		if v.IsValid {
			t.Fatalf("expected invalid, got %+v", v)
		}
		if !strings.Contains(v.Recommendation, "Sin datos") {
			t.Fatalf("expected no-data recommendation, got %q", v.Recommendation)
		}
	})

	t.Run("missing span limit treated as no data", func(t *testing.T) {
		p := testProduct(t, 100, "5.5")
		p.SpanLimitM = decimal.Zero
		v := ValidateAutoportancia(p, nil, dec(t, "4.0"), DefaultSafetyMargin)
		if v.IsValid || !strings.Contains(v.Recommendation, "Sin datos") {
			t.Fatalf("expected no-data result, got %+v", v)
		}
	})
}
