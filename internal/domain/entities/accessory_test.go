package entities

import "testing"

func TestCatalogEntry_CompatibleWith(t *testing.T) {
	cases := []struct {
		name          string
		compatibility Compatibility
		family        string
		thicknessMm   int
		want          bool
	}{
		{name: "unrestricted", compatibility: Compatibility{}, family: "isodec-eps", thicknessMm: 100, want: true},
		{name: "family listed", compatibility: Compatibility{Families: []string{"isodec-eps"}}, family: "isodec-eps", thicknessMm: 100, want: true},
		{name: "family not listed", compatibility: Compatibility{Families: []string{"isodec-pur"}}, family: "isodec-eps", thicknessMm: 100, want: false},
		{name: "below min thickness", compatibility: Compatibility{MinThicknessMm: 151}, family: "isodec-eps", thicknessMm: 150, want: false},
		{name: "at min thickness", compatibility: Compatibility{MinThicknessMm: 151}, family: "isodec-eps", thicknessMm: 151, want: true},
		{name: "above max thickness", compatibility: Compatibility{MaxThicknessMm: 150}, family: "isodec-eps", thicknessMm: 200, want: false},
		{name: "at max thickness", compatibility: Compatibility{MaxThicknessMm: 150}, family: "isodec-eps", thicknessMm: 150, want: true},
		{name: "family and range", compatibility: Compatibility{Families: []string{"isodec-eps"}, MinThicknessMm: 80, MaxThicknessMm: 150}, family: "isodec-eps", thicknessMm: 100, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := CatalogEntry{SKU: "X", Compatibility: tc.compatibility}
			if got := e.CompatibleWith(tc.family, tc.thicknessMm); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestUnitMeasureKind_Valid(t *testing.T) {
	for _, k := range []UnitMeasureKind{UnitPiece, UnitLinearLength, UnitArea} {
		if !k.Valid() {
			t.Fatalf("expected %q to be valid", k)
		}
	}
	if UnitMeasureKind("per-kg").Valid() {
		t.Fatalf("expected per-kg to be invalid")
	}
}
