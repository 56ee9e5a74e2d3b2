package charset

import (
	"testing"

	"annonex2embl/internal/feature"
)

func TestLocalResolve(t *testing.T) {
	resolve := Local("someone@example.org")

	cases := []struct {
		name    string
		gene    string
		kind    feature.Kind
		product string
	}{
		{"matK_CDS", "matK", feature.CDS, "maturase K"},
		{"matK_gene", "matK", feature.Gene, "maturase K"},
		{"trnK_tRNA", "trnK", feature.TRNA, "tRNA-Lys"},
		{"rrn16_rRNA", "rrn16", feature.RRNA, "16S ribosomal RNA"},
		{"unknownSym_CDS", "unknownSym", feature.CDS, "unknownSym"},
	}
	for _, tc := range cases {
		m, err := resolve(tc.name)
		if err != nil {
			t.Fatalf("resolve(%q): %v", tc.name, err)
		}
		if m.Gene != tc.gene || m.Kind != tc.kind || m.Product != tc.product {
			t.Fatalf("resolve(%q) = %+v", tc.name, m)
		}
	}
}

func TestLocalResolveFailures(t *testing.T) {
	resolve := Local("")
	for _, bad := range []string{"nounderscore", "matK_promoter", "_CDS", "matK_", "matK_source"} {
		if _, err := resolve(bad); err == nil {
			t.Fatalf("resolve(%q): want error", bad)
		}
	}
}
