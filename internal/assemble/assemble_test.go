package assemble

import (
	"reflect"
	"testing"

	"annonex2embl/internal/charset"
	"annonex2embl/internal/feature"
	"annonex2embl/internal/translate"
)

func table11(t *testing.T) translate.Table {
	t.Helper()
	tab, err := translate.ByID(11)
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func indices(lo, hi int) []int { // inclusive, 0-based
	var out []int
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

func TestAssembleHappyPath(t *testing.T) {
	in := Input{
		Name:       "seq1",
		AlignedSeq: "ATG--AAATAACCC",
		Charsets: map[string][]int{
			"matK_CDS":  indices(0, 10),
			"trnL_tRNA": indices(11, 13),
		},
		Order: []string{"matK_CDS", "trnL_tRNA"},
		Meta: map[string]charset.Meta{
			"matK_CDS":  {Gene: "matK", Product: "maturase K", Kind: feature.CDS},
			"trnL_tRNA": {Gene: "trnL", Product: "tRNA-Leu", Kind: feature.TRNA},
		},
		Qualifiers: map[string]string{"organism": "Arabidopsis thaliana", "isolate": "seq1"},
		Table:      table11(t),
	}

	rec, diags, err := Assemble(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Fatalf("diags = %v", diags)
	}
	if rec.Seq != "ATGAAATAACCC" {
		t.Fatalf("seq = %q", rec.Seq)
	}
	if len(rec.Features) != 3 {
		t.Fatalf("features = %d", len(rec.Features))
	}

	src := rec.Features[0]
	if src.Kind != feature.Source {
		t.Fatalf("features[0] = %v, want source", src.Kind)
	}
	if want := (feature.Span{Start: 0, End: 12}); src.Location.Spans[0] != want {
		t.Fatalf("source span = %v", src.Location.Spans[0])
	}
	if src.Qualifiers["organism"] != "Arabidopsis thaliana" || src.Qualifiers["mol_type"] != "genomic DNA" || src.Qualifiers["transl_table"] != "11" {
		t.Fatalf("source qualifiers = %v", src.Qualifiers)
	}

	cds := rec.Features[1]
	if cds.Kind != feature.CDS || cds.Gene != "matK" {
		t.Fatalf("features[1] = %+v", cds)
	}
	if want := (feature.Span{Start: 0, End: 9}); cds.Location.Spans[0] != want {
		t.Fatalf("CDS span = %v", cds.Location.Spans[0])
	}
	if cds.Qualifiers["translation"] != "MK" {
		t.Fatalf("translation = %q", cds.Qualifiers["translation"])
	}

	trna := rec.Features[2]
	if trna.Kind != feature.TRNA || trna.Location.Start() != 9 {
		t.Fatalf("features[2] = %+v", trna)
	}
}

func TestAssembleDropsRejectedCodingFeatureOnly(t *testing.T) {
	// CDS has an internal stop; the adjacent tRNA must survive.
	in := Input{
		Name:       "seq1",
		AlignedSeq: "ATGTAAAAATAACCC",
		Charsets: map[string][]int{
			"matK_CDS":  indices(0, 11),
			"trnL_tRNA": indices(12, 14),
		},
		Order: []string{"matK_CDS", "trnL_tRNA"},
		Meta: map[string]charset.Meta{
			"matK_CDS":  {Gene: "matK", Product: "maturase K", Kind: feature.CDS},
			"trnL_tRNA": {Gene: "trnL", Product: "tRNA-Leu", Kind: feature.TRNA},
		},
		Table: table11(t),
	}

	rec, diags, err := Assemble(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Features) != 2 {
		t.Fatalf("features = %v", rec.Features)
	}
	if rec.Features[1].Kind != feature.TRNA {
		t.Fatalf("surviving feature = %v", rec.Features[1].Kind)
	}
	if len(diags) != 1 || !diags[0].Dropped {
		t.Fatalf("diags = %v", diags)
	}
	d := diags[0]
	if d.Seq != "seq1" || d.Feature != "matK_CDS" {
		t.Fatalf("diag = %+v", d)
	}
}

func TestAssembleExcludesAllGapCharset(t *testing.T) {
	in := Input{
		Name:       "seq1",
		AlignedSeq: "AA----TT",
		Charsets: map[string][]int{
			"a_tRNA": {0, 1, 2},
			"b_tRNA": {3, 4},
			"c_tRNA": {5, 6, 7},
		},
		Order: []string{"a_tRNA", "b_tRNA", "c_tRNA"},
		Meta: map[string]charset.Meta{
			"a_tRNA": {Gene: "a", Kind: feature.TRNA},
			"b_tRNA": {Gene: "b", Kind: feature.TRNA},
			"c_tRNA": {Gene: "c", Kind: feature.TRNA},
		},
		Table: table11(t),
	}
	rec, diags, err := Assemble(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Fatalf("diags = %v", diags)
	}
	// b_tRNA degaps to nothing and must not appear.
	if len(rec.Features) != 3 {
		t.Fatalf("features = %v", rec.Features)
	}
	if rec.Features[1].Gene != "a" || rec.Features[2].Gene != "c" {
		t.Fatalf("kept genes = %q, %q", rec.Features[1].Gene, rec.Features[2].Gene)
	}
}

func TestAssembleSortTieKeepsDeclarationOrder(t *testing.T) {
	base := Input{
		Name:       "seq1",
		AlignedSeq: "ACGTACGT",
		Charsets: map[string][]int{
			"x_tRNA": indices(0, 5),
			"y_rRNA": indices(0, 3),
		},
		Meta: map[string]charset.Meta{
			"x_tRNA": {Gene: "x", Kind: feature.TRNA},
			"y_rRNA": {Gene: "y", Kind: feature.RRNA},
		},
		Table: table11(t),
	}

	base.Order = []string{"x_tRNA", "y_rRNA"}
	rec1, _, err := Assemble(base)
	if err != nil {
		t.Fatal(err)
	}
	if rec1.Features[1].Gene != "x" || rec1.Features[2].Gene != "y" {
		t.Fatalf("order = %q, %q", rec1.Features[1].Gene, rec1.Features[2].Gene)
	}

	base.Order = []string{"y_rRNA", "x_tRNA"}
	rec2, _, err := Assemble(base)
	if err != nil {
		t.Fatal(err)
	}
	if rec2.Features[1].Gene != "y" || rec2.Features[2].Gene != "x" {
		t.Fatalf("order = %q, %q", rec2.Features[1].Gene, rec2.Features[2].Gene)
	}
}

func TestAssembleMissingStopPolicy(t *testing.T) {
	in := Input{
		Name:       "seq1",
		AlignedSeq: "ATGAAAGGG",
		Charsets:   map[string][]int{"matK_CDS": indices(0, 8)},
		Order:      []string{"matK_CDS"},
		Meta: map[string]charset.Meta{
			"matK_CDS": {Gene: "matK", Kind: feature.CDS},
		},
		Table: table11(t),
	}

	// warn policy: feature kept, diagnostic emitted
	rec, diags, err := Assemble(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Features) != 2 {
		t.Fatalf("features = %v", rec.Features)
	}
	if len(diags) != 1 || diags[0].Dropped {
		t.Fatalf("diags = %v", diags)
	}

	// reject policy: feature dropped
	in.RequireStop = true
	rec, diags, err = Assemble(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Features) != 1 {
		t.Fatalf("features = %v", rec.Features)
	}
	if len(diags) != 1 || !diags[0].Dropped {
		t.Fatalf("diags = %v", diags)
	}
}

func TestAssembleUnresolvedCharset(t *testing.T) {
	in := Input{
		Name:       "seq1",
		AlignedSeq: "ACGT",
		Charsets:   map[string][]int{"weird": indices(0, 3)},
		Order:      []string{"weird"},
		Meta:       map[string]charset.Meta{},
		Table:      table11(t),
	}
	rec, diags, err := Assemble(in)
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Features) != 1 {
		t.Fatalf("features = %v", rec.Features)
	}
	if len(diags) != 1 || !diags[0].Dropped || diags[0].Feature != "weird" {
		t.Fatalf("diags = %v", diags)
	}
}

func TestAssembleDegapErrorRejectsRecord(t *testing.T) {
	in := Input{
		Name:       "seq1",
		AlignedSeq: "ACGT",
		Charsets:   map[string][]int{"g_tRNA": {0, 99}},
		Order:      []string{"g_tRNA"},
		Meta:       map[string]charset.Meta{"g_tRNA": {Gene: "g", Kind: feature.TRNA}},
		Table:      table11(t),
	}
	if _, _, err := Assemble(in); err == nil {
		t.Fatal("want record-local error")
	}
}

func TestAssembleLeavesSharedCharsetsUntouched(t *testing.T) {
	shared := map[string][]int{"a_tRNA": {0, 1, 2, 3}}
	want := map[string][]int{"a_tRNA": {0, 1, 2, 3}}
	in := Input{
		Name:       "seq1",
		AlignedSeq: "A-GT",
		Charsets:   shared,
		Order:      []string{"a_tRNA"},
		Meta:       map[string]charset.Meta{"a_tRNA": {Gene: "a", Kind: feature.TRNA}},
		Table:      table11(t),
	}
	if _, _, err := Assemble(in); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(shared, want) {
		t.Fatalf("shared charsets mutated: %v", shared)
	}
}
