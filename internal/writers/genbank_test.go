package writers

import (
	"strings"
	"testing"
)

func TestWriteGenBank(t *testing.T) {
	var b strings.Builder
	if err := WriteGenBank(&b, sampleRecord()); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	for _, want := range []string{
		"LOCUS       seq1             12 bp    DNA     linear   UNA\n",
		"DEFINITION  Arabidopsis thaliana seq1.\n",
		"ACCESSION   seq1\n",
		"SOURCE      Arabidopsis thaliana\n",
		"  ORGANISM  Arabidopsis thaliana\n",
		"FEATURES             Location/Qualifiers\n",
		"     source          1..12\n",
		`                     /organism="Arabidopsis thaliana"` + "\n",
		"     CDS             1..9\n",
		`                     /gene="matK"` + "\n",
		"     tRNA            10..12\n",
		"ORIGIN\n",
		"        1 atgaaataac cc\n",
		"//\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestGenBankRegistered(t *testing.T) {
	for _, format := range []string{"gb", "genbank"} {
		if _, ok := Formats[format]; !ok {
			t.Fatalf("format %q not registered", format)
		}
	}
}
