package qualifiers

import (
	"strings"
	"testing"
)

const sample = `isolate,organism,country
seq1,Arabidopsis thaliana,Germany
seq2,Arabidopsis lyrata,Austria
`

func TestRead(t *testing.T) {
	tab, err := Read(strings.NewReader(sample), "isolate")
	if err != nil {
		t.Fatal(err)
	}
	row, ok := tab.Row("seq1")
	if !ok {
		t.Fatal("seq1 row missing")
	}
	if row["organism"] != "Arabidopsis thaliana" || row["country"] != "Germany" || row["isolate"] != "seq1" {
		t.Fatalf("row = %v", row)
	}
	if _, ok := tab.Row("nope"); ok {
		t.Fatal("unexpected row")
	}
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		label string
	}{
		{"missing label column", "a,b\n1,2\n", "isolate"},
		{"duplicate name", "isolate,x\ns1,1\ns1,2\n", "isolate"},
		{"empty name", "isolate,x\n,1\n", "isolate"},
		{"empty input", "", "isolate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tc.in), tc.label); err == nil {
				t.Fatal("want error")
			}
		})
	}
}
