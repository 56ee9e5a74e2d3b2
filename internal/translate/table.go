// internal/translate/table.go
package translate

import "fmt"

// Table is one NCBI genetic-code table: codon translations plus the
// table-specific start-codon set. Stop codons translate to '*'.
type Table struct {
	ID     int
	Name   string
	codons map[string]byte
	starts map[string]bool
}

// standard is NCBI table 1. Variant tables are derived from it below.
var standard = map[string]byte{
	"ATA": 'I', "ATC": 'I', "ATT": 'I', "ATG": 'M',
	"ACA": 'T', "ACC": 'T', "ACG": 'T', "ACT": 'T',
	"AAC": 'N', "AAT": 'N', "AAA": 'K', "AAG": 'K',
	"AGC": 'S', "AGT": 'S', "AGA": 'R', "AGG": 'R',
	"CTA": 'L', "CTC": 'L', "CTG": 'L', "CTT": 'L',
	"CCA": 'P', "CCC": 'P', "CCG": 'P', "CCT": 'P',
	"CAC": 'H', "CAT": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGA": 'R', "CGC": 'R', "CGG": 'R', "CGT": 'R',
	"GTA": 'V', "GTC": 'V', "GTG": 'V', "GTT": 'V',
	"GCA": 'A', "GCC": 'A', "GCG": 'A', "GCT": 'A',
	"GAC": 'D', "GAT": 'D', "GAA": 'E', "GAG": 'E',
	"GGA": 'G', "GGC": 'G', "GGG": 'G', "GGT": 'G',
	"TCA": 'S', "TCC": 'S', "TCG": 'S', "TCT": 'S',
	"TTC": 'F', "TTT": 'F', "TTA": 'L', "TTG": 'L',
	"TAC": 'Y', "TAT": 'Y', "TAA": '*', "TAG": '*',
	"TGC": 'C', "TGT": 'C', "TGA": '*', "TGG": 'W',
}

func derive(id int, name string, starts []string, overrides map[string]byte) Table {
	codons := make(map[string]byte, len(standard))
	for c, aa := range standard {
		codons[c] = aa
	}
	for c, aa := range overrides {
		codons[c] = aa
	}
	ss := make(map[string]bool, len(starts))
	for _, s := range starts {
		ss[s] = true
	}
	return Table{ID: id, Name: name, codons: codons, starts: ss}
}

var tables = map[int]Table{
	1: derive(1, "Standard",
		[]string{"TTG", "CTG", "ATG"}, nil),
	2: derive(2, "Vertebrate Mitochondrial",
		[]string{"ATT", "ATC", "ATA", "ATG", "GTG"},
		map[string]byte{"AGA": '*', "AGG": '*', "ATA": 'M', "TGA": 'W'}),
	5: derive(5, "Invertebrate Mitochondrial",
		[]string{"TTG", "ATT", "ATC", "ATA", "ATG", "GTG"},
		map[string]byte{"AGA": 'S', "AGG": 'S', "ATA": 'M', "TGA": 'W'}),
	11: derive(11, "Bacterial, Archaeal and Plant Plastid",
		[]string{"TTG", "CTG", "ATT", "ATC", "ATA", "ATG", "GTG"}, nil),
}

// ByID returns the genetic-code table for an NCBI table number.
func ByID(id int) (Table, error) {
	t, ok := tables[id]
	if !ok {
		return Table{}, fmt.Errorf("unsupported translation table %d (supported: 1, 2, 5, 11)", id)
	}
	return t, nil
}

// Translate returns the amino acid for a codon; 'X' for codons containing
// ambiguity symbols.
func (t Table) Translate(codon string) byte {
	if aa, ok := t.codons[codon]; ok {
		return aa
	}
	return 'X'
}

func (t Table) IsStart(codon string) bool { return t.starts[codon] }
func (t Table) IsStop(codon string) bool  { return t.codons[codon] == '*' }
