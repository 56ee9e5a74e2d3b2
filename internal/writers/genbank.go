// internal/writers/genbank.go
package writers

import (
	"fmt"
	"io"
	"strings"

	"annonex2embl/internal/feature"
)

func init() {
	Register("gb", WriteGenBank)
	Register("genbank", WriteGenBank)
}

const gbQualColumn = 21

// WriteGenBank serializes one record as a GenBank flat-file entry. The
// LOCUS line carries no date so output stays reproducible.
func WriteGenBank(w io.Writer, rec feature.Record) error {
	organism := ""
	if len(rec.Features) > 0 {
		organism = rec.Features[0].Qualifiers["organism"]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "LOCUS       %-16s %d bp    DNA     linear   UNA\n", rec.Name, len(rec.Seq))
	de := rec.Name
	if organism != "" {
		de = organism + " " + rec.Name
	}
	fmt.Fprintf(&b, "DEFINITION  %s.\n", de)
	fmt.Fprintf(&b, "ACCESSION   %s\n", rec.Name)
	if organism != "" {
		fmt.Fprintf(&b, "SOURCE      %s\n  ORGANISM  %s\n", organism, organism)
	}
	b.WriteString("FEATURES             Location/Qualifiers\n")

	for _, f := range rec.Features {
		fmt.Fprintf(&b, "     %-16s%s\n", f.Kind.String(), formatLocation(f.Location))
		if f.Gene != "" {
			writeGBQualifier(&b, "gene", f.Gene)
		}
		if f.Product != "" {
			writeGBQualifier(&b, "product", f.Product)
		}
		for _, k := range qualifierOrder(f.Qualifiers, "organism", "mol_type") {
			writeGBQualifier(&b, k, f.Qualifiers[k])
		}
	}

	b.WriteString("ORIGIN\n")
	seq := strings.ToLower(rec.Seq)
	for off := 0; off < len(seq); off += 60 {
		end := off + 60
		if end > len(seq) {
			end = len(seq)
		}
		var groups []string
		for p := off; p < end; p += 10 {
			q := p + 10
			if q > end {
				q = end
			}
			groups = append(groups, seq[p:q])
		}
		fmt.Fprintf(&b, "%9d %s\n", off+1, strings.Join(groups, " "))
	}
	b.WriteString("//\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeGBQualifier(b *strings.Builder, key, val string) {
	text := formatQualifier(key, val)
	prefix := strings.Repeat(" ", gbQualColumn)
	for _, line := range wrap(text, 80-gbQualColumn) {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
