// internal/writers/embl.go
package writers

import (
	"fmt"
	"io"
	"strings"

	"annonex2embl/internal/feature"
)

func init() { Register("embl", WriteEMBL) }

const (
	emblLineWidth = 80
	ftKeyColumn   = 21 // location/qualifier text starts here
)

// WriteEMBL serializes one record as an EMBL flat-file entry.
func WriteEMBL(w io.Writer, rec feature.Record) error {
	molType := "genomic DNA"
	organism := ""
	if len(rec.Features) > 0 {
		q := rec.Features[0].Qualifiers
		if v := q["mol_type"]; v != "" {
			molType = v
		}
		organism = q["organism"]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ID   %s; SV 1; linear; %s; STD; UNC; %d BP.\nXX\n", rec.Name, molType, len(rec.Seq))
	fmt.Fprintf(&b, "AC   %s;\nXX\n", rec.Name)
	de := rec.Name
	if organism != "" {
		de = organism + " " + rec.Name
	}
	fmt.Fprintf(&b, "DE   %s.\nXX\n", de)
	b.WriteString("FH   Key             Location/Qualifiers\nFH\n")

	for _, f := range rec.Features {
		writeEMBLFeature(&b, f)
	}
	b.WriteString("XX\n")
	writeEMBLSequence(&b, rec.Seq)
	b.WriteString("//\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeEMBLFeature(b *strings.Builder, f feature.Feature) {
	key := f.Kind.String()
	fmt.Fprintf(b, "FT   %-16s%s\n", key, formatLocation(f.Location))
	if f.Gene != "" {
		writeEMBLQualifier(b, "gene", f.Gene)
	}
	if f.Product != "" {
		writeEMBLQualifier(b, "product", f.Product)
	}
	for _, k := range qualifierOrder(f.Qualifiers, "organism", "mol_type") {
		writeEMBLQualifier(b, k, f.Qualifiers[k])
	}
}

func writeEMBLQualifier(b *strings.Builder, key, val string) {
	text := formatQualifier(key, val)
	prefix := "FT" + strings.Repeat(" ", ftKeyColumn-2)
	for _, line := range wrap(text, emblLineWidth-ftKeyColumn) {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// writeEMBLSequence emits the SQ block: base counts, then lowercase
// sequence in six 10-base groups per line with a trailing position column.
func writeEMBLSequence(b *strings.Builder, seq string) {
	seq = strings.ToLower(seq)
	var a, c, g, t int
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'a':
			a++
		case 'c':
			c++
		case 'g':
			g++
		case 't':
			t++
		}
	}
	other := len(seq) - a - c - g - t
	fmt.Fprintf(b, "SQ   Sequence %d BP; %d A; %d C; %d G; %d T; %d other;\n", len(seq), a, c, g, t, other)

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
		line := strings.Join(groups, " ")
		fmt.Fprintf(b, "     %-66s%9d\n", line, end)
	}
}

// wrap splits text into chunks of at most width bytes, breaking at spaces
// where possible.
func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for len(text) > width {
		cut := strings.LastIndexByte(text[:width+1], ' ')
		if cut <= 0 {
			cut = width
		}
		out = append(out, strings.TrimRight(text[:cut], " "))
		text = strings.TrimLeft(text[cut:], " ")
	}
	return append(out, text)
}
