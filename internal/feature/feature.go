// internal/feature/feature.go
package feature

import "strings"

// Kind is the closed set of feature keys this tool emits.
type Kind int

const (
	Source Kind = iota
	CDS
	Gene
	RRNA
	TRNA
	Other
)

// ParseKind maps a charset feature key (case-insensitive) to a Kind.
// Unknown keys come back as Other with ok=false so the caller can reject
// the one annotation instead of guessing.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "source":
		return Source, true
	case "cds":
		return CDS, true
	case "gene":
		return Gene, true
	case "rrna":
		return RRNA, true
	case "trna":
		return TRNA, true
	}
	return Other, false
}

func (k Kind) String() string {
	switch k {
	case Source:
		return "source"
	case CDS:
		return "CDS"
	case Gene:
		return "gene"
	case RRNA:
		return "rRNA"
	case TRNA:
		return "tRNA"
	}
	return "misc_feature"
}

// Coding reports whether translation quality checks apply.
func (k Kind) Coding() bool { return k == CDS || k == Gene }

// Feature is one entry of a record's feature table. Location is always in
// degapped coordinates.
type Feature struct {
	Kind       Kind
	Gene       string
	Product    string
	Location   Location
	Qualifiers map[string]string // extra qualifiers (source feature metadata)
}

// ID identifies a feature in diagnostics.
func (f Feature) ID() string {
	if f.Gene != "" {
		return f.Gene + "_" + f.Kind.String()
	}
	return f.Kind.String()
}

// Record owns one degapped sequence and its sorted feature table.
// Features[0] is the source feature once assembly has run.
type Record struct {
	Name     string
	Seq      string
	Features []Feature
}
