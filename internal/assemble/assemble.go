// internal/assemble/assemble.go
package assemble

import (
	"errors"
	"fmt"
	"sort"

	"annonex2embl/internal/charset"
	"annonex2embl/internal/degap"
	"annonex2embl/internal/feature"
	"annonex2embl/internal/translate"
)

// Input is everything needed to assemble one record. Charsets is the
// annotation set shared across all records and must never be mutated;
// degapping produces this record's own shifted copy.
type Input struct {
	Name        string
	AlignedSeq  string
	Charsets    map[string][]int
	Order       []string // charset declaration order; sort tie-break
	Meta        map[string]charset.Meta
	Qualifiers  map[string]string
	Table       translate.Table
	RequireStop bool // reject coding features lacking a terminal stop
}

// Diag is one feature-local diagnostic. Dropped=false means the feature was
// kept and the diagnostic is a warning (missing terminal stop under the
// warn policy).
type Diag struct {
	Seq     string
	Feature string
	Reason  string
	Dropped bool
}

// Assemble runs the per-record pipeline: degap once, build one feature per
// surviving charset, synthesize the source feature, sort, then validate
// every coding feature. Feature-local failures drop that feature and are
// reported; only a corrupt coordinate system (degap failure) rejects the
// record as a whole.
func Assemble(in Input) (feature.Record, []Diag, error) {
	seq, sets, err := degap.Degap(in.AlignedSeq, in.Charsets)
	if err != nil {
		return feature.Record{}, nil, fmt.Errorf("record %q: %w", in.Name, err)
	}

	var diags []Diag
	var feats []feature.Feature
	for _, name := range in.Order {
		positions := sets[name]
		if len(positions) == 0 {
			// all columns were gaps in this sequence
			continue
		}
		meta, ok := in.Meta[name]
		if !ok {
			diags = append(diags, Diag{Seq: in.Name, Feature: name, Reason: "unresolved charset name", Dropped: true})
			continue
		}
		loc, ok := feature.Build(positions)
		if !ok {
			continue
		}
		feats = append(feats, feature.Feature{
			Kind:     meta.Kind,
			Gene:     meta.Gene,
			Product:  meta.Product,
			Location: loc,
		})
	}

	// Stable keeps charset declaration order for equal starts.
	sort.SliceStable(feats, func(i, j int) bool {
		return feats[i].Location.Start() < feats[j].Location.Start()
	})

	kept := feats[:0]
	for _, f := range feats {
		if !f.Kind.Coding() {
			kept = append(kept, f)
			continue
		}
		verr := translate.Validate(seq, f.Location, in.Table)
		switch {
		case verr == nil:
		case errors.Is(verr, translate.ErrNoTerminalStop) && !in.RequireStop:
			diags = append(diags, Diag{Seq: in.Name, Feature: f.ID(), Reason: verr.Error()})
		default:
			diags = append(diags, Diag{Seq: in.Name, Feature: f.ID(), Reason: verr.Error(), Dropped: true})
			continue
		}
		if f.Kind == feature.CDS {
			if prot, perr := translate.Protein(seq, f.Location, in.Table); perr == nil {
				f.Qualifiers = map[string]string{"translation": prot}
			}
		}
		kept = append(kept, f)
	}

	rec := feature.Record{
		Name:     in.Name,
		Seq:      seq,
		Features: append([]feature.Feature{sourceFeature(len(seq), in.Qualifiers, in.Table.ID)}, kept...),
	}
	return rec, diags, nil
}

// sourceFeature spans the whole degapped sequence and carries the record's
// CSV metadata. It is always Features[0] and excluded from sorting.
func sourceFeature(seqLen int, quals map[string]string, tableID int) feature.Feature {
	q := make(map[string]string, len(quals)+2)
	for k, v := range quals {
		if v != "" {
			q[k] = v
		}
	}
	if _, ok := q["mol_type"]; !ok {
		q["mol_type"] = "genomic DNA"
	}
	q["transl_table"] = fmt.Sprint(tableID)
	return feature.Feature{
		Kind:       feature.Source,
		Location:   feature.Location{Spans: []feature.Span{{Start: 0, End: seqLen}}},
		Qualifiers: q,
	}
}
