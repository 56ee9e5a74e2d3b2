// internal/charset/resolve.go
package charset

import (
	"fmt"
	"strings"

	"annonex2embl/internal/feature"
)

// Meta is the resolved identity of one charset name.
type Meta struct {
	Gene    string
	Product string
	Kind    feature.Kind
}

// Resolver maps a charset name to feature metadata. A per-name failure must
// only reject that annotation's contribution, never the run.
type Resolver func(name string) (Meta, error)

// products maps common organellar gene symbols to their official products.
// Unlisted symbols fall back to the symbol itself.
var products = map[string]string{
	"matK":  "maturase K",
	"rbcL":  "ribulose-1,5-bisphosphate carboxylase/oxygenase large subunit",
	"psbA":  "photosystem II protein D1",
	"ndhF":  "NADH-plastoquinone oxidoreductase subunit 5",
	"atpB":  "ATP synthase CF1 beta subunit",
	"rpoC1": "RNA polymerase beta' subunit",
	"rrn16": "16S ribosomal RNA",
	"rrn23": "23S ribosomal RNA",
	"trnH":  "tRNA-His",
	"trnK":  "tRNA-Lys",
	"trnL":  "tRNA-Leu",
	"trnF":  "tRNA-Phe",
	"cox1":  "cytochrome c oxidase subunit 1",
	"cytb":  "cytochrome b",
}

// Local returns a Resolver that decomposes charset names offline. Names
// follow the SETS-block convention "<gene>_<featurekey>" with the feature
// key as the last underscore-separated token. contact is accepted for
// parity with directory-backed resolvers and is not used.
func Local(contact string) Resolver {
	_ = contact
	return func(name string) (Meta, error) {
		cut := strings.LastIndex(name, "_")
		if cut <= 0 || cut == len(name)-1 {
			return Meta{}, fmt.Errorf("charset %q: want \"<gene>_<featurekey>\"", name)
		}
		gene, key := name[:cut], name[cut+1:]
		kind, ok := feature.ParseKind(key)
		if !ok || kind == feature.Source {
			return Meta{}, fmt.Errorf("charset %q: unknown feature key %q", name, key)
		}
		product, ok := products[gene]
		if !ok {
			product = gene
		}
		return Meta{Gene: gene, Product: product, Kind: kind}, nil
	}
}
