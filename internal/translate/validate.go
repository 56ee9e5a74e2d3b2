// internal/translate/validate.go
package translate

import (
	"errors"
	"fmt"
	"strings"

	"annonex2embl/internal/feature"
)

// Rejection reasons for coding features. The assembler matches these with
// errors.Is; ErrNoTerminalStop may be downgraded to a warning by policy,
// the others always drop the feature.
var (
	ErrOutOfBounds        = errors.New("location exceeds sequence bounds")
	ErrNotMultipleOfThree = errors.New("length not a multiple of 3")
	ErrBadStartCodon      = errors.New("invalid start codon")
	ErrInternalStop       = errors.New("internal stop codon")
	ErrNoTerminalStop     = errors.New("missing terminal stop codon")
)

// Extract concatenates the nucleotides covered by loc in span order.
func Extract(seq string, loc feature.Location) (string, error) {
	var b strings.Builder
	b.Grow(loc.Len())
	for _, s := range loc.Spans {
		if s.Start < 0 || s.End > len(seq) || s.Start > s.End {
			return "", fmt.Errorf("%w: span %d..%d on sequence of length %d", ErrOutOfBounds, s.Start, s.End, len(seq))
		}
		b.WriteString(seq[s.Start:s.End])
	}
	return b.String(), nil
}

// Validate checks translation quality of a coding feature: frame, start
// codon, absence of internal stops, presence of a terminal stop. The checks
// run in that order and the first failure is returned. A nil error means
// the feature translates cleanly under tab.
func Validate(seq string, loc feature.Location, tab Table) error {
	cds, err := Extract(seq, loc)
	if err != nil {
		return err
	}
	if len(cds)%3 != 0 {
		return fmt.Errorf("%w (length %d)", ErrNotMultipleOfThree, len(cds))
	}
	if len(cds) == 0 {
		return fmt.Errorf("%w (empty)", ErrBadStartCodon)
	}
	if !tab.IsStart(cds[:3]) {
		return fmt.Errorf("%w %q for table %d", ErrBadStartCodon, cds[:3], tab.ID)
	}
	n := len(cds) / 3
	for i := 1; i < n-1; i++ {
		codon := cds[i*3 : i*3+3]
		if tab.IsStop(codon) {
			return fmt.Errorf("%w %q at codon %d", ErrInternalStop, codon, i+1)
		}
	}
	if n < 2 || !tab.IsStop(cds[len(cds)-3:]) {
		return fmt.Errorf("%w for table %d", ErrNoTerminalStop, tab.ID)
	}
	return nil
}

// Protein returns the conceptual translation of a coding feature for the
// /translation qualifier: start codon rendered as M, terminal stop omitted.
func Protein(seq string, loc feature.Location, tab Table) (string, error) {
	cds, err := Extract(seq, loc)
	if err != nil {
		return "", err
	}
	if len(cds)%3 != 0 {
		return "", fmt.Errorf("%w (length %d)", ErrNotMultipleOfThree, len(cds))
	}
	var b strings.Builder
	b.Grow(len(cds) / 3)
	for i := 0; i+3 <= len(cds); i += 3 {
		codon := cds[i : i+3]
		switch {
		case i == 0 && tab.IsStart(codon):
			b.WriteByte('M')
		case i == len(cds)-3 && tab.IsStop(codon):
			// terminal stop is not part of the protein
		default:
			b.WriteByte(tab.Translate(codon))
		}
	}
	return b.String(), nil
}
