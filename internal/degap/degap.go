// internal/degap/degap.go
package degap

import (
	"fmt"
	"strings"
)

// GapSymbol is the alignment gap character.
const GapSymbol = '-'

// Degap removes gap symbols from seq and shifts every charset index so it
// keeps addressing the same residue in the gap-free sequence. Indices that
// point at a gap column are dropped; a charset whose columns are all gaps
// survives with an empty index list. The inputs are never mutated and the
// charset iteration order cannot affect the result.
//
// An index outside [0, len(seq)) is a hard error naming the charset: the
// caller treats the whole record as unusable rather than remapping from a
// corrupt coordinate system.
func Degap(seq string, charsets map[string][]int) (string, map[string][]int, error) {
	// Per-column gap prefix sum: shift[i] = gaps strictly before column i.
	shift := make([]int, len(seq)+1)
	gaps := 0
	for i := 0; i < len(seq); i++ {
		shift[i] = gaps
		if seq[i] == GapSymbol {
			gaps++
		}
	}
	shift[len(seq)] = gaps

	out := make(map[string][]int, len(charsets))
	for name, indices := range charsets {
		mapped := make([]int, 0, len(indices))
		for _, idx := range indices {
			if idx < 0 || idx >= len(seq) {
				return "", nil, fmt.Errorf("charset %q: index %d out of range for alignment of length %d", name, idx, len(seq))
			}
			if seq[idx] == GapSymbol {
				continue
			}
			mapped = append(mapped, idx-shift[idx])
		}
		out[name] = mapped
	}

	if gaps == 0 {
		return seq, out, nil
	}
	var b strings.Builder
	b.Grow(len(seq) - gaps)
	for i := 0; i < len(seq); i++ {
		if seq[i] != GapSymbol {
			b.WriteByte(seq[i])
		}
	}
	return b.String(), out, nil
}
