// internal/feature/location.go
package feature

import "sort"

// Span is one contiguous run of positions, 0-based half-open.
type Span struct {
	Start, End int
}

// Location is a feature location: one Span, or several for a join.
type Location struct {
	Spans []Span
}

// Joined reports whether the location is a join of multiple spans.
func (l Location) Joined() bool { return len(l.Spans) > 1 }

// Start returns the smallest covered position (the sort key for features).
func (l Location) Start() int {
	if len(l.Spans) == 0 {
		return 0
	}
	return l.Spans[0].Start
}

// End returns one past the largest covered position.
func (l Location) End() int {
	if len(l.Spans) == 0 {
		return 0
	}
	return l.Spans[len(l.Spans)-1].End
}

// Len is the number of covered positions across all spans.
func (l Location) Len() int {
	n := 0
	for _, s := range l.Spans {
		n += s.End - s.Start
	}
	return n
}

// Build converts a degapped position list into a Location. Empty input
// returns ok=false: the feature has no remaining residues and must be
// dropped by the caller. Non-contiguous input yields a join whose spans
// are emitted in ascending start order.
func Build(positions []int) (Location, bool) {
	if len(positions) == 0 {
		return Location{}, false
	}
	ps := make([]int, len(positions))
	copy(ps, positions)
	sort.Ints(ps)

	var spans []Span
	start, prev := ps[0], ps[0]
	for _, p := range ps[1:] {
		if p == prev || p == prev+1 {
			prev = p
			continue
		}
		spans = append(spans, Span{Start: start, End: prev + 1})
		start, prev = p, p
	}
	spans = append(spans, Span{Start: start, End: prev + 1})
	return Location{Spans: spans}, true
}
