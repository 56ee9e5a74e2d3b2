// internal/writers/location.go
package writers

import (
	"fmt"
	"sort"
	"strings"

	"annonex2embl/internal/feature"
)

// formatLocation renders a degapped half-open Location in flat-file
// notation: 1-based inclusive, join(...) for multi-span locations.
func formatLocation(loc feature.Location) string {
	parts := make([]string, 0, len(loc.Spans))
	for _, s := range loc.Spans {
		lo, hi := s.Start+1, s.End
		if lo == hi {
			parts = append(parts, fmt.Sprint(lo))
		} else {
			parts = append(parts, fmt.Sprintf("%d..%d", lo, hi))
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "join(" + strings.Join(parts, ",") + ")"
}

// qualifierOrder returns a deterministic qualifier ordering: the preferred
// keys first (when present), then everything else sorted.
func qualifierOrder(quals map[string]string, preferred ...string) []string {
	seen := make(map[string]bool, len(preferred))
	var keys []string
	for _, k := range preferred {
		if _, ok := quals[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range quals {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// formatQualifier renders /key="value"; numeric values (transl_table,
// codon_start) stay unquoted per flat-file convention, and embedded double
// quotes are doubled rather than backslash-escaped.
func formatQualifier(key, val string) string {
	numeric := val != ""
	for i := 0; i < len(val); i++ {
		if val[i] < '0' || val[i] > '9' {
			numeric = false
			break
		}
	}
	if numeric {
		return fmt.Sprintf("/%s=%s", key, val)
	}
	return fmt.Sprintf("/%s=\"%s\"", key, strings.ReplaceAll(val, `"`, `""`))
}
