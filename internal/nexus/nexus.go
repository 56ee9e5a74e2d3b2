// internal/nexus/nexus.go
package nexus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Alignment is a parsed NEXUS dataset: equal-length aligned sequences plus
// the SETS-block charsets as 0-based column index lists. Names and
// CharsetNames preserve declaration order; the charset maps are shared
// read-only across all records downstream.
type Alignment struct {
	Names        []string
	Seqs         map[string]string
	CharsetNames []string
	Charsets     map[string][]int
}

// Length returns the alignment column count.
func (a *Alignment) Length() int {
	if len(a.Names) == 0 {
		return 0
	}
	return len(a.Seqs[a.Names[0]])
}

// ParseFile opens and parses a NEXUS file.
func ParseFile(path string) (*Alignment, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	al, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return al, nil
}

// Parse reads a NEXUS alignment with a MATRIX block and an optional SETS
// block of CharSet lines. Interleaved matrix blocks are concatenated per
// taxon. CharSet ranges are 1-based inclusive ("37-111", single "5") and
// come back as 0-based indices.
func Parse(r io.Reader) (*Alignment, error) {
	al := &Alignment{
		Seqs:     map[string]string{},
		Charsets: map[string][]int{},
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	inMatrix := false
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(stripComments(sc.Text()))
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		switch {
		case lower == "matrix":
			inMatrix = true

		case inMatrix:
			if line == ";" {
				inMatrix = false
				continue
			}
			row := strings.TrimSuffix(line, ";")
			f := strings.Fields(row)
			if len(f) != 2 {
				return nil, fmt.Errorf("line %d: matrix row wants \"name sequence\", got %d fields", ln, len(f))
			}
			name, seq := f[0], strings.ToUpper(f[1])
			if _, seen := al.Seqs[name]; !seen {
				al.Names = append(al.Names, name)
			}
			al.Seqs[name] += seq
			if strings.HasSuffix(line, ";") {
				inMatrix = false
			}

		case strings.HasPrefix(lower, "charset"):
			if err := al.parseCharset(line, ln); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(al.Names) == 0 {
		return nil, fmt.Errorf("no MATRIX block found")
	}
	want := len(al.Seqs[al.Names[0]])
	for _, n := range al.Names {
		if got := len(al.Seqs[n]); got != want {
			return nil, fmt.Errorf("sequence %q has length %d, want %d", n, got, want)
		}
	}
	for _, name := range al.CharsetNames {
		for _, idx := range al.Charsets[name] {
			if idx >= want {
				return nil, fmt.Errorf("charset %q: column %d beyond alignment length %d", name, idx+1, want)
			}
		}
	}
	return al, nil
}

func (a *Alignment) parseCharset(line string, ln int) error {
	body := strings.TrimSuffix(line, ";")
	body = body[len("charset"):]
	name, ranges, found := strings.Cut(body, "=")
	if !found {
		return fmt.Errorf("line %d: charset wants \"CharSet name = ranges;\"", ln)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("line %d: empty charset name", ln)
	}
	if _, dup := a.Charsets[name]; dup {
		return fmt.Errorf("line %d: charset %q redefined", ln, name)
	}

	var indices []int
	for _, tok := range strings.Fields(ranges) {
		lo, hi, err := parseRange(tok)
		if err != nil {
			return fmt.Errorf("line %d: charset %q: %w", ln, name, err)
		}
		for i := lo; i <= hi; i++ {
			indices = append(indices, i-1)
		}
	}
	a.CharsetNames = append(a.CharsetNames, name)
	a.Charsets[name] = indices
	return nil
}

func parseRange(tok string) (lo, hi int, err error) {
	from, to, isRange := strings.Cut(tok, "-")
	lo, err = strconv.Atoi(from)
	if err != nil {
		return 0, 0, fmt.Errorf("bad position %q", tok)
	}
	hi = lo
	if isRange {
		hi, err = strconv.Atoi(to)
		if err != nil {
			return 0, 0, fmt.Errorf("bad range %q", tok)
		}
	}
	if lo < 1 || hi < lo {
		return 0, 0, fmt.Errorf("bad range %q", tok)
	}
	return lo, hi, nil
}

// stripComments removes NEXUS [bracketed] comments from one line.
func stripComments(s string) string {
	if !strings.Contains(s, "[") {
		return s
	}
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '[':
			depth++
		case r == ']' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
