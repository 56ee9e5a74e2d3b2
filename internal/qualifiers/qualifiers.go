// internal/qualifiers/qualifiers.go
package qualifiers

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table is a parsed qualifier CSV keyed by the sequence-name column.
type Table struct {
	Label   string
	Columns []string
	rows    map[string]map[string]string
}

// Load reads a qualifier CSV whose label column carries the sequence names
// used in the alignment. A missing label column is a run-fatal input error.
func Load(path, label string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	t, err := Read(fh, label)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses CSV qualifier rows from r.
func Read(r io.Reader, label string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	labelIdx := -1
	for i, col := range header {
		if col == label {
			labelIdx = i
		}
	}
	if labelIdx < 0 {
		return nil, fmt.Errorf("label column %q not found in header %v", label, header)
	}

	t := &Table{Label: label, Columns: header, rows: map[string]map[string]string{}}
	ln := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		ln++
		if err != nil {
			return nil, err
		}
		name := rec[labelIdx]
		if name == "" {
			return nil, fmt.Errorf("row %d: empty %q value", ln, label)
		}
		if _, dup := t.rows[name]; dup {
			return nil, fmt.Errorf("row %d: duplicate %q value %q", ln, label, name)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		t.rows[name] = row
	}
	return t, nil
}

// Row returns the qualifier row for a sequence name.
func (t *Table) Row(seqName string) (map[string]string, bool) {
	row, ok := t.rows[seqName]
	return row, ok
}
