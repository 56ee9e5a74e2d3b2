// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"annonex2embl/internal/feature"
)

// RecordWriter serializes one assembled record to a flat-file dialect.
type RecordWriter func(w io.Writer, rec feature.Record) error

// Formats is the format → writer registry. Dialect files register
// themselves in init().
var Formats = map[string]RecordWriter{}

// Register installs a writer for a format key (last registration wins).
func Register(format string, fn RecordWriter) { Formats[format] = fn }

// Write dispatches one record to the writer registered for format.
func Write(format string, w io.Writer, rec feature.Record) error {
	fn, ok := Formats[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, rec)
}

// Start spins up a writer goroutine consuming records in arrival order.
// The error channel yields exactly one value after the input channel closes.
func Start(out io.Writer, format string, bufSize int) (chan<- feature.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 16
	}
	in := make(chan feature.Record, bufSize)
	errCh := make(chan error, 1)
	go func() {
		var err error
		for rec := range in {
			if err != nil {
				continue
			}
			err = Write(format, out, rec)
		}
		errCh <- err
	}()
	return in, errCh
}
