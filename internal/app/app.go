// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"annonex2embl/internal/assemble"
	"annonex2embl/internal/charset"
	"annonex2embl/internal/cli"
	"annonex2embl/internal/cmdutil"
	"annonex2embl/internal/nexus"
	"annonex2embl/internal/pipeline"
	"annonex2embl/internal/qualifiers"
	"annonex2embl/internal/translate"
	"annonex2embl/internal/version"
	"annonex2embl/internal/writers"
)

// RunContext is the whole program behind the thin main: parse flags, load
// inputs, run the record pipeline, stream flat-file records to the output
// sink. Exit codes: 0 ok, 1 no records produced, 2 bad usage/input,
// 3 write failure, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("annonex2embl")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "annonex2embl version %s\n", version.Version)
		return 0
	}

	table, err := translate.ByID(opts.TranslTable)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	al, err := nexus.ParseFile(opts.NexusFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	quals, err := qualifiers.Load(opts.CSVFile, opts.Label)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	// Resolve every charset name once; the triples are shared read-only by
	// all records. A name that fails to resolve loses only its own
	// annotation (one warning, not a fatal error).
	resolve := charset.Local("")
	meta := make(map[string]charset.Meta, len(al.CharsetNames))
	order := make([]string, 0, len(al.CharsetNames))
	for _, name := range al.CharsetNames {
		m, rerr := resolve(name)
		if rerr != nil {
			cmdutil.Warnf(stderr, opts.Quiet, "charset %q skipped: %v", name, rerr)
			continue
		}
		meta[name] = m
		order = append(order, name)
	}

	// One input per aligned sequence, in alignment order.
	inputs := make([]assemble.Input, 0, len(al.Names))
	for _, name := range al.Names {
		row, ok := quals.Row(name)
		if !ok {
			if opts.Strict {
				_, _ = fmt.Fprintf(stderr, "no qualifier row for sequence %q (strict mode)\n", name)
				return 2
			}
			cmdutil.Warnf(stderr, opts.Quiet, "sequence %q skipped: no qualifier row", name)
			continue
		}
		inputs = append(inputs, assemble.Input{
			Name:        name,
			AlignedSeq:  al.Seqs[name],
			Charsets:    al.Charsets,
			Order:       order,
			Meta:        meta,
			Qualifiers:  row,
			Table:       table,
			RequireStop: opts.OnMissingStop == cli.StopReject,
		})
	}

	out := stdout
	if opts.OutFile != "" && opts.OutFile != "-" {
		fh, cerr := os.Create(opts.OutFile)
		if cerr != nil {
			_, _ = fmt.Fprintln(stderr, cerr)
			return 2
		}
		defer func() { _ = fh.Close() }()
		out = fh
	}
	outw := bufio.NewWriter(out)

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	inCh, writeErr := writers.Start(outw, opts.Format, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total := 0
	perr := pipeline.ForEachRecord(ctx, pipeline.Config{Threads: thr}, inputs, func(r pipeline.Result) error {
		if r.Err != nil {
			cmdutil.Warnf(stderr, opts.Quiet, "%v; record skipped", r.Err)
			return nil
		}
		for _, d := range r.Diags {
			if d.Dropped {
				cmdutil.Warnf(stderr, opts.Quiet, "feature %q of sequence %q is not saved into output: %s", d.Feature, d.Seq, d.Reason)
			} else {
				cmdutil.Warnf(stderr, opts.Quiet, "feature %q of sequence %q: %s", d.Feature, d.Seq, d.Reason)
			}
		}
		select {
		case inCh <- r.Record:
			total++
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}
	if total == 0 {
		return 1
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
