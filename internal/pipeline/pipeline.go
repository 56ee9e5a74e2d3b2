// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"annonex2embl/internal/assemble"
	"annonex2embl/internal/feature"
)

// Config controls the record pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Result is one assembled record plus its diagnostics. Err carries a
// record-local failure (the record could not be assembled at all).
type Result struct {
	Index  int
	Record feature.Record
	Diags  []assemble.Diag
	Err    error
}

// ForEachRecord assembles every input on a worker pool and streams Results
// to visit strictly in input order, so output is byte-identical however
// many threads run. The shared charset maps inside the inputs are read-only;
// each worker derives its own degapped copy. Returns the first visit error
// or the parent context's error on cancellation. A visit error also stops
// the feed, so no further records are assembled once the sink has failed.
func ForEachRecord(
	parent context.Context,
	cfg Config,
	inputs []assemble.Input,
	visit func(Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	jobs := make(chan int, cfg.Threads*2)
	results := make(chan Result, cfg.Threads*2)

	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					rec, diags, err := assemble.Assemble(inputs[i])
					select {
					case results <- Result{Index: i, Record: rec, Diags: diags, Err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: reorder by index so visit sees input alignment order.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]Result, cfg.Threads*2)
		next := 0
		for r := range results {
			pending[r.Index] = r
			for {
				buf, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if cerr != nil {
					continue
				}
				if err := visit(buf); err != nil {
					cerr = err
					cancel()
				}
			}
		}
	}()

feed:
	for i := range inputs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if err := parent.Err(); err != nil {
		return err
	}
	return cerr
}
