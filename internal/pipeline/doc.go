// Package pipeline fans assembled records out over a worker pool and merges
// the results back in input alignment order, so the emitted flat file is
// reproducible regardless of thread count.
//
// Assembly is record-local by construction: workers share only the
// read-only charset maps and never exchange state.
package pipeline
