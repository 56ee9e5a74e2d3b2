// Package writers turns assembled records into flat-file text.
//
// Design:
//   - Writers own all presentation knowledge (EMBL vs GenBank layout,
//     line wrapping, sequence blocks).
//   - They consume records whose feature tables are already sorted and
//     coordinate-valid; no coordinate logic lives here.
//   - Dialects self-register into Formats; Start runs a writer goroutine
//     so the pipeline collector never blocks on serialization.
package writers
