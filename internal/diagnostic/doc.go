// Package diagnostic provides the failures reported by the enrichment engine
// and the structured diagnostics collected over a run.
//
// Key capabilities:
//   - Positioned, taxonomy-tagged errors with fixed message text
//   - Per-run collection of errors, warnings and infos
//   - Code frames pointing at the offending source line
package diagnostic
