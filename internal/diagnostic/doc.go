// Package diagnostic provides structured warnings and the run-wide
// registry of unsupported input fields for the converter.
//
// Key capabilities:
//   - Per-record diagnostics collected while a card is built
//   - A deduplicated registry of field names that have no mapping rule
//   - An end-of-run report of that registry
package diagnostic
