// Package stats aggregates split records into a per-database Report.
//
// Aggregation is a single sequential pass: each record contributes its
// length and its symbols, in stream order. Symbol counts keep first-seen
// order so that callers comparing several databases list symbols
// consistently.
//
// # Undefined statistics
//
// Statistics that are undefined for the data at hand fail with a typed
// *Error instead of returning a substitute value:
//   - EMPTY_INPUT: no records, so no mean, frequencies or deviation
//   - INSUFFICIENT_DATA: one record, so no sample standard deviation
//   - STREAM_READ: the input stream could not be read
package stats
