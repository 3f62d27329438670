// Package store provides SQLite-backed history of computed reports.
//
// The store keeps:
//   - Runs: one row per CLI invocation that persisted reports
//   - Reports: content-addressed report data (lengths, symbol counts)
//   - Run entries: which database label produced which report in a run
//
// # Patterns
//
// Content-addressed reports
//   - reports.id is digest.ReportID of the report content
//   - identical databases processed twice share one reports row
//
// Logical ordering
//   - runs are ordered by seq INTEGER, never by timestamps
//   - run entries are ordered by position (command-line order)
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
