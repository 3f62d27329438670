package store

import (
	"context"
	"fmt"
)

// WriteRun persists a run and its reports in a single transaction and
// returns the run's assigned seq.
//
// Reports are content-addressed: a report identical to one already stored
// is not written again (ON CONFLICT(id) DO NOTHING), only linked.
// ReportID on each entry is filled in from the content.
func (s *Store) WriteRun(ctx context.Context, run *Run) (int64, error) {
	if run.ID == "" {
		return 0, fmt.Errorf("write run: empty run id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("write run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("write run: next seq: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, seq, command) VALUES (?, ?, ?)
	`, run.ID, seq, run.Command); err != nil {
		return 0, fmt.Errorf("write run: insert run: %w", err)
	}

	for i := range run.Entries {
		entry := &run.Entries[i]
		if entry.Report == nil {
			return 0, fmt.Errorf("write run: entry %d (%s): nil report", i, entry.Label)
		}
		content, id, err := marshalReport(entry.Report)
		if err != nil {
			return 0, fmt.Errorf("write run: entry %d: %w", i, err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO reports (id, records, total, content)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING
		`, id, entry.Report.Count(), entry.Report.TotalSymbols(), content); err != nil {
			return 0, fmt.Errorf("write run: insert report: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_entries (run_id, position, label, report_id)
			VALUES (?, ?, ?, ?)
		`, run.ID, i, entry.Label, id); err != nil {
			return 0, fmt.Errorf("write run: insert entry: %w", err)
		}
		entry.ReportID = id
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("write run: commit: %w", err)
	}

	run.Seq = seq
	return seq, nil
}
