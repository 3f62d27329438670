package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/protstat/internal/stats"
)

// ListRuns returns all runs ordered by seq ASC.
// Returns an empty slice (not nil) when no runs exist.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.seq, r.command, COUNT(e.position)
		FROM runs r
		LEFT JOIN run_entries e ON e.run_id = r.id
		GROUP BY r.id, r.seq, r.command
		ORDER BY r.seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		var rs RunSummary
		if err := rows.Scan(&rs.ID, &rs.Seq, &rs.Command, &rs.Databases); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadRun returns a run with its entries in position order.
// Returns ErrNotFound (wrapped) for an unknown id.
func (s *Store) ReadRun(ctx context.Context, id string) (*Run, error) {
	run := &Run{ID: id}
	err := s.db.QueryRowContext(ctx, `
		SELECT seq, command FROM runs WHERE id = ?
	`, id).Scan(&run.Seq, &run.Command)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read run %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT e.label, e.report_id, r.content
		FROM run_entries e
		JOIN reports r ON r.id = e.report_id
		WHERE e.run_id = ?
		ORDER BY e.position ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		run.Entries = append(run.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return run, nil
}

// LatestReport returns the most recent report stored for label.
// Returns ErrNotFound (wrapped) if the label was never stored.
func (s *Store) LatestReport(ctx context.Context, label string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT e.label, e.report_id, r.content
		FROM run_entries e
		JOIN runs ru ON ru.id = e.run_id
		JOIN reports r ON r.id = e.report_id
		WHERE e.label = ?
		ORDER BY ru.seq DESC, e.position DESC
		LIMIT 1
	`, label)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("latest report %q: %w", label, ErrNotFound)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("latest report %q: %w", label, err)
	}
	return entry, nil
}

// ReadReport returns a stored report by its content ID.
func (s *Store) ReadReport(ctx context.Context, id string) (*stats.Report, error) {
	var content string
	err := s.db.QueryRowContext(ctx, `SELECT content FROM reports WHERE id = ?`, id).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read report %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", id, err)
	}
	return unmarshalReport(content)
}

// CountReports returns the number of distinct stored reports.
func (s *Store) CountReports(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var entry Entry
	var content string
	if err := row.Scan(&entry.Label, &entry.ReportID, &content); err != nil {
		return Entry{}, err
	}
	rep, err := unmarshalReport(content)
	if err != nil {
		return Entry{}, err
	}
	entry.Report = rep
	return entry, nil
}
