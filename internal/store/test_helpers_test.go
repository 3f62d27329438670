package store

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/roach88/protstat/internal/stats"
)

// createTestStore creates a new temporary store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestReport computes a report from FASTA text.
func createTestReport(t *testing.T, input string) *stats.Report {
	t.Helper()
	r, err := stats.Compute(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}
	return r
}
