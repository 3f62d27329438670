package store

import "github.com/roach88/protstat/internal/stats"

// Entry is one database's report within a run.
type Entry struct {
	Label    string
	ReportID string
	Report   *stats.Report
}

// Run is a group of reports persisted by one command invocation.
// Entries keep command-line order.
type Run struct {
	ID      string
	Seq     int64
	Command string
	Entries []Entry
}

// RunSummary describes a run without its report content.
type RunSummary struct {
	ID        string `json:"id"`
	Seq       int64  `json:"seq"`
	Command   string `json:"command"`
	Databases int    `json:"databases"`
}
