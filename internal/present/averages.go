package present

import (
	"fmt"
	"io"
)

// AverageRow is one database's mean length with its error bar.
type AverageRow struct {
	Label    string  `json:"database"`
	Average  float64 `json:"average_length"`
	Stdev    float64 `json:"length_stdev"`
	ErrorBar float64 `json:"error_bar"`
}

// Averages computes mean length per database. The error bar is half the
// sample standard deviation.
func Averages(named []Named) ([]AverageRow, error) {
	rows := make([]AverageRow, 0, len(named))
	for _, n := range named {
		avg, err := n.Report.AverageLength()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n.Label, err)
		}
		sd, err := n.Report.LengthStdev()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n.Label, err)
		}
		rows = append(rows, AverageRow{
			Label:    n.Label,
			Average:  avg,
			Stdev:    sd,
			ErrorBar: sd / 2,
		})
	}
	return rows, nil
}

// WriteAverages writes rows as an aligned text table.
func WriteAverages(w io.Writer, rows []AverageRow) error {
	width := len("Database")
	for _, r := range rows {
		width = max(width, len(r.Label))
	}

	ew := &errWriter{w: w}
	ew.printf("%-*s  %10s  %10s  %10s\n", width, "Database", "Average", "Stdev", "Error")
	for _, r := range rows {
		ew.printf("%-*s  %10.2f  %10.2f  %10.2f\n", width, r.Label, r.Average, r.Stdev, r.ErrorBar)
	}
	return ew.err
}
