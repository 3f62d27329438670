package present

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/protstat/internal/stats"
)

var upper = cases.Upper(language.Und)

// Named pairs a report with its database label.
type Named struct {
	Label  string
	Report *stats.Report
}

// SymbolShare is one symbol's share of a database, for display. Symbol is
// kept as counted; WriteSummary upper-cases it.
type SymbolShare struct {
	Symbol  string  `json:"symbol"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Summary is the per-database textual summary view.
type Summary struct {
	Label         string        `json:"database"`
	Sequences     int           `json:"sequences"`
	AverageLength float64       `json:"average_length"`
	LengthStdev   float64       `json:"length_stdev"`
	TotalSymbols  int           `json:"total_symbols"`
	Lengths       []int         `json:"lengths"`
	Symbols       []SymbolShare `json:"symbols"`
}

// DisplaySymbol renders a symbol for display. Counting stays
// case-sensitive; only the label is upper-cased.
func DisplaySymbol(sym rune) string {
	return upper.String(string(sym))
}

// Summarize derives the summary view. Any undefined statistic (empty
// input, a single record's deviation) is returned as the stats error.
func Summarize(n Named) (*Summary, error) {
	avg, err := n.Report.AverageLength()
	if err != nil {
		return nil, err
	}
	sd, err := n.Report.LengthStdev()
	if err != nil {
		return nil, err
	}
	freqs, err := n.Report.Frequencies()
	if err != nil {
		return nil, err
	}

	shares := make([]SymbolShare, len(freqs))
	for i, f := range freqs {
		shares[i] = SymbolShare{
			Symbol:  string(f.Symbol),
			Count:   f.Count,
			Percent: f.Fraction * 100,
		}
	}

	return &Summary{
		Label:         n.Label,
		Sequences:     n.Report.Count(),
		AverageLength: avg,
		LengthStdev:   sd,
		TotalSymbols:  n.Report.TotalSymbols(),
		Lengths:       n.Report.Lengths,
		Symbols:       shares,
	}, nil
}

// WriteSummary writes s as text.
func WriteSummary(w io.Writer, s *Summary) error {
	ew := &errWriter{w: w}
	ew.printf("Database: %s\n", s.Label)
	ew.printf("Sequences: %d\n", s.Sequences)
	ew.printf("Average sequence length: %.2f\n", s.AverageLength)
	ew.printf("Standard deviation: %.2f\n", s.LengthStdev)
	ew.printf("Sequences sum length: %d\n", s.TotalSymbols)
	ew.printf("Sequence letters frequencies:\n")
	for _, share := range s.Symbols {
		ew.printf("\t%s: %.2f%%\n", DisplaySymbol([]rune(share.Symbol)[0]), share.Percent)
	}
	ew.printf("\n")
	return ew.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
