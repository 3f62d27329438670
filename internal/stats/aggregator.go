package stats

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/roach88/protstat/internal/fasta"
)

// Aggregator accumulates record lengths and symbol counts.
// It is not safe for concurrent use.
type Aggregator struct {
	lengths []int
	symbols SymbolCounts
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add folds one record into the accumulators. Length is measured in
// symbols (runes), so it always equals the record's contribution to the
// symbol counts.
func (a *Aggregator) Add(rec fasta.Record) {
	a.lengths = append(a.lengths, utf8.RuneCountInString(rec.Sequence))
	for _, sym := range rec.Sequence {
		a.symbols.Add(sym, 1)
	}
}

// Records returns the number of records added so far.
func (a *Aggregator) Records() int {
	return len(a.lengths)
}

// Report finalizes the accumulated data. The returned report does not
// share state with the aggregator.
// Returns EMPTY_INPUT if no record was added.
func (a *Aggregator) Report() (*Report, error) {
	if len(a.lengths) == 0 {
		return nil, NewEmptyInputError()
	}
	lengths := make([]int, len(a.lengths))
	copy(lengths, a.lengths)
	return &Report{
		Lengths: lengths,
		Symbols: a.symbols.Clone(),
	}, nil
}

// Compute splits r with the default delimiter and aggregates its records.
func Compute(r io.Reader) (*Report, error) {
	return ComputeWith(fasta.Splitter{}, r)
}

// ComputeWith splits r using sp and aggregates its records.
func ComputeWith(sp fasta.Splitter, r io.Reader) (*Report, error) {
	records, err := sp.Split(r)
	if err != nil {
		var re *fasta.ReadError
		if errors.As(err, &re) {
			return nil, NewStreamReadError(re)
		}
		return nil, err
	}
	return Aggregate(records)
}

// Aggregate folds records, in order, into a report.
func Aggregate(records []fasta.Record) (*Report, error) {
	agg := NewAggregator()
	for _, rec := range records {
		agg.Add(rec)
	}
	return agg.Report()
}
