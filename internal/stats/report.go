package stats

import (
	"math"
	"sort"
)

// Report holds the statistics of one database.
// Lengths and Symbols are in record and first-seen order respectively.
type Report struct {
	Lengths []int
	Symbols *SymbolCounts
}

// Frequency is the share of one symbol among all symbols of a report.
type Frequency struct {
	Symbol   rune
	Count    int
	Fraction float64
}

// Count returns the number of records.
func (r *Report) Count() int {
	return len(r.Lengths)
}

// TotalSymbols returns the sum of all symbol counts, which equals the sum
// of Lengths.
func (r *Report) TotalSymbols() int {
	if r.Symbols == nil {
		return 0
	}
	return r.Symbols.Total()
}

// AverageLength returns the arithmetic mean of Lengths.
func (r *Report) AverageLength() (float64, error) {
	n := len(r.Lengths)
	if n == 0 {
		return 0, NewEmptyInputError()
	}
	return float64(sum(r.Lengths)) / float64(n), nil
}

// LengthStdev returns the sample standard deviation of Lengths
// (denominator n-1).
func (r *Report) LengthStdev() (float64, error) {
	n := len(r.Lengths)
	if n == 0 {
		return 0, NewEmptyInputError()
	}
	if n < 2 {
		return 0, NewInsufficientDataError("sample standard deviation", n, 2)
	}
	mean, _ := r.AverageLength()
	var ss float64
	for _, l := range r.Lengths {
		d := float64(l) - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1)), nil
}

// MedianLength returns the median of Lengths. For an even count it is the
// mean of the two middle values.
func (r *Report) MedianLength() (float64, error) {
	n := len(r.Lengths)
	if n == 0 {
		return 0, NewEmptyInputError()
	}
	sorted := make([]int, n)
	copy(sorted, r.Lengths)
	sort.Ints(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2]), nil
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2, nil
}

// MaxLength returns the longest record length, or 0 for an empty report.
func (r *Report) MaxLength() int {
	longest := 0
	for _, l := range r.Lengths {
		if l > longest {
			longest = l
		}
	}
	return longest
}

// Frequencies returns each symbol's share of TotalSymbols in first-seen
// order. Fractions are in [0,1].
// Returns EMPTY_INPUT if the report holds no records. Header-only
// records yield an empty, non-nil slice.
func (r *Report) Frequencies() ([]Frequency, error) {
	if r.Count() == 0 {
		return nil, NewEmptyInputError()
	}
	total := r.TotalSymbols()
	if total == 0 {
		return []Frequency{}, nil
	}
	out := make([]Frequency, 0, r.Symbols.Len())
	r.Symbols.Each(func(sym rune, count int) {
		out = append(out, Frequency{
			Symbol:   sym,
			Count:    count,
			Fraction: float64(count) / float64(total),
		})
	})
	return out, nil
}

// FrequencyOf returns sym's share of TotalSymbols, 0 for unseen symbols.
func (r *Report) FrequencyOf(sym rune) float64 {
	total := r.TotalSymbols()
	if total == 0 {
		return 0
	}
	return float64(r.Symbols.Get(sym)) / float64(total)
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
