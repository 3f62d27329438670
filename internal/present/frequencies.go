package present

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// FrequencyTable aligns symbol frequencies across databases.
// Values[d][s] is the percentage of Symbols[s] in Databases[d]; symbols a
// database never contains are zero-filled.
type FrequencyTable struct {
	Symbols   []string    `json:"symbols"`
	Databases []string    `json:"databases"`
	Values    [][]float64 `json:"values"`
}

// Frequencies builds a FrequencyTable.
//
// Symbol order: symbols missing from the first database come first, in
// first-seen order across all databases; then the first database's
// symbols by ascending frequency, ties kept in first-seen order.
func Frequencies(named []Named) (*FrequencyTable, error) {
	if len(named) == 0 {
		return &FrequencyTable{Symbols: []string{}, Databases: []string{}, Values: [][]float64{}}, nil
	}

	fractions := make([]map[rune]float64, len(named))
	var union []rune
	seen := map[rune]bool{}
	for i, n := range named {
		freqs, err := n.Report.Frequencies()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n.Label, err)
		}
		fractions[i] = make(map[rune]float64, len(freqs))
		for _, f := range freqs {
			fractions[i][f.Symbol] = f.Fraction
			if !seen[f.Symbol] {
				seen[f.Symbol] = true
				union = append(union, f.Symbol)
			}
		}
	}

	first := named[0].Report.Symbols.Symbols()
	sort.SliceStable(first, func(a, b int) bool {
		return fractions[0][first[a]] < fractions[0][first[b]]
	})

	var order []rune
	for _, sym := range union {
		if _, ok := fractions[0][sym]; !ok {
			order = append(order, sym)
		}
	}
	order = append(order, first...)

	table := &FrequencyTable{
		Symbols:   make([]string, len(order)),
		Databases: make([]string, len(named)),
		Values:    make([][]float64, len(named)),
	}
	for s, sym := range order {
		table.Symbols[s] = string(sym)
	}
	for d, n := range named {
		table.Databases[d] = n.Label
		row := make([]float64, len(order))
		for s, sym := range order {
			row[s] = fractions[d][sym] * 100
		}
		table.Values[d] = row
	}
	return table, nil
}

// WriteFrequencies writes t as an aligned text table, one row per symbol.
// Symbols are shown as counted, without case folding.
func WriteFrequencies(w io.Writer, t *FrequencyTable) error {
	ew := &errWriter{w: w}

	widths := make([]int, len(t.Databases))
	var header strings.Builder
	header.WriteString("Symbol")
	for d, label := range t.Databases {
		widths[d] = max(len(label), 7)
		fmt.Fprintf(&header, "  %*s", widths[d], label)
	}
	ew.printf("%s\n", header.String())

	for s, sym := range t.Symbols {
		var line strings.Builder
		fmt.Fprintf(&line, "%-6s", sym)
		for d := range t.Databases {
			fmt.Fprintf(&line, "  %*s", widths[d], fmt.Sprintf("%.2f%%", t.Values[d][s]))
		}
		ew.printf("%s\n", line.String())
	}
	return ew.err
}
