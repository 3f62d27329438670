package store

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/protstat/internal/digest"
	"github.com/roach88/protstat/internal/stats"
)

// marshalReport converts a report to canonical JSON TEXT and its ID.
func marshalReport(rep *stats.Report) (content, id string, err error) {
	data, err := digest.CanonicalReport(rep)
	if err != nil {
		return "", "", fmt.Errorf("marshal report: %w", err)
	}
	id, err = digest.ReportID(rep)
	if err != nil {
		return "", "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data), id, nil
}

type storedReport struct {
	Lengths []int               `json:"lengths"`
	Symbols [][]json.RawMessage `json:"symbols"`
}

// unmarshalReport parses canonical JSON TEXT back into a report,
// restoring symbol order.
func unmarshalReport(content string) (*stats.Report, error) {
	var sr storedReport
	if err := json.Unmarshal([]byte(content), &sr); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}

	rep := &stats.Report{
		Lengths: sr.Lengths,
		Symbols: &stats.SymbolCounts{},
	}
	if rep.Lengths == nil {
		rep.Lengths = []int{}
	}

	for i, pair := range sr.Symbols {
		if len(pair) != 2 {
			return nil, fmt.Errorf("unmarshal report: symbols[%d]: want [symbol, count], got %d elements", i, len(pair))
		}
		var sym string
		if err := json.Unmarshal(pair[0], &sym); err != nil {
			return nil, fmt.Errorf("unmarshal report: symbols[%d]: %w", i, err)
		}
		runes := []rune(sym)
		if len(runes) != 1 {
			return nil, fmt.Errorf("unmarshal report: symbols[%d]: %q is not a single symbol", i, sym)
		}
		var count int
		if err := json.Unmarshal(pair[1], &count); err != nil {
			return nil, fmt.Errorf("unmarshal report: symbols[%d]: %w", i, err)
		}
		rep.Symbols.Add(runes[0], count)
	}

	return rep, nil
}
