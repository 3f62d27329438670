package present

import (
	"fmt"
	"io"
	"strings"
)

// barWidth is the length of the longest histogram bar.
const barWidth = 40

// Bin is one equal-width histogram bucket [Low, High).
// The last bin also includes High.
type Bin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Histogram is the length distribution view of one database.
type Histogram struct {
	Label   string  `json:"database"`
	Limit   int     `json:"limit"`
	Bins    []Bin   `json:"bins"`
	Clipped int     `json:"clipped"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
}

// BuildHistogram buckets record lengths into bins equal-width bins over
// [0, limit]. Lengths above limit are counted in Clipped.
func BuildHistogram(n Named, bins, limit int) (*Histogram, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("histogram bins must be positive, got %d", bins)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("histogram limit must be positive, got %d", limit)
	}

	mean, err := n.Report.AverageLength()
	if err != nil {
		return nil, err
	}
	median, err := n.Report.MedianLength()
	if err != nil {
		return nil, err
	}

	width := float64(limit) / float64(bins)
	h := &Histogram{
		Label:  n.Label,
		Limit:  limit,
		Bins:   make([]Bin, bins),
		Mean:   mean,
		Median: median,
	}
	for i := range h.Bins {
		h.Bins[i].Low = float64(i) * width
		h.Bins[i].High = float64(i+1) * width
	}

	for _, l := range n.Report.Lengths {
		if l > limit {
			h.Clipped++
			continue
		}
		idx := int(float64(l) / width)
		if idx >= bins {
			idx = bins - 1
		}
		h.Bins[idx].Count++
	}
	return h, nil
}

// WriteHistogram writes h as horizontal text bars.
func WriteHistogram(w io.Writer, h *Histogram) error {
	peak := 0
	for _, b := range h.Bins {
		peak = max(peak, b.Count)
	}

	ew := &errWriter{w: w}
	ew.printf("%s proteins histogram (limit %d)\n", h.Label, h.Limit)
	ew.printf("Mean: %.0f\n", h.Mean)
	ew.printf("Median: %.0f\n", h.Median)
	for _, b := range h.Bins {
		bar := ""
		if peak > 0 {
			bar = strings.Repeat("#", b.Count*barWidth/peak)
		}
		line := fmt.Sprintf("%8.1f %8.1f %6d %s", b.Low, b.High, b.Count, bar)
		ew.printf("%s\n", strings.TrimRight(line, " "))
	}
	if h.Clipped > 0 {
		ew.printf("Above limit: %d\n", h.Clipped)
	}
	return ew.err
}
