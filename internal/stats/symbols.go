package stats

// SymbolCounts maps symbols to occurrence counts in first-seen order.
// The zero value is ready to use.
type SymbolCounts struct {
	order  []rune
	index  map[rune]int
	counts []int
}

// Add increments the count of sym by n, inserting it at the end of the
// order on first encounter.
func (s *SymbolCounts) Add(sym rune, n int) {
	if s.index == nil {
		s.index = make(map[rune]int)
	}
	i, ok := s.index[sym]
	if !ok {
		i = len(s.order)
		s.index[sym] = i
		s.order = append(s.order, sym)
		s.counts = append(s.counts, 0)
	}
	s.counts[i] += n
}

// Get returns the count of sym, or 0 if it was never seen.
func (s *SymbolCounts) Get(sym rune) int {
	if i, ok := s.index[sym]; ok {
		return s.counts[i]
	}
	return 0
}

// Has reports whether sym was seen.
func (s *SymbolCounts) Has(sym rune) bool {
	_, ok := s.index[sym]
	return ok
}

// Len returns the number of distinct symbols.
func (s *SymbolCounts) Len() int {
	return len(s.order)
}

// Symbols returns the distinct symbols in first-seen order.
func (s *SymbolCounts) Symbols() []rune {
	out := make([]rune, len(s.order))
	copy(out, s.order)
	return out
}

// Total returns the sum of all counts.
func (s *SymbolCounts) Total() int {
	total := 0
	for _, c := range s.counts {
		total += c
	}
	return total
}

// Each calls fn for every symbol in first-seen order.
func (s *SymbolCounts) Each(fn func(sym rune, count int)) {
	for i, sym := range s.order {
		fn(sym, s.counts[i])
	}
}

// Clone returns an independent copy.
func (s *SymbolCounts) Clone() *SymbolCounts {
	c := &SymbolCounts{
		order:  make([]rune, len(s.order)),
		index:  make(map[rune]int, len(s.order)),
		counts: make([]int, len(s.counts)),
	}
	copy(c.order, s.order)
	copy(c.counts, s.counts)
	for k, v := range s.index {
		c.index[k] = v
	}
	return c
}
