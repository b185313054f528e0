package domain

// TermFrequencyTable maps terms to occurrence counts, ordered by first
// appearance. Positional vectors rely on this order, so it must never
// come from Go map iteration.
type TermFrequencyTable struct {
	terms  []string
	counts map[string]int
	total  int
}

// NewTermFrequencyTable creates an empty table.
func NewTermFrequencyTable() *TermFrequencyTable {
	return &TermFrequencyTable{
		counts: make(map[string]int),
	}
}

// CountTerms tokenizes cleaned text and counts each term.
func CountTerms(text string) *TermFrequencyTable {
	table := NewTermFrequencyTable()
	for _, token := range Tokenize(text) {
		table.Add(token)
	}
	return table
}

// Add records one occurrence of term.
func (t *TermFrequencyTable) Add(term string) {
	if _, ok := t.counts[term]; !ok {
		t.terms = append(t.terms, term)
	}
	t.counts[term]++
	t.total++
}

// Count returns the occurrences of term, or 0 when absent.
func (t *TermFrequencyTable) Count(term string) int {
	return t.counts[term]
}

// Contains reports whether term occurs at least once.
func (t *TermFrequencyTable) Contains(term string) bool {
	return t.counts[term] > 0
}

// Len returns the number of distinct terms.
func (t *TermFrequencyTable) Len() int {
	return len(t.terms)
}

// Total returns the number of tokens counted.
func (t *TermFrequencyTable) Total() int {
	return t.total
}

// Terms returns the distinct terms in first-seen order.
func (t *TermFrequencyTable) Terms() []string {
	out := make([]string, len(t.terms))
	copy(out, t.terms)
	return out
}

// Counts returns the counts in term order.
func (t *TermFrequencyTable) Counts() []int {
	out := make([]int, len(t.terms))
	for i, term := range t.terms {
		out[i] = t.counts[term]
	}
	return out
}
