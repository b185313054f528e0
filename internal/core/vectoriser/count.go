package vectoriser

import "github.com/custodia-labs/comparedocs/internal/core/domain"

// CountVectoriser produces raw term-frequency vectors.
type CountVectoriser struct{}

// NewCountVectoriser creates a count vectoriser.
func NewCountVectoriser() *CountVectoriser {
	return &CountVectoriser{}
}

// Table returns the term table the vector is built from.
func (v *CountVectoriser) Table(doc *domain.Document) *domain.TermFrequencyTable {
	return domain.CountTerms(doc.CleanedContent())
}

// Vectorize returns the document's term counts in first-seen order.
// The length is the number of distinct terms.
func (v *CountVectoriser) Vectorize(doc *domain.Document) domain.Vector {
	counts := v.Table(doc).Counts()
	vec := make(domain.Vector, len(counts))
	for i, c := range counts {
		vec[i] = float64(c)
	}
	return vec
}
