package vectoriser

import (
	"math"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
)

// TfidfVectoriser weights a reference document's terms against a
// comparison set. Terms that only appear in comparison documents are
// never scored.
type TfidfVectoriser struct {
	counter *CountVectoriser
}

// NewTfidfVectoriser creates a TF-IDF vectoriser.
func NewTfidfVectoriser() *TfidfVectoriser {
	return &TfidfVectoriser{counter: NewCountVectoriser()}
}

// InverseDocFrequency returns ln(n / df). It is negative when df > n.
func InverseDocFrequency(n, df int) float64 {
	return math.Log(float64(n) / float64(df))
}

// Vectorize returns one TF-IDF weight per reference term, in the same
// order as CountVectoriser.Vectorize(reference).
func (v *TfidfVectoriser) Vectorize(reference *domain.Document, set []*domain.Document) (domain.Vector, error) {
	if len(set) == 0 {
		return nil, domain.ErrEmptyComparisonSet
	}

	tf := v.counter.Table(reference)

	tables := make([]*domain.TermFrequencyTable, len(set))
	for i, doc := range set {
		tables[i] = v.counter.Table(doc)
	}

	n := len(set)
	terms := tf.Terms()
	vec := make(domain.Vector, len(terms))
	for i, term := range terms {
		df := 1
		for _, table := range tables {
			if table.Contains(term) {
				df++
			}
		}
		vec[i] = float64(tf.Count(term)) * InverseDocFrequency(n, df)
	}
	return vec, nil
}
