package domain

import "sort"

// Vector is an ordered sequence of weights aligned to one document's
// term table. Count vectors and TF-IDF vectors share this type.
type Vector []float64

// ComparisonResult maps candidate document names to similarity scores.
type ComparisonResult map[string]float64

// Score is one named entry of a ComparisonResult.
type Score struct {
	Name  string  `json:"name"`
	Value float64 `json:"score"`
}

// Ranked returns the entries ordered by descending score, ties by name.
func (r ComparisonResult) Ranked() []Score {
	scores := make([]Score, 0, len(r))
	for name, value := range r {
		scores = append(scores, Score{Name: name, Value: value})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Value != scores[j].Value {
			return scores[i].Value > scores[j].Value
		}
		return scores[i].Name < scores[j].Name
	})
	return scores
}
