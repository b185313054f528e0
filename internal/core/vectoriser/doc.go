// Package vectoriser turns documents into positional vectors and scores
// them against each other.
//
// Every vector is aligned to the first-seen term order of one document's
// TermFrequencyTable, so a reference document's count vector and its
// TF-IDF vector against any comparison set can be compared position by
// position.
//
// The TF-IDF weighting uses a document-frequency baseline of 1:
//
//	df(t)  = 1 + |{d in set : t occurs in d}|
//	idf(t) = ln(N / df(t))
//
// With N=1 a shared term gets ln(1/2) and an unshared term gets 0, so
// weights are never positive and scores against a count vector are
// never above zero. This weighting is kept as is.
package vectoriser
