// Package domain defines the core entities for comparedocs.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A loaded text source with cached cleaned content
//   - TermFrequencyTable: Insertion-ordered term counts
//   - Vector: A positional count or TF-IDF vector
//   - ComparisonResult: Candidate name to similarity score
//   - RawDocument: Opaque bytes handed to an extractor
//
// It also owns text normalisation and term counting, because the cleaned
// content cached on a Document must be derived by exactly one function.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
