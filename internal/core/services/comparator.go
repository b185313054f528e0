package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driven"
	"github.com/custodia-labs/comparedocs/internal/core/vectoriser"
	"github.com/custodia-labs/comparedocs/internal/logger"
)

// ComparatorOption configures a Comparator.
type ComparatorOption func(*Comparator)

// WithConcurrency sets how many candidates are scored at once.
// Values below 1 are treated as 1.
func WithConcurrency(n int) ComparatorOption {
	return func(c *Comparator) {
		c.concurrency = max(n, 1)
	}
}

// Comparator scores candidate documents against one reference document.
// The reference and its count vector are fixed at construction; the
// candidate list only grows.
type Comparator struct {
	loader      driven.DocumentLoader
	tfidf       *vectoriser.TfidfVectoriser
	concurrency int

	reference *domain.Document
	refVector domain.Vector

	mu        sync.Mutex
	documents []*domain.Document
}

// NewComparator loads the reference document at path and vectorises it.
func NewComparator(
	ctx context.Context,
	loader driven.DocumentLoader,
	path string,
	opts ...ComparatorOption,
) (*Comparator, error) {
	if loader == nil {
		return nil, fmt.Errorf("%w: nil document loader", domain.ErrInvalidInput)
	}

	c := &Comparator{
		loader:      loader,
		tfidf:       vectoriser.NewTfidfVectoriser(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(c)
	}

	ref, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load reference: %w", err)
	}
	c.reference = ref
	c.refVector = vectoriser.NewCountVectoriser().Vectorize(ref)

	logger.Debug("Reference %q: %d distinct terms", ref.Name, len(c.refVector))
	return c, nil
}

// Reference returns the reference document.
func (c *Comparator) Reference() *domain.Document {
	return c.reference
}

// Documents returns a copy of the held comparison documents.
func (c *Comparator) Documents() []*domain.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*domain.Document, len(c.documents))
	copy(out, c.documents)
	return out
}

// AddDocument loads the document at path and holds it for Compare.
// The held list is unchanged when loading fails.
func (c *Comparator) AddDocument(ctx context.Context, path string) error {
	doc, err := c.loader.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("add document: %w", err)
	}

	c.mu.Lock()
	c.documents = append(c.documents, doc)
	c.mu.Unlock()

	logger.Debug("Added %q (%s)", doc.Name, doc.MIMEType)
	return nil
}

// Compare scores extra documents followed by the held documents.
// Each candidate gets its own IDF computed against itself alone.
// On duplicate names the later document wins.
func (c *Comparator) Compare(ctx context.Context, extra ...*domain.Document) (domain.ComparisonResult, error) {
	c.mu.Lock()
	docs := make([]*domain.Document, 0, len(extra)+len(c.documents))
	docs = append(docs, extra...)
	docs = append(docs, c.documents...)
	c.mu.Unlock()

	if len(docs) == 0 {
		return nil, domain.ErrEmptyComparisonSet
	}
	for i, doc := range docs {
		if doc == nil {
			return nil, fmt.Errorf("%w: nil document at position %d", domain.ErrInvalidInput, i)
		}
	}

	logger.Section("Comparison")
	logger.Debug("Reference: %q, candidates: %d, concurrency: %d", c.reference.Name, len(docs), c.concurrency)

	scores := make([]float64, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			score, err := c.score(doc)
			if err != nil {
				return fmt.Errorf("compare %q: %w", doc.Name, err)
			}
			scores[i] = score
			logger.Debug("%s: %.6f", doc.Name, score)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make(domain.ComparisonResult, len(docs))
	for i, doc := range docs {
		result[doc.Name] = scores[i]
	}
	return result, nil
}

func (c *Comparator) score(doc *domain.Document) (float64, error) {
	weights, err := c.tfidf.Vectorize(c.reference, []*domain.Document{doc})
	if err != nil {
		return 0, err
	}
	return vectoriser.Cosine(c.refVector, weights)
}
