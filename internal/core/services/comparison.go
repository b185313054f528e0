package services

import (
	"context"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driven"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driving"
)

// Ensure ComparisonService implements the interface.
var _ driving.ComparisonService = (*ComparisonService)(nil)

// ComparisonService compares files by building a Comparator per call.
type ComparisonService struct {
	loader driven.DocumentLoader
	opts   []ComparatorOption
}

// NewComparisonService creates a new comparison service.
func NewComparisonService(loader driven.DocumentLoader, opts ...ComparatorOption) *ComparisonService {
	return &ComparisonService{
		loader: loader,
		opts:   opts,
	}
}

// Compare loads the reference and every candidate, then scores them.
// Loading stops at the first path that fails.
func (s *ComparisonService) Compare(
	ctx context.Context,
	reference string,
	candidates []string,
) (domain.ComparisonResult, error) {
	if len(candidates) == 0 {
		return nil, domain.ErrEmptyComparisonSet
	}

	comparator, err := NewComparator(ctx, s.loader, reference, s.opts...)
	if err != nil {
		return nil, err
	}
	for _, path := range candidates {
		if err := comparator.AddDocument(ctx, path); err != nil {
			return nil, err
		}
	}
	return comparator.Compare(ctx)
}
