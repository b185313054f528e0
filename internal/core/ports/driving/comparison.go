package driving

import (
	"context"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
)

// ComparisonService compares files on disk.
type ComparisonService interface {
	// Compare scores every candidate path against the reference path.
	Compare(ctx context.Context, reference string, candidates []string) (domain.ComparisonResult, error)
}
