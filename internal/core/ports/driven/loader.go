package driven

import (
	"context"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
)

// DocumentLoader resolves a file path into a loaded document.
type DocumentLoader interface {
	// Load reads and extracts the document at path.
	// Returns domain.ErrInvalidPath when the path does not exist or
	// cannot be read, and domain.ErrUnsupportedType for unknown formats.
	Load(ctx context.Context, path string) (*domain.Document, error)
}
