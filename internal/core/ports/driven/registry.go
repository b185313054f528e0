package driven

import (
	"context"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
)

// ExtractorRegistry selects the appropriate extractor for a document.
// It maintains a priority-ordered list of extractors and dispatches
// on MIME type.
type ExtractorRegistry interface {
	// Extract returns text using the best matching extractor.
	// Returns domain.ErrUnsupportedType when no extractor matches.
	Extract(ctx context.Context, raw *domain.RawDocument) (string, error)

	// Register adds an extractor to the registry.
	Register(extractor Extractor)

	// SupportedMIMETypes returns all MIME types that can be extracted.
	SupportedMIMETypes() []string
}
