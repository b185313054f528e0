package driven

import (
	"context"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
)

// Extractor produces raw text from one or more document formats.
type Extractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific extractors should return 50-89.
	// Fallback extractors should return 1-9.
	Priority() int

	// Extract returns the document's text content.
	Extract(ctx context.Context, raw *domain.RawDocument) (string, error)
}
