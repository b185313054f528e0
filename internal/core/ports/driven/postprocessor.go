package driven

import (
	"context"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
)

// TextProcessor rewrites extracted text before it becomes a document.
// Processors are chained in a pipeline (e.g., Unicode folding, dehyphenation).
type TextProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process returns the rewritten text. raw describes the source the
	// text was extracted from, so processors can act on some formats only.
	Process(ctx context.Context, raw *domain.RawDocument, text string) (string, error)
}

// TextPipeline chains multiple TextProcessors.
type TextPipeline interface {
	// Process runs text through all processors in order.
	Process(ctx context.Context, raw *domain.RawDocument, text string) (string, error)
}
