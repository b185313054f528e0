// Package dehyphenate rejoins words broken across lines by typesetting.
package dehyphenate

import (
	"context"
	"regexp"
	"slices"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.TextProcessor = (*Processor)(nil)

// Name is the registry name of this processor.
const Name = "dehyphenate"

// DefaultMIMETypes are the formats whose line breaks come from layout
// rather than the author.
var DefaultMIMETypes = []string{"application/pdf"}

// A letter, a hyphen at end of line, then a lowercase continuation.
var brokenWord = regexp.MustCompile(`(\p{L})-[ \t]*\r?\n[ \t]*(\p{Ll})`)

// Processor joins "exam-\nple" into "example" for selected formats.
type Processor struct {
	mimeTypes []string
}

// New creates a dehyphenator for mimeTypes, or DefaultMIMETypes when none.
func New(mimeTypes ...string) *Processor {
	if len(mimeTypes) == 0 {
		mimeTypes = DefaultMIMETypes
	}
	return &Processor{mimeTypes: slices.Clone(mimeTypes)}
}

// NewForTypes creates a dehyphenator for exactly mimeTypes.
// An empty list matches nothing.
func NewForTypes(mimeTypes []string) *Processor {
	return &Processor{mimeTypes: slices.Clone(mimeTypes)}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process rejoins hyphenated line breaks when raw is one of the
// configured formats and returns other text unchanged.
func (p *Processor) Process(_ context.Context, raw *domain.RawDocument, text string) (string, error) {
	if raw == nil || !slices.Contains(p.mimeTypes, raw.MIMEType) {
		return text, nil
	}
	return brokenWord.ReplaceAllString(text, "$1$2"), nil
}
