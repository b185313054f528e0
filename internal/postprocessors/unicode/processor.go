// Package unicode folds compatibility characters to their plain forms so
// that ligatures, full-width letters and invisible marks do not split words.
package unicode

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.TextProcessor = (*Processor)(nil)

// Name is the registry name of this processor.
const Name = "unicode"

// invisible characters dropped before folding.
var invisible = strings.NewReplacer(
	"\u00ad", "", // soft hyphen
	"\u200b", "", // zero width space
	"\u200c", "", // zero width non-joiner
	"\u200d", "", // zero width joiner
	"\u2060", "", // word joiner
	"\ufeff", "", // byte order mark
)

// Processor applies NFKC normalisation.
type Processor struct{}

// New creates a Unicode folding processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process removes invisible characters and applies NFKC, turning "ﬁ"
// into "fi" and full-width "Ａ" into "A".
func (p *Processor) Process(_ context.Context, _ *domain.RawDocument, text string) (string, error) {
	return norm.NFKC.String(invisible.Replace(text)), nil
}
