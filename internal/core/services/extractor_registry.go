package services

import (
	"context"
	"fmt"
	"mime"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driven"
	"github.com/custodia-labs/comparedocs/internal/logger"
)

// Ensure ExtractorRegistry implements the interface.
var _ driven.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry dispatches raw documents to the highest priority
// extractor that supports their MIME type.
type ExtractorRegistry struct {
	mu         sync.RWMutex
	extractors []driven.Extractor
}

// NewExtractorRegistry creates a registry with the given extractors.
func NewExtractorRegistry(extractors ...driven.Extractor) *ExtractorRegistry {
	r := &ExtractorRegistry{}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

// Register adds an extractor. Equal priorities keep registration order.
func (r *ExtractorRegistry) Register(extractor driven.Extractor) {
	if extractor == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors = append(r.extractors, extractor)
	sort.SliceStable(r.extractors, func(i, j int) bool {
		return r.extractors[i].Priority() > r.extractors[j].Priority()
	})
}

// Extract returns text from the best matching extractor.
func (r *ExtractorRegistry) Extract(ctx context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	mimeType := baseMIMEType(raw.MIMEType)
	extractor := r.find(mimeType)
	if extractor == nil {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedType, mimeType)
	}

	logger.Debug("Extracting %s as %s (%T)", raw.URI, mimeType, extractor)
	return extractor.Extract(ctx, raw)
}

// SupportedMIMETypes returns all MIME types that can be extracted, sorted.
func (r *ExtractorRegistry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var types []string
	for _, e := range r.extractors {
		for _, t := range e.SupportedMIMETypes() {
			if !slices.Contains(types, t) {
				types = append(types, t)
			}
		}
	}
	sort.Strings(types)
	return types
}

func (r *ExtractorRegistry) find(mimeType string) driven.Extractor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.extractors {
		if slices.Contains(e.SupportedMIMETypes(), mimeType) {
			return e
		}
	}
	return nil
}

// baseMIMEType strips parameters such as charset and lowercases the type.
func baseMIMEType(mimeType string) string {
	if parsed, _, err := mime.ParseMediaType(mimeType); err == nil {
		return parsed
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
