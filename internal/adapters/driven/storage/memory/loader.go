package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driven"
)

// Ensure DocumentLoader implements the interface.
var _ driven.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader serves documents from text held in memory, keyed by path.
type DocumentLoader struct {
	mu    sync.RWMutex
	texts map[string]string
	loads map[string]int
}

// NewDocumentLoader creates an empty in-memory loader.
func NewDocumentLoader() *DocumentLoader {
	return &DocumentLoader{
		texts: make(map[string]string),
		loads: make(map[string]int),
	}
}

// Put stores or replaces the text served for path.
func (l *DocumentLoader) Put(path, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.texts[path] = text
}

// Remove forgets path.
func (l *DocumentLoader) Remove(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.texts, path)
}

// Load returns a fresh document for path.
func (l *DocumentLoader) Load(ctx context.Context, path string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	text, ok := l.texts[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s: not found", domain.ErrInvalidPath, path)
	}
	l.loads[path]++

	doc := domain.NewDocument(path, text)
	doc.ID = uuid.NewString()
	doc.MIMEType = "text/plain"
	return doc, nil
}

// Loads returns how many times path has been loaded successfully.
func (l *DocumentLoader) Loads(path string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loads[path]
}
