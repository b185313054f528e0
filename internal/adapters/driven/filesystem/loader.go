// Package filesystem loads comparison documents from local files.
package filesystem

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driven"
	"github.com/custodia-labs/comparedocs/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

const (
	mimeOctetStream = "application/octet-stream"
	mimeTextPlain   = "text/plain"
)

// knownTypes covers extensions the platform MIME table misses or
// reports inconsistently across operating systems.
var knownTypes = map[string]string{
	".txt":      "text/plain",
	".text":     "text/plain",
	".log":      "text/plain",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".rst":      "text/x-rst",
	".csv":      "text/csv",
	".tsv":      "text/tab-separated-values",
	".go":       "text/x-go",
	".py":       "text/x-python",
	".rs":       "text/x-rust",
	".java":     "text/x-java",
	".c":        "text/x-c",
	".h":        "text/x-c",
	".cc":       "text/x-c++",
	".cpp":      "text/x-c++",
	".hpp":      "text/x-c++",
	".js":       "text/javascript",
	".jsx":      "text/javascript",
	".ts":       "text/javascript",
	".tsx":      "text/javascript",
	".css":      "text/css",
	".sh":       "text/x-shellscript",
	".bash":     "text/x-shellscript",
	".sql":      "text/x-sql",
	".yaml":     "text/yaml",
	".yml":      "text/yaml",
	".toml":     "text/toml",
	".json":     "application/json",
	".xml":      "application/xml",
	".html":     "text/html",
	".htm":      "text/html",
	".xhtml":    "text/html",
	".eml":      "message/rfc822",
	".pdf":      "application/pdf",
	".docx":     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Loader reads files and extracts their text through a registry.
type Loader struct {
	registry driven.ExtractorRegistry
	pipeline driven.TextPipeline
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithPipeline runs extracted text through p before tokenisation.
func WithPipeline(p driven.TextPipeline) LoaderOption {
	return func(l *Loader) {
		l.pipeline = p
	}
}

// NewLoader creates a loader that dispatches extraction to registry.
func NewLoader(registry driven.ExtractorRegistry, opts ...LoaderOption) *Loader {
	l := &Loader{registry: registry}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the file at path and returns the extracted document.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Document, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", domain.ErrInvalidPath)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidPath, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s: is a directory", domain.ErrInvalidPath, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidPath, path, err)
	}

	mimeType := detectMIMEType(path)
	if mimeType == "" {
		mimeType = sniffMIMEType(content)
	}

	raw := &domain.RawDocument{
		URI:      path,
		MIMEType: mimeType,
		Content:  content,
		Metadata: map[string]any{
			"size":     info.Size(),
			"modified": info.ModTime(),
		},
	}

	text, err := l.registry.Extract(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}
	if l.pipeline != nil {
		text, err = l.pipeline.Process(ctx, raw, text)
		if err != nil {
			return nil, fmt.Errorf("postprocess %s: %w", path, err)
		}
	}

	doc := domain.NewDocument(path, text)
	doc.ID = uuid.NewString()
	doc.MIMEType = mimeType

	logger.Debug("loaded %s (%s, %d bytes, %d terms)", path, mimeType, info.Size(), doc.Terms().Len())
	return doc, nil
}

// detectMIMEType maps a filename extension to a base MIME type.
// Returns "" when the extension is missing or unknown.
func detectMIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return ""
	}
	if t, ok := knownTypes[ext]; ok {
		return t
	}
	t := mime.TypeByExtension(ext)
	if t == "" {
		return ""
	}
	base, _, err := mime.ParseMediaType(t)
	if err != nil {
		return ""
	}
	return base
}

// sniffMIMEType treats valid UTF-8 as plain text.
func sniffMIMEType(content []byte) string {
	if utf8.Valid(content) {
		return mimeTextPlain
	}
	return mimeOctetStream
}
