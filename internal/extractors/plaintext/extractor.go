// Package plaintext extracts text files, decoding UTF-16 and legacy
// Windows-1252 content to UTF-8.
package plaintext

import (
	"bytes"
	"context"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"text/plain",
		"text/csv",
		"text/tab-separated-values",
		"text/x-go",
		"text/x-python",
		"text/x-rust",
		"text/x-java",
		"text/x-c",
		"text/x-c++",
		"text/x-shellscript",
		"text/x-sql",
		"text/x-rst",
		"text/yaml",
		"text/toml",
		"text/javascript",
		"text/css",
		"application/json",
		"application/xml",
		"text/xml",
	}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 5 // Fallback extractor
}

// Extract returns the file content decoded to UTF-8.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}
	return Decode(raw.Content)
}

// Decode converts bytes to a UTF-8 string.
// A byte order mark selects UTF-8 or UTF-16; BOM-less input that is not
// valid UTF-8 is read as Windows-1252.
func Decode(content []byte) (string, error) {
	if hasBOM(content) {
		decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
		out, _, err := transform.Bytes(decoder, content)
		if err != nil {
			return "", fmt.Errorf("%w: decode: %v", domain.ErrInvalidInput, err)
		}
		return string(out), nil
	}

	if utf8.Valid(content) {
		return string(content), nil
	}

	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), content)
	if err != nil {
		return "", fmt.Errorf("%w: decode: %v", domain.ErrInvalidInput, err)
	}
	return string(out), nil
}

func hasBOM(content []byte) bool {
	return bytes.HasPrefix(content, bomUTF8) ||
		bytes.HasPrefix(content, bomUTF16LE) ||
		bytes.HasPrefix(content, bomUTF16BE)
}
