package domain

import (
	"path/filepath"
	"strings"
)

// Document represents one loaded text source.
// Raw content is only reachable through accessors so the cleaned form
// can never drift from it.
type Document struct {
	// ID is assigned by the loader. In-memory documents may leave it empty.
	ID string

	// Name is the file stem and keys the comparison result.
	Name string

	// Type is the file extension including the leading dot.
	Type string

	// URI is the path the document was loaded from.
	URI string

	// MIMEType is the detected content type.
	MIMEType string

	content string
	cleaned string
}

// NewDocument creates a document from a path and its extracted text.
func NewDocument(uri, content string) *Document {
	ext := filepath.Ext(uri)
	d := &Document{
		Name: strings.TrimSuffix(filepath.Base(uri), ext),
		Type: ext,
		URI:  uri,
	}
	d.SetContent(content)
	return d
}

// Content returns the raw extracted text.
func (d *Document) Content() string {
	return d.content
}

// CleanedContent returns the lowercased, punctuation-free text.
func (d *Document) CleanedContent() string {
	return d.cleaned
}

// SetContent replaces the raw text and recomputes the cleaned form.
func (d *Document) SetContent(content string) {
	d.content = content
	d.cleaned = CleanText(content)
}

// Terms counts the document's cleaned content.
func (d *Document) Terms() *TermFrequencyTable {
	return CountTerms(d.cleaned)
}
