package domain

// RawDocument represents opaque bytes read from disk.
// It is the loader's output before extraction.
type RawDocument struct {
	// URI is the original location.
	URI string

	// MIMEType is the content type (e.g., "application/pdf").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains loader-specific key-value pairs.
	Metadata map[string]any
}
