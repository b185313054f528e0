package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_DerivesNameAndType(t *testing.T) {
	tests := []struct {
		uri          string
		expectedName string
		expectedType string
	}{
		{"/docs/report.pdf", "report", ".pdf"},
		{"notes.txt", "notes", ".txt"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{"./text-files/romeo-and-juliet.txt", "romeo-and-juliet", ".txt"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			doc := NewDocument(tt.uri, "")
			assert.Equal(t, tt.expectedName, doc.Name)
			assert.Equal(t, tt.expectedType, doc.Type)
			assert.Equal(t, tt.uri, doc.URI)
		})
	}
}

func TestNewDocument_CachesCleanedContent(t *testing.T) {
	doc := NewDocument("a.txt", "Hello, World!")

	assert.Equal(t, "Hello, World!", doc.Content())
	assert.Equal(t, "hello world", doc.CleanedContent())
}

func TestDocument_SetContentRecomputesCleaned(t *testing.T) {
	doc := NewDocument("a.txt", "First.")
	require.Equal(t, "first", doc.CleanedContent())

	doc.SetContent("SECOND; Version")

	assert.Equal(t, "SECOND; Version", doc.Content())
	assert.Equal(t, "second version", doc.CleanedContent())
}

func TestDocument_Terms(t *testing.T) {
	doc := NewDocument("a.txt", "The cat sat on the mat.")

	table := doc.Terms()

	assert.Equal(t, []string{"the", "cat", "sat", "on", "mat"}, table.Terms())
	assert.Equal(t, []int{2, 1, 1, 1, 1}, table.Counts())
}

func TestDocument_EmptyContent(t *testing.T) {
	doc := NewDocument("empty.txt", "")

	assert.Equal(t, "", doc.CleanedContent())
	assert.Equal(t, 0, doc.Terms().Len())
}
