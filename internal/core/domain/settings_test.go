package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		format   OutputFormat
		expected bool
	}{
		{"table is valid", OutputFormatTable, true},
		{"json is valid", OutputFormatJSON, true},
		{"empty string is invalid", OutputFormat(""), false},
		{"csv is invalid", OutputFormat("csv"), false},
		{"uppercase is invalid", OutputFormat("JSON"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.IsValid())
		})
	}
}

func TestOutputFormat_Description(t *testing.T) {
	assert.Contains(t, OutputFormatTable.Description(), "Table")
	assert.Contains(t, OutputFormatJSON.Description(), "JSON")
	assert.Equal(t, "Unknown", OutputFormat("xml").Description())
}

func TestOutputFormat_String(t *testing.T) {
	assert.Equal(t, "table", OutputFormatTable.String())
	assert.Equal(t, "json", OutputFormatJSON.String())
}

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, 1, settings.Compare.Concurrency)
	assert.Equal(t, OutputFormatTable, settings.Output.Format)
	assert.Equal(t, 4, settings.Output.Precision)
	assert.Equal(t, "pdftotext", settings.Extraction.PDFToText)
	assert.Equal(t, []string{"application/pdf"}, settings.PostProcess.DehyphenateTypes)
	assert.Equal(t, 300*time.Millisecond, settings.Watch.Debounce)
	assert.False(t, settings.Verbose)
}
