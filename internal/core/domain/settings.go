package domain

import "time"

const unknownDescription = "Unknown"

// Bounds for configurable values.
const (
	MinPrecision   = 0
	MaxPrecision   = 12
	MinConcurrency = 1
	MaxConcurrency = 64
)

// OutputFormat defines how comparison results are rendered.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatTable renders a ranked table.
	OutputFormatTable OutputFormat = "table"

	// OutputFormatJSON renders a JSON array of scores.
	OutputFormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatTable, OutputFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatTable:
		return "Table (ranked, human readable)"
	case OutputFormatJSON:
		return "JSON (machine readable)"
	default:
		return unknownDescription
	}
}

// CompareSettings holds comparison behaviour configuration.
type CompareSettings struct {
	// Concurrency is the number of candidates scored at once.
	Concurrency int
}

// OutputSettings holds result rendering configuration.
type OutputSettings struct {
	// Format selects table or JSON output.
	Format OutputFormat

	// Precision is the number of decimal places shown in tables.
	Precision int
}

// ExtractionSettings holds document extraction configuration.
type ExtractionSettings struct {
	// PDFToText is the pdftotext binary name or path.
	PDFToText string
}

// PostProcessSettings holds text post-processing configuration.
type PostProcessSettings struct {
	// DehyphenateTypes lists the MIME types whose hyphenated line breaks
	// are rejoined.
	DehyphenateTypes []string
}

// WatchSettings holds watch mode configuration.
type WatchSettings struct {
	// Debounce is how long to wait after the last change before re-comparing.
	Debounce time.Duration
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Compare holds comparison settings.
	Compare CompareSettings

	// Output holds rendering settings.
	Output OutputSettings

	// Extraction holds extractor settings.
	Extraction ExtractionSettings

	// PostProcess holds text post-processing settings.
	PostProcess PostProcessSettings

	// Watch holds watch mode settings.
	Watch WatchSettings

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Compare: CompareSettings{
			Concurrency: 1,
		},
		Output: OutputSettings{
			Format:    OutputFormatTable,
			Precision: 4,
		},
		Extraction: ExtractionSettings{
			PDFToText: "pdftotext",
		},
		PostProcess: PostProcessSettings{
			DehyphenateTypes: []string{"application/pdf"},
		},
		Watch: WatchSettings{
			Debounce: 300 * time.Millisecond,
		},
	}
}
