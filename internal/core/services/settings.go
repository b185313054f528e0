package services

import (
	"fmt"
	"mime"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driven"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyConcurrency = "compare.concurrency"
	KeyFormat      = "output.format"
	KeyPrecision   = "output.precision"
	KeyPDFToText   = "extractors.pdftotext"
	KeyDehyphenate = "postprocess.dehyphenate_types"
	KeyDebounceMS  = "watch.debounce_ms"
	KeyVerbose     = "logging.verbose"
)

var settingKeys = []string{
	KeyConcurrency,
	KeyFormat,
	KeyPrecision,
	KeyPDFToText,
	KeyDehyphenate,
	KeyDebounceMS,
	KeyVerbose,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or out-of-range values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	format := domain.OutputFormat(s.configStore.GetString(KeyFormat))
	if !format.IsValid() {
		format = defaults.Output.Format
	}

	pdftotext := s.configStore.GetString(KeyPDFToText)
	if pdftotext == "" {
		pdftotext = defaults.Extraction.PDFToText
	}

	dehyphenate := defaults.PostProcess.DehyphenateTypes
	if _, ok := s.configStore.Get(KeyDehyphenate); ok {
		if types, err := parseMIMEList(s.configStore.GetString(KeyDehyphenate)); err == nil {
			dehyphenate = types
		}
	}

	debounce := defaults.Watch.Debounce
	if ms := s.getInt(KeyDebounceMS, -1); ms >= 0 {
		debounce = time.Duration(ms) * time.Millisecond
	}

	return &domain.AppSettings{
		Compare: domain.CompareSettings{
			Concurrency: s.getBounded(KeyConcurrency, defaults.Compare.Concurrency,
				domain.MinConcurrency, domain.MaxConcurrency),
		},
		Output: domain.OutputSettings{
			Format: format,
			Precision: s.getBounded(KeyPrecision, defaults.Output.Precision,
				domain.MinPrecision, domain.MaxPrecision),
		},
		Extraction: domain.ExtractionSettings{
			PDFToText: pdftotext,
		},
		PostProcess: domain.PostProcessSettings{
			DehyphenateTypes: dehyphenate,
		},
		Watch: domain.WatchSettings{
			Debounce: debounce,
		},
		Verbose: s.configStore.GetBool(KeyVerbose),
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrInvalidInput
	}
	values := []struct {
		key   string
		value any
	}{
		{KeyConcurrency, settings.Compare.Concurrency},
		{KeyFormat, settings.Output.Format.String()},
		{KeyPrecision, settings.Output.Precision},
		{KeyPDFToText, settings.Extraction.PDFToText},
		{KeyDehyphenate, strings.Join(settings.PostProcess.DehyphenateTypes, ",")},
		{KeyDebounceMS, int(settings.Watch.Debounce / time.Millisecond)},
		{KeyVerbose, settings.Verbose},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value for key, validates it and persists it.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrInvalidInput
	}

	value = strings.TrimSpace(value)
	var parsed any
	switch key {
	case KeyConcurrency:
		n, err := parseBounded(value, domain.MinConcurrency, domain.MaxConcurrency)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidSetting, key, err)
		}
		parsed = n
	case KeyPrecision:
		n, err := parseBounded(value, domain.MinPrecision, domain.MaxPrecision)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidSetting, key, err)
		}
		parsed = n
	case KeyDebounceMS:
		n, err := parseBounded(value, 0, 60_000)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidSetting, key, err)
		}
		parsed = n
	case KeyFormat:
		format := domain.OutputFormat(strings.ToLower(value))
		if !format.IsValid() {
			return fmt.Errorf("%w: %s: unknown format %q", domain.ErrInvalidSetting, key, value)
		}
		parsed = format.String()
	case KeyPDFToText:
		if value == "" {
			return fmt.Errorf("%w: %s: must not be empty", domain.ErrInvalidSetting, key)
		}
		parsed = value
	case KeyDehyphenate:
		types, err := parseMIMEList(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidSetting, key, err)
		}
		parsed = strings.Join(types, ",")
	case KeyVerbose:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidSetting, key, err)
		}
		parsed = b
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}

	return s.configStore.Set(key, parsed)
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBounded(key string, fallback, lo, hi int) int {
	n := s.getInt(key, fallback)
	if n < lo || n > hi {
		return fallback
	}
	return n
}

func parseBounded(value string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%d outside [%d, %d]", n, lo, hi)
	}
	return n, nil
}

// parseMIMEList splits a comma-separated list of media types.
// An empty list is valid and disables the processor.
func parseMIMEList(value string) ([]string, error) {
	types := []string{}
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		mediaType, _, err := mime.ParseMediaType(field)
		if err != nil || !strings.Contains(mediaType, "/") {
			return nil, fmt.Errorf("invalid media type %q", field)
		}
		types = append(types, mediaType)
	}
	return types, nil
}
