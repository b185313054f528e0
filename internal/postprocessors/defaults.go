package postprocessors

import (
	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driven"
	"github.com/custodia-labs/comparedocs/internal/postprocessors/dehyphenate"
	"github.com/custodia-labs/comparedocs/internal/postprocessors/unicode"
)

// DefaultProcessors lists the processors applied to every loaded document.
var DefaultProcessors = []string{unicode.Name, dehyphenate.Name}

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register(unicode.Name, buildUnicode)
	r.Register(dehyphenate.Name, buildDehyphenate)
}

// DefaultPipeline returns a pipeline of DefaultProcessors with default settings.
func DefaultPipeline() *Pipeline {
	return NewDefaultPipeline(domain.DefaultAppSettings().PostProcess)
}

// NewDefaultPipeline returns a pipeline of DefaultProcessors configured
// from settings.
func NewDefaultPipeline(settings domain.PostProcessSettings) *Pipeline {
	r := NewRegistry()
	RegisterDefaults(r)
	cfg := map[string]map[string]any{
		dehyphenate.Name: {"mime_types": settings.DehyphenateTypes},
	}
	p, err := r.BuildConfiguredPipeline(cfg, DefaultProcessors...)
	if err != nil {
		// Built-in names are always registered above.
		panic(err)
	}
	return p
}

func buildUnicode(_ map[string]any) (driven.TextProcessor, error) {
	return unicode.New(), nil
}

// buildDehyphenate creates a dehyphenator from generic config.
// Supported config keys:
//   - mime_types ([]string or []any): formats to rejoin; when the key is
//     absent the default application/pdf applies, an empty list disables it
func buildDehyphenate(cfg map[string]any) (driven.TextProcessor, error) {
	if _, ok := cfg["mime_types"]; !ok {
		return dehyphenate.New(), nil
	}
	return dehyphenate.NewForTypes(getStringsFromConfig(cfg, "mime_types")), nil
}

// getStringsFromConfig safely extracts a string list from generic config.
// Handles []string and the []any produced by TOML/JSON parsing.
func getStringsFromConfig(cfg map[string]any, key string) []string {
	val, ok := cfg[key]
	if !ok {
		return nil
	}

	switch v := val.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
