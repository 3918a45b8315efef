package lint

import (
	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/dict"
)

// Env carries everything a check constructor needs.
// It is built once per run and shared read-only by every document.
type Env struct {
	// Config is the resolved configuration.
	Config *config.Config

	// Dict holds the word and phrase lists.
	Dict *dict.Set

	// Options are the check-specific options (may be nil).
	Options map[string]any
}

// WithOptions returns a copy of the environment carrying the given check options.
func (e Env) WithOptions(options map[string]any) Env {
	e.Options = options
	return e
}

// Option returns a check-specific option value, or the default if not set.
func (e Env) Option(key string, defaultValue any) any {
	if e.Options == nil {
		return defaultValue
	}
	if v, ok := e.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a check-specific integer option, or the default.
func (e Env) OptionInt(key string, defaultValue int) int {
	v := e.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a check-specific string option, or the default.
func (e Env) OptionString(key string, defaultValue string) string {
	v := e.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a check-specific boolean option, or the default.
func (e Env) OptionBool(key string, defaultValue bool) bool {
	v := e.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a check-specific string slice option, or the default.
func (e Env) OptionStringSlice(key string, defaultValue []string) []string {
	v := e.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// Handle []interface{} from YAML/TOML parsing
	if iface, ok := v.([]interface{}); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
