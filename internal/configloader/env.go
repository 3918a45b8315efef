package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/mdprose/pkg/config"
)

const envVarPrefix = "MDPROSE_"

// envVar binds one MDPROSE_* variable to the config field it overrides.
type envVar struct {
	suffix      string
	field       string
	description string
	apply       func(cfg *config.Config, raw string) error
}

// envVars is kept sorted by suffix.
//
//nolint:gochecknoglobals // read-only table
var envVars = []envVar{
	{"CHECK_FORMAT", "check_format", "Check identifiers in output: name, id, or combined",
		func(cfg *config.Config, raw string) error {
			cfg.CheckFormat = config.CheckFormat(raw)
			return nil
		}},
	{"DICT_DIR", "dict_dir", "Directory of dictionary files replacing the built-in ones",
		func(cfg *config.Config, raw string) error {
			cfg.DictDir = raw
			return nil
		}},
	{"EXTENDED", "extended", "Include the extended banned-word list: true or false",
		boolSetter(func(cfg *config.Config, v bool) { cfg.Extended = v })},
	{"FORMAT", "format", "Output format: text, table, json, sarif, or summary",
		func(cfg *config.Config, raw string) error {
			cfg.Format = config.OutputFormat(raw)
			return nil
		}},
	{"IGNORE", "ignore", "Comma-separated list of ignore patterns",
		func(cfg *config.Config, raw string) error {
			cfg.Ignore = splitList(raw)
			return nil
		}},
	{"JOBS", "jobs", "Number of parallel workers (0 = auto)",
		intSetter(func(cfg *config.Config, v int) { cfg.Jobs = v })},
	{"LINE_LENGTH", "line_length", "Maximum line length after links are stripped",
		intSetter(func(cfg *config.Config, v int) { cfg.LineLength = v })},
	{"WARN_LENGTH", "warn_length", "Warn about lines longer than this (0 = off)",
		intSetter(func(cfg *config.Config, v int) { cfg.WarnLength = v })},
}

func intSetter(set func(*config.Config, int)) func(*config.Config, string) error {
	return func(cfg *config.Config, raw string) error {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("want an integer, got %q", raw)
		}
		set(cfg, n)
		return nil
	}
}

func boolSetter(set func(*config.Config, bool)) func(*config.Config, string) error {
	return func(cfg *config.Config, raw string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("want true/false/1/0, got %q", raw)
		}
		set(cfg, b)
		return nil
	}
}

// LoadFromEnv overrides cfg with every non-empty MDPROSE_* variable.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}
	for _, v := range envVars {
		name := envVarPrefix + v.suffix
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}
		if err := v.apply(cfg, raw); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// splitList splits a comma-separated value, dropping blank items.
func splitList(raw string) []string {
	var items []string
	for item := range strings.SplitSeq(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// GetEnvVarName returns the variable that overrides a config field, or "".
func GetEnvVarName(field string) string {
	for _, v := range envVars {
		if v.field == field {
			return envVarPrefix + v.suffix
		}
	}
	return ""
}

// ListEnvVars returns name and description pairs, sorted by name.
func ListEnvVars() [][2]string {
	vars := make([][2]string, 0, len(envVars))
	for _, v := range envVars {
		vars = append(vars, [2]string{envVarPrefix + v.suffix, v.description})
	}
	return vars
}
