package configloader

import (
	"fmt"
	"os"
	"strings"

	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/lint"
	"github.com/yaklabco/mdprose/pkg/runner"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "checks.bad-words.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown checks).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:    true,
	config.FormatTable:   true,
	config.FormatJSON:    true,
	config.FormatSARIF:   true,
	config.FormatSummary: true,
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownCheckFormats = map[config.CheckFormat]bool{
	config.CheckFormatName:     true,
	config.CheckFormatID:       true,
	config.CheckFormatCombined: true,
}

// Validate checks a configuration for errors and warnings.
// Check keys are looked up in registry; a nil registry skips that lookup.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.LineLength < 1 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "line_length",
			Value:   cfg.LineLength,
			Message: "line_length must be a positive integer",
		})
	}

	switch {
	case cfg.WarnLength < 0:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "warn_length",
			Value:   cfg.WarnLength,
			Message: "warn_length must be >= 0 (0 disables warnings)",
		})
	case cfg.WarnLength > 0 && cfg.LineLength > 0 && cfg.WarnLength >= cfg.LineLength:
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "warn_length",
			Value:   cfg.WarnLength,
			Message: fmt.Sprintf("warn_length %d is not below line_length %d; no warnings will be reported", cfg.WarnLength, cfg.LineLength),
		})
	}

	if cfg.DictDir != "" {
		info, err := os.Stat(cfg.DictDir)
		if err != nil || !info.IsDir() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "dict_dir",
				Value:   cfg.DictDir,
				Message: fmt.Sprintf("dictionary directory %q does not exist", cfg.DictDir),
			})
		}
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, table, json, sarif, summary", cfg.Format),
		})
	}

	if cfg.CheckFormat != "" && !knownCheckFormats[cfg.CheckFormat] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "check_format",
			Value:   cfg.CheckFormat,
			Message: fmt.Sprintf("invalid check format %q; must be one of: name, id, combined", cfg.CheckFormat),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	validateChecks(cfg, registry, result)
	validateCheckLists(cfg, registry, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateChecks checks per-check configurations.
func validateChecks(cfg *config.Config, registry *lint.Registry, result *ValidationResult) {
	for key, checkCfg := range cfg.Checks {
		if registry != nil {
			def, exists := registry.Get(key)
			switch {
			case !exists:
				result.Warnings = append(result.Warnings, ValidationError{
					Field:   "checks." + key,
					Value:   key,
					Message: fmt.Sprintf("unknown check %q; it will be ignored", key),
				})
			case def.ValidateOptions != nil && checkCfg.Options != nil:
				if err := def.ValidateOptions(checkCfg.Options); err != nil {
					result.Errors = append(result.Errors, ValidationError{
						Field:   "checks." + key + ".options",
						Value:   checkCfg.Options,
						Message: err.Error(),
					})
				}
			}
		}

		if checkCfg.Severity != nil && !config.Severity(*checkCfg.Severity).IsValid() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "checks." + key + ".severity",
				Value:   *checkCfg.Severity,
				Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning, info", *checkCfg.Severity),
			})
		}
	}
}

// validateCheckLists rejects unknown checks named by --enable or --disable.
func validateCheckLists(cfg *config.Config, registry *lint.Registry, result *ValidationResult) {
	if registry == nil {
		return
	}

	lists := []struct {
		field string
		keys  []string
	}{
		{"enable", cfg.EnableChecks},
		{"disable", cfg.DisableChecks},
	}
	for _, list := range lists {
		for _, key := range list.keys {
			if _, exists := registry.Get(key); !exists {
				result.Errors = append(result.Errors, ValidationError{
					Field:   list.field,
					Value:   key,
					Message: fmt.Sprintf("unknown check %q", key),
				})
			}
		}
	}
}

// validateIgnorePatterns checks that ignore patterns compile.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if _, err := runner.NewIgnoreMatcher([]string{pattern}); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: err.Error(),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, registry *lint.Registry, filePath string) *ValidationResult {
	result := Validate(cfg, registry)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidFormat returns true if the format is valid.
func IsValidFormat(f config.OutputFormat) bool {
	return knownFormats[f]
}
