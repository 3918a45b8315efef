// Package config defines core configuration types for mdprose.
// These types are pure data structures with no dependency on how they are loaded.
package config

// Severity represents the severity level of a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is a known level.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// DefaultLineLength is the line length limit used when none is configured.
const DefaultLineLength = 500

// CheckConfig holds per-check configuration options.
type CheckConfig struct {
	Enabled  *bool          `mapstructure:"enabled" yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Severity *string        `mapstructure:"severity" yaml:"severity,omitempty" toml:"severity,omitempty"`
	Options  map[string]any `mapstructure:"options" yaml:"options,omitempty" toml:"options,omitempty"`
}

// OutputFormat specifies the output format for findings.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// CheckFormat controls how check identifiers appear in output.
type CheckFormat string

const (
	CheckFormatName     CheckFormat = "name"     // "bad-words"
	CheckFormatID       CheckFormat = "id"       // "RP001"
	CheckFormatCombined CheckFormat = "combined" // "RP001/bad-words"
)

// Config is the root configuration structure for mdprose.
type Config struct {
	// LineLength is the maximum line length after links are stripped.
	LineLength int `mapstructure:"line_length" yaml:"line_length" toml:"line_length"`

	// WarnLength reports lines longer than this as warnings. Zero disables it.
	WarnLength int `mapstructure:"warn_length" yaml:"warn_length,omitempty" toml:"warn_length,omitempty"`

	// Extended merges the extended banned-word list into the bad word check.
	Extended bool `mapstructure:"extended" yaml:"extended,omitempty" toml:"extended,omitempty"`

	// DictDir is a directory whose dictionary files replace the built-in ones.
	DictDir string `mapstructure:"dict_dir" yaml:"dict_dir,omitempty" toml:"dict_dir,omitempty"`

	// Checks contains per-check configuration keyed by check ID or name.
	Checks map[string]CheckConfig `mapstructure:"checks" yaml:"checks,omitempty" toml:"checks,omitempty"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `mapstructure:"ignore" yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-" toml:"-"`

	// CheckFormat controls how check identifiers appear in output.
	CheckFormat CheckFormat `mapstructure:"-" yaml:"-" toml:"-"`

	// Jobs specifies the number of documents linted in parallel.
	Jobs int `mapstructure:"-" yaml:"-" toml:"-"`

	// EnableChecks contains check IDs or names to explicitly enable.
	EnableChecks []string `mapstructure:"-" yaml:"-" toml:"-"`

	// DisableChecks contains check IDs or names to explicitly disable.
	DisableChecks []string `mapstructure:"-" yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		LineLength:  DefaultLineLength,
		Checks:      make(map[string]CheckConfig),
		Format:      FormatText,
		CheckFormat: CheckFormatName,
		Jobs:        0, // 0 means use GOMAXPROCS
	}
}
