package config

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// Template formats understood by GenerateTemplate.
const (
	TemplateYAML = "yaml"
	TemplateTOML = "toml"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every check with its documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "toml".
	Format string

	// Checks describes the available checks, in declaration order.
	Checks []CheckInfo
}

// CheckInfo contains check metadata for template generation.
type CheckInfo struct {
	ID          string
	Name        string
	Description string
	Severity    Severity
	Options     map[string]any
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	switch opts.Format {
	case "", TemplateYAML:
		return generateYAMLTemplate(opts), nil
	case TemplateTOML:
		return generateTOMLTemplate(opts), nil
	default:
		return nil, fmt.Errorf("unsupported template format %q", opts.Format)
	}
}

func generateYAMLTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader() + "\n\n")
	buf.WriteString(`# Maximum line length once Markdown links are reduced to their text
line_length: 500

# Report lines longer than this as warnings (0 = off)
# warn_length: 400

# Include the extended banned-word list
# extended: false

# Directory holding dictionary files that replace the built-in ones
# dict_dir: ./dicts

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
`)

	if !opts.Full {
		buf.WriteString(`
# Check-specific configuration
# checks:
#   bad-words:
#     enabled: true
#     severity: error
#   dangling-section:
#     options:
#       filler: ["^<!--", "^---$"]
`)
		return buf.Bytes()
	}

	buf.WriteString("\n# Check-specific configuration\nchecks:\n")
	for _, check := range opts.Checks {
		fmt.Fprintf(&buf, "\n  # %s: %s\n", check.ID, check.Name)
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(check.Description, commentWrapWidth, "  # "))
		fmt.Fprintf(&buf, "  %s:\n", check.Name)
		buf.WriteString("    enabled: true\n")
		fmt.Fprintf(&buf, "    severity: %s\n", check.Severity)
		if len(check.Options) > 0 {
			buf.WriteString("    options:\n")
			for _, key := range sortedKeys(check.Options) {
				fmt.Fprintf(&buf, "      %s: %s\n", key, formatOptionValue(check.Options[key]))
			}
		}
	}

	return buf.Bytes()
}

func generateTOMLTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader() + "\n\n")
	buf.WriteString(`# Maximum line length once Markdown links are reduced to their text
line_length = 500

# Report lines longer than this as warnings (0 = off)
# warn_length = 400

# Include the extended banned-word list
# extended = false

# File patterns to ignore (glob patterns)
# ignore = ["vendor/**"]
`)

	if !opts.Full {
		buf.WriteString(`
# [checks.bad-words]
# enabled = true
# severity = "error"
`)
		return buf.Bytes()
	}

	for _, check := range opts.Checks {
		fmt.Fprintf(&buf, "\n# %s: %s\n", check.ID, check.Name)
		fmt.Fprintf(&buf, "# %s\n", wrapComment(check.Description, commentWrapWidth, "# "))
		fmt.Fprintf(&buf, "[checks.%s]\n", check.Name)
		buf.WriteString("enabled = true\n")
		fmt.Fprintf(&buf, "severity = %q\n", check.Severity)
		if len(check.Options) > 0 {
			fmt.Fprintf(&buf, "[checks.%s.options]\n", check.Name)
			for _, key := range sortedKeys(check.Options) {
				fmt.Fprintf(&buf, "%s = %s\n", key, formatOptionValue(check.Options[key]))
			}
		}
	}

	return buf.Bytes()
}

func sortedKeys(options map[string]any) []string {
	return slices.Sorted(maps.Keys(options))
}

// formatOptionValue renders an option default in a form valid for both YAML and TOML.
func formatOptionValue(value any) string {
	switch val := value.(type) {
	case string:
		return fmt.Sprintf("%q", val)
	case []string:
		quoted := make([]string, 0, len(val))
		for _, item := range val {
			quoted = append(quoted, fmt.Sprintf("%q", item))
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int, prefix string) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n"+prefix)
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# mdprose configuration
# See: https://github.com/yaklabco/mdprose`
}
