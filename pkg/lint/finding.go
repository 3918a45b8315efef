package lint

import (
	"fmt"

	"github.com/yaklabco/mdprose/pkg/config"
)

// TruncateLength is the number of runes of the original line kept as context.
const TruncateLength = 40

// Finding is a single violation reported by a check.
type Finding struct {
	// Line is the 1-based line number of the violation.
	Line int

	// Message is the human-readable description of the violation.
	Message string

	// Context is the original line, truncated to TruncateLength runes.
	// Empty when the check attaches no context.
	Context string

	// Suggestion is an optional hint on how to resolve the violation.
	Suggestion string

	// Severity is the importance of the finding. Empty means the check's
	// resolved severity applies.
	Severity config.Severity
}

// String formats the finding as "line: message[: context]" with the line
// number right-aligned to five columns.
func (f Finding) String() string {
	if f.Context == "" {
		return fmt.Sprintf("%5d: %s", f.Line, f.Message)
	}
	return fmt.Sprintf("%5d: %s: %s", f.Line, f.Message, f.Context)
}

// Truncate shortens line to TruncateLength runes, marking the cut with "...".
func Truncate(line string) string {
	runes := []rune(line)
	if len(runes) <= TruncateLength {
		return line
	}
	return string(runes[:TruncateLength]) + "..."
}

// FindingBuilder helps construct Finding values.
type FindingBuilder struct {
	finding Finding
}

// NewFinding starts building a finding for the given line.
func NewFinding(line int, message string) *FindingBuilder {
	return &FindingBuilder{
		finding: Finding{
			Line:    line,
			Message: message,
		},
	}
}

// WithContext attaches the original line, truncated.
func (b *FindingBuilder) WithContext(original string) *FindingBuilder {
	b.finding.Context = Truncate(original)
	return b
}

// WithSuggestion sets a human-readable suggestion.
func (b *FindingBuilder) WithSuggestion(s string) *FindingBuilder {
	b.finding.Suggestion = s
	return b
}

// WithSeverity sets the severity, overriding the check's resolved severity.
func (b *FindingBuilder) WithSeverity(s config.Severity) *FindingBuilder {
	b.finding.Severity = s
	return b
}

// Build returns the constructed Finding.
func (b *FindingBuilder) Build() Finding {
	return b.finding
}
