package checks

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/lint"
)

// LineLengthCheck flags lines that are too long once links are reduced to
// their shown text. Length is counted in characters, not bytes.
type LineLengthCheck struct {
	lint.BaseCheck
	limit int
	warn  int
}

// NewLineLengthCheck creates a line length check.
// Lines longer than limit are errors. When warn is positive, lines longer
// than warn but within limit are reported as warnings.
func NewLineLengthCheck(limit, warn int) *LineLengthCheck {
	if limit <= 0 {
		limit = config.DefaultLineLength
	}
	return &LineLengthCheck{
		BaseCheck: lint.NewBaseCheck(IDLineLength, NameLineLength, "Line Length Test",
			"Lines must not exceed the length limit once links are reduced to their text"),
		limit: limit,
		warn:  warn,
	}
}

// Run measures every line, code blocks included.
func (c *LineLengthCheck) Run(ctx context.Context, doc lint.Document) (*lint.Report, error) {
	report := c.NewReport()

	err := lint.Scan(ctx, doc, func(line lint.Line) error {
		length := utf8.RuneCountInString(line.Plain)
		msg := fmt.Sprintf("Line length: %d", length)

		switch {
		case length > c.limit:
			report.Add(lint.NewFinding(line.Number, msg).
				WithSuggestion(fmt.Sprintf("Shorten the line to at most %d characters", c.limit)).
				Build())
		case c.warn > 0 && length > c.warn:
			report.Add(lint.NewFinding(line.Number, msg).
				WithSeverity(config.SeverityWarning).
				Build())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}
