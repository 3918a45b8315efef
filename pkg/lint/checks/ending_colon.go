package checks

import (
	"context"
	"strings"

	"github.com/yaklabco/mdprose/pkg/lint"
)

// EndingColonCheck requires an opening fence to follow exactly one blank
// line, preceded by text ending in a colon.
type EndingColonCheck struct {
	lint.BaseCheck
	fence lint.FenceState
}

// NewEndingColonCheck creates an ending colon check.
func NewEndingColonCheck() *EndingColonCheck {
	return &EndingColonCheck{
		BaseCheck: lint.NewBaseCheck(IDEndingColon, NameEndingColon, "Ending Colon Test",
			"Code blocks follow one blank line after text ending in a colon"),
	}
}

// Run inspects the two lines before every opening fence.
func (c *EndingColonCheck) Run(ctx context.Context, doc lint.Document) (*lint.Report, error) {
	report := c.NewReport()

	err := lint.Scan(ctx, doc, func(line lint.Line) error {
		if !c.fence.Observe(line.Plain) || !c.fence.Inside() {
			return nil
		}

		if msg := precedingProblem(doc, line.Number); msg != "" {
			report.Add(lint.NewFinding(line.Number, msg).WithContext(line.Raw).Build())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

func precedingProblem(doc lint.Document, n int) string {
	if n < 3 {
		return "Code block starts before text"
	}

	previous := strings.TrimSpace(doc.Line(n - 1))
	text := strings.TrimSpace(doc.Line(n - 2))

	switch {
	case previous != "":
		return "Line preceding code block must be blank"
	case text == "":
		return "Two blank lines before code block"
	case !strings.HasSuffix(text, ":"):
		return "Text preceding code block must end in a colon"
	default:
		return ""
	}
}
