package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/mdprose/pkg/dict"
	"github.com/yaklabco/mdprose/pkg/langdetect"
	"github.com/yaklabco/mdprose/pkg/lint"
)

// CodeFormatterCheck validates the tag on every opening fence.
type CodeFormatterCheck struct {
	lint.BaseCheck
	fence   lint.FenceState
	dict    *dict.Set
	suggest bool
}

// NewCodeFormatterCheck creates a code formatter check.
// With suggest set, an untagged fence is reported with the tag detected from
// the block body.
func NewCodeFormatterCheck(d *dict.Set, suggest bool) *CodeFormatterCheck {
	return &CodeFormatterCheck{
		BaseCheck: lint.NewBaseCheck(IDCodeFormatter, NameCodeFormatter, "Code Formatter Test",
			"Code blocks need a known formatter tag and a quoted linenums value"),
		dict:    d,
		suggest: suggest,
	}
}

// Run checks fences with the state read after the toggle, so only opening
// fences are examined.
func (c *CodeFormatterCheck) Run(ctx context.Context, doc lint.Document) (*lint.Report, error) {
	report := c.NewReport()

	err := lint.Scan(ctx, doc, func(line lint.Line) error {
		if !c.fence.Observe(line.Plain) || !c.fence.Inside() {
			return nil
		}

		trimmed := line.Trimmed()
		if trimmed == lint.FenceDelimiter {
			fb := lint.NewFinding(line.Number, "Code block has no formatter").WithContext(line.Raw)
			if c.suggest {
				if tag := langdetect.Suggest(blockBody(doc, line.Number), c.dict.IsFormatter); tag != "" {
					fb.WithSuggestion(fmt.Sprintf("Add a formatter, e.g. %s%s", lint.FenceDelimiter, tag))
				}
			}
			report.Add(fb.Build())
			return nil
		}

		tag := strings.Fields(strings.TrimPrefix(trimmed, lint.FenceDelimiter))[0]
		if !c.dict.IsFormatter(tag) {
			report.Add(lint.NewFinding(line.Number, fmt.Sprintf("Code block has bad formatter '%s'", tag)).
				WithContext(line.Raw).
				Build())
		}

		lower := strings.ToLower(trimmed)
		if strings.Contains(lower, "linenums=") && !strings.Contains(lower, `linenums="`) {
			report.Add(lint.NewFinding(line.Number, "Poorly formed linenums spec").
				WithContext(line.Raw).
				WithSuggestion(`Quote the value, e.g. linenums="1"`).
				Build())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// blockBody returns the lines after the fence at open, up to the closing fence.
func blockBody(doc lint.Document, open int) []byte {
	var sb strings.Builder
	for n := open + 1; n <= doc.Len(); n++ {
		line := doc.Line(n)
		if lint.IsFence(line) {
			break
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
