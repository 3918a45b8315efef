package checks

import (
	"context"
	"fmt"
	"regexp"

	"github.com/yaklabco/mdprose/pkg/lint"
)

//nolint:gochecknoglobals // Compiled once and shared read-only
var genericAnchorPattern = regexp.MustCompile(`\[(?:here|this (?:article|tutorial|link))\]\([^)]+\)`)

// BadLinkAnchorCheck flags links whose text is a generic term.
// It matches the raw line, since stripping links would remove what it looks for.
type BadLinkAnchorCheck struct {
	lint.BaseCheck
	fence lint.FenceState
}

// NewBadLinkAnchorCheck creates a bad link anchor check.
func NewBadLinkAnchorCheck() *BadLinkAnchorCheck {
	return &BadLinkAnchorCheck{
		BaseCheck: lint.NewBaseCheck(IDBadLinkAnchor, NameBadLinkAnchor, "Bad Link Anchor Test",
			`Link text should describe the target rather than say "here" or "this link"`),
	}
}

// Run skips code blocks, reading the fence state after the toggle.
func (c *BadLinkAnchorCheck) Run(ctx context.Context, doc lint.Document) (*lint.Report, error) {
	report := c.NewReport()

	err := lint.Scan(ctx, doc, func(line lint.Line) error {
		c.fence.Observe(line.Plain)
		if c.fence.Inside() {
			return nil
		}

		if match := genericAnchorPattern.FindString(line.Raw); match != "" {
			report.Add(lint.NewFinding(line.Number, fmt.Sprintf("Links anchored to generic term '%s'", match)).
				WithContext(line.Raw).
				Build())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}
