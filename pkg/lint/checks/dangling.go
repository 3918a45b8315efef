package checks

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/mdprose/pkg/lint"
)

// AlertCloser ends an alert block.
const AlertCloser = "endalert %}"

//nolint:gochecknoglobals // Compiled once and shared read-only
var blockEndPattern = regexp.MustCompile("^.*?(" + regexp.QuoteMeta(AlertCloser) + "|" + lint.FenceDelimiter + `)\s*`)

// DanglingSectionCheck flags a section that ends on a code block or alert:
// the closing line is followed, blank lines aside, by a heading.
type DanglingSectionCheck struct {
	lint.BaseCheck
	fence  lint.FenceState
	filler []*regexp.Regexp
}

// NewDanglingSectionCheck creates a dangling section check.
// Lines matching any filler pattern are skipped like blank lines when
// looking for the next heading.
func NewDanglingSectionCheck(filler []string) (*DanglingSectionCheck, error) {
	compiled, err := compileFiller(filler)
	if err != nil {
		return nil, err
	}
	return &DanglingSectionCheck{
		BaseCheck: lint.NewBaseCheck(IDDanglingSection, NameDanglingSection, "Dangling Code Block or Alert Test",
			"Sections should close with prose, not a code block or alert"),
		filler: compiled,
	}, nil
}

func compileFiller(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("filler pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// Run reads the fence state after the toggle, so a closing fence qualifies
// and an opening fence does not.
func (c *DanglingSectionCheck) Run(ctx context.Context, doc lint.Document) (*lint.Report, error) {
	report := c.NewReport()

	err := lint.Scan(ctx, doc, func(line lint.Line) error {
		c.fence.Observe(line.Plain)

		match := blockEndPattern.FindStringSubmatch(line.Plain)
		if match == nil || c.fence.Inside() {
			return nil
		}
		if !c.headingFollows(doc, line.Number) {
			return nil
		}

		msg := "Section should not end with a code block"
		if match[1] == AlertCloser {
			msg = "Section should not end with an alert block"
		}
		report.Add(lint.NewFinding(line.Number, msg).WithContext(line.Raw).Build())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// headingFollows reports whether the first significant line after n is a heading.
func (c *DanglingSectionCheck) headingFollows(doc lint.Document, n int) bool {
	for next := n + 1; next <= doc.Len(); next++ {
		text := strings.TrimSpace(doc.Line(next))
		if text == "" || c.isFiller(text) {
			continue
		}
		return strings.HasPrefix(text, "#")
	}
	return false
}

func (c *DanglingSectionCheck) isFiller(text string) bool {
	for _, re := range c.filler {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
