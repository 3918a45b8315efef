package checks

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdprose/pkg/dict"
	"github.com/yaklabco/mdprose/pkg/lint"
)

// BadWordsCheck flags banned words and two-word phrases found by the tokenizer.
// Miscapitalized names are only flagged outside code blocks, where code often
// spells them differently on purpose.
type BadWordsCheck struct {
	lint.BaseCheck
	fence lint.FenceState
	dict  *dict.Set
}

// NewBadWordsCheck creates a new bad words check.
func NewBadWordsCheck(d *dict.Set) *BadWordsCheck {
	return &BadWordsCheck{
		BaseCheck: lint.NewBaseCheck(IDBadWords, NameBadWords, "Bad Word Test",
			"Words and two-word phrases that weaken technical prose"),
		dict: d,
	}
}

// Run scans every line, including code blocks, for banned words.
func (c *BadWordsCheck) Run(ctx context.Context, doc lint.Document) (*lint.Report, error) {
	report := c.NewReport()

	err := lint.Scan(ctx, doc, func(line lint.Line) error {
		c.fence.Observe(line.Plain)

		for word, err := range lint.Words(line.Trimmed()) {
			if err != nil {
				return err
			}
			if c.dict.IsBadWord(word) || (c.dict.IsCapWord(word) && !c.fence.Inside()) {
				report.Add(lint.NewFinding(line.Number, fmt.Sprintf(foundFormat, word)).
					WithContext(line.Raw).
					Build())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}
