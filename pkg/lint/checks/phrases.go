package checks

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/mdprose/pkg/dict"
	"github.com/yaklabco/mdprose/pkg/lint"
)

const (
	foundFormat       = "Found '%s' in line"
	contractionFormat = "Found '%s' in line, use a contraction"
)

// PhraseCheck flags phrases appearing as substrings of a line.
// Each phrase is also searched in its capitalized form, to catch it at the
// start of a sentence. An occurrence only counts when it is at the start of
// the line or not preceded by an ASCII letter, so "edit is" does not match
// "it is".
type PhraseCheck struct {
	lint.BaseCheck
	phrases []string
	format  string
}

// NewBadPhrasesCheck creates the bad phrase check.
func NewBadPhrasesCheck(d *dict.Set) *PhraseCheck {
	return &PhraseCheck{
		BaseCheck: lint.NewBaseCheck(IDBadPhrases, NameBadPhrases, "Bad Phrase Test",
			"Phrases that add words without adding meaning"),
		phrases: withCapitalized(d.BadPhrases()),
		format:  foundFormat,
	}
}

// NewContractionsCheck creates the contraction check.
func NewContractionsCheck(d *dict.Set) *PhraseCheck {
	return &PhraseCheck{
		BaseCheck: lint.NewBaseCheck(IDContractions, NameContractions, "Contraction Test",
			"Phrases that read more naturally as a contraction"),
		phrases: withCapitalized(d.Contractions()),
		format:  contractionFormat,
	}
}

// Run searches every line for every phrase, reporting each phrase at most
// once per line.
func (c *PhraseCheck) Run(ctx context.Context, doc lint.Document) (*lint.Report, error) {
	report := c.NewReport()

	err := lint.Scan(ctx, doc, func(line lint.Line) error {
		for _, phrase := range c.phrases {
			if containsPhrase(line.Plain, phrase) {
				report.Add(lint.NewFinding(line.Number, fmt.Sprintf(c.format, phrase)).
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

// containsPhrase reports whether phrase occurs in line at a word start.
func containsPhrase(line, phrase string) bool {
	if phrase == "" {
		return false
	}

	offset := 0
	for {
		idx := strings.Index(line[offset:], phrase)
		if idx < 0 {
			return false
		}
		idx += offset
		if idx == 0 || !isASCIILetter(line[idx-1]) {
			return true
		}
		offset = idx + 1
	}
}

func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// withCapitalized returns phrases followed by their capitalized forms,
// without duplicates.
func withCapitalized(phrases []string) []string {
	result := slices.Clone(phrases)
	for _, p := range phrases {
		if capped := capitalize(p); !slices.Contains(result, capped) {
			result = append(result, capped)
		}
	}
	return result
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
