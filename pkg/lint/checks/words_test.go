package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdprose/pkg/lint/checks"
)

func TestBadWordsCheck_Clean(t *testing.T) {
	t.Parallel()

	lines := []string{"short", "", " ", "no bad words here", repeat("no bad words here", 501)}
	for _, line := range lines {
		report := run(t, checks.NewBadWordsCheck(testDict()), line)
		assert.False(t, report.HasFindings(), "line %.20q", line)
	}
}

func TestBadWordsCheck_Position(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []int
	}{
		{"first word", []string{"OK this is short", "that is not"}, []int{1}},
		{"middle word", []string{"this is OK short", "that is not"}, []int{1}},
		{"last word", []string{"this is short OK", "that is not"}, []int{1}},
		{"middle line", []string{"first sentence", "this is short OK", "that is not"}, []int{2}},
		{"last line", []string{"first sentence", "that is not", "this is short OK? or not Okay"}, []int{3}},
		{"two word phrase", []string{"the exact same thing"}, []int{1}},
		{"punctuation splits phrase", []string{"not exact. same thing"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			report := run(t, checks.NewBadWordsCheck(testDict()), tt.lines...)
			assert.Equal(t, tt.want, findingLines(report))
		})
	}
}

func TestBadWordsCheck_Message(t *testing.T) {
	t.Parallel()

	report := run(t, checks.NewBadWordsCheck(testDict()), "this is Very short")
	assert.Equal(t, []string{"Found 'Very' in line"}, messages(report))
	assert.Equal(t, "this is Very short", report.Findings[0].Context)
	assert.Equal(t, "Bad Word Test", report.Title)
}

func TestBadWordsCheck_CapWordsOutsideCode(t *testing.T) {
	t.Parallel()

	report := run(t, checks.NewBadWordsCheck(testDict()),
		"Push it to Github today.",
		"```bash",
		"git clone https://Github.com/org/repo",
		"ok then",
		"```",
		"Javascript again",
	)

	assert.Equal(t, []int{1, 4, 6}, findingLines(report), "bad words count in code, cap words do not")
}

func TestBadWordsCheck_LinkTextOnly(t *testing.T) {
	t.Parallel()

	report := run(t, checks.NewBadWordsCheck(testDict()), "see [the docs](https://example.com/very/ok)")
	assert.False(t, report.HasFindings(), "link targets are not prose")
}
