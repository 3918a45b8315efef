package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdprose/pkg/lint/checks"
)

func TestEndingColonCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"no code", []string{"short", "", " ", "no bad words here"}, nil},
		{"colon then blank", []string{"One line", "another line:", "\n", "```python "}, nil},
		{"no colon", []string{"One line", "another line", "\n", "```python "}, []string{"Text preceding code block must end in a colon"}},
		{"no blank line", []string{"One line", "another line:", "```python "}, []string{"Line preceding code block must be blank"}},
		{"two blank lines", []string{"text:", "", "", "```python"}, []string{"Two blank lines before code block"}},
		{"first line", []string{"```python", "x", "```"}, []string{"Code block starts before text"}},
		{"second line", []string{"", "```python", "x", "```"}, []string{"Code block starts before text"}},
		{"closing fence ignored", []string{"Run:", "", "```python", "x = 1", "```"}, nil},
		{"link before colon", []string{"See [the docs](https://example.com):", "", "```python", "```"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			report := run(t, checks.NewEndingColonCheck(), tt.lines...)
			assert.Equal(t, tt.want, messages(report))
		})
	}
}
