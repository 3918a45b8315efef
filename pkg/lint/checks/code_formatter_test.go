package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdprose/pkg/lint/checks"
)

func TestCodeFormatterCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"no code", []string{"short", "", " ", "no bad words here", repeat("no bad words here", 501)}, nil},
		{"known formatter", []string{"```python "}, nil},
		{"bare fence", []string{"```", "```python "}, []string{"Code block has no formatter"}},
		{"unknown formatter", []string{"```rubyish", "puts 1", "```"}, []string{"Code block has bad formatter 'rubyish'"}},
		{"closing fence ignored", []string{"```python", "x = 1", "```nonsense"}, nil},
		{"indented fence", []string{"  ```python", "x = 1", "  ```"}, nil},
		{"quoted linenums", []string{"```python linenums=\"1\""}, nil},
		{"unquoted linenums", []string{"```python linenums=1"}, []string{"Poorly formed linenums spec"}},
		{
			"bad formatter and linenums",
			[]string{"```pyhton linenums=1"},
			[]string{"Code block has bad formatter 'pyhton'", "Poorly formed linenums spec"},
		},
		{
			"every opening fence",
			[]string{"```", "a", "```", "text", "```", "b", "```"},
			[]string{"Code block has no formatter", "Code block has no formatter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			report := run(t, checks.NewCodeFormatterCheck(testDict(), false), tt.lines...)
			assert.Equal(t, tt.want, messages(report))
		})
	}
}

func TestCodeFormatterCheck_Suggestion(t *testing.T) {
	t.Parallel()

	lines := []string{"Try it:", "", "```", ">>> print('hi')", "hi", "```"}

	report := run(t, checks.NewCodeFormatterCheck(testDict(), true), lines...)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, 3, report.Findings[0].Line)
	assert.Equal(t, "Add a formatter, e.g. ```pycon", report.Findings[0].Suggestion)

	report = run(t, checks.NewCodeFormatterCheck(testDict(), false), lines...)
	require.Len(t, report.Findings, 1)
	assert.Empty(t, report.Findings[0].Suggestion)
}

func TestCodeFormatterCheck_NoSuggestionForUnknownTag(t *testing.T) {
	t.Parallel()

	report := run(t, checks.NewCodeFormatterCheck(testDict(), true), "```", "SELECT * FROM users;", "```")
	require.Len(t, report.Findings, 1)
	assert.Empty(t, report.Findings[0].Suggestion, "sql is not an accepted formatter")
}
