package checks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdprose/pkg/dict"
	"github.com/yaklabco/mdprose/pkg/lint"
)

func testDict() *dict.Set {
	return dict.NewSet(dict.Lists{
		BadWords:     []string{"ok", "very", "exact same"},
		CapWords:     []string{"Github", "Javascript"},
		BadPhrases:   []string{"exact same", "in order to"},
		Contractions: []string{"it is", "that is", "is not"},
		Formatters:   []string{"python", "pycon", "console", "bash", "go"},
	})
}

// run runs check over lines and returns the reported line numbers.
func run(t *testing.T, check lint.Check, lines ...string) *lint.Report {
	t.Helper()

	report, err := check.Run(context.Background(), lint.NewDocument(lines))
	require.NoError(t, err)
	require.NotNil(t, report)
	return report
}

func findingLines(report *lint.Report) []int {
	var lines []int
	for _, f := range report.Findings {
		lines = append(lines, f.Line)
	}
	return lines
}

func messages(report *lint.Report) []string {
	var msgs []string
	for _, f := range report.Findings {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for range n {
		out = append(out, s...)
	}
	return string(out)
}
