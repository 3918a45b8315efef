package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/lint"
	"github.com/yaklabco/mdprose/pkg/runner"
)

func report(id, name string, severities ...config.Severity) *lint.Report {
	r := &lint.Report{CheckID: id, CheckName: name, Title: name + " test"}
	for i, sev := range severities {
		r.Add(lint.NewFinding(i+1, "finding").WithSeverity(sev).Build())
	}
	return r
}

func outcome(path string, reports ...*lint.Report) runner.FileOutcome {
	return runner.FileOutcome{
		Path: path,
		Result: &lint.PipelineResult{
			DocumentResult: &lint.DocumentResult{Path: path, Reports: reports},
		},
	}
}

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			outcome("guide.md",
				report("RP001", "bad-words", config.SeverityError, config.SeverityError),
				report("RP002", "line-length", config.SeverityWarning),
				report("RP003", "bad-phrases"),
			),
			outcome("notes.md",
				report("RP001", "bad-words"),
				report("RP002", "line-length", config.SeverityWarning),
				report("RP003", "bad-phrases"),
			),
			outcome("clean.md",
				report("RP001", "bad-words"),
				report("RP002", "line-length"),
				report("RP003", "bad-phrases"),
			),
			{Path: "missing.md", Error: errors.New("not found")},
		},
	}
}

func TestAnalyze_EmptyResult(t *testing.T) {
	t.Parallel()

	for _, result := range []*runner.Result{nil, {}} {
		got := Analyze(result, DefaultOptions())

		require.NotNil(t, got)
		assert.False(t, got.Totals.HasFindings())
		assert.Empty(t, got.ByFile)
		assert.Empty(t, got.ByCheck)
	}
}

func TestAnalyze_CountsTotals(t *testing.T) {
	t.Parallel()

	got := Analyze(sampleResult(), DefaultOptions())

	assert.Equal(t, Totals{
		Files:             4,
		FilesWithFindings: 2,
		FilesErrored:      1,
		Findings:          4,
		Errors:            2,
		Warnings:          2,
	}, got.Totals)
}

func TestAnalyze_GroupsByCheck(t *testing.T) {
	t.Parallel()

	got := Analyze(sampleResult(), DefaultOptions())

	require.Len(t, got.ByCheck, 2, "checks without findings are omitted")

	// Equal counts keep run order.
	assert.Equal(t, "RP001", got.ByCheck[0].CheckID)
	assert.Equal(t, "bad-words", got.ByCheck[0].CheckName)
	assert.Equal(t, 2, got.ByCheck[0].Errors)
	assert.Equal(t, []string{"guide.md"}, got.ByCheck[0].Files)

	assert.Equal(t, "RP002", got.ByCheck[1].CheckID)
	assert.Equal(t, 2, got.ByCheck[1].Warnings)
	assert.Equal(t, []string{"guide.md", "notes.md"}, got.ByCheck[1].Files)
}

func TestAnalyze_GroupsByFile(t *testing.T) {
	t.Parallel()

	got := Analyze(sampleResult(), DefaultOptions())

	require.Len(t, got.ByFile, 2, "clean documents are omitted")
	assert.Equal(t, FileAnalysis{
		Path:     "guide.md",
		Findings: 3,
		Errors:   2,
		Warnings: 1,
		Checks:   []string{"RP001", "RP002"},
	}, got.ByFile[0])
	assert.Equal(t, "notes.md", got.ByFile[1].Path)
	assert.Equal(t, 1, got.ByFile[1].Findings)
}

func TestAnalyze_Sorting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sortBy     SortField
		desc       bool
		wantChecks []string
		wantFiles  []string
	}{
		{
			name:       "count ascending",
			sortBy:     SortByCount,
			wantChecks: []string{"RP001", "RP002"},
			wantFiles:  []string{"notes.md", "guide.md"},
		},
		{
			name:       "alpha",
			sortBy:     SortByAlpha,
			desc:       true,
			wantChecks: []string{"RP001", "RP002"},
			wantFiles:  []string{"guide.md", "notes.md"},
		},
		{
			name:       "severity puts errors first",
			sortBy:     SortBySeverity,
			wantChecks: []string{"RP001", "RP002"},
			wantFiles:  []string{"guide.md", "notes.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := DefaultOptions()
			opts.SortBy = tt.sortBy
			opts.SortDesc = tt.desc
			got := Analyze(sampleResult(), opts)

			var checks, files []string
			for _, c := range got.ByCheck {
				checks = append(checks, c.CheckID)
			}
			for _, f := range got.ByFile {
				files = append(files, f.Path)
			}
			assert.Equal(t, tt.wantChecks, checks)
			assert.Equal(t, tt.wantFiles, files)
		})
	}
}

func TestAnalyze_ExcludeViews(t *testing.T) {
	t.Parallel()

	got := Analyze(sampleResult(), Options{SortBy: SortByCount})

	assert.Equal(t, 4, got.Totals.Findings)
	assert.Nil(t, got.ByCheck)
	assert.Nil(t, got.ByFile)
}

func TestAnalyze_DisplayPath(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.DisplayPath = func(p string) string { return "docs/" + p }

	got := Analyze(sampleResult(), opts)

	require.NotEmpty(t, got.ByFile)
	assert.Equal(t, "docs/guide.md", got.ByFile[0].Path)
	assert.Equal(t, []string{"docs/guide.md"}, got.ByCheck[0].Files)
}

func TestAnalyze_MissingSeverityCountsAsError(t *testing.T) {
	t.Parallel()

	r := &lint.Report{CheckID: "RP008", CheckName: "bad-link-anchor"}
	r.Add(lint.Finding{Line: 1, Message: "Links anchored to generic term '[here](x)'"})

	got := Analyze(&runner.Result{Files: []runner.FileOutcome{outcome("a.md", r)}}, DefaultOptions())

	assert.Equal(t, 1, got.Totals.Errors)
	assert.True(t, got.Totals.HasErrors())
}
