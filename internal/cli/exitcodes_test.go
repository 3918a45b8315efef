package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdprose/internal/configloader"
	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/lint"
	"github.com/yaklabco/mdprose/pkg/runner"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "findings", err: ErrLintIssuesFound, want: ExitLintErrors},
		{name: "usage", err: usageError(errors.New("unknown flag: --nope")), want: ExitInvalidUsage},
		{name: "config sentinel", err: errors.Join(ErrConfig, errors.New("bad")), want: ExitConfigError},
		{
			name: "validation error",
			err:  fmt.Errorf("load: %w", &configloader.ValidationError{Field: "jobs", Message: "bad"}),
			want: ExitConfigError,
		},
		{name: "tokenizer defect", err: fmt.Errorf("check RP001: %w", lint.ErrNoWordGroup), want: ExitInternalError},
		{name: "unreadable files", err: ErrUnreadableFiles, want: ExitIOError},
		{name: "missing path", err: fmt.Errorf("stat docs: %w", fs.ErrNotExist), want: ExitIOError},
		{name: "pipeline error", err: fmt.Errorf("%w: boom", lint.ErrReadFailure), want: ExitIOError},
		{name: "anything else", err: errors.New("surprise"), want: ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	withSeverity := func(sev config.Severity, n int) *runner.Result {
		return &runner.Result{Stats: runner.Stats{
			FindingsTotal:      n,
			FindingsBySeverity: map[config.Severity]int{sev: n},
		}}
	}

	assert.Equal(t, ExitSuccess, ExitCodeFromResult(nil))
	assert.Equal(t, ExitSuccess, ExitCodeFromResult(&runner.Result{}))
	assert.Equal(t, ExitLintErrors, ExitCodeFromResult(withSeverity(config.SeverityError, 2)))
	assert.Equal(t, ExitSuccess, ExitCodeFromResult(withSeverity(config.SeverityWarning, 3)))

	unreadable := withSeverity(config.SeverityWarning, 1)
	unreadable.Stats.FilesErrored = 1
	assert.Equal(t, ExitIOError, ExitCodeFromResult(unreadable))

	both := withSeverity(config.SeverityError, 1)
	both.Stats.FilesErrored = 1
	assert.Equal(t, ExitLintErrors, ExitCodeFromResult(both))
}
