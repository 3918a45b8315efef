package cli

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdprose/internal/configloader"
	"github.com/yaklabco/mdprose/pkg/lint"
	"github.com/yaklabco/mdprose/pkg/runner"
)

// Exit codes for mdprose.
const (
	// ExitSuccess indicates successful execution with no error findings.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found errors.
	ExitLintErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrLintIssuesFound is returned when error-severity findings are reported.
	ErrLintIssuesFound = errors.New("lint issues found")

	// ErrUnreadableFiles is returned when some documents could not be read.
	ErrUnreadableFiles = errors.New("some files could not be read")

	// ErrInvalidUsage marks command-line mistakes.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrConfig marks configuration problems.
	ErrConfig = errors.New("configuration error")
)

func usageError(err error) error {
	return errors.Join(ErrInvalidUsage, err)
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// ExitCodeFromResult determines the exit code of a completed run.
// Error findings take precedence over unreadable documents; warnings and
// info findings alone exit cleanly.
func ExitCodeFromResult(result *runner.Result) int {
	switch {
	case result.HasFailures():
		return ExitLintErrors
	case result.HasErrors():
		return ExitIOError
	default:
		return ExitSuccess
	}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrLintIssuesFound):
		return ExitLintErrors
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, lint.ErrNoWordGroup):
		return ExitInternalError
	case errors.Is(err, ErrUnreadableFiles),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission),
		lint.IsPipelineError(err):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
