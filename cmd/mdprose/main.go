// Command mdprose lints the prose of Markdown documents.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/mdprose/internal/cli"
	"github.com/yaklabco/mdprose/internal/logging"
)

// Set with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // ldflags targets
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCommand(cli.BuildInfo{Version: version, Commit: commit, Date: date})

	err := root.Execute()
	if err == nil {
		return cli.ExitSuccess
	}

	// Findings and unreadable files were already reported.
	reported := errors.Is(err, cli.ErrLintIssuesFound) || errors.Is(err, cli.ErrUnreadableFiles)
	if !reported {
		logging.Default().Error("command failed", logging.FieldError, err)
	}
	return cli.ExitCode(err)
}
