// Package reporter renders lint results as text, tables, JSON, SARIF or
// per-check summaries.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdprose/pkg/runner"
)

// Reporter writes a finished lint run. Report returns the number of
// findings it wrote.
type Reporter interface {
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New returns the Reporter for opts.Format, defaulting to text on stdout.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	switch opts.Format {
	case FormatText, "":
		return NewTextReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatSARIF:
		return NewSARIFReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	}
	return nil, fmt.Errorf("unsupported format: %s", opts.Format)
}
