package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/mdprose/internal/ui/pretty"
	"github.com/yaklabco/mdprose/pkg/runner"
)

// TextReporter prints a header per document followed by one block per
// check: the findings under "<title> Errors:", or "<title>... Passes!".
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextReporter creates a text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	out := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(out, r.styles.Success.Render("No files to check."))
		}
		return 0, out.Flush()
	}

	total := 0
	for i, file := range result.Files {
		if i > 0 {
			fmt.Fprintln(out)
		}
		total += r.writeFile(out, file)
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(out)
		fmt.Fprint(out, r.styles.FormatSummaryOneLine(result.Stats))
	}
	return total, out.Flush()
}

func (r *TextReporter) writeFile(out io.Writer, file runner.FileOutcome) int {
	path := r.opts.displayPath(file.Path)

	if file.Error != nil {
		fmt.Fprintln(out, r.styles.FilePath.Render(path)+": "+
			r.styles.Error.Render("error: "+file.Error.Error()))
		return 0
	}
	if file.Result == nil || file.Result.DocumentResult == nil {
		return 0
	}

	count := file.Result.FindingCount()
	fmt.Fprintln(out, r.styles.FormatFileHeader(path, count))

	blockOpts := pretty.ReportOptions{ShowContext: r.opts.ShowContext, ShowPasses: r.opts.ShowPasses}
	for _, report := range file.Result.Reports {
		fmt.Fprint(out, r.styles.FormatCheckReport(report, blockOpts))
	}
	return count
}
