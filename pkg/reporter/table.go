package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/yaklabco/mdprose/internal/ui/pretty"
	"github.com/yaklabco/mdprose/pkg/runner"
)

// fallbackWidth is the table width when the writer is not a terminal.
const fallbackWidth = 100

// TableReporter prints one row per finding, colored by severity.
type TableReporter struct {
	opts   Options
	styles *pretty.Styles
	table  *pretty.TableFormatter
}

// NewTableReporter creates a table reporter sized to the output terminal.
func NewTableReporter(opts Options) *TableReporter {
	styles := pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer))
	return &TableReporter{
		opts:   opts,
		styles: styles,
		table:  pretty.NewTableFormatter(styles, widthOf(opts.Writer), opts.CheckFormat, opts.displayPath),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	out := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	total := r.write(out, result)
	return total, out.Flush()
}

func (r *TableReporter) write(out io.Writer, result *runner.Result) int {
	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(out, r.styles.Success.Render("No files to check."))
		}
		return 0
	}

	for _, file := range result.Files {
		if file.Error == nil {
			continue
		}
		fmt.Fprintln(out, r.styles.FilePath.Render(r.opts.displayPath(file.Path))+": "+
			r.styles.Error.Render("error: "+file.Error.Error()))
	}

	total := result.Stats.FindingsTotal
	switch {
	case total > 0:
		fmt.Fprint(out, r.table.FormatTable(result))
	case r.opts.ShowSummary:
		fmt.Fprintln(out, r.styles.Success.Render("All files passed!"))
	}
	if r.opts.ShowSummary {
		fmt.Fprintln(out, r.table.FormatTableSummary(result.Stats))
	}
	return total
}

func widthOf(w io.Writer) int {
	file, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return fallbackWidth
	}
	if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
		return width
	}
	return fallbackWidth
}
