package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/mdprose/internal/ui/pretty"
	"github.com/yaklabco/mdprose/pkg/analysis"
	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/runner"
)

// Table layout for summary output. Both tables share one width.
const (
	summaryWidth      = 80
	checkColWidth     = 34
	fileColWidth      = 50
	numColWidth       = 7
	warnColWidth      = 8
	maxCheckNameWidth = 32
	maxFilePathWidth  = 48
)

// padRight pads s to width. Pad before styling; ANSI codes have no width.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// SummaryReporter prints findings aggregated per check and per document
// instead of listing them one by one.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	analysisOpts := analysis.DefaultOptions()
	analysisOpts.SortBy = analysis.SortBySeverity
	analysisOpts.DisplayPath = r.opts.displayPath
	report := analysis.Analyze(result, analysisOpts)

	if report.Totals.Files == 0 {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		return 0, nil
	}

	if !report.Totals.HasFindings() {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No findings")+
			r.styles.Dim.Render(fmt.Sprintf(" (%d %s checked)", report.Totals.Files, pretty.Plural(report.Totals.Files, "file", "files"))))
		return 0, nil
	}

	r.renderCheckTable(report.ByCheck)
	fmt.Fprintln(r.bw)
	r.renderFileTable(report.ByFile)
	fmt.Fprintln(r.bw)
	r.renderTotals(report.Totals)

	return report.Totals.Findings, nil
}

func (r *SummaryReporter) renderCheckTable(checks []analysis.CheckAnalysis) {
	fmt.Fprintln(r.bw, r.styles.Bold.Render("Checks"))
	r.separator()
	fmt.Fprintf(r.bw, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("Check", checkColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
	)
	r.separator()

	for _, check := range checks {
		name := config.FormatCheckID(r.opts.CheckFormat, check.CheckID, check.CheckName)
		if utf8.RuneCountInString(name) > maxCheckNameWidth {
			name = string([]rune(name)[:maxCheckNameWidth]) + "…"
		}

		fmt.Fprintf(r.bw, "%s %s %s %s\n",
			r.styleRow(padRight(name, checkColWidth), check.Errors, check.Warnings),
			padLeft(strconv.Itoa(check.Findings), numColWidth),
			padLeft(strconv.Itoa(check.Errors), numColWidth),
			padLeft(strconv.Itoa(check.Warnings), warnColWidth),
		)
	}
}

func (r *SummaryReporter) renderFileTable(files []analysis.FileAnalysis) {
	fmt.Fprintln(r.bw, r.styles.Bold.Render("Files"))
	r.separator()
	fmt.Fprintf(r.bw, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Errors", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Warnings", warnColWidth)),
	)
	r.separator()

	for _, file := range files {
		path := file.Path
		if runes := []rune(path); len(runes) > maxFilePathWidth {
			path = "…" + string(runes[len(runes)-(maxFilePathWidth-1):])
		}

		fmt.Fprintf(r.bw, "%s %s %s %s\n",
			r.styleRow(padRight(path, fileColWidth), file.Errors, file.Warnings),
			padLeft(strconv.Itoa(file.Findings), numColWidth),
			padLeft(strconv.Itoa(file.Errors), numColWidth),
			padLeft(strconv.Itoa(file.Warnings), warnColWidth),
		)
	}
}

func (r *SummaryReporter) renderTotals(totals analysis.Totals) {
	line := fmt.Sprintf("%d %s", totals.Findings, pretty.Plural(totals.Findings, "finding", "findings"))

	var severityParts []string
	if totals.Errors > 0 {
		severityParts = append(severityParts,
			r.styles.Error.Render(fmt.Sprintf("%d %s", totals.Errors, pretty.Plural(totals.Errors, "error", "errors"))))
	}
	if totals.Warnings > 0 {
		severityParts = append(severityParts,
			r.styles.Warning.Render(fmt.Sprintf("%d %s", totals.Warnings, pretty.Plural(totals.Warnings, "warning", "warnings"))))
	}
	if len(severityParts) > 0 {
		line += " (" + strings.Join(severityParts, ", ") + ")"
	}
	line += fmt.Sprintf(" in %d %s", totals.FilesWithFindings, pretty.Plural(totals.FilesWithFindings, "file", "files"))
	if totals.FilesErrored > 0 {
		line += fmt.Sprintf(", %d unreadable", totals.FilesErrored)
	}

	fmt.Fprintln(r.bw, r.styles.Bold.Render("Total: ")+line)
}

func (r *SummaryReporter) separator() {
	fmt.Fprintln(r.bw, r.styles.TableSeparator.Render(strings.Repeat("─", summaryWidth)))
}

func (r *SummaryReporter) styleRow(cell string, errors, warnings int) string {
	switch {
	case errors > 0:
		return r.styles.TableErrorRow.Render(cell)
	case warnings > 0:
		return r.styles.TableWarnRow.Render(cell)
	default:
		return cell
	}
}
