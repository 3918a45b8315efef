package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // FILE, LINE, MESSAGE, CHECK
	minFileWidth     = 20
	minLineWidth     = 4
	minMessageWidth  = 35
	minCheckWidth    = 8
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow represents a single row in the findings table.
type TableRow struct {
	File     string
	Line     int
	Message  string
	Check    string
	Severity config.Severity
}

// TableFormatter formats findings as a styled table.
type TableFormatter struct {
	styles      *Styles
	termWidth   int
	checkFormat config.CheckFormat
	pathFunc    func(string) string
}

// NewTableFormatter creates a new table formatter.
// pathFunc maps document paths for display and may be nil.
func NewTableFormatter(styles *Styles, termWidth int, checkFormat config.CheckFormat, pathFunc func(string) string) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	if pathFunc == nil {
		pathFunc = func(p string) string { return p }
	}
	return &TableFormatter{
		styles:      styles,
		termWidth:   termWidth,
		checkFormat: checkFormat,
		pathFunc:    pathFunc,
	}
}

// FormatTable formats runner results as a styled table.
// It returns "" when there is nothing to show.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	fileGroups := t.collectRows(result)
	if len(fileGroups) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(fileGroups)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	for i, group := range fileGroups {
		if i > 0 {
			builder.WriteString(t.formatSeparator(widths, lightSeparator))
			builder.WriteString("\n")
		}
		for _, row := range group {
			builder.WriteString(t.formatRow(row, widths))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	return builder.String()
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats) string {
	parts := []string{fmt.Sprintf("%d %s checked", stats.FilesProcessed, Plural(stats.FilesProcessed, wordFile, wordFiles))}

	if n := stats.FindingsBySeverity[config.SeverityError]; n > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d %s", n, Plural(n, "error", "errors"))))
	}
	if n := stats.FindingsBySeverity[config.SeverityWarning]; n > 0 {
		parts = append(parts, t.styles.Warning.Render(fmt.Sprintf("%d %s", n, Plural(n, "warning", "warnings"))))
	}
	if n := stats.FindingsBySeverity[config.SeverityInfo]; n > 0 {
		parts = append(parts, t.styles.Info.Render(fmt.Sprintf("%d info", n)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, t.styles.Failure.Render(fmt.Sprintf("%d unreadable", stats.FilesErrored)))
	}

	return " " + strings.Join(parts, " | ")
}

// collectRows groups the findings of each document, in check order.
func (t *TableFormatter) collectRows(result *runner.Result) [][]TableRow {
	var groups [][]TableRow

	for _, file := range result.Files {
		if file.Result == nil || file.Result.DocumentResult == nil {
			continue
		}

		var rows []TableRow
		for _, report := range file.Result.Reports {
			check := config.FormatCheckID(t.checkFormat, report.CheckID, report.CheckName)
			for _, f := range report.Findings {
				rows = append(rows, TableRow{
					File:     t.pathFunc(file.Path),
					Line:     f.Line,
					Message:  f.Message,
					Check:    check,
					Severity: f.Severity,
				})
			}
		}

		if len(rows) > 0 {
			groups = append(groups, rows)
		}
	}

	return groups
}

type columnWidths struct {
	file    int
	line    int
	message int
	check   int
}

// calculateColumnWidths determines column widths from content, shrinking
// the message and then the file column to fit the terminal.
func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file:    minFileWidth,
		line:    minLineWidth,
		message: minMessageWidth,
		check:   minCheckWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			widths.file = max(widths.file, utf8.RuneCountInString(row.File))
			widths.line = max(widths.line, len(strconv.Itoa(row.Line)))
			widths.message = max(widths.message, utf8.RuneCountInString(row.Message))
			widths.check = max(widths.check, utf8.RuneCountInString(row.Check))
		}
	}

	if total := t.calculateTotalWidth(widths); total > t.termWidth {
		widths.message = max(minMessageWidth, widths.message-(total-t.termWidth))

		if total = t.calculateTotalWidth(widths); total > t.termWidth {
			widths.file = max(minFileWidth, widths.file-(total-t.termWidth))
		}
	}

	return widths
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.file + widths.line + widths.message + widths.check + (tablePadding * tableColumnCount)
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %*s  %-*s  %-*s",
		widths.file, "FILE",
		widths.line, "LINE",
		widths.message, "MESSAGE",
		widths.check, "CHECK",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.calculateTotalWidth(widths)))
}

// formatRow formats a single table row with severity-based styling.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	content := fmt.Sprintf(" %-*s  %*d  %-*s  %-*s",
		widths.file, truncateFilePath(row.File, widths.file),
		widths.line, row.Line,
		widths.message, truncateString(row.Message, widths.message),
		widths.check, truncateString(row.Check, widths.check),
	)
	return t.rowStyle(row.Severity).Render(content)
}

func (t *TableFormatter) rowStyle(severity config.Severity) lipgloss.Style {
	switch severity {
	case config.SeverityError:
		return t.styles.TableErrorRow
	case config.SeverityWarning:
		return t.styles.TableWarnRow
	case config.SeverityInfo:
		return t.styles.TableInfoRow
	default:
		return lipgloss.NewStyle()
	}
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	runes := []rune(str)
	if len(runes) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// truncateFilePath truncates a path, keeping the end (file name) rather than the beginning.
func truncateFilePath(path string, maxLen int) string {
	runes := []rune(path)
	if len(runes) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return string(runes[len(runes)-maxLen:])
	}
	return "..." + string(runes[len(runes)-maxLen+3:])
}
