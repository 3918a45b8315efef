package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/lint"
)

// ReportOptions controls how check reports are rendered.
type ReportOptions struct {
	// ShowContext appends the truncated source line to each finding.
	ShowContext bool

	// ShowPasses prints a line for checks without findings.
	ShowPasses bool
}

// FormatCheckReport renders one check's report:
//
//	Bad Word Test Errors:
//	    3: Found 'very' in line: It is very simple
//
// A clean report renders as "Bad Word Test... Passes!" when ShowPasses is
// set and as nothing otherwise.
func (s *Styles) FormatCheckReport(report *lint.Report, opts ReportOptions) string {
	if report == nil {
		return ""
	}

	if !report.HasFindings() {
		if !opts.ShowPasses {
			return ""
		}
		return s.CheckTitle.Render(report.Title) + s.Pass.Render("... Passes!") + "\n"
	}

	var builder strings.Builder
	builder.WriteString(s.CheckTitle.Render(report.Title) + s.Failure.Render(" Errors:") + "\n")
	for i := range report.Findings {
		builder.WriteString(s.FormatFinding(&report.Findings[i], opts.ShowContext))
	}
	return builder.String()
}

// FormatFinding renders a single finding as "%5d: message[: context]",
// followed by its suggestion on an indented line.
func (s *Styles) FormatFinding(f *lint.Finding, showContext bool) string {
	var builder strings.Builder

	builder.WriteString(s.LineNumber.Render(fmt.Sprintf("%5d", f.Line)) + ": ")
	if f.Severity != "" && f.Severity != config.SeverityError {
		builder.WriteString(s.FormatSeverity(f.Severity) + ": ")
	}
	builder.WriteString(s.Message.Render(f.Message))
	if showContext && f.Context != "" {
		builder.WriteString(": " + s.Context.Render(f.Context))
	}
	builder.WriteString("\n")

	if f.Suggestion != "" {
		builder.WriteString("       " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(f.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatFileHeader formats a document header for grouped output.
func (s *Styles) FormatFileHeader(path string, findingCount int) string {
	header := s.FilePath.Render(path)
	switch findingCount {
	case 0:
	case 1:
		header += s.Dim.Render(" (1 finding)")
	default:
		header += s.Dim.Render(fmt.Sprintf(" (%d findings)", findingCount))
	}
	return header
}
