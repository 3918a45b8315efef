package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// Plural returns one when n is 1 and many otherwise.
func Plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 findings (8 errors, 4 warnings) in 3 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	var parts []string

	if stats.FindingsTotal == 0 {
		parts = append(parts, s.Success.Render("No findings")+
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, Plural(stats.FilesProcessed, wordFile, wordFiles))))
	} else {
		var severityParts []string
		if n := stats.FindingsBySeverity[config.SeverityError]; n > 0 {
			severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d %s", n, Plural(n, "error", "errors"))))
		}
		if n := stats.FindingsBySeverity[config.SeverityWarning]; n > 0 {
			severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", n, Plural(n, "warning", "warnings"))))
		}
		if n := stats.FindingsBySeverity[config.SeverityInfo]; n > 0 {
			severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", n)))
		}

		main := fmt.Sprintf("%d %s", stats.FindingsTotal, Plural(stats.FindingsTotal, "finding", "findings"))
		if len(severityParts) > 0 {
			main += " (" + strings.Join(severityParts, ", ") + ")"
		}
		parts = append(parts, main+fmt.Sprintf(" in %d %s", stats.FilesWithFindings,
			Plural(stats.FilesWithFindings, wordFile, wordFiles)))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s could not be read",
			stats.FilesErrored, Plural(stats.FilesErrored, wordFile, wordFiles))))
	}

	return strings.Join(parts, ", ") + "\n"
}
