// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by IsColorEnabled.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ANSI palette indexes.
const (
	colorGray   = "8"
	colorRed    = "9"
	colorGreen  = "10"
	colorYellow = "11"
	colorBlue   = "12"
	colorCyan   = "14"
	colorWhite  = "7"
)

// Styles contains the renderers for report and help output.
type Styles struct {
	// Severity
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Check reports
	FilePath   lipgloss.Style
	CheckTitle lipgloss.Style
	LineNumber lipgloss.Style
	Message    lipgloss.Style
	Context    lipgloss.Style
	Suggestion lipgloss.Style
	Pass       lipgloss.Style
	Failure    lipgloss.Style
	Success    lipgloss.Style

	// Tables
	TableHeader    lipgloss.Style
	TableErrorRow  lipgloss.Style
	TableWarnRow   lipgloss.Style
	TableInfoRow   lipgloss.Style
	TableSeparator lipgloss.Style

	// Command help
	Heading lipgloss.Style
	Command lipgloss.Style
	Flag    lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles. With color disabled every style renders
// its input unchanged.
func NewStyles(colorEnabled bool) *Styles {
	plain := lipgloss.NewStyle()
	fg := func(color string) lipgloss.Style {
		if !colorEnabled {
			return plain
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	bold := func(style lipgloss.Style) lipgloss.Style {
		if !colorEnabled {
			return plain
		}
		return style.Bold(true)
	}

	return &Styles{
		Error:   bold(fg(colorRed)),
		Warning: bold(fg(colorYellow)),
		Info:    bold(fg(colorBlue)),

		FilePath:   bold(plain.Underline(colorEnabled)),
		CheckTitle: bold(plain),
		LineNumber: fg(colorGray),
		Message:    plain,
		Context:    fg(colorWhite),
		Suggestion: fg(colorGreen).Italic(colorEnabled),
		Pass:       fg(colorGreen),
		Failure:    bold(fg(colorRed)),
		Success:    bold(fg(colorGreen)),

		TableHeader:    bold(fg(colorWhite)),
		TableErrorRow:  fg(colorRed),
		TableWarnRow:   fg(colorYellow),
		TableInfoRow:   fg(colorBlue),
		TableSeparator: fg(colorGray),

		Heading: bold(fg(colorYellow)),
		Command: bold(fg(colorCyan)),
		Flag:    fg(colorBlue),

		Dim:  fg(colorGray),
		Bold: bold(plain),
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		f, ok := writer.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
}
