package reporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdprose/internal/ui/pretty"
	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/fsutil"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// maxParentTraversals is how many "../" a displayed path may start with
// before the absolute path is shown instead.
const maxParentTraversals = 2

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowContext appends the source line to each finding.
	ShowContext bool

	// ShowPasses prints "<title>... Passes!" for clean checks (text format).
	ShowPasses bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses minified output where applicable.
	Compact bool

	// CheckFormat controls how check identifiers appear in output.
	CheckFormat config.CheckFormat

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string

	// ToolVersion is reported in machine-readable output.
	ToolVersion string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       pretty.ColorAuto,
		ShowContext: true,
		ShowPasses:  true,
		ShowSummary: true,
		CheckFormat: config.CheckFormatName,
		ToolVersion: "dev",
	}
}

// displayPath converts a document path for output, relative to WorkingDir
// when that stays short.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" || path == fsutil.StdinPath || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || strings.Count(rel, "..") > maxParentTraversals {
		return path
	}
	return filepath.ToSlash(rel)
}
