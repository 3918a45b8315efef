package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/lint"
	"github.com/yaklabco/mdprose/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single document's results.
type JSONFileResult struct {
	Path    string       `json:"path"`
	Lines   int          `json:"lines"`
	Reports []JSONReport `json:"reports"`
	Error   string       `json:"error,omitempty"`
}

// JSONReport holds one check's findings for a document.
type JSONReport struct {
	CheckID   string        `json:"checkId"`
	CheckName string        `json:"checkName"`
	Title     string        `json:"title"`
	Passed    bool          `json:"passed"`
	Findings  []JSONFinding `json:"findings"`
}

// JSONFinding represents a single finding.
type JSONFinding struct {
	Line       int    `json:"line"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Context    string `json:"context,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked      int            `json:"filesChecked"`
	FilesWithFindings int            `json:"filesWithFindings"`
	FilesErrored      int            `json:"filesErrored"`
	LinesScanned      int            `json:"linesScanned"`
	TotalFindings     int            `json:"totalFindings"`
	BySeverity        map[string]int `json:"bySeverity"`
	ByCheck           map[string]int `json:"byCheck"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalFindings, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: r.opts.ToolVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
			ByCheck:    make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	output.Files = make([]JSONFileResult, 0, len(result.Files))
	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:    r.opts.displayPath(file.Path),
			Reports: make([]JSONReport, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		if file.Result != nil && file.Result.DocumentResult != nil {
			fileResult.Lines = file.Result.Lines
			for _, report := range file.Result.Reports {
				fileResult.Reports = append(fileResult.Reports, toJSONReport(report))
			}
		}

		output.Files = append(output.Files, fileResult)
	}

	stats := result.Stats
	output.Summary.FilesChecked = stats.FilesProcessed
	output.Summary.FilesWithFindings = stats.FilesWithFindings
	output.Summary.FilesErrored = stats.FilesErrored
	output.Summary.LinesScanned = stats.LinesScanned
	output.Summary.TotalFindings = stats.FindingsTotal
	for sev, n := range stats.FindingsBySeverity {
		output.Summary.BySeverity[string(sev)] = n
	}
	for id, n := range stats.FindingsByCheck {
		output.Summary.ByCheck[id] = n
	}

	return output
}

func toJSONReport(report *lint.Report) JSONReport {
	jr := JSONReport{
		CheckID:   report.CheckID,
		CheckName: report.CheckName,
		Title:     report.Title,
		Passed:    !report.HasFindings(),
		Findings:  make([]JSONFinding, 0, report.Count()),
	}
	for _, f := range report.Findings {
		severity := f.Severity
		if severity == "" {
			severity = config.SeverityError
		}
		jr.Findings = append(jr.Findings, JSONFinding{
			Line:       f.Line,
			Severity:   string(severity),
			Message:    f.Message,
			Context:    f.Context,
			Suggestion: f.Suggestion,
		})
	}
	return jr
}
