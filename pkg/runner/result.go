package runner

import (
	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/lint"
)

// FileOutcome is the result of linting one document.
type FileOutcome struct {
	// Path is the document that was processed ("-" for standard input).
	Path string

	// Result holds the check reports.
	// Nil if the document could not be read.
	Result *lint.PipelineResult

	// Error is set if the document could not be read.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of documents found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of documents linted.
	FilesProcessed int

	// FilesErrored is the number of documents that could not be read.
	FilesErrored int

	// FilesWithFindings is the number of documents with at least one finding.
	FilesWithFindings int

	// LinesScanned is the total number of lines read.
	LinesScanned int

	// FindingsTotal is the total number of findings across all documents.
	FindingsTotal int

	// FindingsBySeverity maps severity levels to counts.
	FindingsBySeverity map[config.Severity]int

	// FindingsByCheck maps check IDs to counts.
	FindingsByCheck map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each document, in discovery order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any finding has error severity.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsBySeverity[config.SeverityError] > 0
}

// HasFindings reports whether any findings were made.
func (r *Result) HasFindings() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsTotal > 0
}

// HasErrors reports whether any document could not be read.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		FindingsBySeverity: make(map[config.Severity]int),
		FindingsByCheck:    make(map[string]int),
	}
}

// accumulate updates the result with a document outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil || outcome.Result.DocumentResult == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.LinesScanned += outcome.Result.Lines

	count := outcome.Result.FindingCount()
	r.Stats.FindingsTotal += count
	if count > 0 {
		r.Stats.FilesWithFindings++
	}

	for _, report := range outcome.Result.Reports {
		for _, finding := range report.Findings {
			severity := finding.Severity
			if severity == "" {
				severity = config.SeverityError
			}
			r.Stats.FindingsBySeverity[severity]++
			r.Stats.FindingsByCheck[report.CheckID]++
		}
	}
}
