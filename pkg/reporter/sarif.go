package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/lint"
	"github.com/yaklabco/mdprose/pkg/runner"
)

const (
	sarifToolName = "mdprose"
	sarifToolURI  = "https://github.com/yaklabco/mdprose"
)

// SARIFReporter formats results as SARIF 2.1.0 for code scanning tools.
type SARIFReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	report, count, err := r.buildReport(result)
	if err != nil {
		return 0, err
	}

	if r.opts.Compact {
		err = report.Write(r.bw)
	} else {
		err = report.PrettyWrite(r.bw)
	}
	if err != nil {
		return 0, fmt.Errorf("write SARIF: %w", err)
	}

	return count, nil
}

func (r *SARIFReporter) buildReport(result *runner.Result) (*sarif.Report, int, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, 0, fmt.Errorf("create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(sarifToolName, sarifToolURI)
	if r.opts.ToolVersion != "" {
		version := r.opts.ToolVersion
		run.Tool.Driver.Version = &version
	}

	var count int
	if result != nil {
		for _, file := range result.Files {
			if file.Result == nil || file.Result.DocumentResult == nil {
				continue
			}
			uri := r.opts.displayPath(file.Path)
			for _, checkReport := range file.Result.Reports {
				rule := run.AddRule(checkReport.CheckID).
					WithName(checkReport.CheckName).
					WithDescription(checkReport.Title)

				for _, finding := range checkReport.Findings {
					level := sarifLevel(finding.Severity)
					if rule.DefaultConfiguration == nil {
						rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: level})
					}
					run.AddResult(newSARIFResult(checkReport.CheckID, uri, level, finding))
					count++
				}
			}
		}
	}

	report.AddRun(run)
	return report, count, nil
}

func newSARIFResult(ruleID, uri, level string, finding lint.Finding) *sarif.Result {
	message := finding.Message
	if finding.Suggestion != "" {
		message += " (" + finding.Suggestion + ")"
	}

	location := sarif.NewLocation().
		WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(uri)).
				WithRegion(sarif.NewRegion().WithStartLine(finding.Line)),
		)

	return sarif.NewRuleResult(ruleID).
		WithMessage(sarif.NewTextMessage(message)).
		WithLevel(level).
		WithLocations([]*sarif.Location{location})
}

// sarifLevel maps a finding severity to a SARIF result level.
func sarifLevel(severity config.Severity) string {
	switch severity {
	case config.SeverityWarning:
		return "warning"
	case config.SeverityInfo:
		return "note"
	default:
		return "error"
	}
}
