// Package analysis aggregates lint results into per-check and per-document
// views for summary output.
package analysis

import (
	"cmp"
	"slices"

	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/lint"
	"github.com/yaklabco/mdprose/pkg/runner"
)

// Severity string constants for internal use.
const (
	severityError   = string(config.SeverityError)
	severityWarning = string(config.SeverityWarning)
	severityInfo    = string(config.SeverityInfo)
)

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	checkMap   map[string]*CheckAnalysis
	checkOrder []string
	fileMap    map[string]*FileAnalysis
	checkFiles map[string]map[string]bool
	fileChecks map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		checkMap:   make(map[string]*CheckAnalysis),
		fileMap:    make(map[string]*FileAnalysis),
		checkFiles: make(map[string]map[string]bool),
		fileChecks: make(map[string]map[string]bool),
	}
}

// normalizeSeverity returns the severity string, defaulting to error.
func normalizeSeverity(sev config.Severity) string {
	if sev == "" {
		return severityError
	}
	return string(sev)
}

// incrementSeverityCounts updates counts based on severity.
func incrementSeverityCounts(severity string, totals *Totals, fa *FileAnalysis) {
	switch severity {
	case severityError:
		totals.Errors++
		fa.Errors++
	case severityWarning:
		totals.Warnings++
		fa.Warnings++
	case severityInfo:
		totals.Infos++
		fa.Infos++
	}
}

// incrementCheckSeverity updates check analysis severity counts.
func incrementCheckSeverity(severity string, ca *CheckAnalysis) {
	switch severity {
	case severityError:
		ca.Errors++
	case severityWarning:
		ca.Warnings++
	case severityInfo:
		ca.Infos++
	}
}

func (ctx *analysisContext) getOrCreateFileAnalysis(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileChecks[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

func (ctx *analysisContext) getOrCreateCheckAnalysis(report *lint.Report) *CheckAnalysis {
	if _, ok := ctx.checkMap[report.CheckID]; !ok {
		ctx.checkMap[report.CheckID] = &CheckAnalysis{
			CheckID:   report.CheckID,
			CheckName: report.CheckName,
			Title:     report.Title,
		}
		ctx.checkOrder = append(ctx.checkOrder, report.CheckID)
		ctx.checkFiles[report.CheckID] = make(map[string]bool)
	}
	return ctx.checkMap[report.CheckID]
}

// buildByCheck constructs the ByCheck slice in run order before sorting,
// so ties keep the order in which checks ran.
func (ctx *analysisContext) buildByCheck(opts Options) []CheckAnalysis {
	result := make([]CheckAnalysis, 0, len(ctx.checkOrder))
	for _, checkID := range ctx.checkOrder {
		ca := ctx.checkMap[checkID]
		if ca.Findings == 0 {
			continue
		}
		for f := range ctx.checkFiles[checkID] {
			ca.Files = append(ca.Files, f)
		}
		slices.Sort(ca.Files)
		result = append(result, *ca)
	}
	sortCheckAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	var result []FileAnalysis
	for path, fa := range ctx.fileMap {
		if fa.Findings == 0 {
			continue
		}
		for c := range ctx.fileChecks[path] {
			fa.Checks = append(fa.Checks, c)
		}
		slices.Sort(fa.Checks)
		result = append(result, *fa)
	}
	// Map iteration is random; fix the order before the stable sort.
	slices.SortFunc(result, func(left, right FileAnalysis) int {
		return cmp.Compare(left.Path, right.Path)
	})
	sortFileAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// Analyze aggregates a runner.Result in a single pass over its findings.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{}
	if result == nil {
		return report
	}

	displayPath := opts.DisplayPath
	if displayPath == nil {
		displayPath = func(p string) string { return p }
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		report.Totals.Files++
		if file.Error != nil {
			report.Totals.FilesErrored++
			continue
		}
		if file.Result == nil || file.Result.DocumentResult == nil {
			continue
		}
		if file.Result.FindingCount() > 0 {
			report.Totals.FilesWithFindings++
		}

		path := displayPath(file.Path)
		fa := ctx.getOrCreateFileAnalysis(path)

		for _, checkReport := range file.Result.Reports {
			ca := ctx.getOrCreateCheckAnalysis(checkReport)
			for _, finding := range checkReport.Findings {
				severity := normalizeSeverity(finding.Severity)

				report.Totals.Findings++
				incrementSeverityCounts(severity, &report.Totals, fa)
				fa.Findings++
				ctx.fileChecks[path][checkReport.CheckID] = true

				ca.Findings++
				incrementCheckSeverity(severity, ca)
				ctx.checkFiles[checkReport.CheckID][path] = true
			}
		}
	}

	if opts.IncludeByCheck {
		report.ByCheck = ctx.buildByCheck(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

func sortCheckAnalysis(checks []CheckAnalysis, sortBy SortField, desc bool) {
	slices.SortStableFunc(checks, func(left, right CheckAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.CheckID, right.CheckID)
		case SortBySeverity:
			return compareSeverity(left.Errors, right.Errors, left.Warnings, right.Warnings, left.Findings, right.Findings)
		default:
			return compareCount(left.Findings, right.Findings, desc)
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortStableFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Path, right.Path)
		case SortBySeverity:
			return compareSeverity(left.Errors, right.Errors, left.Warnings, right.Warnings, left.Findings, right.Findings)
		default:
			return compareCount(left.Findings, right.Findings, desc)
		}
	})
}

// compareSeverity orders errors first, then warnings, then total findings,
// always highest first.
func compareSeverity(leftErr, rightErr, leftWarn, rightWarn, leftTotal, rightTotal int) int {
	if c := cmp.Compare(rightErr, leftErr); c != 0 {
		return c
	}
	if c := cmp.Compare(rightWarn, leftWarn); c != 0 {
		return c
	}
	return cmp.Compare(rightTotal, leftTotal)
}

func compareCount(left, right int, desc bool) int {
	if desc {
		return cmp.Compare(right, left)
	}
	return cmp.Compare(left, right)
}
