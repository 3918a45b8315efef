package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdprose/internal/logging"
)

// DocumentResult contains the reports of every check run on one document.
type DocumentResult struct {
	// Path identifies the document ("-" for standard input).
	Path string

	// Reports holds one report per enabled check, in declaration order.
	Reports []*Report
}

// HasFindings returns true if any check found something.
func (dr *DocumentResult) HasFindings() bool {
	return dr.FindingCount() > 0
}

// FindingCount returns the total number of findings.
func (dr *DocumentResult) FindingCount() int {
	if dr == nil {
		return 0
	}
	count := 0
	for _, r := range dr.Reports {
		count += r.Count()
	}
	return count
}

// Engine runs the enabled checks over documents.
type Engine struct {
	// Registry holds all available checks.
	Registry *Registry
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// LintDocument runs every enabled check over doc, one after another.
//
// Check instances are created fresh for the document so no fence state or
// findings leak between documents. A check error aborts the document and is
// returned wrapped with the check ID.
func (e *Engine) LintDocument(ctx context.Context, path string, doc Document, env Env) (*DocumentResult, error) {
	logger := logging.FromContext(ctx)
	resolved := ResolveChecks(e.Registry, env.Config)

	result := &DocumentResult{
		Path:    path,
		Reports: make([]*Report, 0, len(resolved)),
	}

	for _, rc := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		check, err := rc.Definition.New(env.WithOptions(rc.Options))
		if err != nil {
			return nil, fmt.Errorf("create check %s: %w", rc.Definition.ID, err)
		}

		report, err := check.Run(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", check.ID(), err)
		}

		for i := range report.Findings {
			if report.Findings[i].Severity == "" {
				report.Findings[i].Severity = rc.Severity
			}
		}

		logger.Debug("check complete",
			logging.FieldPath, path,
			logging.FieldCheck, check.ID(),
			logging.FieldFindings, report.Count(),
		)
		result.Reports = append(result.Reports, report)
	}

	return result, nil
}
