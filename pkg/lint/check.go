// Package lint provides the check engine, findings, and registry for mdprose.
//
// Every check makes one pass over a Document, line by line, and keeps its own
// code-fence state. Checks share the tokenizer, link stripper and fence
// tracker from this package but never share state with each other.
package lint

import (
	"context"
)

// Check defines the interface that all prose checks must implement.
type Check interface {
	// ID returns the unique identifier for this check (e.g., "RP001").
	ID() string

	// Name returns the short kebab-case name of the check.
	Name() string

	// Title returns the heading used when the check's report is printed.
	Title() string

	// Description returns a detailed description of what the check looks for.
	Description() string

	// Run scans the document once and returns the check's report.
	//
	// Checks must:
	//   - Record every violation as a Finding, in ascending line order.
	//   - Respect context cancellation between lines.
	//   - Return an error only for cancellation or a fatal defect
	//     (see ErrNoWordGroup), never for content violations.
	Run(ctx context.Context, doc Document) (*Report, error)
}
