package lint

import (
	"context"
	"fmt"
	"strings"
)

// Line is the per-line view a check works on.
type Line struct {
	// Number is the 1-based line number.
	Number int

	// Raw is the line exactly as it appears in the document.
	Raw string

	// Plain is Raw with Markdown links reduced to their shown text.
	Plain string
}

// Trimmed returns Plain without surrounding whitespace.
func (l Line) Trimmed() string {
	return strings.TrimSpace(l.Plain)
}

// Scan calls fn for every line of doc in order.
// It stops at the first error returned by fn and checks ctx between lines.
func Scan(ctx context.Context, doc Document, fn func(Line) error) error {
	for number, raw := range doc.Lines() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("scan cancelled: %w", ctx.Err())
		default:
		}

		line := Line{
			Number: number,
			Raw:    raw,
			Plain:  StripLinks(raw),
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}
