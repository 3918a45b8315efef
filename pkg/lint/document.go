package lint

import (
	"iter"
	"strings"
)

// Document is an ordered, immutable sequence of raw text lines.
// Lines are addressed 1-based, matching how findings are reported.
type Document struct {
	lines []string
}

// NewDocument creates a Document from already split lines.
// The slice is copied so later changes by the caller are not observed.
func NewDocument(lines []string) Document {
	return Document{lines: append([]string(nil), lines...)}
}

// SplitLines builds a Document from file content.
// Line terminators ("\n" or "\r\n") are not part of the lines, and a final
// terminator does not produce a trailing empty line.
func SplitLines(content []byte) Document {
	if len(content) == 0 {
		return Document{}
	}

	text := strings.TrimSuffix(string(content), "\n")
	parts := strings.Split(text, "\n")
	for i, part := range parts {
		parts[i] = strings.TrimSuffix(part, "\r")
	}

	return Document{lines: parts}
}

// Len returns the number of lines in the document.
func (d Document) Len() int {
	return len(d.lines)
}

// Line returns the raw text of the 1-based line n.
// Out of range lines read as empty.
func (d Document) Line(n int) string {
	if n < 1 || n > len(d.lines) {
		return ""
	}
	return d.lines[n-1]
}

// Lines iterates over the document as (1-based number, raw text) pairs.
func (d Document) Lines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, line := range d.lines {
			if !yield(i+1, line) {
				return
			}
		}
	}
}
