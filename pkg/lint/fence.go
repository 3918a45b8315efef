package lint

import "strings"

// FenceDelimiter opens and closes a fenced code block.
const FenceDelimiter = "```"

// IsFence reports whether line starts a fence once surrounding whitespace is removed.
func IsFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), FenceDelimiter)
}

// FenceState tracks whether a check is inside a fenced code block.
// The zero value is outside any block.
//
// Each check owns its state and decides whether it reads Inside before or
// after calling Observe for the current line.
type FenceState struct {
	inside bool
}

// Observe toggles the state when line is a fence and reports whether it did.
func (f *FenceState) Observe(line string) bool {
	if !IsFence(line) {
		return false
	}
	f.inside = !f.inside
	return true
}

// Inside reports whether an odd number of fences has been observed.
func (f *FenceState) Inside() bool {
	return f.inside
}
