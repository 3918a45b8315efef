package lint

import "regexp"

// linkPattern matches an inline Markdown link. Group 1 is the shown text.
//
//nolint:gochecknoglobals // Compiled once and shared read-only
var linkPattern = regexp.MustCompile(`\[([` + "`" + `()*\p{L}\p{N}_\s-]*)\]\s*\(([^)]*)\)`)

// StripLinks replaces every well-formed `[shown](url)` in line with `shown`.
// Malformed links are left as they are. The result is stable: stripping it
// again returns it unchanged.
func StripLinks(line string) string {
	for {
		stripped := linkPattern.ReplaceAllString(line, "${1}")
		if stripped == line {
			return stripped
		}
		line = stripped
	}
}
