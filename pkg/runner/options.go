// Package runner lints many documents concurrently.
package runner

// Options selects the documents for a run and how many are linted at once.
type Options struct {
	// Paths holds files, directories, or "-" for standard input.
	// Nothing means the working directory.
	Paths []string

	// WorkingDir resolves relative Paths and is the root that ignore
	// patterns are matched against. Empty means the process directory.
	WorkingDir string

	// Extensions that mark a file as Markdown, compared case-insensitively.
	// Nothing means DefaultExtensions.
	Extensions []string

	// ExcludeGlobs are ignore patterns; see IgnoreMatcher for the syntax.
	ExcludeGlobs []string

	// FollowSymlinks walks into symlinked directories.
	FollowSymlinks bool

	// Jobs bounds concurrent documents. Zero or less uses every CPU.
	Jobs int
}

// DefaultExtensions returns the Markdown extensions mdprose looks for.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// withDefaults fills the empty path and extension lists.
func (o Options) withDefaults() Options {
	if len(o.Paths) == 0 {
		o.Paths = []string{"."}
	}
	if len(o.Extensions) == 0 {
		o.Extensions = DefaultExtensions()
	}
	return o
}
