package runner

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// IgnoreMatcher decides whether a path relative to the working directory is
// excluded from discovery. Patterns use "/" separators: "*" stays within one
// path segment and "**" crosses segments. A pattern without a "/" matches
// the base name at any depth, and a leading "**/" also matches at the root.
type IgnoreMatcher struct {
	full []glob.Glob
	base []glob.Glob
}

// NewIgnoreMatcher compiles patterns. It fails on the first malformed one.
func NewIgnoreMatcher(patterns []string) (*IgnoreMatcher, error) {
	m := &IgnoreMatcher{}
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(strings.TrimSpace(pattern))
		if pattern == "" {
			continue
		}

		if !strings.Contains(pattern, "/") {
			g, err := glob.Compile(pattern, '/')
			if err != nil {
				return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
			}
			m.base = append(m.base, g)
			continue
		}

		variants := []string{pattern}
		if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
			variants = append(variants, rest)
		}
		for _, variant := range variants {
			g, err := glob.Compile(variant, '/')
			if err != nil {
				return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
			}
			m.full = append(m.full, g)
		}
	}
	return m, nil
}

// Match reports whether relPath is ignored. Directories are also tried with
// a trailing slash, so "vendor/**" excludes the vendor directory itself.
func (m *IgnoreMatcher) Match(relPath string, isDir bool) bool {
	if m == nil {
		return false
	}

	relPath = filepath.ToSlash(relPath)
	candidates := []string{relPath}
	if isDir {
		candidates = append(candidates, relPath+"/")
	}

	for _, g := range m.full {
		for _, candidate := range candidates {
			if g.Match(candidate) {
				return true
			}
		}
	}

	name := path.Base(relPath)
	for _, g := range m.base {
		if g.Match(name) {
			return true
		}
	}
	return false
}
