package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdprose/pkg/runner"
)

// writeTree creates each file under dir with the given content.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func relAll(t *testing.T, dir string, paths []string) []string {
	t.Helper()

	rel := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(dir, p)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"readme.md": "# Test"})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{filepath.Join(dir, "readme.md")},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "readme.md")}, files)
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"readme.md":         "content",
		"docs/guide.md":     "content",
		"docs/api.markdown": "content",
		"docs/NOTES.MD":     "content",
		"src/main.go":       "content",
		"notes.txt":         "content",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/NOTES.MD", "docs/api.markdown", "docs/guide.md", "readme.md"}, relAll(t, dir, files))
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.md": "", "b.mdx": "", "c.txt": ""})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Extensions: []string{".mdx", ".txt"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.mdx", "c.txt"}, relAll(t, dir, files))
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"readme.md":                  "content",
		"vendor/pkg/doc.md":          "content",
		"node_modules/lib/readme.md": "content",
		"docs/guide.md":              "content",
		"docs/CHANGELOG.md":          "content",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "**/node_modules", "CHANGELOG.md"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/guide.md", "readme.md"}, relAll(t, dir, files))
}

func TestDiscover_HiddenFilesAndDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"readme.md":       "content",
		".hidden.md":      "content",
		".git/config.md":  "content",
		"docs/.secret.md": "content",
	})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"readme.md"}, relAll(t, dir, files))
}

func TestDiscover_DeterministicAndDeduplicated(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"z.md": "", "a.md": "", "m.md": "", "sub/b.md": ""})

	opts := runner.Options{
		Paths:      []string{"sub", ".", "z.md", "sub/b.md"},
		WorkingDir: dir,
	}

	first, err := runner.Discover(context.Background(), opts)
	require.NoError(t, err)
	second, err := runner.Discover(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.md", "m.md", "sub/b.md", "z.md"}, relAll(t, dir, first))
	assert.Equal(t, first, second)
}

func TestDiscover_Stdin(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.md": ""})

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"a.md", "-", "-"},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"-", filepath.Join(dir, "a.md")}, files)
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"missing.md"},
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{Paths: []string{"."}, WorkingDir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"real/doc.md": "content"})

	external := t.TempDir()
	writeTree(t, external, map[string]string{"external.md": "external"})

	if err := os.Symlink(filepath.Join(dir, "real", "doc.md"), filepath.Join(dir, "link.md")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(external, filepath.Join(dir, "linked")))

	opts := runner.Options{Paths: []string{"."}, WorkingDir: dir}
	files, err := runner.Discover(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"link.md", "real/doc.md"}, relAll(t, dir, files))

	opts.FollowSymlinks = true
	files, err = runner.Discover(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, files, 3)

	var bases []string
	for _, f := range files {
		bases = append(bases, filepath.Base(f))
	}
	assert.ElementsMatch(t, []string{"doc.md", "external.md", "link.md"}, bases)
}

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{".md", ".markdown"}, runner.DefaultExtensions())
}

func TestDiscover_InvalidIgnorePattern(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   t.TempDir(),
		ExcludeGlobs: []string{"docs/[a"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ignore pattern")
}

func TestDiscover_SymlinkCycle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"docs/guide.md": "content"})
	if err := os.Symlink(dir, filepath.Join(dir, "docs", "loop")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:          []string{"."},
		WorkingDir:     dir,
		FollowSymlinks: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/guide.md"}, relAll(t, dir, files))
}

func TestIgnoreMatcher(t *testing.T) {
	t.Parallel()

	matcher, err := runner.NewIgnoreMatcher([]string{"vendor/**", "**/node_modules", "*.draft.md", "docs/*/old.md"})
	require.NoError(t, err)

	tests := []struct {
		path  string
		isDir bool
		want  bool
	}{
		{path: "vendor", isDir: true, want: true},
		{path: "vendor/pkg/doc.md", want: true},
		{path: "src/vendor", isDir: true, want: false},
		{path: "node_modules", isDir: true, want: true},
		{path: "web/node_modules", isDir: true, want: true},
		{path: "notes.draft.md", want: true},
		{path: "deep/nested/notes.draft.md", want: true},
		{path: "docs/v1/old.md", want: true},
		{path: "docs/v1/v2/old.md", want: false},
		{path: "docs/guide.md", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matcher.Match(tt.path, tt.isDir), tt.path)
	}

	var nilMatcher *runner.IgnoreMatcher
	assert.False(t, nilMatcher.Match("anything.md", false))
}
