package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/mdprose/pkg/fsutil"
)

// Discover finds Markdown documents for opts. Directories are walked
// recursively, skipping hidden entries and ignored paths; explicitly named
// files only need a Markdown extension and must not be ignored. The result
// is sorted and free of duplicates, with "-" (standard input) first.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	opts = opts.withDefaults()

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	ignore, err := NewIgnoreMatcher(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	d := &discoverer{
		workDir:    workDir,
		extensions: opts.Extensions,
		ignore:     ignore,
		follow:     opts.FollowSymlinks,
		seen:       make(map[string]struct{}),
		walked:     make(map[string]struct{}),
	}

	for _, input := range opts.Paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		if input == fsutil.StdinPath {
			d.add(input)
			continue
		}

		absPath := input
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if !info.IsDir() {
			if d.wanted(absPath) {
				d.add(absPath)
			}
			continue
		}

		if err := d.walk(ctx, absPath); err != nil {
			return nil, err
		}
	}

	// "-" sorts before any absolute path.
	slices.Sort(d.files)
	return d.files, nil
}

// discoverer accumulates documents across the input paths.
type discoverer struct {
	workDir    string
	extensions []string
	ignore     *IgnoreMatcher
	follow     bool
	seen       map[string]struct{}
	walked     map[string]struct{}
	files      []string
}

func (d *discoverer) add(path string) {
	if _, dup := d.seen[path]; dup {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

func (d *discoverer) rel(path string) string {
	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

// wanted reports whether a file has a Markdown extension and is not ignored.
func (d *discoverer) wanted(path string) bool {
	ext := filepath.Ext(path)
	matches := slices.ContainsFunc(d.extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
	return matches && !d.ignore.Match(d.rel(path), false)
}

// walk visits each real directory at most once, which also stops symlink
// cycles.
func (d *discoverer) walk(ctx context.Context, root string) error {
	if real, err := filepath.EvalSymlinks(root); err == nil {
		if _, done := d.walked[real]; done {
			return nil
		}
		d.walked[real] = struct{}{}
	}

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || d.ignore.Match(d.rel(path), true) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return d.symlink(ctx, path)
		}

		if d.wanted(path) {
			d.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// symlink handles a link found during a walk. Broken links are skipped.
// Linked directories are walked at their target, and only when following
// symlinks; linked files are treated like regular files.
func (d *discoverer) symlink(ctx context.Context, path string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // broken links are skipped
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // unreadable targets are skipped
	}

	if !info.IsDir() {
		if d.wanted(path) {
			d.add(path)
		}
		return nil
	}
	if !d.follow {
		return nil
	}
	return d.walk(ctx, target)
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}
