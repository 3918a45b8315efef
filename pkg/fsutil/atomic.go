package fsutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the default permission mode for newly created files.
const DefaultFileMode os.FileMode = 0644

// ErrExists is returned when a write would replace an existing file
// and overwriting was not requested.
var ErrExists = errors.New("file already exists")

// WriteOptions controls WriteAtomic.
type WriteOptions struct {
	// Mode is the file mode of the written file. Zero means DefaultFileMode.
	Mode os.FileMode

	// Overwrite allows replacing an existing file.
	Overwrite bool
}

// WriteAtomic writes content to path using a temp file and rename, so readers
// never observe a partially written file. On error the temp file is removed
// and any existing file is left untouched.
//
// It reports whether the file was written: replacing a file with identical
// content is skipped.
func WriteAtomic(ctx context.Context, path string, content []byte, opts WriteOptions) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("write atomic: %w", err)
	}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(existing, content) {
			return false, nil
		}
		if !opts.Overwrite {
			return false, fmt.Errorf("%w: %s", ErrExists, path)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return false, categorize(path, "read", err)
	}

	mode := opts.Mode
	if mode == 0 {
		mode = DefaultFileMode
	}

	if err := writeViaTemp(path, content, mode); err != nil {
		return false, err
	}
	return true, nil
}

// writeViaTemp writes a sibling temp file and renames it over path.
func writeViaTemp(path string, content []byte, mode os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	steps := []struct {
		what string
		run  func() error
	}{
		{"write", func() error { _, werr := tmp.Write(content); return werr }},
		{"sync", tmp.Sync},
		{"close", tmp.Close},
		{"chmod", func() error { return os.Chmod(tmp.Name(), mode) }},
		{"rename", func() error { return os.Rename(tmp.Name(), path) }},
	}
	for _, step := range steps {
		if err = step.run(); err != nil {
			return fmt.Errorf("%s temp file: %w", step.what, err)
		}
	}
	return nil
}
