// Package fsutil provides the file system helpers mdprose needs: reading
// documents from disk or standard input and writing generated files atomically.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// StdinPath is the path argument that selects standard input.
const StdinPath = "-"

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrStdinTerminal indicates standard input was requested but is an
	// interactive terminal rather than a pipe or file.
	ErrStdinTerminal = errors.New("standard input is a terminal")
)

// FileInfo captures the state of a document when it was read.
type FileInfo struct {
	// Path is the path as given, or StdinPath.
	Path string

	// Mode is the file's permission and mode bits (zero for standard input).
	Mode os.FileMode

	// ModTime is the file's modification time (zero for standard input).
	ModTime time.Time

	// Size is the content size in bytes.
	Size int64
}

// ReadFile reads a file and returns its content along with metadata.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, categorize(path, "stat", err)
	}

	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, categorize(path, "read", err)
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    int64(len(content)),
	}

	return content, info, nil
}

// ReadStdin reads all of f, which is normally os.Stdin.
// It refuses to block on an interactive terminal.
func ReadStdin(ctx context.Context, f *os.File) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read stdin: %w", ctx.Err())
	default:
	}

	if IsTerminal(f) {
		return nil, nil, ErrStdinTerminal
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, fmt.Errorf("read stdin: %w", err)
	}

	return content, &FileInfo{Path: StdinPath, Size: int64(len(content))}, nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}

func categorize(path, op string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}
