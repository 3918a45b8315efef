package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/mdprose/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrReadFailure indicates the document could not be read.
	ErrReadFailure = errors.New("read failure")
)

// PipelineResult contains the result of linting a single document.
type PipelineResult struct {
	// DocumentResult holds the per-check reports.
	*DocumentResult

	// Info is the document state when it was read.
	Info *fsutil.FileInfo

	// Lines is the number of lines in the document.
	Lines int
}

// Pipeline reads one document and runs the engine on it.
type Pipeline struct {
	// Engine runs the checks.
	Engine *Engine

	// Env is passed to every check constructor.
	Env Env

	// Stdin is read when the path is fsutil.StdinPath. Nil means os.Stdin.
	Stdin *os.File
}

// NewPipeline creates a pipeline with the given engine and environment.
func NewPipeline(engine *Engine, env Env) *Pipeline {
	return &Pipeline{Engine: engine, Env: env}
}

// ProcessFile reads path (or standard input for "-") and lints it.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*PipelineResult, error) {
	var (
		content []byte
		info    *fsutil.FileInfo
		err     error
	)

	if path == fsutil.StdinPath {
		stdin := p.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		content, info, err = fsutil.ReadStdin(ctx, stdin)
	} else {
		content, info, err = fsutil.ReadFile(ctx, path)
	}
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, content)
	if err != nil {
		return nil, err
	}
	result.Info = info
	return result, nil
}

// ProcessContent lints in-memory content without file I/O.
func (p *Pipeline) ProcessContent(ctx context.Context, path string, content []byte) (*PipelineResult, error) {
	doc := SplitLines(content)

	docResult, err := p.Engine.LintDocument(ctx, path, doc, p.Env)
	if err != nil {
		return nil, err
	}

	return &PipelineResult{
		DocumentResult: docResult,
		Lines:          doc.Len(),
	}, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return fmt.Errorf("%w: %w", ErrReadFailure, err)
	}
}

// IsPipelineError checks if an error is a document I/O error rather than a
// check failure.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrReadFailure)
}
