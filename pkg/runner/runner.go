package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/mdprose/internal/logging"
	"github.com/yaklabco/mdprose/pkg/lint"
)

// Runner orchestrates multi-document linting using a lint.Pipeline.
type Runner struct {
	// Pipeline reads and lints one document.
	Pipeline *lint.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *lint.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers documents under opts.Paths and lints them concurrently.
//
// Documents that cannot be read are recorded in their FileOutcome and the
// run continues. Any other error, such as a tokenizer defect or
// cancellation, aborts the run and is returned. Outcomes are reported in
// discovery order regardless of which document finishes first.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	logger.Debug("linting documents",
		logging.FieldFiles, len(files),
		logging.FieldJobs, jobs,
	)

	outcomes := make([]FileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i, path := range files {
		group.Go(func() error {
			outcome, err := r.process(groupCtx, path)
			if err != nil {
				return err
			}
			outcomes[i] = outcome
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	return result, nil
}

// process lints one document. Read failures are kept in the outcome.
func (r *Runner) process(ctx context.Context, path string) (FileOutcome, error) {
	outcome := FileOutcome{Path: path}

	pr, err := r.Pipeline.ProcessFile(ctx, path)
	switch {
	case err == nil:
		outcome.Result = pr
	case lint.IsPipelineError(err):
		logging.FromContext(ctx).Debug("document skipped",
			logging.FieldPath, path,
			logging.FieldError, err,
		)
		outcome.Error = err
	default:
		return outcome, fmt.Errorf("%s: %w", path, err)
	}

	return outcome, nil
}
