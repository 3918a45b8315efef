package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdprose/internal/configloader"
	"github.com/yaklabco/mdprose/internal/logging"
	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/dict"
	"github.com/yaklabco/mdprose/pkg/lint"
	"github.com/yaklabco/mdprose/pkg/lint/checks"
	"github.com/yaklabco/mdprose/pkg/reporter"
	"github.com/yaklabco/mdprose/pkg/runner"
)

type lintFlags struct {
	lineLength  int
	warnLength  int
	extended    bool
	dictDir     string
	format      string
	checkFormat string
	jobs        int
	ignore      []string
	enable      []string
	disable     []string
	noContext   bool
	noPasses    bool
	noSummary   bool
	compact     bool
}

func newLintCommand(info BuildInfo) *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Markdown files for prose problems",
		Long:  lintLongDescription(),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags, info)
		},
	}

	addLintFlags(cmd, flags)

	return cmd
}

func lintLongDescription() string {
	var sb strings.Builder
	sb.WriteString(`Lint Markdown files for prose problems.

By default, lints all .md and .markdown files in the current directory
and subdirectories. Specify paths to lint specific files or directories,
or "-" to read a document from standard input.

Examples:
  mdprose lint                      # Lint current directory
  mdprose lint docs/                # Lint docs directory
  mdprose lint README.md -l 120     # Lint one file with a 120 column limit
  mdprose lint --extended           # Include the extended banned-word list
  mdprose lint --disable bad-phrases # Skip a check
  cat page.md | mdprose lint -      # Lint standard input
  mdprose lint --format sarif       # Output SARIF for code scanning

Environment:
`)
	for _, env := range configloader.ListEnvVars() {
		fmt.Fprintf(&sb, "  %-22s %s\n", env[0], env[1])
	}
	return strings.TrimRight(sb.String(), "\n")
}

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	cmd.Flags().IntVarP(&flags.lineLength, "line-length", "l", config.DefaultLineLength,
		"maximum line length once links are reduced to their text")
	cmd.Flags().IntVar(&flags.warnLength, "warn-length", 0, "report lines longer than this as warnings (0 = off)")
	cmd.Flags().BoolVar(&flags.extended, "extended", false, "include the extended banned-word list")
	cmd.Flags().StringVar(&flags.dictDir, "dict-dir", "", "directory of dictionary files replacing the built-in ones")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, sarif, summary")
	cmd.Flags().StringVar(&flags.checkFormat, "check-format", "name",
		"check identifier format in output: name, id, or combined")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "check IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "check IDs or names to disable")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide the original line after each finding")
	cmd.Flags().BoolVar(&flags.noPasses, "no-passes", false, "hide checks that found nothing")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the summary line")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON and SARIF output")
}

// cliConfig builds the configuration layer holding explicitly set flags,
// so that unset flags never override config files.
func (f *lintFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("line-length") {
		cfg.LineLength = f.lineLength
	}
	if changed("warn-length") {
		cfg.WarnLength = f.warnLength
	}
	if changed("extended") {
		cfg.Extended = f.extended
	}
	if changed("dict-dir") {
		cfg.DictDir = f.dictDir
	}
	if changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if changed("check-format") {
		cfg.CheckFormat = config.CheckFormat(f.checkFormat)
	}
	if changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if changed("ignore") {
		cfg.Ignore = f.ignore
	}
	cfg.EnableChecks = f.enable
	cfg.DisableChecks = f.disable

	return cfg
}

func runLint(cmd *cobra.Command, args []string, flags *lintFlags, info BuildInfo) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	if cmd.Flags().Changed("line-length") && flags.lineLength < 1 {
		return usageError(fmt.Errorf("--line-length must be positive, got %d", flags.lineLength))
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	registry := checks.NewRegistry()

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    flags.cliConfig(cmd),
		Registry:     registry,
	})
	if err != nil {
		return errors.Join(ErrConfig, fmt.Errorf("load configuration: %w", err))
	}

	cfg := loadResult.Config
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldLineLength, cfg.LineLength,
		logging.FieldExtended, cfg.Extended,
		logging.FieldDictDir, cfg.DictDir,
		logging.FieldJobs, cfg.Jobs,
	)

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return usageError(err)
	}

	dictionaries, err := dict.Load(ctx, dict.Options{Dir: cfg.DictDir, Extended: cfg.Extended})
	if err != nil {
		return fmt.Errorf("load dictionaries: %w", err)
	}

	pipeline := lint.NewPipeline(lint.NewEngine(registry), lint.Env{Config: cfg, Dict: dictionaries})
	if stdin, ok := cmd.InOrStdin().(*os.File); ok {
		pipeline.Stdin = stdin
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New(pipeline).Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("lint run failed: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowPasses:  !flags.noPasses,
		ShowSummary: !flags.noSummary,
		Compact:     flags.compact,
		CheckFormat: cfg.CheckFormat,
		WorkingDir:  workDir,
		ToolVersion: info.Version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("lint run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithIssues, result.Stats.FilesWithFindings,
		logging.FieldFindingsTotal, result.Stats.FindingsTotal,
	)

	switch ExitCodeFromResult(result) {
	case ExitLintErrors:
		return ErrLintIssuesFound
	case ExitIOError:
		return ErrUnreadableFiles
	default:
		return nil
	}
}
