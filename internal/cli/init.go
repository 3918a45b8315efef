package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdprose/internal/logging"
	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/fsutil"
	"github.com/yaklabco/mdprose/pkg/lint/checks"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new mdprose configuration file",
		Long: `Create a new .mdprose.yml configuration file in the current directory
with sensible defaults. The file can be customized to enable or disable
checks, change severities, and set the line length limit.

Examples:
  mdprose init                      Create minimal .mdprose.yml
  mdprose init --full               Create full config with all checks documented
  mdprose init --format toml        Create .mdprose.toml instead
  mdprose init --output custom.yml  Write to a custom file path`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all checks documented")
	cmd.Flags().StringVar(&flags.format, "format", config.TemplateYAML, "Output format: yaml or toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .mdprose.yml or .mdprose.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractiveTo(cmd.OutOrStdout())

	if flags.format != config.TemplateYAML && flags.format != config.TemplateTOML {
		return usageError(fmt.Errorf("invalid format %q: must be yaml or toml", flags.format))
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".mdprose.yml"
		if flags.format == config.TemplateTOML {
			outputPath = ".mdprose.toml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
		Checks: checks.TemplateChecks(checks.NewRegistry()),
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	written, err := fsutil.WriteAtomic(ctx, absPath, content, fsutil.WriteOptions{
		Mode:      fsutil.DefaultFileMode,
		Overwrite: flags.force,
	})
	if errors.Is(err, fsutil.ErrExists) {
		return usageError(fmt.Errorf("file %q already exists; use --force to overwrite", outputPath))
	}
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	if !written {
		logger.Info("configuration file is already up to date", logging.FieldPath, outputPath)
		return nil
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	if flags.full {
		logger.Info("full template includes all checks with documentation")
	}
	logger.Info("run 'mdprose checks' to see all available checks")

	return nil
}
