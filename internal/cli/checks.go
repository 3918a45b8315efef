package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdprose/internal/logging"
	"github.com/yaklabco/mdprose/pkg/config"
	"github.com/yaklabco/mdprose/pkg/lint"
	"github.com/yaklabco/mdprose/pkg/lint/checks"
)

type checksFlags struct {
	checkFormat string
	format      string
}

const formatJSON = "json"

// checkInfo represents a check in JSON output.
type checkInfo struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Severity    string         `json:"severity"`
	Options     map[string]any `json:"options,omitempty"`
}

func newChecksCommand() *cobra.Command {
	flags := &checksFlags{}

	cmd := &cobra.Command{
		Use:   "checks",
		Short: "List available checks",
		Long: `List all available checks in the order they run, with their IDs,
names, default severity, and descriptions.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			defs := checks.NewRegistry().Definitions()

			switch flags.format {
			case formatJSON:
				return outputChecksJSON(cmd, defs)
			case "text":
			default:
				return usageError(fmt.Errorf("invalid format %q: must be text or json", flags.format))
			}

			logger := logging.NewInteractiveTo(cmd.OutOrStdout())
			logger.Info("available checks")

			checkFormat := config.CheckFormat(flags.checkFormat)
			for _, def := range defs {
				logger.Info(config.FormatCheckID(checkFormat, def.ID, def.Name),
					logging.FieldSeverity, def.DefaultSeverity,
					logging.FieldDescription, def.Description,
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.checkFormat, "check-format", "combined",
		"check identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputChecksJSON writes the checks as a JSON array.
func outputChecksJSON(cmd *cobra.Command, defs []lint.Definition) error {
	infos := make([]checkInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, checkInfo{
			ID:          def.ID,
			Name:        def.Name,
			Title:       def.Title,
			Description: def.Description,
			Severity:    string(def.DefaultSeverity),
			Options:     def.Options,
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding checks: %w", err)
	}
	return nil
}
