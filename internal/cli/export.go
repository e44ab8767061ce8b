package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chainconf/internal/config"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the configuration for other tools",
		Long: fmt.Sprintf(`Export the loaded configuration as a document.

Formats: %s

The foundry format emits a foundry.toml fragment whose rpc_endpoints refer to
the environment variables instead of embedding their values.`, strings.Join(formatNames(), ", ")),
		Example: `  chainconf export --format yaml
  chainconf export --format foundry -o foundry.networks.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ExportConfig.Run(cmd.Context(), usecase.ExportConfigParams{Format: format})
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(result.Data)
				return err
			}

			if err := os.WriteFile(output, result.Data, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s configuration to %s\n", result.Format, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatJSON), "Output format")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func formatNames() []string {
	names := make([]string, 0, len(config.Formats()))
	for _, f := range config.Formats() {
		names = append(names, string(f))
	}
	return names
}
