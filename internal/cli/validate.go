package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chainconf/internal/cli/render"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check configured values for malformed URLs and keys",
		Long: `Check every configured RPC URL and private key.

Unset variables are not errors: the affected network simply stays inert.
Use --verbose to list them anyway. Exits non-zero when a set value is
malformed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ValidateConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			if err := render.NewValidateRenderer(cmd.OutOrStdout(), verbose).Render(result); err != nil {
				return err
			}

			if !result.Valid() {
				return fmt.Errorf("configuration has %d issue(s)", len(result.Issues))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also list unset variables")

	return cmd
}
