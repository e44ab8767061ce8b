package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chainconf/internal/cli/render"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [network]",
		Short: "Show the loaded toolchain configuration",
		Long: `Show the compiler settings, plugins and network profiles loaded from the
environment. Pass a network name (or --network) to show a single profile.

Private keys are never printed; RPC URLs are shown without credentials.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ShowConfigParams{Network: app.Config.Network}
			if len(args) > 0 {
				params.Network = args[0]
			}

			result, err := app.ShowConfig.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewConfigRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	return cmd
}
