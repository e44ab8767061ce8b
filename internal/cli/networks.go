package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chainconf/internal/cli/render"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List configured network profiles",
		Long: `List every network profile with its RPC endpoint, signer count and fork
settings.

With --probe, each network with an RPC URL is dialed and its chain ID and head
block are reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListNetworksParams{Probe: probe}
			result, err := app.ListNetworks.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Dial each configured RPC endpoint")

	return cmd
}
