package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chainconf/internal/adapters/anvil"
	"github.com/trebuchet-org/chainconf/internal/cli/render"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

// NewNodeCmd creates the node command
func NewNodeCmd() *cobra.Command {
	var params usecase.StartNodeParams

	cmd := &cobra.Command{
		Use:   "node",
		Short: "Start a local node from the hardhat profile",
		Long: `Start anvil with the settings of the local simulation profile: mainnet
fork at the pinned block (when MAINNET_ALCHEMY_URL is set), zero base fee,
maximum block gas limit and no contract size limit.

The node listens on the localhost profile's address. Use --dry-run to print
the command without starting it.`,
		Annotations: map[string]string{noTimeout: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.StartNode.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewNodeRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&params.DryRun, "dry-run", false, "Print the command without running it")
	cmd.Flags().StringVar(&params.Host, "host", anvil.DefaultHost, "Address to listen on")
	cmd.Flags().StringVar(&params.Port, "port", anvil.DefaultPort(), "Port to listen on")

	return cmd
}
