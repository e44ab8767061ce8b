package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chainconf/internal/app"
	"github.com/trebuchet-org/chainconf/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"

	// noTimeout marks commands that run until interrupted
	noTimeout = "no-timeout"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chainconf",
		Short: "Toolchain configuration for smart contract projects",
		Long: `chainconf loads the compiler settings and network profiles of a smart
contract project from environment variables and .env files, and hands them
to the tools that compile, fork and deploy.

Networks whose variables are unset stay configured but inert.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, _ := cmd.Flags().GetString("project-root")
			if projectRoot == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to determine working directory: %w", err)
				}
				projectRoot = wd
			}

			v := config.SetupViper(projectRoot, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 && cmd.Annotations[noTimeout] == "" {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringSlice("env-file", []string{".env", ".env.local"}, "Env files to read, relative to the project root")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to operate on (e.g. goerli, arbitrum)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable spinners and prompts")
	rootCmd.PersistentFlags().String("project-root", "", "Project root (defaults to the working directory)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for network operations (defaults to 10s)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "tooling",
		Title: "Tooling Commands",
	})

	showCmd := NewShowCmd()
	showCmd.GroupID = "main"
	rootCmd.AddCommand(showCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "main"
	rootCmd.AddCommand(networksCmd)

	validateCmd := NewValidateCmd()
	validateCmd.GroupID = "main"
	rootCmd.AddCommand(validateCmd)

	accountsCmd := NewAccountsCmd()
	accountsCmd.GroupID = "main"
	rootCmd.AddCommand(accountsCmd)

	exportCmd := NewExportCmd()
	exportCmd.GroupID = "tooling"
	rootCmd.AddCommand(exportCmd)

	nodeCmd := NewNodeCmd()
	nodeCmd.GroupID = "tooling"
	rootCmd.AddCommand(nodeCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
