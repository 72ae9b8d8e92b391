package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mosaic/internal/adapters/progress"
	"github.com/trebuchet-org/mosaic/internal/app"
	"github.com/trebuchet-org/mosaic/internal/config"
	"github.com/trebuchet-org/mosaic/internal/server"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mosaic",
		Short: "Compose, preview and deploy Solidity contracts from prebuilt components",
		Long: `Mosaic builds a Solidity contract out of prebuilt snippet components,
previews the assembled source, deploys it through a wallet and can ask a
hosted language model to write a contract from a prompt.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)
			if v.GetBool("no_color") {
				color.NoColor = true
			}

			appInstance, err := app.InitApp(v, newProgressSink(cmd, v.GetBool("json")))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// The server runs until interrupted, every other command is bounded
			if appInstance.Config.Timeout > 0 && cmd.Name() != "serve" {
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
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to deploy to (e.g., mantle, mantle-sepolia)")
	rootCmd.PersistentFlags().String("wallet", "", "Wallet to deploy with (none, rpc, key)")
	rootCmd.PersistentFlags().String("generator", "", "Generator provider (openai, gemini, route)")
	rootCmd.PersistentFlags().String("model", "", "Generator model")
	rootCmd.PersistentFlags().String("compiler", "", "Compiler for deployment bytecode (demo, solc)")
	rootCmd.PersistentFlags().String("catalog", "", "Extra component catalog file (YAML)")
	rootCmd.PersistentFlags().String("networks", "", "Extra network descriptors file (TOML)")

	rootCmd.AddGroup(
		&cobra.Group{ID: "builder", Title: "Builder Commands"},
		&cobra.Group{ID: "generator", Title: "Generator Commands"},
		&cobra.Group{ID: "deployment", Title: "Deployment Commands"},
		&cobra.Group{ID: "management", Title: "Management Commands"},
	)

	addToGroup(rootCmd, "builder",
		NewComponentsCmd(),
		NewAddCmd(),
		NewRemoveCmd(),
		NewMoveCmd(),
		NewClearCmd(),
		NewShowCmd(),
		NewBuildCmd(),
		NewComposeCmd(),
	)
	addToGroup(rootCmd, "generator",
		NewGenerateCmd(),
		NewGeneratedCmd(),
	)
	addToGroup(rootCmd, "deployment",
		NewDeployCmd(),
		NewNetworksCmd(),
	)
	addToGroup(rootCmd, "management",
		NewInitCmd(),
		NewConfigCmd(),
		NewServeCmd(),
	)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func addToGroup(root *cobra.Command, group string, cmds ...*cobra.Command) {
	for _, c := range cmds {
		c.GroupID = group
		root.AddCommand(c)
	}
}

// newProgressSink picks where progress events go for this invocation: the
// websocket hub for the server, a spinner on an interactive terminal and
// nowhere otherwise.
func newProgressSink(cmd *cobra.Command, jsonOutput bool) usecase.ProgressSink {
	if cmd.Name() == "serve" {
		return server.NewHub()
	}
	if jsonOutput || !isatty.IsTerminal(os.Stderr.Fd()) {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerProgressReporter()
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
