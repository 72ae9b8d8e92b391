package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mosaic/internal/cli/render"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize mosaic in the current directory",
		Long: `Create the .mosaic data directory with a config.yaml, an example
networks.toml and a .env.example listing the keys mosaic reads.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd)
		},
	}

	return cmd
}

// runInit executes the init command
func runInit(cmd *cobra.Command) error {
	// Get app instance
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	// Execute initialization
	result, err := app.InitProject.Execute(cmd.Context())
	if err != nil {
		// Still render partial results even on error
		if result != nil {
			renderer := render.NewInitRenderer(cmd.OutOrStdout())
			_ = renderer.Render(result)
		}
		return err
	}

	// Render the result
	renderer := render.NewInitRenderer(cmd.OutOrStdout())
	return renderer.Render(result)
}
