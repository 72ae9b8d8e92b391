package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mosaic/internal/server"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the builder API and live preview",
		Long: `Start the HTTP API. Besides POST /api/generate-contract it exposes the
component library, the selection, the assembled source, the networks and
deployment, and pushes a preview to GET /ws/preview whenever the selection
changes, including changes made with the CLI in another terminal.

Examples:
  mosaic serve
  mosaic serve --port 9000 --wallet key --auto-approve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			hub, ok := app.Progress.(*server.Hub)
			if !ok {
				return fmt.Errorf("serve requires the server progress hub")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(app, hub)
			fmt.Fprintf(cmd.ErrOrStderr(), "Serving on http://%s (Ctrl+C to stop)\n", srv.Addr())
			return srv.Run(ctx)
		},
	}

	cmd.Flags().String("host", "", "Address to listen on")
	cmd.Flags().Int("port", 0, "Port to listen on")
	cmd.Flags().Bool("auto-approve", false, "Sign deployments without asking (key wallet)")

	return cmd
}
