package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mosaic/internal/cli/render"
	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "deploy [network]",
		Short: "Deploy the assembled contract through the wallet",
		Long: `Deploy the assembled contract. The wallet is asked for an account, switched
to the target network (adding it when the wallet does not know it yet) and
asked to send the deployment transaction. The network defaults to the
configured one.

Examples:
  mosaic deploy
  mosaic deploy mantle --wallet rpc
  mosaic deploy -n mantle-sepolia --wallet key --verify`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.DeployParams{VerifyCode: verify}
			if len(args) > 0 {
				params.Network = args[0]
			}

			result, err := app.DeployContract.Run(cmd.Context(), params)
			if err != nil {
				if app.Config.JSON {
					_ = render.WriteJSON(cmd.OutOrStdout(), domain.StatusFromError(err))
				}
				return err
			}

			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), result.Deployment)
			}
			return render.NewDeployRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "Check the deployed code through the network RPC")

	return cmd
}
