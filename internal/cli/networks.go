package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mosaic/internal/cli/render"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

type networkJSON struct {
	Name      string `json:"name"`
	ChainID   string `json:"chainId"`
	ChainName string `json:"chainName"`
	Testnet   bool   `json:"testnet"`
	Default   bool   `json:"default"`
	Reachable *bool  `json:"reachable,omitempty"`
	LatencyMs int64  `json:"latencyMs,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the networks contracts can be deployed to",
		Long: `List the known networks. With --check every network RPC is queried and
its chain id compared with the configured one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{Check: check})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				out := make([]networkJSON, 0, len(result.Networks))
				for _, s := range result.Networks {
					item := networkJSON{
						Name:      s.Network.Name,
						ChainID:   s.Network.ChainID,
						ChainName: s.Network.ChainName,
						Testnet:   s.Network.Testnet,
						Default:   s.Network.Name == result.Default,
					}
					if s.Checked {
						ok := s.Error == nil
						item.Reachable = &ok
						item.LatencyMs = s.Latency.Milliseconds()
						if s.Error != nil {
							item.Error = s.Error.Error()
						}
					}
					out = append(out, item)
				}
				return render.WriteJSON(cmd.OutOrStdout(), out)
			}
			return render.NewNetworksRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Query each network RPC")

	return cmd
}
