package cli

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mosaic/internal/cli/render"
	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

type buildJSON struct {
	Components   []string        `json:"components"`
	Source       string          `json:"source"`
	WrittenTo    string          `json:"writtenTo,omitempty"`
	ContractName string          `json:"contractName,omitempty"`
	Bytecode     string          `json:"bytecode,omitempty"`
	ABI          json.RawMessage `json:"abi,omitempty"`
}

// NewBuildCmd creates the build command
func NewBuildCmd() *cobra.Command {
	var (
		outPath string
		compile bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble the selection into contract source",
		Long: `Assemble the selected components into a single contract. The source is
printed, or written to a file with --out. With --compile the configured
compiler also produces the deployment bytecode.

Examples:
  mosaic build
  mosaic build --out contracts/Generated.sol --compiler solc --compile`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.AssembleSource.Run(cmd.Context(), usecase.AssembleSourceParams{
				OutPath: outPath,
				Compile: compile,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				out := buildJSON{
					Components: lo.Map(result.Components, func(d *domain.ComponentDefinition, _ int) string { return d.ID }),
					Source:     result.Source,
					WrittenTo:  result.WrittenTo,
				}
				if c := result.Compiled; c != nil {
					out.ContractName = c.ContractName
					out.Bytecode = hexutil.Encode(c.Bytecode)
					out.ABI = json.RawMessage(c.ABI)
				}
				return render.WriteJSON(cmd.OutOrStdout(), out)
			}
			return render.NewSourceRenderer(cmd.OutOrStdout(), app.Highlighter).Render(result)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the source to this file")
	cmd.Flags().BoolVar(&compile, "compile", false, "Compile the source with the configured compiler")

	return cmd
}
