package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mosaic/internal/cli/render"
	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	var (
		examples bool
		example  int
		keep     bool
	)

	cmd := &cobra.Command{
		Use:     "generate [prompt...]",
		Aliases: []string{"gen"},
		Short:   "Ask the language model to write a contract",
		Long: `Send a prompt to the configured language model and print the contract it
writes. The text is kept so it can be saved later with 'mosaic generated save'.

Examples:
  mosaic generate "an ERC20 token with a capped supply"
  mosaic generate --examples
  mosaic generate --example 2
  mosaic generate --generator gemini --model gemini-2.5-flash "a simple escrow"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			renderer := render.NewGenerateRenderer(cmd.OutOrStdout(), app.Highlighter)

			if examples {
				if app.Config.JSON {
					return render.WriteJSON(cmd.OutOrStdout(), domain.ExamplePrompts)
				}
				return renderer.RenderExamples(domain.ExamplePrompts)
			}

			prompt := strings.Join(args, " ")
			if example > 0 {
				if example > len(domain.ExamplePrompts) {
					return fmt.Errorf("example %d does not exist, there are %d", example, len(domain.ExamplePrompts))
				}
				prompt = domain.ExamplePrompts[example-1].Prompt
			}

			result, err := app.GenerateContract.Run(cmd.Context(), usecase.GenerateContractParams{
				Prompt: prompt,
				Keep:   keep,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), map[string]string{"contract": result.Contract})
			}
			return renderer.Render(result)
		},
	}

	cmd.Flags().BoolVar(&examples, "examples", false, "List example prompts")
	cmd.Flags().IntVar(&example, "example", 0, "Use the example prompt with this number")
	cmd.Flags().BoolVar(&keep, "keep", true, "Keep the result for 'mosaic generated'")

	return cmd
}

// NewGeneratedCmd creates the generated command
func NewGeneratedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generated",
		Short: "Show, save or load the generated contract",
		Long: `Manage the contract text held from the last generation.

Available subcommands:
  generated          Show the held contract
  generated save     Save it as a .sol file
  generated load     Replace it with the contents of a file
  generated clear    Drop it

When run without subcommands, shows the held contract.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			held, err := app.ManageGenerated.Show(cmd.Context())
			if err != nil {
				return err
			}
			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), held)
			}
			return render.NewGenerateRenderer(cmd.OutOrStdout(), app.Highlighter).RenderHeld(held)
		},
	}

	cmd.AddCommand(newGeneratedSaveCmd())
	cmd.AddCommand(newGeneratedLoadCmd())
	cmd.AddCommand(newGeneratedClearCmd())

	return cmd
}

func newGeneratedSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [dir]",
		Short: "Save the held contract as a timestamped .sol file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.SaveGeneratedParams{}
			if len(args) > 0 {
				params.Dir = args[0]
			}
			result, err := app.ManageGenerated.Save(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), result)
			}
			return render.NewGenerateRenderer(cmd.OutOrStdout(), nil).RenderSaved(result)
		},
	}
}

func newGeneratedLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Load contract text from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ManageGenerated.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), map[string]any{"path": result.Path, "loaded": result.Loaded})
			}
			return render.NewGenerateRenderer(cmd.OutOrStdout(), nil).RenderLoaded(result)
		},
	}
}

func newGeneratedClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop the held contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			if err := app.ManageGenerated.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess("Generated contract cleared"))
			return nil
		},
	}
}
