package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mosaic/internal/cli/builder"
	"github.com/trebuchet-org/mosaic/internal/cli/render"
	"github.com/trebuchet-org/mosaic/internal/domain"
)

// NewComposeCmd creates the compose command
func NewComposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compose",
		Short: "Open the interactive contract builder",
		Long: `Open a full-screen builder with the component library, the selection and a
live preview of the assembled contract. Edits are written back to the
selection when leaving with 'w'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			if app.Config.NonInteractive {
				return fmt.Errorf("compose needs an interactive terminal, use add/remove/move instead")
			}

			selection, err := app.Selections.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load selection: %w", err)
			}
			library := app.Catalog.List(cmd.Context(), domain.ComponentQuery{})

			final, err := builder.Run(
				builder.New(library, selection, app.Assembler),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !final.Saved() {
				if final.Modified() {
					fmt.Fprintln(out, render.FormatWarning("Builder closed without saving, selection unchanged"))
				}
				return nil
			}

			if err := app.Selections.Save(cmd.Context(), final.Selection()); err != nil {
				return fmt.Errorf("failed to save selection: %w", err)
			}
			fmt.Fprintln(out, render.FormatSuccess(fmt.Sprintf("Saved selection of %d components", final.Selection().Len())))
			render.RenderList(out, final.Selection().Entries())
			return nil
		},
	}
}
