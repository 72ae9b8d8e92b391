package cli

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mosaic/internal/cli/render"
	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// selectionJSON is the --json form of a selection result
type selectionJSON struct {
	Components []string `json:"components"`
	Source     string   `json:"source"`
	Changed    bool     `json:"changed"`
}

// NewComponentsCmd creates the components command
func NewComponentsCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:     "components",
		Aliases: []string{"ls"},
		Short:   "List the component library",
		Long: `List the prebuilt components that can be added to the contract.

Examples:
  mosaic components
  mosaic components --search token`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListComponents.Run(cmd.Context(), usecase.ListComponentsParams{Search: search})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.WriteJSON(cmd.OutOrStdout(), result.Components)
			}
			return render.NewComponentsRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Fuzzy filter on id, name and description")

	return cmd
}

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [component-id...]",
		Short: "Append components to the selection",
		Long: `Append one or more components to the end of the selection. The same
component may be added more than once. Without arguments an interactive
picker is shown.

Examples:
  mosaic add erc20
  mosaic add access erc20 meta-tx
  mosaic add`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelection(cmd, usecase.ManageSelectionParams{
				Operation: usecase.SelectionAppend,
				IDs:       args,
			}, false)
		},
	}
}

// NewRemoveCmd creates the remove command
func NewRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <position>",
		Aliases: []string{"rm"},
		Short:   "Remove the component at a position",
		Long: `Remove the component at the given position (1-based, as shown by
'mosaic show'). A position outside the selection leaves it unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			return runSelection(cmd, usecase.ManageSelectionParams{
				Operation: usecase.SelectionRemove,
				Index:     index,
			}, false)
		},
	}
}

// NewMoveCmd creates the move command
func NewMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "move <from> <to>",
		Aliases: []string{"mv"},
		Short:   "Move a component to another position",
		Long: `Move the component at <from> so that it ends up at <to>. Positions are
1-based. A target past the end moves the component to the end.

Examples:
  mosaic move 3 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			to, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			return runSelection(cmd, usecase.ManageSelectionParams{
				Operation: usecase.SelectionMove,
				From:      from,
				To:        to,
			}, false)
		},
	}
}

// NewClearCmd creates the clear command
func NewClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every component from the selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelection(cmd, usecase.ManageSelectionParams{
				Operation: usecase.SelectionClear,
			}, false)
		},
	}
}

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var showSource bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the selection and its assembled source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelection(cmd, usecase.ManageSelectionParams{
				Operation: usecase.SelectionShow,
			}, showSource)
		},
	}

	cmd.Flags().BoolVar(&showSource, "source", true, "Print the assembled contract source")

	return cmd
}

func runSelection(cmd *cobra.Command, params usecase.ManageSelectionParams, showSource bool) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.ManageSelection.Execute(cmd.Context(), params)
	if err != nil {
		return err
	}

	if app.Config.JSON {
		return render.WriteJSON(cmd.OutOrStdout(), selectionJSON{
			Components: lo.Map(result.Components, func(d *domain.ComponentDefinition, _ int) string { return d.ID }),
			Source:     result.Source,
			Changed:    result.Changed,
		})
	}
	return render.NewSelectionRenderer(cmd.OutOrStdout(), app.Highlighter, showSource).Render(result)
}

// parsePosition converts a 1-based position argument into an index
func parsePosition(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid position %q: must be a number starting at 1", arg)
	}
	return n - 1, nil
}
