package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mosaic/internal/cli/render"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

func configKeyList() string {
	keys := make([]string, 0, len(config.ValidConfigKeys()))
	for _, k := range config.ValidConfigKeys() {
		keys = append(keys, string(k))
	}
	return strings.Join(keys, ", ")
}

// NewConfigCmd creates the config command. Without a subcommand it shows the
// local defaults and the effective settings.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mosaic local config",
		Long: `Show or change the per-project defaults kept in .mosaic/config.local.json.
They apply whenever the matching flag or MOSAIC_ variable is not given.

Keys: ` + configKeyList() + ` (network may be written as net)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	}

	cmd.AddCommand(NewConfigSetCmd(), NewConfigRemoveCmd())
	return cmd
}

// NewConfigSetCmd creates the config set subcommand
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Example: `  mosaic config set network mantle
  mosaic config set wallet rpc
  mosaic config set generator gemini`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.SetConfig.Run(cmd.Context(), usecase.SetConfigParams{Key: args[0], Value: args[1]})
			if err != nil {
				return err
			}
			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderSet(result)
		},
	}
}

// NewConfigRemoveCmd creates the config remove subcommand. The value from
// config.yaml or the built-in default applies again afterwards.
func NewConfigRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <key>",
		Aliases: []string{"unset"},
		Short:   "Remove a config value",
		Example: "  mosaic config remove wallet",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			result, err := app.RemoveConfig.Run(cmd.Context(), usecase.RemoveConfigParams{Key: args[0]})
			if err != nil {
				return err
			}
			return render.NewConfigRenderer(cmd.OutOrStdout()).RenderRemove(result)
		},
	}
}

func showConfig(cmd *cobra.Command) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.ShowConfig.Run(cmd.Context())
	if err != nil {
		return err
	}
	if app.Config.JSON {
		return render.WriteJSON(cmd.OutOrStdout(), result.Config)
	}
	return render.NewConfigRenderer(cmd.OutOrStdout()).RenderConfig(result)
}
