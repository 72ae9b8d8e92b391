package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

func orNotSet(value string) string {
	if value == "" {
		return faintStyle.Sprint("(not set)")
	}
	return value
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintf(r.out, "No .mosaic/config.local.json file found, using defaults\n")
	} else {
		fmt.Fprintln(r.out, "📋 Current config:")
		fmt.Fprintf(r.out, "Network:   %s\n", orNotSet(result.Config.Network))
		fmt.Fprintf(r.out, "Wallet:    %s\n", orNotSet(result.Config.Wallet))
		fmt.Fprintf(r.out, "Generator: %s\n", orNotSet(result.Config.Generator))
		fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))
	}

	if eff := result.Effective; eff != nil {
		fmt.Fprintln(r.out)
		headerStyle.Fprintln(r.out, "Effective settings:")
		t := newTable(r.out)
		t.AppendRow([]any{"network", eff.Network})
		t.AppendRow([]any{"wallet", eff.Wallet.Kind})
		t.AppendRow([]any{"generator", fmt.Sprintf("%s (%s)", eff.Generator.Provider, eff.Generator.Model)})
		t.AppendRow([]any{"compiler", eff.Compiler.Mode})
		t.AppendRow([]any{"data dir", getRelativePath(eff.DataDir)})
		t.Render()
	}
	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case config.ConfigKeyNetwork:
		fmt.Fprintf(r.out, "✅ Removed network from config (the default network applies)\n")
	default:
		fmt.Fprintf(r.out, "✅ Removed %s from config\n", result.Key)
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
