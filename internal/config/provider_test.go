package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestProviderDefaults(t *testing.T) {
	root := t.TempDir()

	cfg, err := Provider(SetupViper(root, nil))
	require.NoError(t, err)

	assert.Equal(t, root, cfg.ProjectRoot)
	assert.Equal(t, filepath.Join(root, DataDirName), cfg.DataDir)
	assert.Equal(t, "mantle-sepolia", cfg.Network)
	assert.Equal(t, 5*time.Minute, cfg.Timeout)
	assert.Empty(t, cfg.CatalogPath)

	assert.Equal(t, config.AssemblerConfig{
		ContractName: "GeneratedContract",
		Pragma:       "^0.8.19",
		License:      "MIT",
		Boilerplate:  true,
	}, cfg.Assembler)

	assert.Equal(t, config.GeneratorOpenAI, cfg.Generator.Provider)
	assert.Equal(t, "https://llama8b.gaia.domains/v1", cfg.Generator.BaseURL)
	assert.Equal(t, "llama", cfg.Generator.Model)
	assert.Equal(t, 2000, cfg.Generator.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Generator.Temperature, 1e-9)
	assert.Equal(t, "Mantle_Contract_", cfg.Generator.FilePrefix)

	assert.Equal(t, config.WalletNone, cfg.Wallet.Kind)
	assert.False(t, cfg.Wallet.AutoApprove)
	assert.Equal(t, config.CompilerDemo, cfg.Compiler.Mode)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestProviderPrecedence(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, DataDirName, "config.yaml"), `
network: mantle
generator:
  model: from-yaml
  provider: gemini
catalog_path: components.yaml
server:
  allowed_origins: ["http://localhost:3000"]
`)
	// Saved by `mosaic config set`, wins over config.yaml
	writeFile(t, filepath.Join(root, DataDirName, "config.local.json"), `{"network": "mantle-sepolia", "generator": "route"}`)

	t.Run("local config over yaml", func(t *testing.T) {
		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)
		assert.Equal(t, "mantle-sepolia", cfg.Network)
		assert.Equal(t, config.GeneratorRoute, cfg.Generator.Provider)
		assert.Equal(t, "from-yaml", cfg.Generator.Model)
		assert.Equal(t, filepath.Join(root, "components.yaml"), cfg.CatalogPath)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	})

	t.Run("environment over files", func(t *testing.T) {
		t.Setenv("MOSAIC_NETWORK", "mantle")
		t.Setenv("MOSAIC_GENERATOR_MODEL", "from-env")

		cfg, err := Provider(SetupViper(root, nil))
		require.NoError(t, err)
		assert.Equal(t, "mantle", cfg.Network)
		assert.Equal(t, "from-env", cfg.Generator.Model)
	})

	t.Run("flags over everything", func(t *testing.T) {
		t.Setenv("MOSAIC_NETWORK", "mantle")

		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().String("network", "", "")
		cmd.Flags().String("model", "", "")
		cmd.Flags().Int("port", 8080, "")
		require.NoError(t, cmd.Flags().Set("network", "5003"))
		require.NoError(t, cmd.Flags().Set("model", "from-flag"))

		cfg, err := Provider(SetupViper(root, cmd))
		require.NoError(t, err)
		assert.Equal(t, "5003", cfg.Network)
		assert.Equal(t, "from-flag", cfg.Generator.Model)
		// Unchanged flags do not shadow lower layers
		assert.Equal(t, 8080, cfg.Server.Port)
	})
}

func TestProviderDotEnv(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".env"), "MOSAIC_GENERATOR_API_KEY=from-dotenv\n")
	t.Cleanup(func() { os.Unsetenv("MOSAIC_GENERATOR_API_KEY") })

	cfg, err := Provider(SetupViper(root, nil))
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Generator.APIKey)
}

func TestProviderValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "unknown generator",
			env:     map[string]string{"MOSAIC_GENERATOR_PROVIDER": "claude"},
			wantErr: `unknown generator provider "claude"`,
		},
		{
			name:    "unknown wallet",
			env:     map[string]string{"MOSAIC_WALLET_KIND": "metamask"},
			wantErr: `unknown wallet kind "metamask"`,
		},
		{
			name:    "key wallet without key",
			env:     map[string]string{"MOSAIC_WALLET_KIND": "key"},
			wantErr: "requires MOSAIC_WALLET_PRIVATE_KEY",
		},
		{
			name:    "unknown compiler",
			env:     map[string]string{"MOSAIC_COMPILER_MODE": "hardhat"},
			wantErr: `unknown compiler mode "hardhat"`,
		},
		{
			name: "key wallet with key",
			env: map[string]string{
				"MOSAIC_WALLET_KIND":        "key",
				"MOSAIC_WALLET_PRIVATE_KEY": "0x01",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Provider(SetupViper(t.TempDir(), nil))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNonInteractiveAutoApproves(t *testing.T) {
	t.Setenv("MOSAIC_NON_INTERACTIVE", "true")

	cfg, err := Provider(SetupViper(t.TempDir(), nil))
	require.NoError(t, err)
	assert.True(t, cfg.NonInteractive)
	assert.True(t, cfg.Wallet.AutoApprove)
}

func TestFindProjectRoot(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, DataDirName), 0755))
	nested := filepath.Join(root, "contracts", "src")
	require.NoError(t, os.MkdirAll(nested, 0755))

	t.Chdir(nested)
	found, err := FindProjectRoot()
	require.NoError(t, err)
	assert.Equal(t, root, found)

	outside, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Chdir(outside)
	found, err = FindProjectRoot()
	require.NoError(t, err)
	assert.Equal(t, outside, found)
}
