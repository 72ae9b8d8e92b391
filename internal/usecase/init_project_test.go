package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/mosaic/internal/adapters/fs"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

func newInitProject(t *testing.T) (*usecase.InitProject, *config.RuntimeConfig) {
	t.Helper()
	root := t.TempDir()
	cfg := &config.RuntimeConfig{
		ProjectRoot: root,
		DataDir:     filepath.Join(root, ".mosaic"),
	}
	return usecase.NewInitProject(cfg, fs.NewFileWriterAdapter(), &recordingProgress{}), cfg
}

func TestInitProject(t *testing.T) {
	uc, cfg := newInitProject(t)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.True(t, result.DataDirCreated)
	assert.True(t, result.ConfigCreated)
	assert.True(t, result.NetworksCreated)
	assert.True(t, result.EnvExampleCreated)
	assert.False(t, result.AlreadyInitialized)
	require.Len(t, result.Steps, 4)
	for _, step := range result.Steps {
		assert.True(t, step.Success, step.Name)
		assert.NoError(t, step.Error)
	}

	configYAML, err := os.ReadFile(filepath.Join(cfg.DataDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(configYAML), "network: mantle-sepolia")

	assert.FileExists(t, filepath.Join(cfg.DataDir, "networks.toml"))

	env, err := os.ReadFile(filepath.Join(cfg.ProjectRoot, ".env.example"))
	require.NoError(t, err)
	assert.Contains(t, string(env), "MOSAIC_GENERATOR_API_KEY=")
}

func TestInitProjectKeepsExistingFiles(t *testing.T) {
	uc, cfg := newInitProject(t)

	configPath := filepath.Join(cfg.DataDir, "config.yaml")
	require.NoError(t, os.MkdirAll(cfg.DataDir, 0755))
	require.NoError(t, os.WriteFile(configPath, []byte("network: mantle\n"), 0644))

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, result.AlreadyInitialized)
	assert.Equal(t, "already exists", result.Steps[1].Message)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "network: mantle\n", string(data))
}

func TestInitProjectDataDirFailure(t *testing.T) {
	uc, cfg := newInitProject(t)

	// A file where the data dir should be
	require.NoError(t, os.WriteFile(cfg.DataDir, []byte("x"), 0644))

	result, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.False(t, result.DataDirCreated)
	require.Len(t, result.Steps, 1)
	assert.False(t, result.Steps[0].Success)
}
