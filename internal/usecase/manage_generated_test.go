package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/mosaic/internal/adapters/fs"
	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

var savedName = regexp.MustCompile(`^Mantle_Contract_\d{4}-\d{2}-\d{2}T\d{2}_\d{2}_\d{2}_\d{3}Z\.sol$`)

func newManageGenerated(t *testing.T) (*usecase.ManageGenerated, *fs.GeneratedStoreAdapter) {
	t.Helper()
	cfg := &config.RuntimeConfig{
		DataDir:   t.TempDir(),
		Generator: config.GeneratorConfig{FilePrefix: "Mantle_Contract_"},
	}
	store := fs.NewGeneratedStoreAdapter(cfg)
	return usecase.NewManageGenerated(cfg, store, fs.NewFileWriterAdapter()), store
}

func TestManageGeneratedSave(t *testing.T) {
	ctx := context.Background()
	uc, store := newManageGenerated(t)

	_, err := uc.Save(ctx, usecase.SaveGeneratedParams{Dir: t.TempDir()})
	assert.ErrorIs(t, err, domain.ErrNothingToSave)

	require.NoError(t, store.Save(ctx, &domain.GenerationResult{Contract: "contract Token {}\n"}))

	dir := filepath.Join(t.TempDir(), "contracts")
	saved, err := uc.Save(ctx, usecase.SaveGeneratedParams{Dir: dir})
	require.NoError(t, err)
	assert.Regexp(t, savedName, saved.Filename)
	assert.Equal(t, filepath.Join(dir, saved.Filename), saved.Path)

	data, err := os.ReadFile(saved.Path)
	require.NoError(t, err)
	assert.Equal(t, "contract Token {}\n", string(data))
}

func TestManageGeneratedLoad(t *testing.T) {
	ctx := context.Background()
	uc, _ := newManageGenerated(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "Token.sol")
	require.NoError(t, os.WriteFile(path, []byte("contract Token {}"), 0644))

	loaded, err := uc.Load(ctx, path)
	require.NoError(t, err)
	assert.True(t, loaded.Loaded)

	held, err := uc.Show(ctx)
	require.NoError(t, err)
	require.NotNil(t, held)
	assert.Equal(t, "contract Token {}", held.Contract)
	assert.Equal(t, path, held.Source)

	// An empty file leaves the held contract alone
	empty := filepath.Join(dir, "Empty.sol")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	loaded, err = uc.Load(ctx, empty)
	require.NoError(t, err)
	assert.False(t, loaded.Loaded)
	assert.Equal(t, "contract Token {}", loaded.Result.Contract)

	_, err = uc.Load(ctx, filepath.Join(dir, "missing.sol"))
	assert.Error(t, err)

	require.NoError(t, uc.Clear(ctx))
	held, err = uc.Show(ctx)
	require.NoError(t, err)
	assert.Nil(t, held)
}
