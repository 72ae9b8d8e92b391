package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

func ids(defs []*domain.ComponentDefinition) []string {
	return lo.Map(defs, func(d *domain.ComponentDefinition, _ int) string { return d.ID })
}

func TestBuiltinCatalog(t *testing.T) {
	c, err := NewCatalog(&config.RuntimeConfig{})
	require.NoError(t, err)

	all := c.List(context.Background(), domain.ComponentQuery{})
	assert.Equal(t, []string{"meta-tx", "erc20", "access", "bridge-adapter", "gas-optimizer", "token-ratio", "nft"}, ids(all))

	for _, def := range all {
		assert.NotEmpty(t, def.Name, def.ID)
		assert.NotEmpty(t, def.Description, def.ID)
		assert.NotEmpty(t, def.Template, def.ID)
	}
}

func TestGet(t *testing.T) {
	c, err := NewCatalog(&config.RuntimeConfig{})
	require.NoError(t, err)

	def, err := c.Get(context.Background(), "erc20")
	require.NoError(t, err)
	assert.Equal(t, "ERC20 Token", def.Name)

	_, err = c.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrComponentNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListSearchKeepsCatalogOrder(t *testing.T) {
	c, err := NewCatalogFromDefinitions(
		&domain.ComponentDefinition{ID: "x-token-extra", Name: "Extra"},
		&domain.ComponentDefinition{ID: "other", Name: "Other"},
		&domain.ComponentDefinition{ID: "token", Name: "Token"},
	)
	require.NoError(t, err)

	got := c.List(context.Background(), domain.ComponentQuery{Search: "  TOKEN "})
	assert.Equal(t, []string{"x-token-extra", "token"}, ids(got))

	got = c.List(context.Background(), domain.ComponentQuery{Search: "zzz"})
	assert.Empty(t, got)
}

func TestListReturnsCopy(t *testing.T) {
	c, err := NewCatalogFromDefinitions(
		&domain.ComponentDefinition{ID: "a"},
		&domain.ComponentDefinition{ID: "b"},
	)
	require.NoError(t, err)

	first := c.List(context.Background(), domain.ComponentQuery{})
	first[0] = nil

	assert.Equal(t, []string{"a", "b"}, ids(c.List(context.Background(), domain.ComponentQuery{})))
}

func TestNewCatalogFromDefinitions(t *testing.T) {
	tests := []struct {
		name    string
		defs    []*domain.ComponentDefinition
		wantErr string
	}{
		{
			name: "name defaults to id",
			defs: []*domain.ComponentDefinition{{ID: "plain"}},
		},
		{
			name:    "duplicate id",
			defs:    []*domain.ComponentDefinition{{ID: "a"}, {ID: "a"}},
			wantErr: `duplicate component id "a"`,
		},
		{
			name:    "missing id",
			defs:    []*domain.ComponentDefinition{{ID: "  "}},
			wantErr: "component without id",
		},
		{
			name:    "nil definition",
			defs:    []*domain.ComponentDefinition{nil},
			wantErr: "component without id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalogFromDefinitions(tt.defs...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			def, err := c.Get(context.Background(), "plain")
			require.NoError(t, err)
			assert.Equal(t, "plain", def.Name)
		})
	}
}

func TestCatalogFile(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "components.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("extends the built-in catalog", func(t *testing.T) {
		path := write(t, `components:
  - id: pausable
    name: Pausable
    description: Emergency stop
    template: |
      bool public paused;
`)
		c, err := NewCatalog(&config.RuntimeConfig{CatalogPath: path})
		require.NoError(t, err)

		all := c.List(context.Background(), domain.ComponentQuery{})
		assert.Equal(t, "pausable", all[len(all)-1].ID)
		def, err := c.Get(context.Background(), "pausable")
		require.NoError(t, err)
		assert.Equal(t, "bool public paused;\n", def.Template)
	})

	t.Run("cannot redefine a built-in", func(t *testing.T) {
		path := write(t, "components:\n  - id: erc20\n")
		_, err := NewCatalog(&config.RuntimeConfig{CatalogPath: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate component id")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := write(t, "components: [")
		_, err := NewCatalog(&config.RuntimeConfig{CatalogPath: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewCatalog(&config.RuntimeConfig{CatalogPath: filepath.Join(t.TempDir(), "nope.yaml")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read catalog")
	})
}
