package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/mosaic/internal/adapters/compiler"
	"github.com/trebuchet-org/mosaic/internal/adapters/fs"
	"github.com/trebuchet-org/mosaic/internal/adapters/template"
	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

var ctxMatcher = mock.MatchedBy(func(context.Context) bool { return true })

func TestAssembleSource(t *testing.T) {
	ctx := context.Background()
	cfg := &config.RuntimeConfig{Assembler: config.AssemblerConfig{Boilerplate: true}}
	selections := newMemorySelections(
		&domain.ComponentDefinition{ID: "access", Template: "address public owner;"},
		&domain.ComponentDefinition{ID: "erc20", Template: "string public name;"},
	)
	uc := usecase.NewAssembleSource(selections, template.NewSourceAssemblerAdapter(cfg), compiler.NewDemo(), fs.NewFileWriterAdapter())

	t.Run("preview only", func(t *testing.T) {
		result, err := uc.Run(ctx, usecase.AssembleSourceParams{})
		require.NoError(t, err)
		assert.Less(t, strings.Index(result.Source, "owner"), strings.Index(result.Source, "name"))
		assert.Empty(t, result.WrittenTo)
		assert.Nil(t, result.Compiled)
	})

	t.Run("write and compile", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "src", "GeneratedContract.sol")
		result, err := uc.Run(ctx, usecase.AssembleSourceParams{OutPath: out, Compile: true})
		require.NoError(t, err)
		assert.Equal(t, out, result.WrittenTo)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, result.Source+"\n", string(data))

		require.NotNil(t, result.Compiled)
		assert.Equal(t, "demo", result.Compiled.Source)
	})
}
