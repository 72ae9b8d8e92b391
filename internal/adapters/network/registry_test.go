package network

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

func TestRegistryGet(t *testing.T) {
	r, err := NewRegistry(&config.RuntimeConfig{})
	require.NoError(t, err)

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "mantle", want: "mantle"},
		{input: "Mantle", want: "mantle"},
		{input: "MANTLE-SEPOLIA", want: "mantle-sepolia"},
		{input: "5000", want: "mantle"},
		{input: "0x1388", want: "mantle"},
		{input: "5003", want: "mantle-sepolia"},
		{input: "0x138b", want: "mantle-sepolia"},
		{input: "", wantErr: true},
		{input: "1", wantErr: true},
		{input: "goerli", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			desc, err := r.Get(context.Background(), tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrNetworkNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, desc.Name)
		})
	}
}

func TestBuiltinNetworks(t *testing.T) {
	r, err := NewRegistry(&config.RuntimeConfig{})
	require.NoError(t, err)

	mainnet, err := r.Get(context.Background(), "mantle")
	require.NoError(t, err)
	assert.Equal(t, "0x1388", mainnet.ChainID)
	assert.Equal(t, "MNT", mainnet.NativeCurrency.Symbol)
	assert.Equal(t, 18, mainnet.NativeCurrency.Decimals)
	assert.Equal(t, []string{"https://rpc.mantle.xyz"}, mainnet.RPCURLs)
	assert.False(t, mainnet.Testnet)

	testnet, err := r.Get(context.Background(), "mantle-sepolia")
	require.NoError(t, err)
	assert.Equal(t, "Mantle Sepolia Testnet", testnet.ChainName)
	assert.True(t, testnet.Testnet)

	list := r.List(context.Background())
	require.Len(t, list, 2)
	assert.Equal(t, "mantle", list[0].Name)
	assert.Equal(t, "mantle-sepolia", list[1].Name)
}

func TestNetworksFile(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "networks.toml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("overrides and extends", func(t *testing.T) {
		path := write(t, `
[networks.mantle]
chain_id = "0x1388"
chain_name = "Mantle"
rpc_urls = ["https://mantle.example.org"]
block_explorer_urls = ["https://mantlescan.xyz"]

[networks.local]
chain_id = "0x7a69"
chain_name = "Anvil"
rpc_urls = ["http://127.0.0.1:8545"]
block_explorer_urls = ["http://127.0.0.1:8545"]
testnet = true
`)
		r, err := NewRegistry(&config.RuntimeConfig{NetworksPath: path})
		require.NoError(t, err)

		mainnet, err := r.Get(context.Background(), "5000")
		require.NoError(t, err)
		assert.Equal(t, "https://mantle.example.org", mainnet.RPCURL())

		local, err := r.Get(context.Background(), "31337")
		require.NoError(t, err)
		assert.Equal(t, "local", local.Name)

		var names []string
		for _, n := range r.List(context.Background()) {
			names = append(names, n.Name)
		}
		assert.Equal(t, []string{"mantle", "local", "mantle-sepolia"}, names)
	})

	t.Run("invalid descriptor", func(t *testing.T) {
		path := write(t, `
[networks.broken]
chain_id = "0x1"
rpc_urls = ["http://127.0.0.1:8545"]
block_explorer_urls = ["http://127.0.0.1:8545"]
`)
		_, err := NewRegistry(&config.RuntimeConfig{NetworksPath: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chain_name is required")
	})

	t.Run("invalid chain id", func(t *testing.T) {
		path := write(t, `
[networks.broken]
chain_id = "5000"
chain_name = "Broken"
rpc_urls = ["http://127.0.0.1:8545"]
block_explorer_urls = ["http://127.0.0.1:8545"]
`)
		_, err := NewRegistry(&config.RuntimeConfig{NetworksPath: path})
		assert.ErrorIs(t, err, domain.ErrInvalidChainID)
	})
}
