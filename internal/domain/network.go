package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// NativeCurrency describes the gas token of a chain
type NativeCurrency struct {
	Name     string `toml:"name" json:"name"`
	Symbol   string `toml:"symbol" json:"symbol"`
	Decimals int    `toml:"decimals" json:"decimals"`
}

// NetworkDescriptor identifies a target chain to a wallet. The JSON form is
// the wallet_addEthereumChain parameter object.
type NetworkDescriptor struct {
	// Name is the local lookup key (e.g. "mantle-sepolia")
	Name    string `toml:"-" json:"-"`
	Testnet bool   `toml:"testnet" json:"-"`

	ChainID           string         `toml:"chain_id" json:"chainId"`
	ChainName         string         `toml:"chain_name" json:"chainName"`
	NativeCurrency    NativeCurrency `toml:"native_currency" json:"nativeCurrency"`
	RPCURLs           []string       `toml:"rpc_urls" json:"rpcUrls"`
	BlockExplorerURLs []string       `toml:"block_explorer_urls" json:"blockExplorerUrls"`
}

// ChainIDUint64 decodes the hex chain id
func (n *NetworkDescriptor) ChainIDUint64() (uint64, error) {
	id, err := hexutil.DecodeUint64(n.ChainID)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidChainID, n.ChainID, err)
	}
	return id, nil
}

// RPCURL returns the first RPC endpoint, or an empty string
func (n *NetworkDescriptor) RPCURL() string {
	if len(n.RPCURLs) == 0 {
		return ""
	}
	return n.RPCURLs[0]
}

// ExplorerAddressURL builds the block-explorer link for a contract address
func (n *NetworkDescriptor) ExplorerAddressURL(address string) string {
	if len(n.BlockExplorerURLs) == 0 {
		return ""
	}
	return strings.TrimRight(n.BlockExplorerURLs[0], "/") + "/address/" + address
}

// Validate checks that the descriptor carries everything a wallet needs
func (n *NetworkDescriptor) Validate() error {
	if _, err := n.ChainIDUint64(); err != nil {
		return err
	}
	if n.ChainName == "" {
		return fmt.Errorf("network %s: chain_name is required", n.Name)
	}
	if len(n.RPCURLs) == 0 {
		return fmt.Errorf("network %s: at least one rpc url is required", n.Name)
	}
	if len(n.BlockExplorerURLs) == 0 {
		return fmt.Errorf("network %s: at least one block explorer url is required", n.Name)
	}
	return nil
}

// Label returns a short human name, e.g. "Testnet" or "Mainnet"
func (n *NetworkDescriptor) Label() string {
	if n.Testnet {
		return "Testnet"
	}
	return "Mainnet"
}
