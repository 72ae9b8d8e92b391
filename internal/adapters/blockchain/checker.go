package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/trebuchet-org/mosaic/internal/usecase"
)

const checkTimeout = 5 * time.Second

// CheckerAdapter implements the BlockchainChecker interface using ethclient
type CheckerAdapter struct {
	client  *ethclient.Client
	chainID uint64
}

// NewCheckerAdapter creates a new blockchain checker adapter
func NewCheckerAdapter() *CheckerAdapter {
	return &CheckerAdapter{}
}

// Connect dials rpcURL and verifies it serves chainID. A zero chainID
// accepts whatever the node reports.
func (c *CheckerAdapter) Connect(ctx context.Context, rpcURL string, chainID uint64) error {
	if rpcURL == "" {
		return fmt.Errorf("no RPC URL configured")
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}

	networkChainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return fmt.Errorf("failed to get chain ID: %w", err)
	}

	if chainID != 0 && networkChainID.Uint64() != chainID {
		client.Close()
		return fmt.Errorf("chain ID mismatch: expected %d, got %d", chainID, networkChainID.Uint64())
	}

	if c.client != nil {
		c.client.Close()
	}
	c.client = client
	c.chainID = networkChainID.Uint64()
	return nil
}

// CheckDeploymentExists checks if contract code exists at the given address
func (c *CheckerAdapter) CheckDeploymentExists(ctx context.Context, address string) (exists bool, reason string, err error) {
	if c.client == nil {
		return false, "", fmt.Errorf("not connected to blockchain")
	}
	if !common.IsHexAddress(address) {
		return false, "", fmt.Errorf("invalid address %q", address)
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	code, err := c.client.CodeAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return false, fmt.Sprintf("failed to check code: %v", err), nil
	}

	if len(code) == 0 {
		return false, "no code at address", nil
	}

	return true, "", nil
}

// ChainID returns the chain id of the connected node
func (c *CheckerAdapter) ChainID() uint64 {
	return c.chainID
}

var _ usecase.BlockchainChecker = (*CheckerAdapter)(nil)
