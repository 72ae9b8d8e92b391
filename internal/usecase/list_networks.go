package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Check dials each network's RPC and compares the reported chain id
	Check bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Default  string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Network *domain.NetworkDescriptor
	ChainID uint64
	Checked bool
	Latency time.Duration
	Error   error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	config     *config.RuntimeConfig
	registry   NetworkRegistry
	newChecker func() BlockchainChecker
}

// NewListNetworks creates a new ListNetworks use case. newChecker builds a
// fresh checker per network since a checker holds one connection.
func NewListNetworks(cfg *config.RuntimeConfig, registry NetworkRegistry, newChecker func() BlockchainChecker) *ListNetworks {
	return &ListNetworks{
		config:     cfg,
		registry:   registry,
		newChecker: newChecker,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	descriptors := uc.registry.List(ctx)

	networks := make([]NetworkStatus, len(descriptors))
	for i, desc := range descriptors {
		networks[i].Network = desc
		chainID, err := desc.ChainIDUint64()
		if err != nil {
			networks[i].Error = err
			continue
		}
		networks[i].ChainID = chainID
	}

	if params.Check {
		g, gctx := errgroup.WithContext(ctx)
		for i := range networks {
			status := &networks[i]
			if status.Error != nil {
				continue
			}
			g.Go(func() error {
				start := time.Now()
				err := uc.newChecker().Connect(gctx, status.Network.RPCURL(), status.ChainID)
				status.Checked = true
				status.Latency = time.Since(start)
				if err != nil {
					status.Error = fmt.Errorf("%w: %w", domain.ErrNetwork, err)
				}
				// Per-network failures are reported, not fatal.
				return nil
			})
		}
		_ = g.Wait()
	}

	return &ListNetworksResult{
		Networks: networks,
		Default:  uc.config.Network,
	}, nil
}
