package network

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

//go:embed networks.toml
var builtinNetworks string

type networksFile struct {
	Networks map[string]*domain.NetworkDescriptor `toml:"networks"`
}

// Registry resolves network descriptors by name or chain id
type Registry struct {
	networks      map[string]*domain.NetworkDescriptor // lower-cased name -> descriptor
	chainIDLookup map[uint64]string
}

// NewRegistry loads the built-in networks and merges cfg.NetworksPath when set.
// Entries from the file replace built-ins of the same name.
func NewRegistry(cfg *config.RuntimeConfig) (*Registry, error) {
	r := &Registry{
		networks:      make(map[string]*domain.NetworkDescriptor),
		chainIDLookup: make(map[uint64]string),
	}

	var builtin networksFile
	if _, err := toml.Decode(builtinNetworks, &builtin); err != nil {
		return nil, fmt.Errorf("failed to parse built-in networks: %w", err)
	}
	if err := r.load(builtin.Networks); err != nil {
		return nil, err
	}

	if cfg.NetworksPath != "" {
		var extra networksFile
		if _, err := toml.DecodeFile(cfg.NetworksPath, &extra); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", cfg.NetworksPath, err)
		}
		if err := r.load(extra.Networks); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.NetworksPath, err)
		}
	}

	return r, nil
}

func (r *Registry) load(networks map[string]*domain.NetworkDescriptor) error {
	for name, desc := range networks {
		desc.Name = name
		if err := desc.Validate(); err != nil {
			return err
		}
		chainID, _ := desc.ChainIDUint64()
		r.networks[strings.ToLower(name)] = desc
		r.chainIDLookup[chainID] = name
	}
	return nil
}

// Get resolves a network by name (case-insensitive) or by decimal or hex chain id
func (r *Registry) Get(_ context.Context, input string) (*domain.NetworkDescriptor, error) {
	if input == "" {
		return nil, fmt.Errorf("%w: network not specified", domain.ErrNetworkNotFound)
	}

	if desc, ok := r.networks[strings.ToLower(input)]; ok {
		return desc, nil
	}

	if chainID, err := strconv.ParseUint(input, 0, 64); err == nil {
		if name, ok := r.chainIDLookup[chainID]; ok {
			return r.networks[strings.ToLower(name)], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrNetworkNotFound, input)
}

// List returns every network, mainnets first, then by name
func (r *Registry) List(_ context.Context) []*domain.NetworkDescriptor {
	out := make([]*domain.NetworkDescriptor, 0, len(r.networks))
	for _, desc := range r.networks {
		out = append(out, desc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Testnet != out[j].Testnet {
			return !out[i].Testnet
		}
		return out[i].Name < out[j].Name
	})
	return out
}

var _ usecase.NetworkRegistry = (*Registry)(nil)
