package usecase

import (
	"context"

	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config     *config.LocalConfig
	ConfigPath string
	Exists     bool
	// Effective is the resolved runtime configuration after flags and env
	Effective *config.RuntimeConfig
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	runtime *config.RuntimeConfig
	store   LocalConfigRepository
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(runtime *config.RuntimeConfig, store LocalConfigRepository) *ShowConfig {
	return &ShowConfig{
		runtime: runtime,
		store:   store,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	exists := uc.store.Exists()

	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Config:     cfg,
		ConfigPath: uc.store.GetPath(),
		Exists:     exists,
		Effective:  uc.runtime,
	}, nil
}
