package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	Value         string
}

// SetConfig is a use case for setting configuration values
type SetConfig struct {
	store    LocalConfigRepository
	networks NetworkRegistry
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(store LocalConfigRepository, networks NetworkRegistry) *SetConfig {
	return &SetConfig{
		store:    store,
		networks: networks,
	}
}

// Run executes the set config use case
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	key, err := parseConfigKey(params.Key)
	if err != nil {
		return nil, err
	}
	if err := uc.validate(ctx, key, params.Value); err != nil {
		return nil, err
	}

	cfg, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Set(key, params.Value)

	if err := uc.store.Save(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &SetConfigResult{
		UpdatedConfig: cfg,
		ConfigPath:    uc.store.GetPath(),
		Key:           key,
		Value:         params.Value,
	}, nil
}

func (uc *SetConfig) validate(ctx context.Context, key config.ConfigKey, value string) error {
	switch key {
	case config.ConfigKeyNetwork:
		if _, err := uc.networks.Get(ctx, value); err != nil {
			return err
		}
	case config.ConfigKeyWallet:
		kinds := []string{string(config.WalletNone), string(config.WalletRPC), string(config.WalletKey)}
		if !lo.Contains(kinds, value) {
			return fmt.Errorf("invalid wallet %q: must be one of %s", value, strings.Join(kinds, ", "))
		}
	case config.ConfigKeyGenerator:
		providers := []string{string(config.GeneratorOpenAI), string(config.GeneratorGemini), string(config.GeneratorRoute)}
		if !lo.Contains(providers, value) {
			return fmt.Errorf("invalid generator %q: must be one of %s", value, strings.Join(providers, ", "))
		}
	}
	return nil
}

// parseConfigKey validates and normalizes a user supplied key
func parseConfigKey(raw string) (config.ConfigKey, error) {
	key := strings.ToLower(raw)
	if !config.IsValidConfigKey(key) {
		validKeys := lo.Map(config.ValidConfigKeys(), func(k config.ConfigKey, _ int) string {
			if k == config.ConfigKeyNetwork {
				return string(k) + " (net)"
			}
			return string(k)
		})
		return "", fmt.Errorf("unknown config key: %s\nAvailable keys: %s", raw, strings.Join(validKeys, ", "))
	}
	return config.NormalizeConfigKey(key), nil
}
