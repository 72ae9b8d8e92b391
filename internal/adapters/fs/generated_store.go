package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// GeneratedStoreAdapter holds the latest generated contract in the data dir
type GeneratedStoreAdapter struct {
	path string
}

// NewGeneratedStoreAdapter creates a new GeneratedStoreAdapter
func NewGeneratedStoreAdapter(cfg *config.RuntimeConfig) *GeneratedStoreAdapter {
	return &GeneratedStoreAdapter{
		path: filepath.Join(cfg.DataDir, "generated.json"),
	}
}

// Load returns the held result, or an empty one when nothing is held
func (s *GeneratedStoreAdapter) Load(_ context.Context) (*domain.GenerationResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &domain.GenerationResult{}, nil
		}
		return nil, fmt.Errorf("failed to read generated contract: %w", err)
	}

	var result domain.GenerationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse generated contract: %w", err)
	}
	return &result, nil
}

// Save replaces the held result
func (s *GeneratedStoreAdapter) Save(_ context.Context, result *domain.GenerationResult) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal generated contract: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write generated contract: %w", err)
	}
	return nil
}

// Clear drops the held result
func (s *GeneratedStoreAdapter) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear generated contract: %w", err)
	}
	return nil
}

var _ usecase.GenerationRepository = (*GeneratedStoreAdapter)(nil)
