package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

// ManageGenerated shows, saves, loads and clears the held generated contract
type ManageGenerated struct {
	config     *config.RuntimeConfig
	store      GenerationRepository
	fileWriter FileWriter
	now        func() time.Time
}

// NewManageGenerated creates a new ManageGenerated use case
func NewManageGenerated(cfg *config.RuntimeConfig, store GenerationRepository, fileWriter FileWriter) *ManageGenerated {
	return &ManageGenerated{
		config:     cfg,
		store:      store,
		fileWriter: fileWriter,
		now:        time.Now,
	}
}

// SaveGeneratedParams contains parameters for saving the held contract
type SaveGeneratedParams struct {
	Dir string // defaults to the current directory
}

// SaveGeneratedResult contains the written file
type SaveGeneratedResult struct {
	Path     string
	Filename string
}

// LoadGeneratedResult reports what a load did
type LoadGeneratedResult struct {
	Path   string
	Loaded bool // false when the file was empty and nothing changed
	Result *domain.GenerationResult
}

// Show returns the held contract, or nil when nothing is held
func (uc *ManageGenerated) Show(ctx context.Context) (*domain.GenerationResult, error) {
	result, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load generated contract: %w", err)
	}
	if result.IsEmpty() {
		return nil, nil
	}
	return result, nil
}

// Save writes the held contract to a timestamped .sol file
func (uc *ManageGenerated) Save(ctx context.Context, params SaveGeneratedParams) (*SaveGeneratedResult, error) {
	held, err := uc.Show(ctx)
	if err != nil {
		return nil, err
	}
	if held == nil {
		return nil, domain.ErrNothingToSave
	}

	dir := params.Dir
	if dir == "" {
		dir = "."
	}
	if err := uc.fileWriter.EnsureDirectory(ctx, dir); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	filename := domain.SavedContractFilename(uc.config.Generator.FilePrefix, uc.now())
	path := filepath.Join(dir, filename)
	if err := uc.fileWriter.WriteFile(ctx, path, held.Contract); err != nil {
		return nil, fmt.Errorf("failed to save contract: %w", err)
	}

	return &SaveGeneratedResult{Path: path, Filename: filename}, nil
}

// Load replaces the held contract with the contents of a file. An empty file
// leaves the held contract untouched.
func (uc *ManageGenerated) Load(ctx context.Context, path string) (*LoadGeneratedResult, error) {
	text, err := uc.fileWriter.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if text == "" {
		current, err := uc.Show(ctx)
		if err != nil {
			return nil, err
		}
		return &LoadGeneratedResult{Path: path, Loaded: false, Result: current}, nil
	}

	result := &domain.GenerationResult{
		Contract:  text,
		Source:    path,
		UpdatedAt: uc.now(),
	}
	if err := uc.store.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to store loaded contract: %w", err)
	}
	return &LoadGeneratedResult{Path: path, Loaded: true, Result: result}, nil
}

// Clear drops the held contract
func (uc *ManageGenerated) Clear(ctx context.Context) error {
	return uc.store.Clear(ctx)
}
