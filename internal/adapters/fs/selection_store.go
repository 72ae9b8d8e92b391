package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// SelectionFile is the name of the persisted selection in the data dir
const SelectionFile = "selection.json"

type selectionDocument struct {
	Components []string  `json:"components"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SelectionStoreAdapter persists the selection as an ordered list of ids
type SelectionStoreAdapter struct {
	path    string
	catalog usecase.ComponentCatalog
	log     *slog.Logger
}

// NewSelectionStoreAdapter creates a new SelectionStoreAdapter
func NewSelectionStoreAdapter(cfg *config.RuntimeConfig, catalog usecase.ComponentCatalog, log *slog.Logger) *SelectionStoreAdapter {
	return &SelectionStoreAdapter{
		path:    filepath.Join(cfg.DataDir, SelectionFile),
		catalog: catalog,
		log:     log.With("component", "selection-store"),
	}
}

// Load reads the selection. A missing file is an empty selection; ids no
// longer in the catalog are dropped with a warning.
func (s *SelectionStoreAdapter) Load(ctx context.Context) (*domain.Selection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewSelection(), nil
		}
		return nil, fmt.Errorf("failed to read selection file: %w", err)
	}
	if len(data) == 0 {
		return domain.NewSelection(), nil
	}

	var doc selectionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse selection file: %w", err)
	}

	selection := domain.NewSelection()
	for _, id := range doc.Components {
		def, err := s.catalog.Get(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrComponentNotFound) {
				s.log.Warn("dropping unknown component from selection", "id", id)
				continue
			}
			return nil, err
		}
		selection.Append(def)
	}
	return selection, nil
}

// Save writes the selection ids in order
func (s *SelectionStoreAdapter) Save(ctx context.Context, selection *domain.Selection) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create selection directory: %w", err)
	}

	doc := selectionDocument{
		Components: selection.IDs(),
		UpdatedAt:  time.Now().UTC(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal selection: %w", err)
	}

	// Write then rename so a watching server never sees a partial file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write selection file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write selection file: %w", err)
	}
	return nil
}

// GetPath returns the path to the selection file
func (s *SelectionStoreAdapter) GetPath() string {
	return s.path
}

var _ usecase.SelectionRepository = (*SelectionStoreAdapter)(nil)
