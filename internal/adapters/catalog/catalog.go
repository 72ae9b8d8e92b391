package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

//go:embed components.yaml
var builtinComponents []byte

type catalogFile struct {
	Components []*domain.ComponentDefinition `yaml:"components"`
}

// Catalog is the read-only component library, loaded once at start-up
type Catalog struct {
	ordered []*domain.ComponentDefinition
	byID    map[string]*domain.ComponentDefinition
}

// NewCatalog loads the built-in components and merges cfg.CatalogPath when set
func NewCatalog(cfg *config.RuntimeConfig) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*domain.ComponentDefinition)}
	if err := c.load(builtinComponents, "built-in catalog"); err != nil {
		return nil, err
	}

	if cfg.CatalogPath != "" {
		data, err := os.ReadFile(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", cfg.CatalogPath, err)
		}
		if err := c.load(data, cfg.CatalogPath); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewCatalogFromDefinitions builds a catalog from definitions in order
func NewCatalogFromDefinitions(defs ...*domain.ComponentDefinition) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*domain.ComponentDefinition)}
	for _, def := range defs {
		if err := c.add(def, "definitions"); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) load(data []byte, source string) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", source, err)
	}
	for _, def := range file.Components {
		if err := c.add(def, source); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) add(def *domain.ComponentDefinition, source string) error {
	if def == nil || strings.TrimSpace(def.ID) == "" {
		return fmt.Errorf("%s: component without id", source)
	}
	if _, exists := c.byID[def.ID]; exists {
		return fmt.Errorf("%s: duplicate component id %q", source, def.ID)
	}
	if def.Name == "" {
		def.Name = def.ID
	}
	c.byID[def.ID] = def
	c.ordered = append(c.ordered, def)
	return nil
}

// List returns the components in catalog order, filtered by a fuzzy search
// when one is given. Matches keep catalog order.
func (c *Catalog) List(_ context.Context, query domain.ComponentQuery) []*domain.ComponentDefinition {
	search := strings.ToLower(strings.TrimSpace(query.Search))
	if search == "" {
		out := make([]*domain.ComponentDefinition, len(c.ordered))
		copy(out, c.ordered)
		return out
	}

	matched := make(map[int]bool)
	for _, m := range fuzzy.FindFrom(search, searchSource(c.ordered)) {
		matched[m.Index] = true
	}

	var out []*domain.ComponentDefinition
	for i, def := range c.ordered {
		if matched[i] {
			out = append(out, def)
		}
	}
	return out
}

// Get returns the component with the given id
func (c *Catalog) Get(_ context.Context, id string) (*domain.ComponentDefinition, error) {
	def, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrComponentNotFound, id)
	}
	return def, nil
}

// searchSource exposes id, name and description to fuzzy matching
type searchSource []*domain.ComponentDefinition

func (s searchSource) String(i int) string {
	return strings.ToLower(s[i].ID + " " + s[i].Name + " " + s[i].Description)
}

func (s searchSource) Len() int {
	return len(s)
}

var _ usecase.ComponentCatalog = (*Catalog)(nil)
