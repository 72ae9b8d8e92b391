package usecase

import (
	"context"

	"github.com/trebuchet-org/mosaic/internal/domain"
)

// ListComponentsParams contains parameters for listing the component library
type ListComponentsParams struct {
	Search string
}

// ListComponentsResult contains the result of listing components
type ListComponentsResult struct {
	Components []*domain.ComponentDefinition
	Search     string
}

// ListComponents is a use case for browsing the component library
type ListComponents struct {
	catalog ComponentCatalog
}

// NewListComponents creates a new ListComponents use case
func NewListComponents(catalog ComponentCatalog) *ListComponents {
	return &ListComponents{
		catalog: catalog,
	}
}

// Run executes the use case
func (uc *ListComponents) Run(ctx context.Context, params ListComponentsParams) (*ListComponentsResult, error) {
	components := uc.catalog.List(ctx, domain.ComponentQuery{Search: params.Search})
	return &ListComponentsResult{
		Components: components,
		Search:     params.Search,
	}, nil
}
