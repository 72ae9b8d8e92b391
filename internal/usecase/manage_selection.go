package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

// SelectionOperation names a selection mutation
type SelectionOperation string

const (
	SelectionAppend SelectionOperation = "append"
	SelectionRemove SelectionOperation = "remove"
	SelectionMove   SelectionOperation = "move"
	SelectionClear  SelectionOperation = "clear"
	SelectionShow   SelectionOperation = "show"
)

// ManageSelectionParams contains parameters for selection operations.
// Indices are zero-based.
type ManageSelectionParams struct {
	Operation SelectionOperation
	IDs       []string // append; empty means pick interactively
	Index     int      // remove
	From      int      // move
	To        int      // move
}

// SelectionResult is the selection after an operation together with the
// source assembled from it
type SelectionResult struct {
	Operation  SelectionOperation
	Components []*domain.ComponentDefinition
	Source     string
	Changed    bool
	Added      []*domain.ComponentDefinition
	Removed    *domain.ComponentDefinition
	StorePath  string
}

// ManageSelection handles append, remove, reorder and clear of the selection
type ManageSelection struct {
	config     *config.RuntimeConfig
	catalog    ComponentCatalog
	selections SelectionRepository
	assembler  SourceAssembler
	selector   ComponentSelector
}

// NewManageSelection creates a new selection management use case
func NewManageSelection(
	cfg *config.RuntimeConfig,
	catalog ComponentCatalog,
	selections SelectionRepository,
	assembler SourceAssembler,
	selector ComponentSelector,
) *ManageSelection {
	return &ManageSelection{
		config:     cfg,
		catalog:    catalog,
		selections: selections,
		assembler:  assembler,
		selector:   selector,
	}
}

// Execute performs the selection operation
func (uc *ManageSelection) Execute(ctx context.Context, params ManageSelectionParams) (*SelectionResult, error) {
	selection, err := uc.selections.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}

	result := &SelectionResult{Operation: params.Operation}

	switch params.Operation {
	case SelectionAppend:
		added, err := uc.resolveComponents(ctx, params.IDs)
		if err != nil {
			return nil, err
		}
		for _, def := range added {
			selection.Append(def)
		}
		result.Added = added
		result.Changed = len(added) > 0
	case SelectionRemove:
		removed := selection.At(params.Index)
		if selection.RemoveAt(params.Index) {
			result.Removed = removed
			result.Changed = true
		}
	case SelectionMove:
		result.Changed = selection.MoveTo(params.From, params.To)
	case SelectionClear:
		result.Changed = !selection.IsEmpty()
		selection.Clear()
	case SelectionShow:
	default:
		return nil, fmt.Errorf("unknown operation: %s", params.Operation)
	}

	if result.Changed {
		if err := uc.selections.Save(ctx, selection); err != nil {
			return nil, fmt.Errorf("failed to save selection: %w", err)
		}
	}

	// The source is a projection of the selection, so it is rebuilt every time.
	result.Components = selection.Entries()
	result.Source = uc.assembler.Assemble(result.Components)
	result.StorePath = uc.selections.GetPath()
	return result, nil
}

// resolveComponents looks up ids in the catalog, or asks the user to pick
// one when no ids were given
func (uc *ManageSelection) resolveComponents(ctx context.Context, ids []string) ([]*domain.ComponentDefinition, error) {
	if len(ids) == 0 {
		if uc.config.NonInteractive {
			return nil, fmt.Errorf("no component given and interactive selection is disabled")
		}
		all := uc.catalog.List(ctx, domain.ComponentQuery{})
		def, err := uc.selector.SelectComponent(ctx, all, "Select a component to add")
		if err != nil {
			return nil, err
		}
		return []*domain.ComponentDefinition{def}, nil
	}

	defs := make([]*domain.ComponentDefinition, 0, len(ids))
	for _, id := range ids {
		def, err := uc.catalog.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}
