package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/trebuchet-org/mosaic/internal/domain"
)

// AssembleSourceParams contains parameters for building the contract source
type AssembleSourceParams struct {
	OutPath string // optional file to write the source to
	Compile bool   // also run the compiler on the source
}

// AssembleSourceResult contains the assembled contract
type AssembleSourceResult struct {
	Source     string
	Components []*domain.ComponentDefinition
	WrittenTo  string
	Compiled   *domain.CompiledContract
}

// AssembleSource builds contract source from the current selection
type AssembleSource struct {
	selections SelectionRepository
	assembler  SourceAssembler
	compiler   Compiler
	fileWriter FileWriter
}

// NewAssembleSource creates a new AssembleSource use case
func NewAssembleSource(
	selections SelectionRepository,
	assembler SourceAssembler,
	compiler Compiler,
	fileWriter FileWriter,
) *AssembleSource {
	return &AssembleSource{
		selections: selections,
		assembler:  assembler,
		compiler:   compiler,
		fileWriter: fileWriter,
	}
}

// Run executes the use case
func (uc *AssembleSource) Run(ctx context.Context, params AssembleSourceParams) (*AssembleSourceResult, error) {
	selection, err := uc.selections.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}

	result := &AssembleSourceResult{
		Components: selection.Entries(),
	}
	result.Source = uc.assembler.Assemble(result.Components)

	if params.OutPath != "" {
		if err := uc.fileWriter.EnsureDirectory(ctx, filepath.Dir(params.OutPath)); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := uc.fileWriter.WriteFile(ctx, params.OutPath, result.Source+"\n"); err != nil {
			return nil, fmt.Errorf("failed to write source: %w", err)
		}
		result.WrittenTo = params.OutPath
	}

	if params.Compile {
		compiled, err := uc.compiler.Compile(ctx, result.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to compile source: %w", err)
		}
		result.Compiled = compiled
	}

	return result, nil
}
