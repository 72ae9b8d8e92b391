package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

// GenerateContractParams contains parameters for prompt-to-text generation
type GenerateContractParams struct {
	Prompt string
	// Keep stores the result as the held generated contract
	Keep bool
}

// GenerateContractResult contains the generated text
type GenerateContractResult struct {
	Contract string
	Model    string
	Elapsed  time.Duration
}

// GenerateContract forwards a prompt to the text generator
type GenerateContract struct {
	config    *config.RuntimeConfig
	generator TextGenerator
	store     GenerationRepository
	progress  ProgressSink
	log       *slog.Logger
}

// NewGenerateContract creates a new GenerateContract use case
func NewGenerateContract(
	cfg *config.RuntimeConfig,
	generator TextGenerator,
	store GenerationRepository,
	progress ProgressSink,
	log *slog.Logger,
) *GenerateContract {
	return &GenerateContract{
		config:    cfg,
		generator: generator,
		store:     store,
		progress:  progress,
		log:       log,
	}
}

// Run executes the use case. A blank prompt fails before any request is made.
func (uc *GenerateContract) Run(ctx context.Context, params GenerateContractParams) (*GenerateContractResult, error) {
	if strings.TrimSpace(params.Prompt) == "" {
		return nil, domain.ErrEmptyPrompt
	}

	// A new request replaces whatever was held before, even if it fails.
	if params.Keep {
		if err := uc.store.Clear(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear previous contract: %w", err)
		}
	}

	req := domain.GenerationRequest{
		System:      domain.DefaultSystemInstruction,
		Prompt:      params.Prompt,
		Model:       uc.config.Generator.Model,
		MaxTokens:   uc.config.Generator.MaxTokens,
		Temperature: uc.config.Generator.Temperature,
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "Generating",
		Message: "Generating contract...",
		Spinner: true,
	})

	start := time.Now()
	text, err := uc.generator.Generate(ctx, req)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "Generating", Message: "done"})
	if err != nil {
		uc.log.Debug("generation failed", "provider", uc.config.Generator.Provider, "error", err)
		if errors.Is(err, domain.ErrGenerationFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty response", domain.ErrGenerationFailed)
	}

	result := &GenerateContractResult{
		Contract: text,
		Model:    req.Model,
		Elapsed:  time.Since(start),
	}

	if params.Keep {
		held := &domain.GenerationResult{
			Contract:  text,
			Prompt:    params.Prompt,
			Source:    "generated",
			UpdatedAt: time.Now(),
		}
		if err := uc.store.Save(ctx, held); err != nil {
			return nil, fmt.Errorf("failed to store generated contract: %w", err)
		}
	}

	return result, nil
}
