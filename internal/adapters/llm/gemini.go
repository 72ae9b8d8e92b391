package llm

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// DefaultGeminiModel is used when the provider is gemini and no model is set
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient generates text with the Google GenAI SDK
type GeminiClient struct {
	apiKey string
	model  string
	log    *slog.Logger

	client *genai.Client
}

// NewGeminiClient creates a Gemini generator. The SDK client is created on
// first use so a missing key only fails generation.
func NewGeminiClient(cfg config.GeneratorConfig, log *slog.Logger) *GeminiClient {
	model := cfg.Model
	if model == "" || model == DefaultModel {
		model = DefaultGeminiModel
	}
	return &GeminiClient{
		apiKey: cfg.APIKey,
		model:  model,
		log:    log.With("generator", "gemini"),
	}
}

// Generate sends the prompt with the system instruction and returns the text
func (c *GeminiClient) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	if c.client == nil {
		if c.apiKey == "" {
			return "", fmt.Errorf("%w: gemini API key not configured", domain.ErrGenerationFailed)
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return "", fmt.Errorf("%w: failed to create gemini client: %w", domain.ErrGenerationFailed, err)
		}
		c.client = client
	}

	model := c.model
	if req.Model != "" && req.Model != DefaultModel {
		model = req.Model
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no completion returned", domain.ErrGenerationFailed)
	}
	c.log.Debug("gemini completion", "model", model, "bytes", len(text))
	return text, nil
}

var _ usecase.TextGenerator = (*GeminiClient)(nil)
