package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// GenerateRoute is the server path that accepts {prompt}
const GenerateRoute = "/api/generate-contract"

type routeRequest struct {
	Prompt string `json:"prompt"`
}

type routeResponse struct {
	Contract string `json:"contract"`
	Error    string `json:"error"`
}

// RouteClient delegates generation to another mosaic server
type RouteClient struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewRouteClient creates a client for the server at cfg.BaseURL
func NewRouteClient(cfg config.GeneratorConfig, log *slog.Logger) *RouteClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RouteClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("generator", "route"),
	}
}

// Generate posts the prompt; the server applies its own system instruction
// and model settings
func (c *RouteClient) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("%w: generator base URL not configured", domain.ErrGenerationFailed)
	}

	payload, err := json.Marshal(routeRequest{Prompt: req.Prompt})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+GenerateRoute, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %w", domain.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %w", domain.ErrGenerationFailed, err)
	}

	var parsed routeResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("%w: failed to parse response: %w", domain.ErrGenerationFailed, err)
	}
	if resp.StatusCode == http.StatusBadRequest && parsed.Error != "" {
		return "", fmt.Errorf("%w: %s", domain.ErrEmptyPrompt, parsed.Error)
	}
	if parsed.Contract == "" {
		msg := parsed.Error
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("%w: %s", domain.ErrGenerationFailed, msg)
	}
	return parsed.Contract, nil
}

var _ usecase.TextGenerator = (*RouteClient)(nil)
