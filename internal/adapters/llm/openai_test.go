package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenAIClientGenerate(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[{"message":{"content":"  contract A {}\n"}},{"message":{"content":"ignored"}}]}`)
	}))
	defer srv.Close()

	client := NewOpenAIClient(config.GeneratorConfig{BaseURL: srv.URL + "/v1/", APIKey: "secret"}, discardLogger())
	text, err := client.Generate(context.Background(), domain.GenerationRequest{
		System:      "be helpful",
		Prompt:      "an ERC20",
		MaxTokens:   2000,
		Temperature: 0.7,
	})
	require.NoError(t, err)

	// The first choice is returned verbatim
	assert.Equal(t, "  contract A {}\n", text)

	assert.Equal(t, DefaultModel, got.Model)
	assert.Equal(t, 2000, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 1e-9)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, chatMessage{Role: "system", Content: "be helpful"}, got.Messages[0])
	assert.Equal(t, chatMessage{Role: "user", Content: "an ERC20"}, got.Messages[1])
}

func TestOpenAIClientFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "non-200 status",
			status:  http.StatusServiceUnavailable,
			body:    "overloaded",
			wantErr: "API request failed with status 503: overloaded",
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    "not json",
			wantErr: "failed to parse response",
		},
		{
			name:    "api error",
			status:  http.StatusOK,
			body:    `{"error":{"message":"model not found"}}`,
			wantErr: "API error: model not found",
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"choices":[]}`,
			wantErr: "no completion returned",
		},
		{
			name:    "null content",
			status:  http.StatusOK,
			body:    `{"choices":[{"message":{"content":null}}]}`,
			wantErr: "no completion returned",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			client := NewOpenAIClient(config.GeneratorConfig{BaseURL: srv.URL}, discardLogger())
			_, err := client.Generate(context.Background(), domain.GenerationRequest{Prompt: "x"})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrGenerationFailed)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOpenAIClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewOpenAIClient(config.GeneratorConfig{BaseURL: url}, discardLogger())
	_, err := client.Generate(context.Background(), domain.GenerationRequest{Prompt: "x"})
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestNewOpenAIClientDefaults(t *testing.T) {
	client := NewOpenAIClient(config.GeneratorConfig{}, discardLogger())
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}
