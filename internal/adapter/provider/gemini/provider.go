// Package gemini implements the fact oracle on top of the Gemini
// generateContent REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/factfinder-backend/internal/config"
	"github.com/heartmarshall/factfinder-backend/internal/provider"
)

const (
	apiKeyHeader = "x-goog-api-key"

	// maxErrorBody bounds how much of an error response is read for logging.
	maxErrorBody = 4 << 10
)

// Provider generates facts with a Gemini model.
type Provider struct {
	baseURL         string
	apiKey          string
	model           string
	maxOutputTokens int64
	httpClient      *http.Client
	log             *slog.Logger
}

// NewProvider creates a Provider from the oracle configuration.
// The call deadline comes from the caller's context; the client timeout
// only guards against a context without one.
func NewProvider(cfg config.OracleConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:         strings.TrimRight(cfg.GeminiBaseURL, "/"),
		apiKey:          cfg.GeminiAPIKey,
		model:           cfg.GeminiModel,
		maxOutputTokens: cfg.MaxOutputTokens,
		httpClient:      &http.Client{Timeout: 60 * time.Second},
		log:             logger.With("adapter", "gemini"),
	}
}

// Generate returns one short fact about topic. An empty string with a nil
// error means the model produced no candidate text.
func (p *Provider) Generate(ctx context.Context, topic string) (string, error) {
	reqURL := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, url.PathEscape(p.model))

	body, err := json.Marshal(generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: provider.FactPrompt(topic)}},
		}},
		GenerationConfig: &generationConfig{MaxOutputTokens: p.maxOutputTokens},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, p.apiKey)

	p.log.DebugContext(ctx, "gemini request", slog.String("model", p.model), slog.Int("topic_len", len(topic)))

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", p.statusError(ctx, resp)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini: decode json: %w", err)
	}

	if err := out.blocked(); err != nil {
		return "", err
	}

	text := strings.TrimSpace(out.text())

	p.log.DebugContext(ctx, "gemini response",
		slog.Int("status", resp.StatusCode),
		slog.Int("candidates", len(out.Candidates)),
		slog.Int("text_len", len(text)),
		slog.Duration("duration", time.Since(start)),
	)

	return text, nil
}

func (p *Provider) statusError(ctx context.Context, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var apiErr errorResponse
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
		msg = apiErr.Error.Message
	}

	p.log.WarnContext(ctx, "gemini error response",
		slog.Int("status", resp.StatusCode),
		slog.String("message", msg),
	)

	return fmt.Errorf("gemini: unexpected status %d: %s", resp.StatusCode, msg)
}
