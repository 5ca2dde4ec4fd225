// Package claude implements the fact oracle with the Anthropic Messages API.
package claude

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/factfinder-backend/internal/config"
	"github.com/heartmarshall/factfinder-backend/internal/provider"
)

// Provider generates facts with a Claude model.
type Provider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewProvider creates a Provider from the oracle configuration.
// SDK retries are disabled: a failed oracle call is reported, not repeated.
func NewProvider(cfg config.OracleConfig, logger *slog.Logger) *Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.AnthropicAPIKey),
		option.WithMaxRetries(0),
	}
	if cfg.AnthropicBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.AnthropicBaseURL))
	}

	return &Provider{
		client:    anthropic.NewClient(opts...),
		model:     cfg.AnthropicModel,
		maxTokens: cfg.MaxOutputTokens,
		log:       logger.With("adapter", "claude"),
	}
}

// Generate returns one short fact about topic. An empty string with a nil
// error means the model produced no text.
func (p *Provider) Generate(ctx context.Context, topic string) (string, error) {
	p.log.DebugContext(ctx, "claude request", slog.String("model", p.model), slog.Int("topic_len", len(topic)))

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(provider.FactPrompt(topic))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude: messages api: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())

	p.log.DebugContext(ctx, "claude response",
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int("blocks", len(msg.Content)),
		slog.Int("text_len", len(text)),
	)

	return text, nil
}
