package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/factfinder-backend/internal/adapter/provider/claude"
	"github.com/heartmarshall/factfinder-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/factfinder-backend/internal/config"
)

// Oracle produces a short fact for an approved topic.
type Oracle interface {
	Generate(ctx context.Context, topic string) (string, error)
}

// NewOracle builds the fact oracle selected by cfg.Provider.
func NewOracle(cfg config.OracleConfig, logger *slog.Logger) (Oracle, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.NewProvider(cfg, logger), nil
	case config.ProviderClaude:
		return claude.NewProvider(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown oracle provider %q", cfg.Provider)
	}
}
