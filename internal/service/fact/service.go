// Package fact orchestrates topic submissions: moderation, fact generation
// and recording every outcome in the caller's request log.
package fact

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/factfinder-backend/internal/domain"
)

const (
	// HistoryLimit is the number of entries returned by ListHistory.
	HistoryLimit = 20

	// DefaultOracleTimeout bounds a single oracle call when none is configured.
	DefaultOracleTimeout = 15 * time.Second
)

// User-facing messages. They are stored verbatim as the response text of
// the request log entry.
const (
	WarningPrefix        = "⚠️ Warning: "
	OracleFailureMessage = WarningPrefix + "Could not generate a fact right now. Please try again later."
	OracleFailureReason  = "Gemini API error"
	EmptyFactMessage     = "No fact could be generated at this time."
)

type logStore interface {
	Append(ctx context.Context, entry *domain.RequestLogEntry) error
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.RequestLogEntry, error)
}

type factOracle interface {
	Generate(ctx context.Context, topic string) (string, error)
}

// Service handles fact requests and history listing.
type Service struct {
	logs          logStore
	oracle        factOracle
	oracleTimeout time.Duration
	log           *slog.Logger
}

// NewService creates a new fact service. A non-positive oracleTimeout
// falls back to DefaultOracleTimeout.
func NewService(
	log *slog.Logger,
	logs logStore,
	oracle factOracle,
	oracleTimeout time.Duration,
) *Service {
	if oracleTimeout <= 0 {
		oracleTimeout = DefaultOracleTimeout
	}
	return &Service{
		logs:          logs,
		oracle:        oracle,
		oracleTimeout: oracleTimeout,
		log:           log.With("service", "fact"),
	}
}
