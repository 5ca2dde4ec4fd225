package fact

import (
	"context"
	"fmt"

	"github.com/heartmarshall/factfinder-backend/internal/domain"
	"github.com/heartmarshall/factfinder-backend/pkg/ctxutil"
)

// ListHistory returns the caller's most recent request log entries, newest
// first, at most HistoryLimit of them.
func (s *Service) ListHistory(ctx context.Context) ([]domain.RequestLogEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.logs.ListRecent(ctx, userID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("list request logs: %w", err)
	}

	return entries, nil
}
