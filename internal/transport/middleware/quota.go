package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/factfinder-backend/pkg/ctxutil"
)

type quotaChecker interface {
	Allow(ctx context.Context, userID string) (bool, error)
}

// Quota enforces a per-user submission quota. Anonymous requests pass through
// so the handler can answer 401. Store errors fail open.
func Quota(checker quotaChecker, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := ctxutil.UserIDFromCtx(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			allowed, err := checker.Allow(r.Context(), userID)
			if err != nil {
				logger.WarnContext(r.Context(), "quota check failed, allowing request",
					slog.String("user_id", userID),
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				writeError(w, http.StatusTooManyRequests, "daily quota exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
