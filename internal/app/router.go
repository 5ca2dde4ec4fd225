package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/factfinder-backend/internal/config"
	"github.com/heartmarshall/factfinder-backend/internal/domain"
	"github.com/heartmarshall/factfinder-backend/internal/service/fact"
	"github.com/heartmarshall/factfinder-backend/internal/transport/middleware"
	"github.com/heartmarshall/factfinder-backend/internal/transport/rest"
)

type factService interface {
	Submit(ctx context.Context, input fact.SubmitInput) (*fact.SubmitResult, error)
	ListHistory(ctx context.Context) ([]domain.RequestLogEntry, error)
}

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

type quotaChecker interface {
	Allow(ctx context.Context, userID string) (bool, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators the HTTP router is assembled from.
// Quota and Cache are nil when Redis is not configured.
type Deps struct {
	Facts    factService
	Tokens   tokenValidator
	Quota    quotaChecker
	DB       pinger
	Cache    pinger
	Limiter  *middleware.RateLimiter
	Version  string
	Logger   *slog.Logger
	Settings *config.Config
}

// NewRouter wires routes and middleware:
//
//	POST /api/fact  rate limit, daily quota, submit
//	GET  /api/logs  rate limit, history
//	GET  /live, /ready, /health
func NewRouter(d Deps) http.Handler {
	facts := rest.NewFactHandler(d.Facts, d.Logger)

	health := rest.NewHealthHandler(d.DB, d.Cache, d.Version)

	var quota middleware.Middleware
	if d.Quota != nil {
		quota = middleware.Quota(d.Quota, d.Logger)
	}
	submit := middleware.Chain(d.Limiter.Limit("submit", d.Settings.RateLimit.SubmitPerMinute), quota)

	mux := http.NewServeMux()
	mux.Handle("POST /api/fact", submit(http.HandlerFunc(facts.Submit)))
	mux.Handle("GET /api/logs", d.Limiter.Limit("history", d.Settings.RateLimit.HistoryPerMinute)(http.HandlerFunc(facts.History)))
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		middleware.CORS(d.Settings.CORS),
		middleware.Auth(d.Tokens),
	)(mux)
}
