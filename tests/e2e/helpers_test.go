//go:build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/factfinder-backend/internal/adapter/postgres/requestlog"
	"github.com/heartmarshall/factfinder-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/factfinder-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/factfinder-backend/internal/adapter/redis"
	"github.com/heartmarshall/factfinder-backend/internal/app"
	authpkg "github.com/heartmarshall/factfinder-backend/internal/auth"
	"github.com/heartmarshall/factfinder-backend/internal/config"
	"github.com/heartmarshall/factfinder-backend/internal/service/fact"
	"github.com/heartmarshall/factfinder-backend/internal/transport/middleware"
)

// ---------------------------------------------------------------------------
// fakeGemini serves generateContent with a scripted reply.
// ---------------------------------------------------------------------------

type fakeGemini struct {
	mu     sync.Mutex
	status int
	text   string
	calls  int
	server *httptest.Server
}

func newFakeGemini(t *testing.T) *fakeGemini {
	t.Helper()

	f := &fakeGemini{status: http.StatusOK, text: "Honey never spoils."}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls++
		status, text := f.status, f.text
		f.mu.Unlock()

		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"code":500,"message":"backend unavailable","status":"INTERNAL"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{map[string]any{
				"content":      map[string]any{"role": "model", "parts": []any{map[string]any{"text": text}}},
				"finishReason": "STOP",
			}},
		})
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeGemini) reply(status int, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.text = status, text
}

func (f *fakeGemini) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Oracle *fakeGemini
	Redis  *miniredis.Miniredis
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

type serverOption func(*config.Config)

func withDailyQuota(n int) serverOption {
	return func(c *config.Config) { c.Redis.DailySubmitQuota = n }
}

// setupTestServer bootstraps the application router backed by a real
// PostgreSQL container, an in-memory Redis and a fake Gemini endpoint.
func setupTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	oracle := newFakeGemini(t)
	mr := miniredis.RunT(t)

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
		},
		Oracle: config.OracleConfig{
			Provider:        config.ProviderGemini,
			Timeout:         5 * time.Second,
			MaxOutputTokens: 256,
			GeminiAPIKey:    "test-key",
			GeminiModel:     "gemini-test",
			GeminiBaseURL:   oracle.server.URL,
		},
		Redis:     config.RedisConfig{Addr: mr.Addr(), DailySubmitQuota: 1000},
		RateLimit: config.RateLimitConfig{SubmitPerMinute: 1000, HistoryPerMinute: 1000},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := app.NewRouter(app.Deps{
		Facts:    fact.NewService(logger, requestlog.New(pool), gemini.NewProvider(cfg.Oracle, logger), cfg.Oracle.Timeout),
		Tokens:   jwtMgr,
		Quota:    redis.NewQuotaLimiter(rdb, cfg.Redis.DailySubmitQuota, logger),
		DB:       pool,
		Limiter:  limiter,
		Version:  "test-version",
		Logger:   logger,
		Settings: cfg,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Oracle: oracle,
		Redis:  mr,
		jwt:    jwtMgr,
	}
}

// newUser returns a fresh user id and an access token for it.
func (ts *testServer) newUser(t *testing.T) (string, string) {
	t.Helper()

	userID := testhelper.UniqueUserID()
	tok, err := ts.jwt.GenerateAccessToken(userID)
	require.NoError(t, err)
	return userID, tok
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

func (ts *testServer) do(t *testing.T, method, path, token, body string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func (ts *testServer) submit(t *testing.T, token, topic string) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(map[string]string{"topic": topic})
	require.NoError(t, err)
	return ts.do(t, http.MethodPost, "/api/fact", token, string(body))
}

func (ts *testServer) history(t *testing.T, token string) []map[string]any {
	t.Helper()

	status, body := ts.do(t, http.MethodGet, "/api/logs", token, "")
	require.Equal(t, http.StatusOK, status)

	raw, ok := body["logs"].([]any)
	require.True(t, ok, "expected logs array, got %v", body)

	logs := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		logs = append(logs, r.(map[string]any))
	}
	return logs
}

// countLogs returns the number of stored request log rows for userID.
func (ts *testServer) countLogs(t *testing.T, userID string) int {
	t.Helper()

	var n int
	err := ts.Pool.QueryRow(context.Background(),
		`SELECT count(*) FROM request_logs WHERE user_id = $1`, userID).Scan(&n)
	require.NoError(t, err)
	return n
}
