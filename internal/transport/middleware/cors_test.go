package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/factfinder-backend/internal/config"
)

func appCORS() config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins:   "https://facts.example.com, https://staging.facts.example.com",
		AllowedMethods:   "GET,POST,OPTIONS",
		AllowedHeaders:   "Authorization,Content-Type," + RequestIDHeader,
		AllowCredentials: true,
		MaxAge:           600,
	}
}

func TestCORS_SubmitPreflight(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("submit handler must not run for a preflight")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/fact", nil)
	req.Header.Set("Origin", "https://facts.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	CORS(appCORS())(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	h := rec.Header()
	assert.Equal(t, "https://facts.example.com", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET,POST,OPTIONS", h.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Authorization,Content-Type,X-Request-Id", h.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "true", h.Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "600", h.Get("Access-Control-Max-Age"))
	assert.Equal(t, "Origin", h.Get("Vary"))
}

func TestCORS_HistoryExposesRateLimitHeaders(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	req.Header.Set("Origin", "https://staging.facts.example.com")
	rec := httptest.NewRecorder()

	CORS(appCORS())(handler).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, "https://staging.facts.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "X-Request-Id, Retry-After", rec.Header().Get("Access-Control-Expose-Headers"))
}

func TestCORS_UnknownOriginStillServed(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/api/fact", nil)
	req.Header.Set("Origin", "https://evil.example.org")
	rec := httptest.NewRecorder()

	CORS(appCORS())(handler).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Expose-Headers"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
}

func TestCORS_WildcardWithoutCredentials(t *testing.T) {
	cfg := appCORS()
	cfg.AllowedOrigins = "*"
	cfg.AllowCredentials = false

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	CORS(cfg)(handler).ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}
