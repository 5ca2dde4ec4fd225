package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/factfinder-backend/pkg/ctxutil"
)

// serveWithRequestID runs a POST /api/fact through RequestID and returns the
// id seen by the handler and the response recorder.
func serveWithRequestID(t *testing.T, incoming string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.RequestIDFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/api/fact", strings.NewReader(`{"topic":"owls"}`))
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	RequestID()(handler).ServeHTTP(rec, req)
	return seen, rec
}

func TestRequestID_ReusesClientID(t *testing.T) {
	seen, rec := serveWithRequestID(t, "client-trace-7f3a")

	assert.Equal(t, "client-trace-7f3a", seen)
	assert.Equal(t, "client-trace-7f3a", rec.Header().Get(RequestIDHeader))
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	seen, rec := serveWithRequestID(t, "")

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_ReplacesOversizedID(t *testing.T) {
	long := strings.Repeat("a", maxRequestIDLength+1)

	seen, rec := serveWithRequestID(t, long)

	assert.NotEqual(t, long, seen)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}
