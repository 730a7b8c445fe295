package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/leaguesim/internal/api/handler"
	"github.com/albapepper/leaguesim/internal/api/respond"
	"github.com/albapepper/leaguesim/internal/cache"
	"github.com/albapepper/leaguesim/internal/config"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func TestTimingMiddleware_SetsHeaderBeforeBody(t *testing.T) {
	h := TimingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("body"))
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasSuffix(rec.Header().Get("X-Process-Time"), "ms"))
	assert.Equal(t, "body", rec.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	h := RateLimitMiddleware(2, time.Hour)(http.HandlerFunc(ok))

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	// Burst is half the window's allowance.
	assert.Equal(t, http.StatusOK, do("10.0.0.1:5000").Code)
	rec := do("10.0.0.1:5001")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "3600", rec.Header().Get("Retry-After"))

	var body respond.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, respond.CodeRateLimited, body.Error.Code)

	// Other clients keep their own bucket.
	assert.Equal(t, http.StatusOK, do("10.0.0.2:5000").Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/leagues/3/simulate", nil))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "path=/api/v1/leagues/3/simulate")
	assert.Contains(t, out, "status=502")
}

func TestNewRouter_MetaRoutes(t *testing.T) {
	h := handler.New(handler.Deps{Cache: cache.New(true), Logger: discard})
	cfg := &config.Config{CORSAllowOrigins: []string{"*"}}
	r := NewRouter(h, cfg, discard)

	for _, path := range []string{"/", "/health", "/health/cache"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get("X-Process-Time"), path)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/teams/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
