package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware_RedactsCredentialHeaders(t *testing.T) {
	var buf bytes.Buffer
	// Headers are only logged at debug level.
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	handler := loggingMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set(HeaderAPIKey, "hunter-api-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer sometoken")
	req.Header.Set("User-Agent", "sololeveling-dashboard")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	logged := buf.String()
	require.Contains(t, logged, LogMsgRequestHeaders)

	assert.NotContains(t, logged, "hunter-api-key-123")
	assert.NotContains(t, logged, "Bearer sometoken")
	assert.Contains(t, logged, RedactedValue)
	assert.Contains(t, logged, "sololeveling-dashboard")
}

func TestLoggingMiddleware_SkipsHealthProbes(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	handler := loggingMiddleware(okHandler())

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Empty(t, buf.String(), "probe traffic stays out of the request log")
}
