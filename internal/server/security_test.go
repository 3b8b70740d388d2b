package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "hunter-api-key"
	middleware := AuthMiddleware(apiKey, nil, NewAbuseMonitor())
	handler := middleware(okHandler())

	tests := []struct {
		name       string
		key        string
		path       string
		wantStatus int
	}{
		{"valid key reaches quests", apiKey, "/api/v1/quests", http.StatusOK},
		{"wrong key rejected", "stolen-key", "/api/v1/quests", http.StatusUnauthorized},
		{"missing key rejected", "", "/api/v1/items/abc/purchase", http.StatusUnauthorized},
		{"healthz is public", "", "/healthz", http.StatusOK},
		{"readyz is public", "", "/readyz", http.StatusOK},
		{"metrics scrape is public", "", "/metrics", http.StatusOK},
		{"version is public", "", "/version", http.StatusOK},
		{"swagger ui is public", "", "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_FailureCountedPerIP(t *testing.T) {
	monitor := NewAbuseMonitor()
	handler := AuthMiddleware("hunter-api-key", nil, monitor)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quests", nil)
	req.RemoteAddr = "203.0.113.7:50000"
	req.Header.Set(HeaderAPIKey, "wrong")

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	monitor.mu.Lock()
	fails := monitor.authFails["203.0.113.7"]
	monitor.mu.Unlock()

	assert.Equal(t, 3, fails)
}

func TestClientIP_TrustsForwardedForOnlyFromProxy(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.RemoteAddr = "10.0.0.5:443"
	req.Header.Set(HeaderForwardedFor, "198.51.100.9, 10.0.0.5")

	assert.Equal(t, "10.0.0.5", clientIP(req, nil),
		"spoofed header ignored when the peer is not a trusted proxy")
	assert.Equal(t, "10.0.0.5", clientIP(req, []string{"10.0.0.5"}),
		"rightmost hop wins behind a trusted proxy")
}
