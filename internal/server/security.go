package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dhairyapractice/Solo-leveling/internal/logger"
)

// AuthMiddleware gates every route behind the shared API key. Paths in
// PublicPaths stay open so health probes, the Prometheus scraper, and the
// swagger UI work without credentials. Key comparison is constant-time.
func AuthMiddleware(apiKey string, trustedProxies []string, monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, path := range PublicPaths {
				if strings.HasPrefix(r.URL.Path, path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				monitor.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies. The largest legitimate
// request is an image upload, so the cap tracks the upload limit.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware rejects clients that exceed the per-window request
// budget. The budget is generous for a single hunter clicking through the
// app and tight enough to stop scripted hammering of the complete endpoints.
func RateLimitMiddleware(trustedProxies []string, monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !monitor.Allow(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AbuseMonitor counts requests and failed logins per client IP over a fixed
// window. Counters reset together when the window rolls over.
type AbuseMonitor struct {
	mu          sync.Mutex
	authFails   map[string]int
	requests    map[string]int
	windowStart time.Time
}

func NewAbuseMonitor() *AbuseMonitor {
	return &AbuseMonitor{
		authFails:   make(map[string]int),
		requests:    make(map[string]int),
		windowStart: time.Now(),
	}
}

// RecordFailedAuth bumps the failed-auth counter and raises an alert once an
// IP crosses the threshold inside the window.
func (m *AbuseMonitor) RecordFailedAuth(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollWindow()
	m.authFails[ip]++

	if m.authFails[ip] >= AuthFailAlertThreshold {
		slog.Warn(LogMsgAuthFailureBurst, "ip", ip, "count", m.authFails[ip])
	}
}

// Allow records one request and reports whether the IP is still inside its
// budget for the current window.
func (m *AbuseMonitor) Allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollWindow()
	m.requests[ip]++

	if m.requests[ip] > RequestsPerWindow {
		// Log every 100th rejection so a sustained flood cannot flood the log too.
		if m.requests[ip]%100 == 0 {
			slog.Warn(LogMsgRateLimited, "ip", ip, "count_in_window", m.requests[ip])
		}
		return false
	}
	return true
}

// rollWindow clears counters once the window has elapsed. Caller holds the lock.
func (m *AbuseMonitor) rollWindow() {
	if time.Since(m.windowStart) > MonitorWindow {
		m.requests = make(map[string]int)
		m.authFails = make(map[string]int)
		m.windowStart = time.Now()
	}
}

// clientIP resolves the client address. X-Forwarded-For is honored only when
// the direct peer is a configured trusted proxy, and then the rightmost entry
// wins because that is the hop the proxy itself vouches for.
func clientIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
				hops := strings.Split(forwarded, ",")
				return strings.TrimSpace(hops[len(hops)-1])
			}
			break
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware sets the standard browser hardening headers on
// every response.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentTypeOptions, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
