package server

import "time"

// Abuse monitoring limits. The API serves one hunter per key, so the budget
// assumes interactive use plus the dashboard's polling, not bulk traffic.
const (
	MonitorWindow          = 5 * time.Minute
	RequestsPerWindow      = 600
	AuthFailAlertThreshold = 5
)

// Middleware response messages
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Log messages for server lifecycle, request handling, and abuse monitoring
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAuthFailureBurst = "Repeated failed authentication attempts"
	LogMsgRateLimited      = "Request budget exceeded, blocking"
)

// HTTP header names
const (
	HeaderAPIKey             = "X-API-Key"
	HeaderAuthorization      = "Authorization"
	HeaderForwardedFor       = "X-Forwarded-For"
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderXSSProtection      = "X-XSS-Protection"
	HeaderReferrerPolicy     = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// PublicPaths bypass API key auth: probes for the orchestrator, metrics for
// Prometheus, version for deploy verification, swagger for the docs UI.
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}

// RedactedValue replaces credential header values in debug logs.
const RedactedValue = "[REDACTED]"
