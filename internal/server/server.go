package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/dhairyapractice/Solo-leveling/internal/badge"
	"github.com/dhairyapractice/Solo-leveling/internal/database"
	"github.com/dhairyapractice/Solo-leveling/internal/handler"
	"github.com/dhairyapractice/Solo-leveling/internal/hunter"
	"github.com/dhairyapractice/Solo-leveling/internal/logger"
	"github.com/dhairyapractice/Solo-leveling/internal/metrics"
	"github.com/dhairyapractice/Solo-leveling/internal/shop"
	"github.com/dhairyapractice/Solo-leveling/internal/storage"
)

type Server struct {
	httpServer    *http.Server
	dbPool        database.Pool
	hunterService hunter.Service
	shopService   shop.Service
	badgeService  badge.Service
	imageStore    storage.Service
}

// NewServer creates a new Server instance. imageStore may be nil when object
// storage is not configured; image routes then answer 503.
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, hunterService hunter.Service, shopService shop.Service, badgeService badge.Service, imageStore storage.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	monitor := NewAbuseMonitor()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, monitor))
	r.Use(RateLimitMiddleware(trustedProxies, monitor))
	r.Use(RequestSizeLimitMiddleware(storage.MaxImageSize))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Profile routes
		r.Route("/profile", func(r chi.Router) {
			r.Get("/", handler.HandleGetProfile(hunterService))
			r.Post("/", handler.HandleEnsureProfile(hunterService))
			r.Patch("/", handler.HandleUpdateProfile(hunterService))

			r.Route("/milestones", func(r chi.Router) {
				r.Get("/", handler.HandleListPfpMilestones(hunterService))
				r.Post("/", handler.HandleCreatePfpMilestone(hunterService))
			})
		})
		r.Get("/snapshot", handler.HandleGetSnapshot(hunterService))

		// Quest routes
		r.Route("/quests", func(r chi.Router) {
			r.Get("/", handler.HandleListQuests(hunterService))
			r.Post("/", handler.HandleCreateQuest(hunterService))

			r.Route("/{questID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetQuest(hunterService))
				r.Patch("/", handler.HandleUpdateQuest(hunterService))
				r.Delete("/", handler.HandleDeleteQuest(hunterService))
				r.Post("/complete", handler.HandleCompleteQuest(hunterService))
				r.Post("/uncomplete", handler.HandleUncompleteQuest(hunterService))
				r.Post("/fail", handler.HandleFailQuest(hunterService))
			})
		})

		// Boss battle routes
		r.Route("/battles", func(r chi.Router) {
			r.Get("/", handler.HandleListBattles(hunterService))
			r.Post("/", handler.HandleCreateBattle(hunterService))

			r.Route("/{battleID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetBattle(hunterService))
				r.Patch("/", handler.HandleUpdateBattle(hunterService))
				r.Delete("/", handler.HandleDeleteBattle(hunterService))
				r.Post("/complete", handler.HandleCompleteBattle(hunterService))
				r.Post("/uncomplete", handler.HandleUncompleteBattle(hunterService))
			})
		})

		// Goal routes
		r.Route("/goals", func(r chi.Router) {
			r.Get("/", handler.HandleListGoals(hunterService))
			r.Post("/", handler.HandleCreateGoal(hunterService))

			r.Route("/{goalID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetGoal(hunterService))
				r.Patch("/", handler.HandleUpdateGoal(hunterService))
				r.Delete("/", handler.HandleDeleteGoal(hunterService))
				r.Post("/complete", handler.HandleCompleteGoal(hunterService))
				r.Post("/uncomplete", handler.HandleUncompleteGoal(hunterService))
			})
		})

		// Status category routes
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", handler.HandleListCategories(hunterService))
			r.Post("/", handler.HandleCreateCategory(hunterService))

			r.Route("/{categoryID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetCategory(hunterService))
				r.Delete("/", handler.HandleDeleteCategory(hunterService))
			})
		})

		// Item routes (shop and reward economies)
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(shopService))
			r.Post("/", handler.HandleCreateItem(shopService))

			r.Route("/{itemID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetItem(shopService))
				r.Patch("/", handler.HandleUpdateItem(shopService))
				r.Delete("/", handler.HandleDeleteItem(shopService))
				r.Post("/purchase", handler.HandlePurchaseItem(shopService))
				r.Post("/redeem", handler.HandleRedeemReward(shopService))
			})
		})

		// Badge routes
		r.Route("/badges", func(r chi.Router) {
			r.Get("/", handler.HandleListBadges(badgeService))
			r.Post("/", handler.HandleCreateBadge(badgeService))
			r.Get("/earned", handler.HandleListEarnedBadges(badgeService))
			r.Post("/evaluate", handler.HandleEvaluateBadges(badgeService))

			r.Route("/{badgeID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetBadge(badgeService))
				r.Patch("/", handler.HandleUpdateBadge(badgeService))
				r.Delete("/", handler.HandleDeleteBadge(badgeService))
				r.Post("/award", handler.HandleAwardBadge(badgeService))
			})
		})

		// Image routes
		r.Post("/images/{prefix}", handler.HandleUploadImage(imageStore))
		r.Delete("/images", handler.HandleDeleteImage(imageStore))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:        dbPool,
		hunterService: hunterService,
		shopService:   shopService,
		badgeService:  badgeService,
		imageStore:    imageStore,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
