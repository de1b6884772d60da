// internal/interfaces/http/server.go
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zyra-atelier/storefront/internal/config"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
	"github.com/zyra-atelier/storefront/internal/domain/inquiry"
	"github.com/zyra-atelier/storefront/internal/domain/session"
	"github.com/zyra-atelier/storefront/internal/interfaces/http/handlers"
	"github.com/zyra-atelier/storefront/internal/interfaces/http/middleware"
	"github.com/zyra-atelier/storefront/internal/interfaces/http/routes"
	"github.com/zyra-atelier/storefront/internal/pkg/token"
)

const maxRequestBody = 1 << 20 // 1MB

// Dependencies are the services the server routes to
type Dependencies struct {
	Catalog   *catalog.Store
	Sessions  *session.Service
	Inquiries *inquiry.Service
	Limiter   middleware.Limiter
	Logger    *logrus.Logger
}

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	deps       Dependencies
	gin        *gin.Engine
	httpServer *http.Server
	startedAt  time.Time
}

// NewServer creates a new HTTP server instance with middleware and routes
// registered
func NewServer(cfg *config.Config, deps Dependencies) *Server {
	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config:    cfg,
		deps:      deps,
		gin:       gin.New(),
		startedAt: time.Now(),
	}

	if err := s.gin.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		deps.Logger.WithError(err).Warn("Invalid trusted proxies, trusting none")
		_ = s.gin.SetTrustedProxies(nil)
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.deps.Logger.WithFields(logrus.Fields{
		"port":        s.config.Server.Port,
		"environment": s.config.App.Environment,
		"store":       s.config.Session.Store,
	}).Info("HTTP server starting")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.deps.Logger.Info("Shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.deps.Logger.Info("HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.Logger(s.deps.Logger))
	s.gin.Use(middleware.CORS(s.config))
	s.gin.Use(middleware.SecurityHeaders(s.config.App.Name))
	s.gin.Use(middleware.RateLimit(s.deps.Limiter, s.config.Security.RateLimitPerMinute, s.deps.Logger))
	s.gin.Use(middleware.RequestSizeLimit(maxRequestBody))
	s.gin.Use(middleware.Timeout(s.config.Server.RequestTimeout))
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)

	logger := s.deps.Logger
	renderer := handlers.NewRenderer(s.deps.Catalog, s.deps.Sessions.Model())

	apiV1 := s.gin.Group("/api/v1")
	sessioned := apiV1.Group("")
	sessioned.Use(middleware.Session(s.config, token.NewManager(s.config), s.deps.Sessions, logger))

	routes.SetupRoutes(apiV1, sessioned, routes.Handlers{
		Catalog:   handlers.NewCatalogHandler(s.deps.Catalog, logger),
		Session:   handlers.NewSessionHandler(s.deps.Sessions, renderer, logger),
		Studio:    handlers.NewStudioHandler(s.deps.Sessions, renderer, logger),
		Cart:      handlers.NewCartHandler(s.deps.Sessions, logger),
		Checkout:  handlers.NewCheckoutHandler(s.deps.Sessions, logger),
		Account:   handlers.NewAccountHandler(s.deps.Sessions, logger),
		Corporate: handlers.NewCorporateHandler(s.deps.Inquiries, logger),
	})

	if s.config.IsDevelopment() {
		s.gin.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":     s.config.App.Name,
				"version":     s.config.App.Version,
				"environment": s.config.App.Environment,
				"health":      "/health",
				"endpoints": gin.H{
					"catalog":   "/api/v1/catalog",
					"session":   "/api/v1/session",
					"studio":    "/api/v1/studio",
					"cart":      "/api/v1/cart",
					"checkout":  "/api/v1/checkout",
					"account":   "/api/v1/account",
					"corporate": "/api/v1/corporate",
				},
			})
		})
	}
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := s.deps.Sessions.Ping(ctx); err != nil {
		s.deps.Logger.WithError(err).Warn("Session store health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "session store ping failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
		"store":       s.config.Session.Store,
	})
}

// readinessCheck handles readiness check requests
func (s *Server) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(s.startedAt).Round(time.Second).String(),
	})
}
