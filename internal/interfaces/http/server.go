// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/config"
	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
	redisdb "github.com/kraken-dive/storefront-backend/internal/infrastructure/database/redis"
	"github.com/kraken-dive/storefront-backend/internal/interfaces/http/middleware"
	"github.com/kraken-dive/storefront-backend/internal/interfaces/http/routes"
	"github.com/kraken-dive/storefront-backend/internal/pkg/device"
	"github.com/kraken-dive/storefront-backend/internal/pkg/export"
	"github.com/kraken-dive/storefront-backend/internal/session"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators the HTTP server wires into its routes
type Deps struct {
	AppConfig *appconfig.Manager
	Catalog   *catalog.Service
	Sessions  *session.Manager
	Redis     *redisdb.Client // nil when Redis is unavailable
	IPLookup  *device.IPLookup
	Exporter  export.Exporter
	Logger    *logrus.Logger
}

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	deps       Deps
	gin        *gin.Engine
	httpServer *http.Server
	started    time.Time
}

// NewServer creates a new HTTP server instance
func NewServer(cfg *config.Config, deps Deps) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	s.gin = gin.New()
	if len(s.config.Security.TrustedProxies) > 0 {
		if err := s.gin.SetTrustedProxies(s.config.Security.TrustedProxies); err != nil {
			return fmt.Errorf("failed to set trusted proxies: %w", err)
		}
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}
	s.started = time.Now()

	s.deps.Logger.WithFields(logrus.Fields{
		"port":        s.config.Server.Port,
		"environment": s.config.App.Environment,
	}).Info("HTTP server starting")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.deps.Logger.Info("shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.deps.Logger.Info("HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.Logger(s.config, s.deps.Logger))
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.CORS(s.config))
	s.gin.Use(middleware.SecurityHeaders())

	s.gin.Use(middleware.RateLimit(s.config, s.redisClient()))
	s.gin.Use(middleware.Timeout(s.config.Server.WriteTimeout))
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)

	apiV1 := s.gin.Group("/api/v1")
	apiV1.Use(middleware.Session(s.deps.Sessions))

	routes.SetupRoutes(apiV1, routes.Deps{
		Config:    s.config,
		AppConfig: s.deps.AppConfig,
		Catalog:   s.deps.Catalog,
		IPLookup:  s.deps.IPLookup,
		Exporter:  s.deps.Exporter,
		Logger:    s.deps.Logger,
	})

	if s.config.IsDevelopment() {
		s.gin.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":     s.config.App.Name,
				"version":     s.config.App.Version,
				"environment": s.config.App.Environment,
				"health":      "/health",
				"endpoints": gin.H{
					"products":  "/api/v1/products",
					"cart":      "/api/v1/cart",
					"favorites": "/api/v1/favorites",
					"quickview": "/api/v1/quickview",
					"checkout":  "/api/v1/checkout",
					"store":     "/api/v1/store",
				},
			})
		})
	}
}

// healthCheck handles health check requests. Redis backs only the settings
// cache and rate limiting, so an unreachable Redis degrades the report
// without failing it.
func (s *Server) healthCheck(c *gin.Context) {
	cacheStatus := "disabled"
	if s.deps.Redis != nil {
		cacheStatus = "healthy"
		if err := s.deps.Redis.Health(); err != nil {
			cacheStatus = "unreachable"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"timestamp":      time.Now().UTC(),
		"version":        s.config.App.Version,
		"environment":    s.config.App.Environment,
		"settings_cache": cacheStatus,
		"catalog_size":   s.deps.Catalog.Count(),
		"sessions":       s.deps.Sessions.Len(),
	})
}

// readinessCheck handles readiness check requests
func (s *Server) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(s.started).String(),
	})
}

func (s *Server) redisClient() *redis.Client {
	if s.deps.Redis == nil {
		return nil
	}
	return s.deps.Redis.GetClient()
}
