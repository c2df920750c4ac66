// cmd/api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/config"
	"github.com/kraken-dive/storefront-backend/internal/domain/cart"
	"github.com/kraken-dive/storefront-backend/internal/domain/catalog"
	redisdb "github.com/kraken-dive/storefront-backend/internal/infrastructure/database/redis"
	"github.com/kraken-dive/storefront-backend/internal/infrastructure/settings"
	httpserver "github.com/kraken-dive/storefront-backend/internal/interfaces/http"
	"github.com/kraken-dive/storefront-backend/internal/interfaces/http/middleware"
	"github.com/kraken-dive/storefront-backend/internal/pkg/device"
	"github.com/kraken-dive/storefront-backend/internal/pkg/export"
	"github.com/kraken-dive/storefront-backend/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := middleware.NewLogger(cfg)
	logger.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to Redis. The storefront holds no persistent state; Redis
	// only backs the settings cache and rate limiting, so a failed
	// connection degrades to in-process fallbacks.
	redisClient, err := redisdb.NewConnection(cfg)
	if err != nil {
		logger.WithError(err).Warn("Redis unavailable, using in-process settings cache only")
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// Resolve the application configuration
	source := settings.NewSource(redisClient, logger)
	appConfig := appconfig.New(source, logger)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	_ = appConfig.Load(loadCtx, appconfig.Options{
		Region:    cfg.Store.Region,
		Season:    cfg.Store.Season,
		StoreType: cfg.Store.StoreType,
	})
	cancelLoad()

	// Build the product catalog
	catalogService, err := catalog.NewService()
	if err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}
	logger.Infof("Catalog loaded with %d products", catalogService.Count())

	// Session registry with idle sweep
	sessions := session.NewManager(appConfig, cart.Policy{
		AllowOverselling: cfg.Store.AllowOverselling,
	}, cfg.Store.SessionTTL)

	sweeperStop := make(chan struct{})
	sessions.StartSweeper(time.Hour, sweeperStop)
	defer close(sweeperStop)

	ipLookup := device.NewIPLookup(cfg.External.IPLookupURL, cfg.External.IPFallback,
		&http.Client{Timeout: cfg.External.IPLookupTimeout}, logger)

	// Create and start HTTP server
	server := httpserver.NewServer(cfg, httpserver.Deps{
		AppConfig: appConfig,
		Catalog:   catalogService,
		Sessions:  sessions,
		Redis:     redisClient,
		IPLookup:  ipLookup,
		Exporter:  export.NewJSONExporter(),
		Logger:    logger,
	})

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	logger.Info("Server shutdown completed")
}
