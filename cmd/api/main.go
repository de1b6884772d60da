// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zyra-atelier/storefront/internal/config"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
	"github.com/zyra-atelier/storefront/internal/domain/inquiry"
	"github.com/zyra-atelier/storefront/internal/domain/session"
	"github.com/zyra-atelier/storefront/internal/infrastructure/database/redis"
	"github.com/zyra-atelier/storefront/internal/interfaces/http"
	"github.com/zyra-atelier/storefront/internal/interfaces/http/middleware"
	"github.com/zyra-atelier/storefront/internal/pkg/email"
	"github.com/zyra-atelier/storefront/internal/pkg/logger"
)

const janitorInterval = 5 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg)
	appLogger.WithFields(logrus.Fields{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Infof("Starting %s", cfg.App.Name)

	store, err := catalog.Default()
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load catalog")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Session store and rate limiter share Redis when it is configured
	var (
		sessionStore session.Store
		limiter      middleware.Limiter
	)
	if cfg.UsesRedis() {
		redisClient, err := redis.NewConnection(cfg, appLogger)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisClient.Close()

		sessionStore = redis.NewSessionStore(redisClient, cfg.Session.TTL)
		limiter = middleware.NewRedisLimiter(redisClient.Redis, cfg.Security.RateLimitPerMinute)
	} else {
		memoryStore := session.NewMemoryStore(cfg.Session.TTL)
		go memoryStore.RunJanitor(ctx, janitorInterval)

		sessionStore = memoryStore
		limiter = middleware.NewMemoryLimiter(cfg.Security.RateLimitPerMinute, cfg.Security.RateLimitBurst)
	}

	sessions := session.NewService(sessionStore, store, appLogger, cfg.Studio.SaveDelay)
	inquiries := inquiry.NewService(email.NewSender(cfg, appLogger), cfg.Email.InquiryTo, appLogger)

	appLogger.WithField("store", cfg.Session.Store).Info("All systems operational")

	// Create and start HTTP server
	server := http.NewServer(cfg, http.Dependencies{
		Catalog:   store,
		Sessions:  sessions,
		Inquiries: inquiries,
		Limiter:   limiter,
		Logger:    appLogger,
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			appLogger.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	appLogger.Info("Server shutdown completed")
}
