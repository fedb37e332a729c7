package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpapi "github.com/kidiezyllex/real-estate-BE/internal/api/http"
	"github.com/kidiezyllex/real-estate-BE/internal/cache"
	"github.com/kidiezyllex/real-estate-BE/internal/config"
	"github.com/kidiezyllex/real-estate-BE/internal/logger"
	"github.com/kidiezyllex/real-estate-BE/internal/notify"
	"github.com/kidiezyllex/real-estate-BE/internal/repository/postgres"
	"github.com/kidiezyllex/real-estate-BE/internal/schedule"
	"github.com/kidiezyllex/real-estate-BE/internal/security"
	"github.com/kidiezyllex/real-estate-BE/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Optional .env, real environment wins
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Ignoring .env: %v", err)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting billing API server...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Billing configuration", "timezone", cfg.Billing.Timezone, "due_window_days", cfg.Billing.DueWindowDays)

	ctx := context.Background()

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := postgres.Open(ctx, cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Report cache is optional
	var reportCache service.ReportCache
	if cfg.Redis.Addr != "" {
		client, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("Redis unavailable, report cache disabled", "addr", cfg.Redis.Addr, "error", err)
		} else {
			defer client.Close()
			reportCache = cache.New(client, cfg.CacheTTL())
			logger.Info("Report cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.CacheTTL())
		}
	}

	// Initialize notification channel
	channel, closeChannel, err := notify.FromConfig(cfg)
	if err != nil {
		logger.Error("Failed to initialize notification channel", "error", err)
		log.Fatalf("Failed to initialize notification channel: %v", err)
	}
	defer closeChannel()

	// Initialize Services
	clock := schedule.NewClock(cfg.Location())
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.Contracts, store.Homes, store.Receivers, reportCache, clock)
	reminderSvc := service.NewReminderService(store.PaymentRepository, store.Contracts, store.Guests, channel, clock)
	statisticsSvc := service.NewStatisticsService(store.PaymentRepository, paymentSvc, reportCache, clock)

	// Initialize Security
	var verifier security.TokenVerifier
	if cfg.JWT.Secret != "" {
		verifier = security.NewTokenVerifier(cfg.JWT.Secret, cfg.JWT.Issuer)
	} else {
		logger.Warn("jwt.secret is empty, API routes are unauthenticated")
	}

	server := httpapi.NewServer(httpapi.Deps{
		Payments:      paymentSvc,
		Reminders:     reminderSvc,
		Statistics:    statisticsSvc,
		Verifier:      verifier,
		Metrics:       httpapi.NewMetrics(),
		Health:        store,
		Clock:         clock,
		DueWindowDays: cfg.Billing.DueWindowDays,
	})

	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to serve HTTP", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped")
}
