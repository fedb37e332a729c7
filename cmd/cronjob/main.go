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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kidiezyllex/real-estate-BE/internal/config"
	"github.com/kidiezyllex/real-estate-BE/internal/jobs"
	"github.com/kidiezyllex/real-estate-BE/internal/logger"
	"github.com/kidiezyllex/real-estate-BE/internal/notify"
	"github.com/kidiezyllex/real-estate-BE/internal/repository/postgres"
	"github.com/kidiezyllex/real-estate-BE/internal/schedule"
	"github.com/kidiezyllex/real-estate-BE/internal/scheduler"
	"github.com/kidiezyllex/real-estate-BE/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'dispatch-payment-reminders')")
	metricsAddr := flag.String("metrics-addr", "", "Serve job metrics on this address (e.g., ':9102'); empty disables")
	flag.Parse()

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
	logger.Info("Starting billing cronjob runner...", "log_level", cfg.Log.Level, "timezone", cfg.Billing.Timezone)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := postgres.Open(context.Background(), cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	channel, closeChannel, err := notify.FromConfig(cfg)
	if err != nil {
		logger.Error("Failed to initialize notification channel", "error", err)
		log.Fatalf("Failed to initialize notification channel: %v", err)
	}
	defer closeChannel()

	// Initialize Services
	clock := schedule.NewClock(cfg.Location())
	reminderService := service.NewReminderService(
		store.PaymentRepository,
		store.Contracts,
		store.Guests,
		channel,
		clock,
	)

	jobServices := &jobs.Services{
		Reminders: reminderService,
	}

	registry := prometheus.NewRegistry()
	jobRunner := jobs.NewJobRunner(jobServices, jobs.NewMetrics(registry))

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	if *metricsAddr != "" {
		metricsServer := &http.Server{
			Addr:              *metricsAddr,
			Handler:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("Job metrics listening", "address", *metricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Metrics server error", "error", err)
			}
		}()
		defer metricsServer.Close()
	}

	// Initialize Scheduler
	cronScheduler, err := scheduler.NewScheduler(jobRunner, cfg.Scheduler.DispatchPaymentReminders, cfg.Location())
	if err != nil {
		logger.Error("Failed to initialize scheduler", "error", err)
		log.Fatalf("Failed to initialize scheduler: %v", err)
	}

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.", "next_run", cronScheduler.NextRun())

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	if err := jobRunner.RunJob(jobName); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		fmt.Printf("Available jobs:\n")
		for _, name := range jobRunner.JobNames() {
			fmt.Printf("  - %s\n", name)
		}
		os.Exit(1)
	}
}
