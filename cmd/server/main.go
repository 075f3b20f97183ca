package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"greenfield-hub-backend/internal/api/rest"
	"greenfield-hub-backend/internal/config"
	"greenfield-hub-backend/internal/logger"
	"greenfield-hub-backend/internal/mailer"
	"greenfield-hub-backend/internal/repository/postgres"
	"greenfield-hub-backend/internal/scheduler"
	"greenfield-hub-backend/internal/security"
	"greenfield-hub-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Optional .env for local development; real deployments set env vars.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Green Field Hub backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	// Async email delivery
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sender := mailer.NewSendGridSender(cfg.SendGrid.APIKey, cfg.SendGrid.From, cfg.SendGrid.FromName)
	queue := mailer.NewQueue(sender, cfg.Mailer.Workers, cfg.Mailer.QueueSize, cfg.Mailer.MaxRetries)
	queue.Start(ctx)

	sched := scheduler.NewScheduler(queue, cfg.Mailer.RedeliverSpec)
	sched.Start()
	defer sched.Stop()

	// Services
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.SessionExpiryDays)
	emailSvc := service.NewEmailService(queue)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	tractorSvc := service.NewTractorService(store.TractorRepository, emailSvc)
	chatSvc := service.NewChatService(cfg.Chat.APIKey, cfg.Chat.Model, cfg.Chat.BaseURL)

	router := rest.NewRouter(authSvc, tractorSvc, chatSvc, tokenManager, cfg.CORS.AllowedOrigins)

	server := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, draining...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
