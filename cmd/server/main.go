package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dheerajjx/portfolio/internal/api"
	"github.com/dheerajjx/portfolio/internal/config"
	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/mail"
	"github.com/dheerajjx/portfolio/internal/media"
	"github.com/dheerajjx/portfolio/internal/repository/postgres"
	"github.com/dheerajjx/portfolio/internal/service"
	"github.com/dheerajjx/portfolio/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.Environment)
	ctx := context.Background()

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL, !cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Outbound mail
	mailer, err := newMailer(cfg, logger)
	if err != nil {
		log.Fatalf("failed to configure mail: %v", err)
	}
	if _, ok := mailer.(*mail.LogSender); ok {
		logger.Warn(ctx, "SMTP is not configured, login codes will only be logged")
	}

	// Image host. Without one every upload is served from UploadDir.
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload directory: %v", err)
	}
	var host media.RemoteHost
	if cfg.S3Configured() {
		s3Host, err := media.NewS3Host(ctx, media.S3Config{
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Bucket:        cfg.S3Bucket,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			log.Fatalf("failed to configure image host: %v", err)
		}
		host = s3Host
	} else {
		logger.Warn(ctx, "image host is not configured, uploads are served locally")
	}
	ingestor := media.NewIngestor(host, media.Options{
		PublicURL: cfg.PublicURL,
		Timeout:   cfg.UploadTimeout,
		MaxEdge:   cfg.ImageMaxEdge,
	}, logger)

	// Initialize WebSocket hub
	hub := websocket.NewHub(logger)
	go hub.Run()

	// Initialize services
	services := service.NewServices(repos, service.Dependencies{
		Mailer: mailer,
		Media:  ingestor,
		Events: hub,
		Logger: logger,
	}, cfg)

	// Initialize router
	router := api.NewRouter(services, hub, cfg, logger)

	// Create server. Uploads can take up to UploadTimeout per file.
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info(ctx, "server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	hub.Stop()

	logger.Info(ctx, "server stopped")
}
