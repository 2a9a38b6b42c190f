package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sgaurav37533/IMDB-Dataset-Downloader-API/internal/api"
	"github.com/sgaurav37533/IMDB-Dataset-Downloader-API/internal/config"
	"github.com/sgaurav37533/IMDB-Dataset-Downloader-API/internal/exitcode"
	"github.com/sgaurav37533/IMDB-Dataset-Downloader-API/internal/registry"
	"github.com/sgaurav37533/IMDB-Dataset-Downloader-API/internal/service"
	"github.com/sgaurav37533/IMDB-Dataset-Downloader-API/internal/storage"
)

func main() {
	// Ensure environment variables are loaded
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load env vars", "error", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(exitcode.ConfigError)
	}

	// Configure the global logger (JSON to stdout)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// Select the storage backend
	backend, err := newBackend(cfg)
	if err != nil {
		slog.Error("failed to initialize storage backend", "error", err)
		os.Exit(exitcode.StorageError)
	}

	svc := service.NewService(registry.Default(), backend)

	// Setup HTTP routes
	mux := http.NewServeMux()
	api.NewHandler(svc).RegisterRoutes(mux)

	// No WriteTimeout: /download and /full-process hold the response open
	// for the duration of the whole batch.
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     mux,
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Port, "storage", backend.Location())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(exitcode.ServerError)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(exitcode.ServerError)
	}

	slog.Info("server stopped")
}

// newBackend selects local or MinIO storage from configuration.
func newBackend(cfg *config.Config) (storage.Backend, error) {
	if !cfg.UseMinIO {
		slog.Info("using local file storage", "dir", cfg.DownloadDir)
		return storage.NewLocal(cfg.DownloadDir), nil
	}

	slog.Info("using minio storage", "endpoint", cfg.MinIOEndpoint, "bucket", cfg.MinIOBucket)
	return storage.NewMinIOClient(storage.MinIOConfig{
		Endpoint:  cfg.MinIOEndpoint,
		AccessKey: cfg.MinIOAccessKey,
		SecretKey: cfg.MinIOSecretKey,
		Bucket:    cfg.MinIOBucket,
		UseSSL:    cfg.MinIOUseSSL,
	})
}
