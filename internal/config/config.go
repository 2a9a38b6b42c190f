package config

import (
	"fmt"
	"log/slog"
	"os"
)

// Config holds application configuration, read once at startup and passed
// explicitly to everything that needs it.
type Config struct {
	Port        string
	DownloadDir string
	LogLevel    slog.Level

	UseMinIO       bool
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool
}

type ErrMissingRequiredEnvVar struct {
	Name string
}

func (e *ErrMissingRequiredEnvVar) Error() string {
	return fmt.Sprintf("required environment variable %q is not set", e.Name)
}

// Load reads configuration from environment variables. MinIO credentials are
// required only when USE_MINIO is enabled.
func Load() (*Config, error) {
	config := Config{
		Port:        envOrDefault("PORT", "8000"),
		DownloadDir: envOrDefault("DOWNLOAD_DIR", "imdb_datasets"),
		LogLevel:    parseLevel(os.Getenv("LOG_LEVEL")),
		UseMinIO:    os.Getenv("USE_MINIO") == "true",
	}

	if config.UseMinIO {
		config.MinIOEndpoint = os.Getenv("MINIO_ENDPOINT")
		if config.MinIOEndpoint == "" {
			return nil, &ErrMissingRequiredEnvVar{Name: "MINIO_ENDPOINT"}
		}
		config.MinIOAccessKey = os.Getenv("MINIO_ACCESS_KEY")
		if config.MinIOAccessKey == "" {
			return nil, &ErrMissingRequiredEnvVar{Name: "MINIO_ACCESS_KEY"}
		}
		config.MinIOSecretKey = os.Getenv("MINIO_SECRET_KEY")
		if config.MinIOSecretKey == "" {
			return nil, &ErrMissingRequiredEnvVar{Name: "MINIO_SECRET_KEY"}
		}
		config.MinIOBucket = envOrDefault("MINIO_BUCKET", "imdb-datasets")
		config.MinIOUseSSL = os.Getenv("MINIO_USE_SSL") == "true"
	}

	return &config, nil
}

func envOrDefault(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug", "DEBUG":
		return slog.LevelDebug
	case "warn", "WARN", "warning", "WARNING":
		return slog.LevelWarn
	case "error", "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
