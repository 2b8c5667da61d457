package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// StorePath is the notes database file. Empty means "probe the
	// default locations" — resolution happens at the call site, not here.
	StorePath string
	// MediaRoot is the optional notes container root for attachment
	// media lookup. Empty disables the capability.
	MediaRoot string
	APIPort   string
	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults
// for optional fields. If a .env file exists in the current directory or
// a parent, it is loaded first; environment variables already set take
// precedence over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	// Walk up a few levels so running from a subdirectory still finds
	// the project .env.
	if wd, err := os.Getwd(); err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		StorePath: getEnv("NOTESTORE_PATH", ""),
		MediaRoot: getEnv("MEDIA_ROOT", ""),
		APIPort:   getEnv("API_PORT", "9000"),
		LogLevel:  parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
