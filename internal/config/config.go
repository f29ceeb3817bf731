// Package config loads server settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the server's runtime settings.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFormat is "text" (colored, human readable) or "json".
	LogFormat string

	// SeedDemo loads the demo users, group and expenses on startup.
	SeedDemo bool

	// StrictSplitTotals rejects unequal splits whose shares don't add up to the amount.
	StrictSplitTotals bool

	// CORSOrigin is the value of Access-Control-Allow-Origin.
	CORSOrigin string

	// ShutdownTimeout bounds how long in-flight requests get on shutdown.
	ShutdownTimeout time.Duration
}

// Addr returns the listen address, e.g. ":8080".
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads the configuration from the environment, applying defaults for
// unset variables.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:  strings.ToLower(getEnv("LOG_FORMAT", "text")),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	if cfg.SeedDemo, err = strconv.ParseBool(getEnv("SEED_DEMO", "false")); err != nil {
		return Config{}, fmt.Errorf("invalid SEED_DEMO: %w", err)
	}
	if cfg.StrictSplitTotals, err = strconv.ParseBool(getEnv("STRICT_SPLIT_TOTALS", "false")); err != nil {
		return Config{}, fmt.Errorf("invalid STRICT_SPLIT_TOTALS: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}
