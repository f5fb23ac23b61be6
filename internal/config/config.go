package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	defaultListenAddr     = ":8080"
	defaultRateLimitBurst = 10

	envListenAddr     = "ROSTER_LISTEN_ADDR"
	envLogLevel       = "ROSTER_LOG_LEVEL"
	envCatalogPath    = "ROSTER_CATALOG_PATH"
	envRateLimitRPS   = "ROSTER_RATE_LIMIT_RPS"
	envRateLimitBurst = "ROSTER_RATE_LIMIT_BURST"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	ListenAddr     string  `env:"ROSTER_LISTEN_ADDR" envDefault:":8080"`
	LogLevelName   string  `env:"ROSTER_LOG_LEVEL" envDefault:"info"`
	CatalogPath    string  `env:"ROSTER_CATALOG_PATH"`
	RateLimitRPS   float64 `env:"ROSTER_RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int     `env:"ROSTER_RATE_LIMIT_BURST" envDefault:"10"`

	LogLevel slog.Level
}

// Load reads configuration from environment variables with sensible defaults.
// Empty variables fall back to their defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = defaultRateLimitBurst
	}
	if cfg.RateLimitRPS < 0 {
		cfg.RateLimitRPS = 0
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelName)

	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a structured JSON logger writing to w at the configured level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
