package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application's configuration.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LabelsFile      string        `env:"SENSOR_LABELS_FILE"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	Auth0           Auth0Config
}

// Auth0Config stores the Auth0 details used for token validation. Both
// fields must be set for the API to require a token.
type Auth0Config struct {
	Issuer   string `env:"AUTH0_ISSUER"`
	Audience string `env:"AUTH0_AUDIENCE"`
}

// Enabled reports whether JWT validation is configured.
func (a Auth0Config) Enabled() bool {
	return a.Issuer != "" && a.Audience != ""
}

// LoadConfig loads the configuration from the environment, reading a .env
// file first when one is present.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on system environment variables")
	}
	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if (cfg.Auth0.Issuer == "") != (cfg.Auth0.Audience == "") {
		return Config{}, fmt.Errorf("auth0 configuration is incomplete: set both AUTH0_ISSUER and AUTH0_AUDIENCE")
	}
	return cfg, nil
}

// SlogLevel maps LogLevel onto a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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

// Addr is the HTTP listen address.
func (c Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}
