// Package config handles configuration loading for the trade journal service.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DevJWTSecret is the fallback signing key for local development.
// Deployments must override it via JWT_SECRET_KEY.
const DevJWTSecret = "dev-only-insecure-jwt-secret-key!!!!"

// Config holds all configuration for the trade journal service.
type Config struct {
	Port        string `env:"PORT" envDefault:"8085"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// DatabaseURL selects the backing store: a postgres:// DSN in
	// production, a sqlite file path otherwise (matching the original
	// deployment split).
	DatabaseURL string `env:"DATABASE_URL" envDefault:"journal_dev.db"`

	JWTSecret       string        `env:"JWT_SECRET_KEY"`
	JWTAccessExpiry time.Duration `env:"JWT_ACCESS_EXPIRY" envDefault:"15m"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Bootstrap account: an opt-in test fixture that authenticates a fixed
	// address without checking the password. Never enable in production.
	BootstrapLoginEnabled bool   `env:"BOOTSTRAP_LOGIN_ENABLED" envDefault:"false"`
	BootstrapEmail        string `env:"BOOTSTRAP_EMAIL" envDefault:"test@test.com"`
	BootstrapPassword     string `env:"BOOTSTRAP_PASSWORD" envDefault:"test123"`

	SwaggerHost string `env:"SWAGGER_HOST"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DevJWTSecret
	}
	return cfg, nil
}
