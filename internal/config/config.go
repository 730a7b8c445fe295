// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/leaguectl.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// --------------------------------------------------------------------------
// Config is populated from environment variables.
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string        `env:"DATABASE_URL,required,notEmpty"`
	DBPoolMinConns int           `env:"DB_POOL_MIN_CONNS" envDefault:"2"`
	DBPoolMaxConns int           `env:"DB_POOL_MAX_CONNS" envDefault:"10"`
	DBPoolMaxLife  time.Duration `env:"DB_POOL_MAX_LIFE"  envDefault:"30m"`
	AutoMigrate    bool          `env:"AUTO_MIGRATE"      envDefault:"true"`

	// API server
	APIHost     string `env:"API_HOST"    envDefault:"0.0.0.0"`
	APIPort     int    `env:"API_PORT"    envDefault:"8000"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// CORS
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173,http://localhost:8080"`

	// Rate limiting
	RateLimitEnabled  bool          `env:"RATE_LIMIT_ENABLED"  envDefault:"true"`
	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"100"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW"   envDefault:"60s"`

	// Cache
	CacheEnabled bool `env:"CACHE_ENABLED" envDefault:"true"`

	// League templates
	TemplatesDir string `env:"TEMPLATES_DIR" envDefault:"templates"`

	// Background work
	MatchWorkerInterval      time.Duration `env:"MATCH_WORKER_INTERVAL"       envDefault:"0"`
	MatchWorkerCount         int           `env:"MATCH_WORKER_COUNT"          envDefault:"2"`
	MaintenanceStatsInterval time.Duration `env:"MAINTENANCE_STATS_INTERVAL" envDefault:"15m"`
	MaintenanceSyncInterval  time.Duration `env:"MAINTENANCE_SYNC_INTERVAL"  envDefault:"10m"`

	// External calendar scraping
	ScraperRequestsPerMinute int `env:"SCRAPER_REQUESTS_PER_MINUTE" envDefault:"30"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the services cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.DBPoolMinConns < 0 || c.DBPoolMaxConns < 1 || c.DBPoolMinConns > c.DBPoolMaxConns {
		errs = append(errs, fmt.Errorf("invalid pool size: min=%d max=%d", c.DBPoolMinConns, c.DBPoolMaxConns))
	}
	if c.APIPort < 1 || c.APIPort > 65535 {
		errs = append(errs, fmt.Errorf("API_PORT out of range: %d", c.APIPort))
	}
	if c.RateLimitEnabled && (c.RateLimitRequests < 1 || c.RateLimitWindow <= 0) {
		errs = append(errs, errors.New("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive"))
	}
	if c.MatchWorkerInterval < 0 {
		errs = append(errs, errors.New("MATCH_WORKER_INTERVAL must not be negative"))
	}
	if c.MatchWorkerCount < 1 {
		errs = append(errs, errors.New("MATCH_WORKER_COUNT must be at least 1"))
	}
	if c.ScraperRequestsPerMinute < 1 {
		errs = append(errs, errors.New("SCRAPER_REQUESTS_PER_MINUTE must be at least 1"))
	}
	if c.TemplatesDir == "" {
		errs = append(errs, errors.New("TEMPLATES_DIR must be set"))
	}
	return errors.Join(errs...)
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr is the listen address of the API server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}
