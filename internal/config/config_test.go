package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/leagues")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.DBPoolMinConns)
	assert.Equal(t, 10, cfg.DBPoolMaxConns)
	assert.Equal(t, 30*time.Minute, cfg.DBPoolMaxLife)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.True(t, cfg.CacheEnabled)
	assert.True(t, cfg.AutoMigrate)
	assert.Zero(t, cfg.MatchWorkerInterval)
	assert.Equal(t, "templates", cfg.TemplatesDir)
	assert.Len(t, cfg.CORSAllowOrigins, 3)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/leagues")
	t.Setenv("API_PORT", "9090")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("MATCH_WORKER_INTERVAL", "5m")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.APIPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 5*time.Minute, cfg.MatchWorkerInterval)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"pool min above max", func(c *Config) { c.DBPoolMinConns = 20 }},
		{"port", func(c *Config) { c.APIPort = 0 }},
		{"rate window", func(c *Config) { c.RateLimitWindow = 0 }},
		{"workers", func(c *Config) { c.MatchWorkerCount = 0 }},
		{"scraper", func(c *Config) { c.ScraperRequestsPerMinute = 0 }},
		{"templates", func(c *Config) { c.TemplatesDir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())
}

func valid() Config {
	return Config{
		DatabaseURL:              "postgres://localhost/leagues",
		DBPoolMinConns:           2,
		DBPoolMaxConns:           10,
		APIPort:                  8000,
		RateLimitEnabled:         true,
		RateLimitRequests:        100,
		RateLimitWindow:          time.Minute,
		MatchWorkerCount:         2,
		ScraperRequestsPerMinute: 30,
		TemplatesDir:             "templates",
	}
}
