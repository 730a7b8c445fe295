// Command api is the League Simulator API server.
//
// Usage:
//
//	leaguesim-api
//	API_PORT=8080 leaguesim-api

// @title League Simulator API
// @version 1.0.0
// @description Football league simulator: teams, leagues, tactical match simulation, standings, calendars, templates and analytics.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @contact.name League Simulator
// @license.name MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/leaguesim/internal/api"
	"github.com/albapepper/leaguesim/internal/api/handler"
	"github.com/albapepper/leaguesim/internal/cache"
	"github.com/albapepper/leaguesim/internal/config"
	"github.com/albapepper/leaguesim/internal/db"
	"github.com/albapepper/leaguesim/internal/external"
	"github.com/albapepper/leaguesim/internal/fixture"
	"github.com/albapepper/leaguesim/internal/listener"
	"github.com/albapepper/leaguesim/internal/maintenance"
	"github.com/albapepper/leaguesim/internal/simulation"
	"github.com/albapepper/leaguesim/internal/store"
	"github.com/albapepper/leaguesim/internal/template"

	_ "github.com/albapepper/leaguesim/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Schema first: pooled connections prepare statements against it.
	if cfg.AutoMigrate {
		applied, err := db.Migrate(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			logger.Error("Failed to apply migrations", "error", err)
			os.Exit(1)
		}
		logger.Info("Migrations checked", "applied", applied)
	}

	// Connect to database
	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	templates, err := template.NewLoader(cfg.TemplatesDir, logger)
	if err != nil {
		logger.Error("Failed to open templates directory", "dir", cfg.TemplatesDir, "error", err)
		os.Exit(1)
	}

	sim, err := simulation.New()
	if err != nil {
		logger.Error("Failed to seed simulator", "error", err)
		os.Exit(1)
	}

	st := store.New(pool.Pool)
	runner := fixture.NewRunner(st, sim, logger)

	// LISTEN/NOTIFY consumer for played matches
	go listener.New(cfg.DatabaseURL, st, appCache, logger).Start(ctx)

	// Maintenance tickers (statistics refresh, calendar sync)
	go maintenance.New(st, runner, appCache, logger).Start(ctx, maintenance.Config{
		StatsInterval: cfg.MaintenanceStatsInterval,
		SyncInterval:  cfg.MaintenanceSyncInterval,
	})

	// Scheduled match worker
	if cfg.MatchWorkerInterval > 0 {
		go runner.Start(ctx, cfg.MatchWorkerInterval, cfg.MatchWorkerCount)
	} else {
		logger.Info("Match worker disabled (MATCH_WORKER_INTERVAL=0)")
	}

	h := handler.New(handler.Deps{
		Store:     st,
		DB:        pool,
		Cache:     appCache,
		Templates: templates,
		Scraper:   external.NewCalendarScraper(cfg.ScraperRequestsPerMinute, logger),
		Runner:    runner,
		Logger:    logger,
	})
	router := api.NewRouter(h, cfg, logger)

	// Create HTTP server
	addr := cfg.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting League Simulator API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
