// Package maintenance runs periodic background tasks as Go tickers.
// All scheduled work is driven from Go since the API is already a
// persistent, long-running service (required for LISTEN/NOTIFY).
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/albapepper/leaguesim/internal/model"
)

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	StatsInterval time.Duration // Recompute league statistics
	SyncInterval  time.Duration // Mark calendar entries of played matches
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		StatsInterval: 15 * time.Minute,
		SyncInterval:  10 * time.Minute,
	}
}

// Store is the data the tasks read and write.
type Store interface {
	AllLeagues(ctx context.Context) ([]model.League, error)
	SyncCalendar(ctx context.Context, leagueID int) (int, error)
}

// Stats recomputes and persists one league's statistics.
type Stats interface {
	LeagueStatistics(ctx context.Context, leagueID int) (model.LeagueStatistics, bool, error)
}

// Invalidator drops cached league views.
type Invalidator interface {
	InvalidateLeague(leagueID int) int
}

// Tasks holds the collaborators shared by every maintenance task.
type Tasks struct {
	store  Store
	stats  Stats
	cache  Invalidator
	logger *slog.Logger
}

// New creates the maintenance task set.
func New(store Store, stats Stats, cache Invalidator, logger *slog.Logger) *Tasks {
	return &Tasks{store: store, stats: stats, cache: cache, logger: logger}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func (t *Tasks) Start(ctx context.Context, cfg Config) {
	t.logger.Info("Maintenance tickers started",
		"stats", cfg.StatsInterval,
		"sync", cfg.SyncInterval)

	tickers := make([]*time.Ticker, 0, 2)
	defer func() {
		for _, tk := range tickers {
			tk.Stop()
		}
	}()

	if cfg.StatsInterval > 0 {
		tk := time.NewTicker(cfg.StatsInterval)
		tickers = append(tickers, tk)
		go runLoop(ctx, tk.C, func() { t.RefreshStats(ctx) })
	}

	if cfg.SyncInterval > 0 {
		tk := time.NewTicker(cfg.SyncInterval)
		tickers = append(tickers, tk)
		go runLoop(ctx, tk.C, func() { t.SyncCalendars(ctx) })
	}

	<-ctx.Done()
	t.logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// --------------------------------------------------------------------------
// Task implementations
// --------------------------------------------------------------------------

// RefreshStats recomputes the statistics of every active league. It returns
// how many leagues had played matches.
func (t *Tasks) RefreshStats(ctx context.Context) int {
	leagues, err := t.store.AllLeagues(ctx)
	if err != nil {
		t.logger.Warn("Stats refresh: failed to list leagues", "error", err)
		return 0
	}
	ids := make([]int, 0, len(leagues))
	for _, l := range leagues {
		if l.Active {
			ids = append(ids, l.ID)
		}
	}
	n := t.refreshStats(ctx, ids)
	if n > 0 {
		t.logger.Info("Stats refresh: leagues updated", "count", n)
	}
	return n
}

// SyncCalendars reconciles the calendars of every league with a generated
// or imported calendar. It returns the number of entries changed.
func (t *Tasks) SyncCalendars(ctx context.Context) int {
	leagues, err := t.store.AllLeagues(ctx)
	if err != nil {
		t.logger.Warn("Calendar sync: failed to list leagues", "error", err)
		return 0
	}
	ids := make([]int, 0, len(leagues))
	for _, l := range leagues {
		if l.CalendarGenerated {
			ids = append(ids, l.ID)
		}
	}
	total := t.syncCalendars(ctx, ids)
	if total > 0 {
		t.logger.Info("Calendar sync: entries updated", "count", total)
	}
	return total
}
