package maintenance

import (
	"context"
	"time"
)

// AfterSimulation refreshes the derived data of leagues whose matches were
// just played: calendar entries first, then statistics.
// Call this after a batch simulation or fixture processing cycle.
func (t *Tasks) AfterSimulation(ctx context.Context, leagueIDs []int) {
	start := time.Now()
	synced := t.syncCalendars(ctx, leagueIDs)
	refreshed := t.refreshStats(ctx, leagueIDs)
	t.logger.Info("Post-simulation refresh",
		"leagues", len(leagueIDs),
		"entries_synced", synced,
		"stats_refreshed", refreshed,
		"duration", time.Since(start).Round(time.Millisecond))
}

func (t *Tasks) refreshStats(ctx context.Context, leagueIDs []int) int {
	n := 0
	for _, id := range leagueIDs {
		_, ok, err := t.stats.LeagueStatistics(ctx, id)
		if err != nil {
			t.logger.Warn("Failed to refresh league statistics", "league_id", id, "error", err)
			continue
		}
		if ok {
			t.cache.InvalidateLeague(id)
			n++
		}
	}
	return n
}

func (t *Tasks) syncCalendars(ctx context.Context, leagueIDs []int) int {
	total := 0
	for _, id := range leagueIDs {
		changed, err := t.store.SyncCalendar(ctx, id)
		if err != nil {
			t.logger.Warn("Failed to sync calendar", "league_id", id, "error", err)
			continue
		}
		if changed > 0 {
			t.cache.InvalidateLeague(id)
		}
		total += changed
	}
	return total
}
