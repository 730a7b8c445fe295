package handler

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/albapepper/leaguesim/internal/cache"
	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/standings"
	"github.com/albapepper/leaguesim/internal/store"
)

const analyticsConcurrency = 4

// GlobalAnalytics aggregates statistics across every league.
// @Summary Global analytics
// @Tags analytics
// @Produce json
// @Success 200 {object} standings.GlobalStats
// @Router /api/v1/analytics [get]
func (h *Handler) GlobalAnalytics(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cache.PrefixAnalytics+"global", cache.TTLAnalytics, "Analytics", h.globalStats)
}

func (h *Handler) globalStats(ctx context.Context) (any, error) {
	leagues, err := h.store.AllLeagues(ctx)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	stats := make(map[int]model.LeagueStatistics, len(leagues))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(analyticsConcurrency)
	for _, l := range leagues {
		l := l
		g.Go(func() error {
			matches, err := h.store.LeagueMatches(gctx, l.ID, 0)
			if err != nil {
				return fmt.Errorf("league %d: %w", l.ID, err)
			}
			if st, ok := standings.LeagueStatistics(l.ID, matches); ok {
				mu.Lock()
				stats[l.ID] = st
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return standings.Global(leagues, stats), nil
}

// LeagueAnalytics computes and stores a league's statistics.
// @Summary League analytics
// @Tags analytics
// @Produce json
// @Param id path int true "League ID"
// @Success 200 {object} model.LeagueStatistics
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/analytics/leagues/{id} [get]
func (h *Handler) LeagueAnalytics(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.serveCached(w, r, cache.LeagueKey(id, "analytics"), cache.TTLAnalytics, "Statistics for league", func(ctx context.Context) (any, error) {
		if _, err := h.store.GetLeague(ctx, id); err != nil {
			return nil, err
		}
		st, ok, err := h.runner.LeagueStatistics(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("league %d has no played matches: %w", id, store.ErrNotFound)
		}
		return st, nil
	})
}
