package fixture

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/standings"
)

// ProcessDue simulates unplayed matches of tactical leagues scheduled on or
// before the given day. Matches are grouped by league so each league's
// podium is refreshed once, and groups are spread over a worker pool.
func (r *Runner) ProcessDue(ctx context.Context, before model.Date, maxMatches, workers int) RunResult {
	start := time.Now()
	var result RunResult

	if maxMatches <= 0 {
		maxMatches = DefaultMaxMatches
	}
	due, err := r.store.DueMatches(ctx, before, maxMatches)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		result.Duration = time.Since(start)
		return result
	}

	result.MatchesFound = len(due)
	if len(due) == 0 {
		r.logger.Debug("No due matches")
		result.Duration = time.Since(start)
		return result
	}

	r.logger.Info("Found due matches", "count", len(due), "before", before.String())

	// Group by league; DueMatches keeps them in date order within a group.
	groups := make(map[int][]model.Match)
	var order []int
	for _, m := range due {
		if _, ok := groups[m.LeagueID]; !ok {
			order = append(order, m.LeagueID)
		}
		groups[m.LeagueID] = append(groups[m.LeagueID], m)
	}

	if workers < 1 {
		workers = 1
	}
	if workers > len(groups) {
		workers = len(groups)
	}

	ch := make(chan int, len(groups))
	for _, id := range order {
		ch <- id
	}
	close(ch)

	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for leagueID := range ch {
				played := 0
				for _, m := range groups[leagueID] {
					if ctx.Err() != nil {
						break
					}
					res := Result{MatchID: m.ID, LeagueID: m.LeagueID, Jornada: m.Jornada}
					if err := r.play(ctx, &m); err != nil {
						res.Error = err.Error()
					} else {
						res.Success = true
						res.HomeGoals, res.AwayGoals = m.Goals()
						played++
					}

					mu.Lock()
					result.Results = append(result.Results, res)
					result.MatchesProcessed++
					if res.Success {
						result.MatchesSucceeded++
					} else {
						result.MatchesFailed++
						result.Errors = append(result.Errors, fmt.Sprintf("match %d: %s", m.ID, res.Error))
					}
					mu.Unlock()
				}
				if played == 0 {
					continue
				}

				_, err := r.RefreshPodium(ctx, leagueID)
				mu.Lock()
				switch {
				case err == nil:
					result.LeaguesUpdated++
				case errors.Is(err, standings.ErrPodiumTooSmall):
				default:
					result.Errors = append(result.Errors, fmt.Sprintf("podium of league %d: %v", leagueID, err))
				}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	result.Duration = time.Since(start)

	r.logger.Info("Due match run complete", "summary", result.Summary())
	return result
}

// Start runs ProcessDue every interval until ctx is cancelled. It blocks.
func (r *Runner) Start(ctx context.Context, interval time.Duration, workers int) {
	r.logger.Info("Match worker started", "interval", interval, "workers", workers)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Match worker stopped")
			return
		case now := <-ticker.C:
			r.ProcessDue(ctx, model.NewDate(now), DefaultMaxMatches, workers)
		}
	}
}
