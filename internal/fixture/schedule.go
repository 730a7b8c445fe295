package fixture

import (
	"context"

	"github.com/albapepper/leaguesim/internal/calendar"
	"github.com/albapepper/leaguesim/internal/model"
)

// GenerateCalendar creates calendar entries for every match of the league
// that has none yet. Dates fall back to the league's own start and end
// dates. It returns the number of entries created.
func (r *Runner) GenerateCalendar(ctx context.Context, leagueID int, req model.GenerateCalendarRequest) (int, error) {
	league, err := r.store.GetLeague(ctx, leagueID)
	if err != nil {
		return 0, err
	}
	matches, err := r.store.LeagueMatches(ctx, leagueID, 0)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, ErrNoMatches
	}
	scheduled, err := r.store.ScheduledMatchIDs(ctx, leagueID)
	if err != nil {
		return 0, err
	}

	opts := calendar.Options{
		AutoSchedule: req.AutoSchedule,
		MatchDays:    req.MatchDays,
		EndDate:      req.EndDate,
	}
	switch {
	case req.StartDate != nil:
		opts.StartDate = *req.StartDate
	case league.StartDate != nil:
		opts.StartDate = *league.StartDate
	}
	if opts.EndDate == nil {
		opts.EndDate = league.EndDate
	}

	slots := calendar.Plan(matches, scheduled, opts)
	created, err := r.store.ApplyCalendarPlan(ctx, leagueID, slots)
	if err != nil {
		return 0, err
	}
	r.logger.Info("Calendar generated",
		"league_id", leagueID, "entries", created, "auto_schedule", req.AutoSchedule)
	return created, nil
}
