package fixture

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/simulation"
	"github.com/albapepper/leaguesim/internal/standings"
	"github.com/albapepper/leaguesim/internal/store"
)

// SimulateMatch plays one unplayed match of a tactical league. Missing
// line-ups are generated first. The saved match is returned.
func (r *Runner) SimulateMatch(ctx context.Context, matchID int) (model.Match, error) {
	m, err := r.store.GetMatch(ctx, matchID)
	if err != nil {
		return model.Match{}, err
	}
	league, err := r.store.GetLeague(ctx, m.LeagueID)
	if err != nil {
		return model.Match{}, err
	}
	if !league.TipoLiga.Simulatable() {
		return model.Match{}, ErrNotSimulatable
	}
	if m.Played() {
		return model.Match{}, ErrAlreadyPlayed
	}
	if err := r.play(ctx, &m); err != nil {
		return model.Match{}, err
	}
	return m, nil
}

// play simulates m in place and saves it.
func (r *Runner) play(ctx context.Context, m *model.Match) error {
	pre, ok := simulation.PreMatchOf(*m)
	if !ok {
		pre = r.sim.PreMatch()
		simulation.ApplyPreMatch(m, pre)
	}
	r.sim.Play(pre, 1.0, 1.0).Apply(m)
	if err := r.store.SaveResult(ctx, *m); err != nil {
		return fmt.Errorf("save match %d: %w", m.ID, err)
	}
	return nil
}

// SimulateLeague generates the fixture of a tactical league and stores it.
// With an empty req.Teams every registered team takes part. Results are
// stored only when req.SimulateResults is set, and a calendar is generated
// when req.AutoSchedule is set. It returns the number of matches created.
func (r *Runner) SimulateLeague(ctx context.Context, leagueID int, req model.SimulationRequest) (int, error) {
	league, err := r.store.GetLeague(ctx, leagueID)
	if err != nil {
		return 0, err
	}
	if !league.TipoLiga.Simulatable() {
		return 0, ErrNotSimulatable
	}

	registered, err := r.store.LeagueTeamIDs(ctx, leagueID)
	if err != nil {
		return 0, err
	}
	teams := registered
	if len(req.Teams) > 0 {
		for _, id := range req.Teams {
			if !slices.Contains(registered, id) {
				return 0, fmt.Errorf("team %d: %w", id, store.ErrTeamNotInLeague)
			}
		}
		teams = req.Teams
	}
	if len(teams) < 2 {
		return 0, simulation.ErrTooFewTeams
	}

	jornadas := league.Jornadas
	if req.Jornadas != nil {
		jornadas = *req.Jornadas
	}
	strengths := r.tournament.AutoBalance(teams)
	matches, err := r.tournament.Generate(leagueID, teams, jornadas, strengths, req.SimulateResults)
	if err != nil {
		return 0, err
	}
	created, err := r.store.InsertMatches(ctx, matches)
	if err != nil {
		return 0, fmt.Errorf("insert fixture: %w", err)
	}
	r.logger.Info("League simulated",
		"league_id", leagueID, "teams", len(teams), "matches", len(created), "results", req.SimulateResults)

	if req.SimulateResults {
		if _, err := r.RefreshPodium(ctx, leagueID); err != nil && !errors.Is(err, standings.ErrPodiumTooSmall) {
			return len(created), err
		}
	}
	if req.AutoSchedule {
		if _, err := r.GenerateCalendar(ctx, leagueID, model.GenerateCalendarRequest{AutoSchedule: true}); err != nil {
			return len(created), fmt.Errorf("schedule: %w", err)
		}
	}
	return len(created), nil
}

// Standings computes the league table with team names resolved.
func (r *Runner) Standings(ctx context.Context, leagueID int) ([]standings.Row, error) {
	if _, err := r.store.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}
	ids, err := r.store.LeagueTeamIDs(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	matches, err := r.store.LeagueMatches(ctx, leagueID, 0)
	if err != nil {
		return nil, err
	}
	rows := standings.Compute(ids, matches)
	teams, err := r.store.TeamsByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if t, ok := teams[rows[i].TeamID]; ok {
			rows[i].Team = t.Ref()
		}
	}
	return rows, nil
}

// Podium is the top three of a league table.
type Podium struct {
	WinnerID     int `json:"winner_id"`
	RunnerUpID   int `json:"runner_up_id"`
	ThirdPlaceID int `json:"third_place_id"`
}

// RefreshPodium stores the current top three of the table.
func (r *Runner) RefreshPodium(ctx context.Context, leagueID int) (Podium, error) {
	ids, err := r.store.LeagueTeamIDs(ctx, leagueID)
	if err != nil {
		return Podium{}, err
	}
	matches, err := r.store.LeagueMatches(ctx, leagueID, 0)
	if err != nil {
		return Podium{}, err
	}
	w, ru, t, err := standings.Podium(standings.Compute(ids, matches))
	if err != nil {
		return Podium{}, err
	}
	if err := r.store.SetPodium(ctx, leagueID, w, ru, t); err != nil {
		return Podium{}, err
	}
	return Podium{WinnerID: w, RunnerUpID: ru, ThirdPlaceID: t}, nil
}

// LeagueStatistics recomputes a league's statistics, resolves team names
// and persists the snapshot. ok is false when nothing has been played.
func (r *Runner) LeagueStatistics(ctx context.Context, leagueID int) (model.LeagueStatistics, bool, error) {
	matches, err := r.store.LeagueMatches(ctx, leagueID, 0)
	if err != nil {
		return model.LeagueStatistics{}, false, err
	}
	st, ok := standings.LeagueStatistics(leagueID, matches)
	if !ok {
		return st, false, nil
	}

	var ids []int
	for _, top := range []*model.TeamTop{st.TeamWithMostGoals, st.TeamWithBestDefense} {
		if top != nil {
			ids = append(ids, top.ID)
		}
	}
	if len(ids) > 0 {
		teams, err := r.store.TeamsByID(ctx, ids)
		if err != nil {
			return st, false, err
		}
		for _, top := range []*model.TeamTop{st.TeamWithMostGoals, st.TeamWithBestDefense} {
			if top != nil {
				top.Name = teams[top.ID].Name
			}
		}
	}
	if err := r.store.SaveLeagueStatistics(ctx, st); err != nil {
		return st, true, fmt.Errorf("save statistics of league %d: %w", leagueID, err)
	}
	return st, true, nil
}
