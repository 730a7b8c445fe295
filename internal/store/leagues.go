package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/leaguesim/internal/model"
)

const leagueSelect = `
	SELECT l.id, l.name, l.country, l.tipo_liga, l.league_type, l.max_teams, l.jornadas,
	       l.manager_id, l.manager_name, l.active, l.start_date, l.end_date,
	       l.highest_value_team_id, l.lowest_value_team_id, l.avg_team_value, l.value_difference,
	       l.winner_id, l.runner_up_id, l.third_place_id, l.calendar_generated,
	       l.external_calendar_url, l.created_at,
	       (SELECT COUNT(*) FROM matches m WHERE m.league_id = l.id),
	       (SELECT COUNT(*) FROM league_teams t WHERE t.league_id = l.id)
	FROM leagues l`

func scanLeague(row pgx.Row) (model.League, error) {
	var (
		l          model.League
		tipo       string
		start, end *time.Time
	)
	err := row.Scan(&l.ID, &l.Name, &l.Country, &tipo, &l.LeagueType, &l.MaxTeams, &l.Jornadas,
		&l.ManagerID, &l.ManagerName, &l.Active, &start, &end,
		&l.HighestValueTeamID, &l.LowestValueTeamID, &l.AvgTeamValue, &l.ValueDifference,
		&l.WinnerID, &l.RunnerUpID, &l.ThirdPlaceID, &l.CalendarGenerated,
		&l.ExternalCalendarURL, &l.CreatedAt,
		&l.MatchesCount, &l.TeamsCount)
	l.TipoLiga = model.TipoLiga(tipo)
	l.StartDate, l.EndDate = toDate(start), toDate(end)
	return l, err
}

func collectLeagues(rows pgx.Rows, err error) ([]model.League, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (model.League, error) { return scanLeague(r) })
}

// LeagueFilter narrows ListLeagues.
type LeagueFilter struct {
	Page
	ActiveOnly        bool
	ManagerID         string
	TipoLiga          model.TipoLiga
	CalendarGenerated bool
}

func getLeague(ctx context.Context, q querier, id int) (model.League, error) {
	l, err := scanLeague(q.QueryRow(ctx, leagueSelect+" WHERE l.id = $1", id))
	if err != nil {
		return model.League{}, mapErr(err)
	}
	return l, nil
}

func (s *Store) GetLeague(ctx context.Context, id int) (model.League, error) {
	return getLeague(ctx, s.db, id)
}

func (s *Store) ListLeagues(ctx context.Context, f LeagueFilter) ([]model.League, error) {
	var w where
	if f.ActiveOnly {
		w.preds = append(w.preds, "l.active")
	}
	if f.CalendarGenerated {
		w.preds = append(w.preds, "l.calendar_generated")
	}
	if f.ManagerID != "" {
		w.add("l.manager_id = $%d", f.ManagerID)
	}
	if f.TipoLiga != "" {
		w.add("l.tipo_liga = $%d", string(f.TipoLiga))
	}
	q := leagueSelect + w.String() + " ORDER BY l.id" + w.page(f.Page)
	leagues, err := collectLeagues(s.db.Query(ctx, q, w.args...))
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

// AllLeagues returns every league, unpaginated. Used for aggregates.
func (s *Store) AllLeagues(ctx context.Context) ([]model.League, error) {
	leagues, err := collectLeagues(s.db.Query(ctx, leagueSelect+" ORDER BY l.id"))
	if err != nil {
		return nil, fmt.Errorf("all leagues: %w", err)
	}
	return leagues, nil
}

func insertLeague(ctx context.Context, q querier, c model.LeagueCreate) (model.League, error) {
	c.Normalize()
	var id int
	err := q.QueryRow(ctx, `
		INSERT INTO leagues (name, country, tipo_liga, league_type, max_teams, jornadas,
		                     manager_id, manager_name, active, start_date, end_date,
		                     highest_value_team_id, lowest_value_team_id, avg_team_value, value_difference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		c.Name, c.Country, string(c.TipoLiga), c.LeagueType, c.MaxTeams, c.Jornadas,
		c.ManagerID, c.ManagerName, *c.Active, dateArg(c.StartDate), dateArg(c.EndDate),
		c.HighestValueTeamID, c.LowestValueTeamID, c.AvgTeamValue, c.ValueDifference,
	).Scan(&id)
	if err != nil {
		return model.League{}, mapErr(err)
	}
	return getLeague(ctx, q, id)
}

func (s *Store) CreateLeague(ctx context.Context, c model.LeagueCreate) (model.League, error) {
	return insertLeague(ctx, s.db, c)
}

// UpdateLeague applies the non-nil fields.
func (s *Store) UpdateLeague(ctx context.Context, id int, u model.LeagueUpdate) (model.League, error) {
	var st setter
	set(&st, "name", u.Name)
	set(&st, "country", u.Country)
	if u.TipoLiga != nil {
		st.add("tipo_liga", string(*u.TipoLiga))
	}
	set(&st, "league_type", u.LeagueType)
	set(&st, "max_teams", u.MaxTeams)
	set(&st, "jornadas", u.Jornadas)
	set(&st, "manager_id", u.ManagerID)
	set(&st, "manager_name", u.ManagerName)
	set(&st, "active", u.Active)
	if u.StartDate != nil {
		st.add("start_date", dateArg(u.StartDate))
	}
	if u.EndDate != nil {
		st.add("end_date", dateArg(u.EndDate))
	}
	set(&st, "highest_value_team_id", u.HighestValueTeamID)
	set(&st, "lowest_value_team_id", u.LowestValueTeamID)
	set(&st, "avg_team_value", u.AvgTeamValue)
	set(&st, "value_difference", u.ValueDifference)
	set(&st, "winner_id", u.WinnerID)
	set(&st, "runner_up_id", u.RunnerUpID)
	set(&st, "third_place_id", u.ThirdPlaceID)
	set(&st, "calendar_generated", u.CalendarGenerated)
	if st.empty() {
		return s.GetLeague(ctx, id)
	}
	sql, args := st.sql("leagues", id, "id")
	var got int
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&got); err != nil {
		return model.League{}, mapErr(err)
	}
	return s.GetLeague(ctx, id)
}

// DeleteLeague removes a league with its calendar, registrations, matches
// and statistics.
func (s *Store) DeleteLeague(ctx context.Context, id int) error {
	return s.tx(ctx, func(tx pgx.Tx) error {
		var exists int
		if err := tx.QueryRow(ctx, "SELECT 1 FROM leagues WHERE id = $1 FOR UPDATE", id).Scan(&exists); err != nil {
			return mapErr(err)
		}
		stmts := []string{
			"DELETE FROM calendar WHERE league_id = $1",
			"DELETE FROM league_statistics WHERE league_id = $1",
			"DELETE FROM matches WHERE league_id = $1",
			"DELETE FROM league_teams WHERE league_id = $1",
			"DELETE FROM leagues WHERE id = $1",
		}
		for _, q := range stmts {
			if _, err := tx.Exec(ctx, q, id); err != nil {
				return fmt.Errorf("delete league %d: %w", id, err)
			}
		}
		return nil
	})
}

func scanLeagueTeam(row pgx.Row) (model.LeagueTeam, error) {
	var lt model.LeagueTeam
	err := row.Scan(&lt.ID, &lt.LeagueID, &lt.TeamID, &lt.RegistrationDate)
	return lt, err
}

func addTeamToLeague(ctx context.Context, q querier, leagueID, teamID int) (model.LeagueTeam, error) {
	var maxTeams int
	if err := q.QueryRow(ctx, "SELECT max_teams FROM leagues WHERE id = $1 FOR UPDATE", leagueID).Scan(&maxTeams); err != nil {
		return model.LeagueTeam{}, fmt.Errorf("league %d: %w", leagueID, mapErr(err))
	}
	var exists int
	if err := q.QueryRow(ctx, "SELECT 1 FROM teams WHERE id = $1", teamID).Scan(&exists); err != nil {
		return model.LeagueTeam{}, fmt.Errorf("team %d: %w", teamID, mapErr(err))
	}

	lt, err := scanLeagueTeam(q.QueryRow(ctx,
		"SELECT id, league_id, team_id, registration_date FROM league_teams WHERE league_id = $1 AND team_id = $2",
		leagueID, teamID))
	if err == nil {
		return lt, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.LeagueTeam{}, err
	}

	var count int
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM league_teams WHERE league_id = $1", leagueID).Scan(&count); err != nil {
		return model.LeagueTeam{}, err
	}
	if count >= maxTeams {
		return model.LeagueTeam{}, fmt.Errorf("%w: %d of %d teams registered", ErrLeagueFull, count, maxTeams)
	}
	lt, err = scanLeagueTeam(q.QueryRow(ctx, `
		INSERT INTO league_teams (league_id, team_id) VALUES ($1, $2)
		RETURNING id, league_id, team_id, registration_date`, leagueID, teamID))
	return lt, mapErr(err)
}

// AddTeamToLeague registers a team. Registering twice returns the existing
// link. ErrLeagueFull when max_teams is reached, ErrNotFound for an unknown
// league or team.
func (s *Store) AddTeamToLeague(ctx context.Context, leagueID, teamID int) (model.LeagueTeam, error) {
	var lt model.LeagueTeam
	err := s.tx(ctx, func(tx pgx.Tx) error {
		var err error
		lt, err = addTeamToLeague(ctx, tx, leagueID, teamID)
		return err
	})
	return lt, err
}

func (s *Store) RemoveTeamFromLeague(ctx context.Context, leagueID, teamID int) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM league_teams WHERE league_id = $1 AND team_id = $2", leagueID, teamID)
	if err != nil {
		return fmt.Errorf("remove team %d from league %d: %w", teamID, leagueID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// LeagueTeamIDs returns the registered team ids in ascending order.
func (s *Store) LeagueTeamIDs(ctx context.Context, leagueID int) ([]int, error) {
	rows, err := s.db.Query(ctx, "league_team_ids", leagueID)
	if err != nil {
		return nil, fmt.Errorf("league team ids: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[int])
}

func (s *Store) LeagueTeams(ctx context.Context, leagueID int) ([]model.Team, error) {
	teams, err := collectTeams(s.db.Query(ctx, `
		SELECT t.id, t.name, t.manager, t.manager_id, t.clan, t.value
		FROM teams t JOIN league_teams lt ON lt.team_id = t.id
		WHERE lt.league_id = $1 ORDER BY t.id`, leagueID))
	if err != nil {
		return nil, fmt.Errorf("league teams: %w", err)
	}
	return teams, nil
}

// LeagueDetails resolves a league's teams, podium and value extremes.
func (s *Store) LeagueDetails(ctx context.Context, id int) (model.LeagueDetails, error) {
	l, err := s.GetLeague(ctx, id)
	if err != nil {
		return model.LeagueDetails{}, err
	}
	teams, err := s.LeagueTeams(ctx, id)
	if err != nil {
		return model.LeagueDetails{}, err
	}

	refs := []*int{l.WinnerID, l.RunnerUpID, l.ThirdPlaceID, l.HighestValueTeamID, l.LowestValueTeamID}
	var ids []int
	for _, r := range refs {
		if r != nil {
			ids = append(ids, *r)
		}
	}
	byID, err := s.TeamsByID(ctx, ids)
	if err != nil {
		return model.LeagueDetails{}, err
	}
	ref := func(id *int) *model.TeamRef {
		if id == nil {
			return nil
		}
		if t, ok := byID[*id]; ok {
			return t.Ref()
		}
		return nil
	}

	d := model.LeagueDetails{
		League:           l,
		Teams:            teams,
		Winner:           ref(l.WinnerID),
		RunnerUp:         ref(l.RunnerUpID),
		ThirdPlace:       ref(l.ThirdPlaceID),
		HighestValueTeam: ref(l.HighestValueTeamID),
		LowestValueTeam:  ref(l.LowestValueTeamID),
	}
	if l.ManagerID != nil || l.ManagerName != nil {
		d.Creator = &model.Creator{ID: l.ManagerID, Name: l.ManagerName}
	}
	return d, nil
}

// SetPodium records the top three.
func (s *Store) SetPodium(ctx context.Context, leagueID, winner, runnerUp, third int) error {
	tag, err := s.db.Exec(ctx,
		"UPDATE leagues SET winner_id = $2, runner_up_id = $3, third_place_id = $4 WHERE id = $1",
		leagueID, winner, runnerUp, third)
	if err != nil {
		return fmt.Errorf("set podium: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveLeagueStatistics upserts the analytics snapshot of a league.
func (s *Store) SaveLeagueStatistics(ctx context.Context, st model.LeagueStatistics) error {
	var mostGoals, bestDefense *int
	if st.TeamWithMostGoals != nil {
		mostGoals = &st.TeamWithMostGoals.ID
	}
	if st.TeamWithBestDefense != nil {
		bestDefense = &st.TeamWithBestDefense.ID
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO league_statistics (league_id, total_goals, avg_goals_per_match, max_goals_in_match,
		       max_goals_match_id, most_common_formation, most_common_style, highest_possession,
		       team_with_most_goals_id, team_with_best_defense_id, home_wins, away_wins, draws,
		       clean_sheets, matches_played, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		ON CONFLICT (league_id) DO UPDATE SET
		       total_goals = EXCLUDED.total_goals,
		       avg_goals_per_match = EXCLUDED.avg_goals_per_match,
		       max_goals_in_match = EXCLUDED.max_goals_in_match,
		       max_goals_match_id = EXCLUDED.max_goals_match_id,
		       most_common_formation = EXCLUDED.most_common_formation,
		       most_common_style = EXCLUDED.most_common_style,
		       highest_possession = EXCLUDED.highest_possession,
		       team_with_most_goals_id = EXCLUDED.team_with_most_goals_id,
		       team_with_best_defense_id = EXCLUDED.team_with_best_defense_id,
		       home_wins = EXCLUDED.home_wins,
		       away_wins = EXCLUDED.away_wins,
		       draws = EXCLUDED.draws,
		       clean_sheets = EXCLUDED.clean_sheets,
		       matches_played = EXCLUDED.matches_played,
		       updated_at = NOW()`,
		st.LeagueID, st.TotalGoals, st.AvgGoalsPerMatch, st.MaxGoalsInMatch,
		st.MaxGoalsMatchID, st.MostCommonFormation, st.MostCommonStyle, st.HighestPossession,
		mostGoals, bestDefense, st.HomeWins, st.AwayWins, st.Draws,
		st.CleanSheets, st.MatchesPlayed)
	if err != nil {
		return fmt.Errorf("save league statistics: %w", mapErr(err))
	}
	return nil
}
