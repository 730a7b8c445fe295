package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/leaguesim/internal/model"
)

const teamColumns = "id, name, manager, manager_id, clan, value"

func scanTeam(row pgx.Row) (model.Team, error) {
	var t model.Team
	err := row.Scan(&t.ID, &t.Name, &t.Manager, &t.ManagerID, &t.Clan, &t.Value)
	return t, err
}

func collectTeams(rows pgx.Rows, err error) ([]model.Team, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (model.Team, error) { return scanTeam(r) })
}

// TeamFilter narrows ListTeams.
type TeamFilter struct {
	Page
	ManagerID string
	Clan      string
}

func (s *Store) GetTeam(ctx context.Context, id int) (model.Team, error) {
	t, err := scanTeam(s.db.QueryRow(ctx, "team_by_id", id))
	if err != nil {
		return model.Team{}, mapErr(err)
	}
	return t, nil
}

func (s *Store) GetTeamByName(ctx context.Context, name string) (model.Team, error) {
	t, err := scanTeam(s.db.QueryRow(ctx, "SELECT "+teamColumns+" FROM teams WHERE name = $1", name))
	if err != nil {
		return model.Team{}, mapErr(err)
	}
	return t, nil
}

// TeamsByID loads the given teams keyed by id. Unknown ids are absent.
func (s *Store) TeamsByID(ctx context.Context, ids []int) (map[int]model.Team, error) {
	out := make(map[int]model.Team, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	teams, err := collectTeams(s.db.Query(ctx, "SELECT "+teamColumns+" FROM teams WHERE id = ANY($1)", ids))
	if err != nil {
		return nil, fmt.Errorf("teams by id: %w", err)
	}
	for _, t := range teams {
		out[t.ID] = t
	}
	return out, nil
}

func (s *Store) ListTeams(ctx context.Context, f TeamFilter) ([]model.Team, error) {
	var w where
	if f.ManagerID != "" {
		w.add("manager_id = $%d", f.ManagerID)
	}
	if f.Clan != "" {
		w.add("clan = $%d", f.Clan)
	}
	q := "SELECT " + teamColumns + " FROM teams" + w.String() + " ORDER BY id" + w.page(f.Page)
	teams, err := collectTeams(s.db.Query(ctx, q, w.args...))
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func insertTeam(ctx context.Context, q querier, c model.TeamCreate) (model.Team, error) {
	t, err := scanTeam(q.QueryRow(ctx, `
		INSERT INTO teams (name, manager, manager_id, clan, value)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+teamColumns,
		c.Name, c.Manager, c.ManagerID, c.Clan, c.Value))
	if err != nil {
		return model.Team{}, mapErr(err)
	}
	return t, nil
}

// CreateTeam returns ErrConflict when the name is taken.
func (s *Store) CreateTeam(ctx context.Context, c model.TeamCreate) (model.Team, error) {
	return insertTeam(ctx, s.db, c)
}

// CreateTeams inserts every team or none.
func (s *Store) CreateTeams(ctx context.Context, cs []model.TeamCreate) ([]model.Team, error) {
	out := make([]model.Team, 0, len(cs))
	err := s.tx(ctx, func(tx pgx.Tx) error {
		for _, c := range cs {
			t, err := insertTeam(ctx, tx, c)
			if err != nil {
				return fmt.Errorf("team %q: %w", c.Name, err)
			}
			out = append(out, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func updateTeam(ctx context.Context, q querier, id int, u model.TeamUpdate) (model.Team, error) {
	var st setter
	set(&st, "name", u.Name)
	set(&st, "manager", u.Manager)
	set(&st, "manager_id", u.ManagerID)
	set(&st, "clan", u.Clan)
	set(&st, "value", u.Value)
	if st.empty() {
		return scanTeam(q.QueryRow(ctx, "team_by_id", id))
	}
	sql, args := st.sql("teams", id, teamColumns)
	return scanTeam(q.QueryRow(ctx, sql, args...))
}

// UpdateTeam applies the non-nil fields. A name clash is ErrConflict.
func (s *Store) UpdateTeam(ctx context.Context, id int, u model.TeamUpdate) (model.Team, error) {
	t, err := updateTeam(ctx, s.db, id, u)
	if err != nil {
		return model.Team{}, mapErr(err)
	}
	return t, nil
}

// UpdateTeams applies one update to several teams in a transaction. Any
// missing id aborts the batch with ErrNotFound.
func (s *Store) UpdateTeams(ctx context.Context, ids []int, u model.TeamUpdate) ([]model.Team, error) {
	out := make([]model.Team, 0, len(ids))
	err := s.tx(ctx, func(tx pgx.Tx) error {
		for _, id := range ids {
			t, err := updateTeam(ctx, tx, id, u)
			if err != nil {
				return fmt.Errorf("team %d: %w", id, mapErr(err))
			}
			out = append(out, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteTeam removes a team with its league registrations, its matches
// and their calendar entries.
func (s *Store) DeleteTeam(ctx context.Context, id int) error {
	return s.tx(ctx, func(tx pgx.Tx) error {
		var exists int
		if err := tx.QueryRow(ctx, "SELECT 1 FROM teams WHERE id = $1 FOR UPDATE", id).Scan(&exists); err != nil {
			return mapErr(err)
		}
		stmts := []string{
			"DELETE FROM calendar WHERE match_id IN (SELECT id FROM matches WHERE home_team_id = $1 OR away_team_id = $1)",
			"DELETE FROM matches WHERE home_team_id = $1 OR away_team_id = $1",
			"DELETE FROM league_teams WHERE team_id = $1",
			"DELETE FROM teams WHERE id = $1",
		}
		for _, q := range stmts {
			if _, err := tx.Exec(ctx, q, id); err != nil {
				return fmt.Errorf("delete team %d: %w", id, err)
			}
		}
		return nil
	})
}

// TeamLeagues lists the leagues a team is registered in.
func (s *Store) TeamLeagues(ctx context.Context, teamID int, activeOnly bool) ([]model.League, error) {
	q := leagueSelect + " JOIN league_teams lt ON lt.league_id = l.id WHERE lt.team_id = $1"
	if activeOnly {
		q += " AND l.active"
	}
	leagues, err := collectLeagues(s.db.Query(ctx, q+" ORDER BY l.id", teamID))
	if err != nil {
		return nil, fmt.Errorf("team leagues: %w", err)
	}
	return leagues, nil
}

// TeamMatches lists every match a team plays in, home or away.
func (s *Store) TeamMatches(ctx context.Context, teamID int) ([]model.Match, error) {
	matches, err := collectMatches(s.db.Query(ctx,
		matchSelect+" WHERE m.home_team_id = $1 OR m.away_team_id = $1 ORDER BY m.league_id, m.jornada, m.id", teamID))
	if err != nil {
		return nil, fmt.Errorf("team matches: %w", err)
	}
	return matches, nil
}
