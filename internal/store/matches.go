package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/leaguesim/internal/model"
)

const matchColumns = `m.id, m.jornada, m.home_team_id, m.away_team_id, m.league_id, m.date, m.time,
	m.home_formation, m.home_style, m.home_attack, m.home_kicks,
	m.home_possession, m.home_shots, m.home_goals, m.home_shots_on_target, m.home_fouls,
	m.away_formation, m.away_style, m.away_attack, m.away_kicks,
	m.away_possession, m.away_shots, m.away_goals, m.away_shots_on_target, m.away_fouls,
	m.created_at, m.updated_at`

const matchSelect = "SELECT " + matchColumns + " FROM matches m"

func scanMatch(row pgx.Row) (model.Match, error) {
	var (
		m    model.Match
		date *time.Time
	)
	err := row.Scan(&m.ID, &m.Jornada, &m.HomeTeamID, &m.AwayTeamID, &m.LeagueID, &date, &m.Time,
		&m.HomeFormation, &m.HomeStyle, &m.HomeAttack, &m.HomeKicks,
		&m.HomePossession, &m.HomeShots, &m.HomeGoals, &m.HomeShotsOnTarget, &m.HomeFouls,
		&m.AwayFormation, &m.AwayStyle, &m.AwayAttack, &m.AwayKicks,
		&m.AwayPossession, &m.AwayShots, &m.AwayGoals, &m.AwayShotsOnTarget, &m.AwayFouls,
		&m.CreatedAt, &m.UpdatedAt)
	m.Date = toDate(date)
	return m, err
}

func collectMatches(rows pgx.Rows, err error) ([]model.Match, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (model.Match, error) { return scanMatch(r) })
}

// MatchFilter narrows ListMatches. Zero values disable a criterion.
type MatchFilter struct {
	Page
	Jornada  int
	LeagueID int
}

func getMatch(ctx context.Context, q querier, id int) (model.Match, error) {
	m, err := scanMatch(q.QueryRow(ctx, matchSelect+" WHERE m.id = $1", id))
	if err != nil {
		return model.Match{}, mapErr(err)
	}
	return m, nil
}

// GetMatch loads a match with both teams embedded.
func (s *Store) GetMatch(ctx context.Context, id int) (model.Match, error) {
	m, err := getMatch(ctx, s.db, id)
	if err != nil {
		return model.Match{}, err
	}
	teams, err := s.TeamsByID(ctx, []int{m.HomeTeamID, m.AwayTeamID})
	if err != nil {
		return model.Match{}, err
	}
	if t, ok := teams[m.HomeTeamID]; ok {
		m.HomeTeam = &t
	}
	if t, ok := teams[m.AwayTeamID]; ok {
		m.AwayTeam = &t
	}
	return m, nil
}

func (s *Store) ListMatches(ctx context.Context, f MatchFilter) ([]model.Match, error) {
	var w where
	if f.Jornada > 0 {
		w.add("m.jornada = $%d", f.Jornada)
	}
	if f.LeagueID > 0 {
		w.add("m.league_id = $%d", f.LeagueID)
	}
	q := matchSelect + w.String() + " ORDER BY m.league_id, m.jornada, m.id" + w.page(f.Page)
	matches, err := collectMatches(s.db.Query(ctx, q, w.args...))
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// LeagueMatches returns all matches of a league, optionally one jornada.
func (s *Store) LeagueMatches(ctx context.Context, leagueID, jornada int) ([]model.Match, error) {
	q := matchSelect + " WHERE m.league_id = $1"
	args := []any{leagueID}
	if jornada > 0 {
		q += " AND m.jornada = $2"
		args = append(args, jornada)
	}
	matches, err := collectMatches(s.db.Query(ctx, q+" ORDER BY m.jornada, m.id", args...))
	if err != nil {
		return nil, fmt.Errorf("league matches: %w", err)
	}
	return matches, nil
}

const insertMatchSQL = `
	INSERT INTO matches (jornada, home_team_id, away_team_id, league_id, date, time,
	       home_formation, home_style, home_attack, home_kicks,
	       home_possession, home_shots, home_goals, home_shots_on_target, home_fouls,
	       away_formation, away_style, away_attack, away_kicks,
	       away_possession, away_shots, away_goals, away_shots_on_target, away_fouls)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
	        $16, $17, $18, $19, $20, $21, $22, $23, $24)
	RETURNING id`

func insertArgs(m model.Match) []any {
	return []any{m.Jornada, m.HomeTeamID, m.AwayTeamID, m.LeagueID, dateArg(m.Date), m.Time,
		m.HomeFormation, m.HomeStyle, m.HomeAttack, m.HomeKicks,
		m.HomePossession, m.HomeShots, m.HomeGoals, m.HomeShotsOnTarget, m.HomeFouls,
		m.AwayFormation, m.AwayStyle, m.AwayAttack, m.AwayKicks,
		m.AwayPossession, m.AwayShots, m.AwayGoals, m.AwayShotsOnTarget, m.AwayFouls}
}

func fromCreate(c model.MatchCreate) model.Match {
	return model.Match{
		Jornada: c.Jornada, HomeTeamID: c.HomeTeamID, AwayTeamID: c.AwayTeamID, LeagueID: c.LeagueID,
		Date: c.Date, Time: c.Time,
		HomeFormation: c.HomeFormation, HomeStyle: c.HomeStyle, HomeAttack: c.HomeAttack, HomeKicks: c.HomeKicks,
		HomePossession: c.HomePossession, HomeShots: c.HomeShots, HomeGoals: c.HomeGoals,
		HomeShotsOnTarget: c.HomeShotsOnTarget, HomeFouls: c.HomeFouls,
		AwayFormation: c.AwayFormation, AwayStyle: c.AwayStyle, AwayAttack: c.AwayAttack, AwayKicks: c.AwayKicks,
		AwayPossession: c.AwayPossession, AwayShots: c.AwayShots, AwayGoals: c.AwayGoals,
		AwayShotsOnTarget: c.AwayShotsOnTarget, AwayFouls: c.AwayFouls,
	}
}

func insertMatch(ctx context.Context, q querier, m model.Match) (model.Match, error) {
	var id int
	if err := q.QueryRow(ctx, insertMatchSQL, insertArgs(m)...).Scan(&id); err != nil {
		return model.Match{}, mapErr(err)
	}
	return getMatch(ctx, q, id)
}

// CreateMatch inserts a match without checking league membership.
func (s *Store) CreateMatch(ctx context.Context, c model.MatchCreate) (model.Match, error) {
	return insertMatch(ctx, s.db, fromCreate(c))
}

// CreateLeagueMatch inserts a match after checking that the league exists
// and both teams are registered in it.
func (s *Store) CreateLeagueMatch(ctx context.Context, c model.MatchCreate) (model.Match, error) {
	var out model.Match
	err := s.tx(ctx, func(tx pgx.Tx) error {
		var exists int
		if err := tx.QueryRow(ctx, "SELECT 1 FROM leagues WHERE id = $1", c.LeagueID).Scan(&exists); err != nil {
			return fmt.Errorf("league %d: %w", c.LeagueID, mapErr(err))
		}
		var registered int
		if err := tx.QueryRow(ctx,
			"SELECT COUNT(*) FROM league_teams WHERE league_id = $1 AND team_id IN ($2, $3)",
			c.LeagueID, c.HomeTeamID, c.AwayTeamID).Scan(&registered); err != nil {
			return err
		}
		if registered < 2 {
			return ErrTeamNotInLeague
		}
		var err error
		out, err = insertMatch(ctx, tx, fromCreate(c))
		return err
	})
	return out, err
}

// InsertMatches bulk-inserts generated fixtures in one transaction and
// returns them with their ids.
func (s *Store) InsertMatches(ctx context.Context, matches []model.Match) ([]model.Match, error) {
	if len(matches) == 0 {
		return nil, nil
	}
	out := make([]model.Match, len(matches))
	copy(out, matches)
	err := s.tx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, m := range matches {
			batch.Queue(insertMatchSQL, insertArgs(m)...)
		}
		br := tx.SendBatch(ctx, batch)
		for i := range out {
			if err := br.QueryRow().Scan(&out[i].ID); err != nil {
				br.Close()
				return fmt.Errorf("insert match %d of %d: %w", i+1, len(out), mapErr(err))
			}
		}
		return br.Close()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func matchSetter(u model.MatchUpdate) *setter {
	st := &setter{}
	set(st, "jornada", u.Jornada)
	if u.Date != nil {
		st.add("date", dateArg(u.Date))
	}
	set(st, "time", u.Time)
	set(st, "home_team_id", u.HomeTeamID)
	set(st, "away_team_id", u.AwayTeamID)
	set(st, "league_id", u.LeagueID)
	set(st, "home_formation", u.HomeFormation)
	set(st, "home_style", u.HomeStyle)
	set(st, "home_attack", u.HomeAttack)
	set(st, "home_kicks", u.HomeKicks)
	set(st, "home_possession", u.HomePossession)
	set(st, "home_shots", u.HomeShots)
	set(st, "home_goals", u.HomeGoals)
	set(st, "home_shots_on_target", u.HomeShotsOnTarget)
	set(st, "home_fouls", u.HomeFouls)
	set(st, "away_formation", u.AwayFormation)
	set(st, "away_style", u.AwayStyle)
	set(st, "away_attack", u.AwayAttack)
	set(st, "away_kicks", u.AwayKicks)
	set(st, "away_possession", u.AwayPossession)
	set(st, "away_shots", u.AwayShots)
	set(st, "away_goals", u.AwayGoals)
	set(st, "away_shots_on_target", u.AwayShotsOnTarget)
	set(st, "away_fouls", u.AwayFouls)
	return st
}

func updateMatch(ctx context.Context, q querier, id int, u model.MatchUpdate) (model.Match, error) {
	st := matchSetter(u)
	if st.empty() {
		return getMatch(ctx, q, id)
	}
	st.raw("updated_at = NOW()")
	sql, args := st.sql("matches", id, "id")
	var got int
	if err := q.QueryRow(ctx, sql, args...).Scan(&got); err != nil {
		return model.Match{}, mapErr(err)
	}
	if u.TouchesResult() {
		if _, err := q.Exec(ctx, "mark_entry_played", id); err != nil {
			return model.Match{}, fmt.Errorf("mark entry played: %w", err)
		}
	}
	return getMatch(ctx, q, id)
}

// UpdateMatch applies the non-nil fields. Touching the score or
// possession marks the calendar entry played.
func (s *Store) UpdateMatch(ctx context.Context, id int, u model.MatchUpdate) (model.Match, error) {
	var out model.Match
	err := s.tx(ctx, func(tx pgx.Tx) error {
		var err error
		out, err = updateMatch(ctx, tx, id, u)
		return err
	})
	return out, err
}

// UpdateMatches applies one update to several matches. Any missing id
// aborts the batch with ErrNotFound.
func (s *Store) UpdateMatches(ctx context.Context, ids []int, u model.MatchUpdate) ([]model.Match, error) {
	out := make([]model.Match, 0, len(ids))
	err := s.tx(ctx, func(tx pgx.Tx) error {
		for _, id := range ids {
			m, err := updateMatch(ctx, tx, id, u)
			if err != nil {
				return fmt.Errorf("match %d: %w", id, err)
			}
			out = append(out, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteMatch removes a match and its calendar entry.
func (s *Store) DeleteMatch(ctx context.Context, id int) error {
	return s.tx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM calendar WHERE match_id = $1", id); err != nil {
			return fmt.Errorf("delete calendar entry: %w", err)
		}
		tag, err := tx.Exec(ctx, "DELETE FROM matches WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("delete match %d: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// SaveResult writes the line-ups and box score of m and, when the match is
// played, marks its calendar entry played.
func (s *Store) SaveResult(ctx context.Context, m model.Match) error {
	return s.tx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE matches SET
			       home_formation = $2, home_style = $3, home_attack = $4, home_kicks = $5,
			       home_possession = $6, home_shots = $7, home_goals = $8, home_shots_on_target = $9, home_fouls = $10,
			       away_formation = $11, away_style = $12, away_attack = $13, away_kicks = $14,
			       away_possession = $15, away_shots = $16, away_goals = $17, away_shots_on_target = $18, away_fouls = $19,
			       updated_at = NOW()
			WHERE id = $1`,
			m.ID,
			m.HomeFormation, m.HomeStyle, m.HomeAttack, m.HomeKicks,
			m.HomePossession, m.HomeShots, m.HomeGoals, m.HomeShotsOnTarget, m.HomeFouls,
			m.AwayFormation, m.AwayStyle, m.AwayAttack, m.AwayKicks,
			m.AwayPossession, m.AwayShots, m.AwayGoals, m.AwayShotsOnTarget, m.AwayFouls)
		if err != nil {
			return fmt.Errorf("save result of match %d: %w", m.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		if m.Played() {
			if _, err := tx.Exec(ctx, "mark_entry_played", m.ID); err != nil {
				return fmt.Errorf("mark entry played: %w", err)
			}
		}
		return nil
	})
}

// DueMatches returns unplayed matches of active tactical leagues scheduled
// on or before the given day, oldest first.
func (s *Store) DueMatches(ctx context.Context, before model.Date, limit int) ([]model.Match, error) {
	matches, err := collectMatches(s.db.Query(ctx, matchSelect+`
		JOIN leagues l ON l.id = m.league_id
		WHERE l.active AND l.tipo_liga = $1
		  AND (m.home_goals IS NULL OR m.away_goals IS NULL)
		  AND m.date IS NOT NULL AND m.date <= $2
		ORDER BY m.date, m.league_id, m.jornada, m.id
		LIMIT $3`,
		string(model.LigaTactica), before.Time, limit))
	if err != nil {
		return nil, fmt.Errorf("due matches: %w", err)
	}
	return matches, nil
}
