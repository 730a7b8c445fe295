package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/template"
)

// ImportRow is one externally scraped fixture with its teams resolved.
type ImportRow struct {
	Jornada    int
	HomeTeamID int
	AwayTeamID int
	Date       *model.Date
	Time       *string
	Venue      *string
}

// ImportResult counts what ImportCalendar created.
type ImportResult struct {
	MatchesCreated int      `json:"matches_created"`
	EntriesCreated int      `json:"entries_created"`
	Errors         []string `json:"errors"`
}

// ImportCalendar creates missing matches and calendar entries for rows.
// Existing matches only get a missing date or time filled in. Each row runs
// in its own savepoint so one bad row does not abort the import.
func (s *Store) ImportCalendar(ctx context.Context, leagueID int, url string, rows []ImportRow) (ImportResult, error) {
	res := ImportResult{Errors: []string{}}
	err := s.tx(ctx, func(tx pgx.Tx) error {
		var exists int
		if err := tx.QueryRow(ctx, "SELECT 1 FROM leagues WHERE id = $1 FOR UPDATE", leagueID).Scan(&exists); err != nil {
			return fmt.Errorf("league %d: %w", leagueID, mapErr(err))
		}
		for i, row := range rows {
			sp, err := tx.Begin(ctx)
			if err != nil {
				return err
			}
			matchCreated, entryCreated, err := importRow(ctx, sp, leagueID, row)
			if err != nil {
				// A savepoint that cannot be released leaves tx aborted.
				if rbErr := sp.Rollback(ctx); rbErr != nil {
					return fmt.Errorf("roll back row %d: %w", i+1, rbErr)
				}
				res.Errors = append(res.Errors, fmt.Sprintf("row %d (jornada %d): %v", i+1, row.Jornada, err))
				continue
			}
			if err := sp.Commit(ctx); err != nil {
				return err
			}
			if matchCreated {
				res.MatchesCreated++
			}
			if entryCreated {
				res.EntriesCreated++
			}
		}
		_, err := tx.Exec(ctx,
			"UPDATE leagues SET calendar_generated = TRUE, external_calendar_url = $2 WHERE id = $1", leagueID, url)
		return err
	})
	if err != nil {
		return ImportResult{}, err
	}
	return res, nil
}

func importRow(ctx context.Context, q querier, leagueID int, row ImportRow) (matchCreated, entryCreated bool, err error) {
	var (
		matchID int
		date    *time.Time
		clock   *string
	)
	err = q.QueryRow(ctx, `
		SELECT id, date, time FROM matches
		WHERE league_id = $1 AND jornada = $2 AND home_team_id = $3 AND away_team_id = $4`,
		leagueID, row.Jornada, row.HomeTeamID, row.AwayTeamID).Scan(&matchID, &date, &clock)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		m, err := insertMatch(ctx, q, model.Match{
			LeagueID: leagueID, Jornada: row.Jornada,
			HomeTeamID: row.HomeTeamID, AwayTeamID: row.AwayTeamID,
			Date: row.Date, Time: row.Time,
		})
		if err != nil {
			return false, false, err
		}
		matchID, matchCreated = m.ID, true
	case err != nil:
		return false, false, err
	default:
		if (date == nil && row.Date != nil) || (clock == nil && row.Time != nil) {
			if _, err := q.Exec(ctx, `
				UPDATE matches SET date = COALESCE(date, $2), time = COALESCE(time, $3), updated_at = NOW()
				WHERE id = $1`, matchID, dateArg(row.Date), row.Time); err != nil {
				return false, false, err
			}
		}
	}

	tag, err := q.Exec(ctx, `
		INSERT INTO calendar (league_id, jornada, match_id, scheduled_date, scheduled_time, venue)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (match_id) DO NOTHING`,
		leagueID, row.Jornada, matchID, dateArg(row.Date), row.Time, row.Venue)
	if err != nil {
		return matchCreated, false, mapErr(err)
	}
	return matchCreated, tag.RowsAffected() > 0, nil
}

// CreateLeagueFromTemplate upserts the plan's teams by name, creates the
// league and registers every team, all in one transaction.
func (s *Store) CreateLeagueFromTemplate(ctx context.Context, p template.Plan) (model.League, error) {
	var out model.League
	err := s.tx(ctx, func(tx pgx.Tx) error {
		ids := make(map[string]int, len(p.Teams))
		for _, t := range p.Teams {
			var id int
			if err := tx.QueryRow(ctx, `
				INSERT INTO teams (name, value) VALUES ($1, $2)
				ON CONFLICT (name) DO UPDATE SET value = COALESCE(EXCLUDED.value, teams.value)
				RETURNING id`, t.Name, t.Value).Scan(&id); err != nil {
				return fmt.Errorf("team %q: %w", t.Name, mapErr(err))
			}
			ids[t.Name] = id
		}

		lc := p.League
		if id, ok := ids[p.HighestValue]; ok {
			lc.HighestValueTeamID = &id
		}
		if id, ok := ids[p.LowestValue]; ok {
			lc.LowestValueTeamID = &id
		}
		league, err := insertLeague(ctx, tx, lc)
		if err != nil {
			return err
		}
		for _, t := range p.Teams {
			if _, err := addTeamToLeague(ctx, tx, league.ID, ids[t.Name]); err != nil {
				return fmt.Errorf("register %q: %w", t.Name, err)
			}
		}
		out, err = getLeague(ctx, tx, league.ID)
		return err
	})
	return out, err
}
