package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/leaguesim/internal/calendar"
	"github.com/albapepper/leaguesim/internal/model"
)

var (
	ErrJornadaOutOfRange = errors.New("jornada is outside the league's range")
	ErrMatchNotInLeague  = errors.New("match does not belong to the league")
)

const entryColumns = "c.id, c.league_id, c.jornada, c.match_id, c.scheduled_date, c.scheduled_time, c.venue, c.is_played, c.created_at, c.updated_at"

func scanEntry(row pgx.Row) (model.CalendarEntry, error) {
	var (
		e    model.CalendarEntry
		date *time.Time
	)
	err := row.Scan(&e.ID, &e.LeagueID, &e.Jornada, &e.MatchID, &date, &e.ScheduledTime, &e.Venue,
		&e.IsPlayed, &e.CreatedAt, &e.UpdatedAt)
	e.ScheduledDate = toDate(date)
	return e, err
}

func getEntry(ctx context.Context, q querier, id int) (model.CalendarEntry, error) {
	e, err := scanEntry(q.QueryRow(ctx, "SELECT "+entryColumns+" FROM calendar c WHERE c.id = $1", id))
	if err != nil {
		return model.CalendarEntry{}, mapErr(err)
	}
	return e, nil
}

func (s *Store) GetCalendarEntry(ctx context.Context, id int) (model.CalendarEntry, error) {
	return getEntry(ctx, s.db, id)
}

func (s *Store) CalendarEntryByMatch(ctx context.Context, matchID int) (model.CalendarEntry, error) {
	e, err := scanEntry(s.db.QueryRow(ctx, "SELECT "+entryColumns+" FROM calendar c WHERE c.match_id = $1", matchID))
	if err != nil {
		return model.CalendarEntry{}, mapErr(err)
	}
	return e, nil
}

// ScheduledMatchIDs returns the matches of a league that already have an
// entry.
func (s *Store) ScheduledMatchIDs(ctx context.Context, leagueID int) (map[int]bool, error) {
	rows, err := s.db.Query(ctx, "SELECT match_id FROM calendar WHERE league_id = $1 AND match_id IS NOT NULL", leagueID)
	if err != nil {
		return nil, fmt.Errorf("scheduled matches: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, err
	}
	out := make(map[int]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

// LeagueCalendar lists a league's entries with their matches resolved,
// optionally for one jornada.
func (s *Store) LeagueCalendar(ctx context.Context, leagueID, jornada int) ([]model.CalendarEntryDetails, error) {
	q := `
		SELECT ` + entryColumns + `,
		       m.id, m.jornada, m.home_formation, m.away_formation, m.home_style, m.away_style,
		       m.home_goals, m.away_goals, m.date, m.time,
		       th.id, th.name, th.manager, th.manager_id, th.value,
		       ta.id, ta.name, ta.manager, ta.manager_id, ta.value
		FROM calendar c
		LEFT JOIN matches m ON m.id = c.match_id
		LEFT JOIN teams th ON th.id = m.home_team_id
		LEFT JOIN teams ta ON ta.id = m.away_team_id
		WHERE c.league_id = $1`
	args := []any{leagueID}
	if jornada > 0 {
		q += " AND c.jornada = $2"
		args = append(args, jornada)
	}
	rows, err := s.db.Query(ctx, q+" ORDER BY c.jornada, c.id", args...)
	if err != nil {
		return nil, fmt.Errorf("league calendar: %w", err)
	}
	out, err := pgx.CollectRows(rows, scanEntryDetails)
	if err != nil {
		return nil, fmt.Errorf("scan calendar: %w", err)
	}
	return out, nil
}

type nullTeam struct {
	id                 *int
	name               *string
	manager, managerID *string
	value              *string
}

func (t nullTeam) ref() *model.TeamRef {
	if t.id == nil {
		return nil
	}
	r := &model.TeamRef{ID: *t.id, Manager: t.manager, ManagerID: t.managerID, Value: t.value}
	if t.name != nil {
		r.Name = *t.name
	}
	return r
}

func scanEntryDetails(row pgx.CollectableRow) (model.CalendarEntryDetails, error) {
	var (
		d            model.CalendarEntryDetails
		date         *time.Time
		matchID      *int
		matchJornada *int
		matchDate    *time.Time
		cm           model.CalendarMatch
		home, away   nullTeam
	)
	err := row.Scan(&d.ID, &d.LeagueID, &d.Jornada, &d.MatchID, &date, &d.ScheduledTime, &d.Venue,
		&d.IsPlayed, &d.CreatedAt, &d.UpdatedAt,
		&matchID, &matchJornada, &cm.HomeFormation, &cm.AwayFormation, &cm.HomeStyle, &cm.AwayStyle,
		&cm.HomeGoals, &cm.AwayGoals, &matchDate, &cm.Time,
		&home.id, &home.name, &home.manager, &home.managerID, &home.value,
		&away.id, &away.name, &away.manager, &away.managerID, &away.value)
	if err != nil {
		return d, err
	}
	d.ScheduledDate = toDate(date)
	if matchID != nil {
		cm.ID = *matchID
		if matchJornada != nil {
			cm.Jornada = *matchJornada
		}
		cm.Date = toDate(matchDate)
		cm.HomeTeam, cm.AwayTeam = home.ref(), away.ref()
		d.Match = &cm
	}
	return d, nil
}

// checkEntry validates an entry's league, jornada and match. exclude is the
// entry being updated, 0 on create.
func checkEntry(ctx context.Context, q querier, leagueID, jornada int, matchID *int, exclude int) error {
	var jornadas int
	if err := q.QueryRow(ctx, "SELECT jornadas FROM leagues WHERE id = $1", leagueID).Scan(&jornadas); err != nil {
		return fmt.Errorf("league %d: %w", leagueID, mapErr(err))
	}
	if jornada < 1 || jornada > jornadas {
		return fmt.Errorf("%w: %d not in 1..%d", ErrJornadaOutOfRange, jornada, jornadas)
	}
	if matchID == nil {
		return nil
	}
	var matchLeague int
	if err := q.QueryRow(ctx, "SELECT league_id FROM matches WHERE id = $1", *matchID).Scan(&matchLeague); err != nil {
		return fmt.Errorf("match %d: %w", *matchID, mapErr(err))
	}
	if matchLeague != leagueID {
		return ErrMatchNotInLeague
	}
	var other int
	err := q.QueryRow(ctx, "SELECT id FROM calendar WHERE match_id = $1 AND id <> $2", *matchID, exclude).Scan(&other)
	switch {
	case err == nil:
		return fmt.Errorf("%w: entry %d", ErrAlreadyListed, other)
	case !errors.Is(err, pgx.ErrNoRows):
		return err
	}
	return nil
}

// CreateCalendarEntry checks that the league exists, the jornada fits and
// the match belongs to the league without another entry.
func (s *Store) CreateCalendarEntry(ctx context.Context, c model.CalendarEntryCreate) (model.CalendarEntry, error) {
	var out model.CalendarEntry
	err := s.tx(ctx, func(tx pgx.Tx) error {
		if err := checkEntry(ctx, tx, c.LeagueID, c.Jornada, c.MatchID, 0); err != nil {
			return err
		}
		var id int
		if err := tx.QueryRow(ctx, `
			INSERT INTO calendar (league_id, jornada, match_id, scheduled_date, scheduled_time, venue)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			c.LeagueID, c.Jornada, c.MatchID, dateArg(c.ScheduledDate), c.ScheduledTime, c.Venue).Scan(&id); err != nil {
			return mapErr(err)
		}
		var err error
		out, err = getEntry(ctx, tx, id)
		return err
	})
	return out, err
}

// UpdateCalendarEntry applies the non-nil fields with the same checks as
// CreateCalendarEntry.
func (s *Store) UpdateCalendarEntry(ctx context.Context, id int, u model.CalendarEntryUpdate) (model.CalendarEntry, error) {
	var out model.CalendarEntry
	err := s.tx(ctx, func(tx pgx.Tx) error {
		cur, err := getEntry(ctx, tx, id)
		if err != nil {
			return err
		}
		jornada, matchID := cur.Jornada, cur.MatchID
		if u.Jornada != nil {
			jornada = *u.Jornada
		}
		if u.MatchID != nil {
			matchID = u.MatchID
		}
		if u.Jornada != nil || u.MatchID != nil {
			if err := checkEntry(ctx, tx, cur.LeagueID, jornada, matchID, id); err != nil {
				return err
			}
		}

		var st setter
		set(&st, "jornada", u.Jornada)
		set(&st, "match_id", u.MatchID)
		if u.ScheduledDate != nil {
			st.add("scheduled_date", dateArg(u.ScheduledDate))
		}
		set(&st, "scheduled_time", u.ScheduledTime)
		set(&st, "venue", u.Venue)
		set(&st, "is_played", u.IsPlayed)
		if !st.empty() {
			st.raw("updated_at = NOW()")
			sql, args := st.sql("calendar", id, "")
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return mapErr(err)
			}
		}
		out, err = getEntry(ctx, tx, id)
		return err
	})
	return out, err
}

func (s *Store) DeleteCalendarEntry(ctx context.Context, id int) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM calendar WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete calendar entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ApplyCalendarPlan creates one entry per slot, copies dates onto the
// matches and flags the league's calendar as generated.
func (s *Store) ApplyCalendarPlan(ctx context.Context, leagueID int, slots []calendar.Slot) (int, error) {
	created := 0
	err := s.tx(ctx, func(tx pgx.Tx) error {
		for _, sl := range slots {
			matchID := sl.MatchID
			if _, err := tx.Exec(ctx, `
				INSERT INTO calendar (league_id, jornada, match_id, scheduled_date, scheduled_time, is_played)
				SELECT $1::int, $2::int, m.id, $4::date, $5::text, m.home_goals IS NOT NULL AND m.away_goals IS NOT NULL
				FROM matches m WHERE m.id = $3`,
				leagueID, sl.Jornada, &matchID, dateArg(sl.Date), sl.Time); err != nil {
				return fmt.Errorf("entry for match %d: %w", sl.MatchID, mapErr(err))
			}
			if sl.Date != nil {
				if _, err := tx.Exec(ctx,
					"UPDATE matches SET date = $2, time = $3, updated_at = NOW() WHERE id = $1",
					sl.MatchID, dateArg(sl.Date), sl.Time); err != nil {
					return fmt.Errorf("date match %d: %w", sl.MatchID, err)
				}
			}
			created++
		}
		_, err := tx.Exec(ctx, "UPDATE leagues SET calendar_generated = TRUE WHERE id = $1", leagueID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// SyncCalendar marks the entries of played matches as played.
func (s *Store) SyncCalendar(ctx context.Context, leagueID int) (int, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE calendar c SET is_played = TRUE, updated_at = NOW()
		FROM matches m
		WHERE c.match_id = m.id AND c.league_id = $1 AND NOT c.is_played
		  AND m.home_goals IS NOT NULL AND m.away_goals IS NOT NULL`, leagueID)
	if err != nil {
		return 0, fmt.Errorf("sync calendar of league %d: %w", leagueID, err)
	}
	return int(tag.RowsAffected()), nil
}

// MarkEntryPlayed flags a match's entry. It reports whether a row changed.
func (s *Store) MarkEntryPlayed(ctx context.Context, matchID int) (bool, error) {
	tag, err := s.db.Exec(ctx, "mark_entry_played", matchID)
	if err != nil {
		return false, fmt.Errorf("mark entry of match %d played: %w", matchID, err)
	}
	return tag.RowsAffected() > 0, nil
}
