package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/leaguesim/internal/config"
	"github.com/albapepper/leaguesim/internal/db"
	"github.com/albapepper/leaguesim/internal/model"
)

// pgStore connects to TEST_DATABASE_URL, migrates it and returns a store
// over the pool. Tests using it are skipped when the variable is unset.
func pgStore(t *testing.T) *Store {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres integration tests")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := db.Migrate(ctx, url, logger)
	require.NoError(t, err)

	pool, err := db.New(ctx, &config.Config{DatabaseURL: url, DBPoolMinConns: 1, DBPoolMaxConns: 4, DBPoolMaxLife: time.Minute})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return New(pool)
}

type pgFixture struct {
	s      *Store
	league model.League
	teams  []model.Team
}

// newPGFixture creates a league with the given capacity and jornadas plus
// n teams that are not yet registered. Everything is deleted on cleanup.
func newPGFixture(t *testing.T, s *Store, maxTeams, jornadas, n int) pgFixture {
	t.Helper()
	ctx := context.Background()
	tag := fmt.Sprintf("%s-%d", t.Name(), time.Now().UnixNano())

	league, err := s.CreateLeague(ctx, model.LeagueCreate{
		Name:     "league " + tag,
		TipoLiga: model.LigaTactica,
		MaxTeams: maxTeams,
		Jornadas: jornadas,
	})
	require.NoError(t, err)

	f := pgFixture{s: s, league: league}
	for i := 0; i < n; i++ {
		team, err := s.CreateTeam(ctx, model.TeamCreate{Name: fmt.Sprintf("team %d %s", i, tag)})
		require.NoError(t, err)
		f.teams = append(f.teams, team)
	}
	t.Cleanup(func() {
		_ = s.DeleteLeague(ctx, league.ID)
		for _, team := range f.teams {
			_ = s.DeleteTeam(ctx, team.ID)
		}
	})
	return f
}

func TestPG_AddTeamToLeague_CapacityAndRepeat(t *testing.T) {
	s := pgStore(t)
	ctx := context.Background()
	f := newPGFixture(t, s, 2, 2, 3)

	first, err := s.AddTeamToLeague(ctx, f.league.ID, f.teams[0].ID)
	require.NoError(t, err)

	again, err := s.AddTeamToLeague(ctx, f.league.ID, f.teams[0].ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	_, err = s.AddTeamToLeague(ctx, f.league.ID, f.teams[1].ID)
	require.NoError(t, err)

	_, err = s.AddTeamToLeague(ctx, f.league.ID, f.teams[2].ID)
	assert.ErrorIs(t, err, ErrLeagueFull)

	// A registered team is still accepted once the league is full.
	_, err = s.AddTeamToLeague(ctx, f.league.ID, f.teams[1].ID)
	assert.NoError(t, err)

	ids, err := s.LeagueTeamIDs(ctx, f.league.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{f.teams[0].ID, f.teams[1].ID}, ids)

	_, err = s.AddTeamToLeague(ctx, f.league.ID, -1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPG_CreateCalendarEntry_Rules(t *testing.T) {
	s := pgStore(t)
	ctx := context.Background()
	f := newPGFixture(t, s, 4, 2, 2)
	other := newPGFixture(t, s, 4, 2, 0)

	m, err := s.CreateMatch(ctx, model.MatchCreate{
		Jornada: 1, HomeTeamID: f.teams[0].ID, AwayTeamID: f.teams[1].ID, LeagueID: f.league.ID,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.DeleteMatch(ctx, m.ID) })

	_, err = s.CreateCalendarEntry(ctx, model.CalendarEntryCreate{LeagueID: f.league.ID, Jornada: 3})
	assert.ErrorIs(t, err, ErrJornadaOutOfRange)

	_, err = s.CreateCalendarEntry(ctx, model.CalendarEntryCreate{LeagueID: other.league.ID, Jornada: 1, MatchID: &m.ID})
	assert.ErrorIs(t, err, ErrMatchNotInLeague)

	entry, err := s.CreateCalendarEntry(ctx, model.CalendarEntryCreate{LeagueID: f.league.ID, Jornada: 1, MatchID: &m.ID})
	require.NoError(t, err)
	assert.False(t, entry.IsPlayed)

	_, err = s.CreateCalendarEntry(ctx, model.CalendarEntryCreate{LeagueID: f.league.ID, Jornada: 2, MatchID: &m.ID})
	assert.ErrorIs(t, err, ErrAlreadyListed)

	// Updating the entry itself does not count as a second listing.
	j := 2
	moved, err := s.UpdateCalendarEntry(ctx, entry.ID, model.CalendarEntryUpdate{Jornada: &j})
	require.NoError(t, err)
	assert.Equal(t, 2, moved.Jornada)
}

func TestPG_UpdateMatch_ScoreMarksEntryPlayed(t *testing.T) {
	s := pgStore(t)
	ctx := context.Background()
	f := newPGFixture(t, s, 4, 2, 2)

	m, err := s.CreateMatch(ctx, model.MatchCreate{
		Jornada: 1, HomeTeamID: f.teams[0].ID, AwayTeamID: f.teams[1].ID, LeagueID: f.league.ID,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.DeleteMatch(ctx, m.ID) })

	_, err = s.CreateCalendarEntry(ctx, model.CalendarEntryCreate{LeagueID: f.league.ID, Jornada: 1, MatchID: &m.ID})
	require.NoError(t, err)

	formation := "4-4-2"
	_, err = s.UpdateMatch(ctx, m.ID, model.MatchUpdate{HomeFormation: &formation})
	require.NoError(t, err)
	entry, err := s.CalendarEntryByMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, entry.IsPlayed, "tactics alone leave the entry pending")

	home, away := 2, 1
	got, err := s.UpdateMatch(ctx, m.ID, model.MatchUpdate{HomeGoals: &home, AwayGoals: &away})
	require.NoError(t, err)
	require.NotNil(t, got.HomeGoals)
	assert.Equal(t, 2, *got.HomeGoals)

	entry, err = s.CalendarEntryByMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, entry.IsPlayed)
}
