package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/store"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) GetTeamByName(ctx context.Context, name string) (model.Team, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Team), args.Error(1)
}

func (m *mockStore) CreateTeam(ctx context.Context, c model.TeamCreate) (model.Team, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.Team), args.Error(1)
}

func (m *mockStore) CreateLeague(ctx context.Context, c model.LeagueCreate) (model.League, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.League), args.Error(1)
}

func (m *mockStore) AddTeamToLeague(ctx context.Context, leagueID, teamID int) (model.LeagueTeam, error) {
	args := m.Called(ctx, leagueID, teamID)
	return args.Get(0).(model.LeagueTeam), args.Error(1)
}

func (m *mockStore) CreateMatch(ctx context.Context, c model.MatchCreate) (model.Match, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.Match), args.Error(1)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestDemo_FreshDatabase(t *testing.T) {
	st := new(mockStore)
	for i, name := range DemoTeams {
		st.On("GetTeamByName", mock.Anything, name).Return(model.Team{}, store.ErrNotFound)
		st.On("CreateTeam", mock.Anything, model.TeamCreate{Name: name}).Return(model.Team{ID: i + 1, Name: name}, nil)
		st.On("AddTeamToLeague", mock.Anything, 9, i+1).Return(model.LeagueTeam{LeagueID: 9, TeamID: i + 1}, nil)
	}
	st.On("CreateLeague", mock.Anything, mock.MatchedBy(func(c model.LeagueCreate) bool {
		return c.Name == DemoLeague && c.TipoLiga == model.LigaTactica && c.MaxTeams == 4 && c.Jornadas == 6
	})).Return(model.League{ID: 9, Name: DemoLeague}, nil)
	st.On("CreateMatch", mock.Anything, mock.MatchedBy(func(c model.MatchCreate) bool {
		return c.LeagueID == 9 && c.HomeTeamID == 1 && c.AwayTeamID == 2 &&
			*c.HomeGoals == 3 && *c.AwayGoals == 1 && c.Validate() == nil
	})).Return(model.Match{ID: 1}, nil)

	res := Demo(context.Background(), st, discard)

	st.AssertExpectations(t)
	assert.Equal(t, 4, res.TeamsCreated)
	assert.Equal(t, 1, res.LeaguesCreated)
	assert.Equal(t, 1, res.MatchesCreated)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "teams=4 existing=0 leagues=1 matches=1 errors=0", res.Summary())
}

func TestDemo_ReusesExistingTeamsAndRecordsErrors(t *testing.T) {
	st := new(mockStore)
	st.On("GetTeamByName", mock.Anything, "Real Madrid").Return(model.Team{ID: 11}, nil)
	st.On("GetTeamByName", mock.Anything, "Barcelona").Return(model.Team{}, errors.New("timeout"))
	st.On("GetTeamByName", mock.Anything, mock.Anything).Return(model.Team{ID: 20}, nil)
	st.On("CreateLeague", mock.Anything, mock.Anything).Return(model.League{ID: 3}, nil)
	st.On("AddTeamToLeague", mock.Anything, 3, mock.Anything).Return(model.LeagueTeam{}, nil)

	res := Demo(context.Background(), st, discard)

	assert.Equal(t, 0, res.TeamsCreated)
	assert.Equal(t, 3, res.TeamsExisting)
	assert.Equal(t, 0, res.MatchesCreated)
	assert.Len(t, res.Errors, 1)
	st.AssertNotCalled(t, "CreateTeam", mock.Anything, mock.Anything)
	st.AssertNotCalled(t, "CreateMatch", mock.Anything, mock.Anything)
}

func TestDemo_LeagueFailureStops(t *testing.T) {
	st := new(mockStore)
	st.On("GetTeamByName", mock.Anything, mock.Anything).Return(model.Team{ID: 1}, nil)
	st.On("CreateLeague", mock.Anything, mock.Anything).Return(model.League{}, store.ErrConflict)

	res := Demo(context.Background(), st, discard)

	assert.Equal(t, 0, res.LeaguesCreated)
	assert.Len(t, res.Errors, 1)
	st.AssertNotCalled(t, "AddTeamToLeague", mock.Anything, mock.Anything, mock.Anything)
}

func TestResult_Add(t *testing.T) {
	a := Result{TeamsCreated: 1, Errors: []string{"x"}}
	a.Add(Result{TeamsCreated: 2, MatchesCreated: 1, Errors: []string{"y"}})
	assert.Equal(t, 3, a.TeamsCreated)
	assert.Equal(t, 1, a.MatchesCreated)
	assert.Equal(t, []string{"x", "y"}, a.Errors)
}
