package maintenance

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/albapepper/leaguesim/internal/model"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) AllLeagues(ctx context.Context) ([]model.League, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.League), args.Error(1)
}

func (m *mockStore) SyncCalendar(ctx context.Context, leagueID int) (int, error) {
	args := m.Called(ctx, leagueID)
	return args.Int(0), args.Error(1)
}

type mockStats struct{ mock.Mock }

func (m *mockStats) LeagueStatistics(ctx context.Context, leagueID int) (model.LeagueStatistics, bool, error) {
	args := m.Called(ctx, leagueID)
	return args.Get(0).(model.LeagueStatistics), args.Bool(1), args.Error(2)
}

type fakeCache struct{ leagues []int }

func (f *fakeCache) InvalidateLeague(id int) int {
	f.leagues = append(f.leagues, id)
	return 1
}

func newTasks() (*Tasks, *mockStore, *mockStats, *fakeCache) {
	st, stats, c := new(mockStore), new(mockStats), &fakeCache{}
	return New(st, stats, c, slog.New(slog.NewTextHandler(io.Discard, nil))), st, stats, c
}

func TestRefreshStats_ActiveLeaguesOnly(t *testing.T) {
	tasks, st, stats, c := newTasks()
	st.On("AllLeagues", mock.Anything).Return([]model.League{
		{ID: 1, Active: true},
		{ID: 2, Active: false},
		{ID: 3, Active: true},
		{ID: 4, Active: true},
	}, nil)
	stats.On("LeagueStatistics", mock.Anything, 1).Return(model.LeagueStatistics{LeagueID: 1}, true, nil)
	stats.On("LeagueStatistics", mock.Anything, 3).Return(model.LeagueStatistics{}, false, nil)
	stats.On("LeagueStatistics", mock.Anything, 4).Return(model.LeagueStatistics{}, false, errors.New("boom"))

	assert.Equal(t, 1, tasks.RefreshStats(context.Background()))
	stats.AssertNotCalled(t, "LeagueStatistics", mock.Anything, 2)
	assert.Equal(t, []int{1}, c.leagues)
}

func TestSyncCalendars(t *testing.T) {
	tasks, st, _, c := newTasks()
	st.On("AllLeagues", mock.Anything).Return([]model.League{
		{ID: 1, CalendarGenerated: true},
		{ID: 2},
		{ID: 3, CalendarGenerated: true},
	}, nil)
	st.On("SyncCalendar", mock.Anything, 1).Return(4, nil)
	st.On("SyncCalendar", mock.Anything, 3).Return(0, nil)

	assert.Equal(t, 4, tasks.SyncCalendars(context.Background()))
	st.AssertNotCalled(t, "SyncCalendar", mock.Anything, 2)
	assert.Equal(t, []int{1}, c.leagues)
}

func TestSyncCalendars_ListFails(t *testing.T) {
	tasks, st, _, _ := newTasks()
	st.On("AllLeagues", mock.Anything).Return([]model.League(nil), errors.New("down"))

	assert.Zero(t, tasks.SyncCalendars(context.Background()))
	assert.Zero(t, tasks.RefreshStats(context.Background()))
}

func TestAfterSimulation(t *testing.T) {
	tasks, st, stats, c := newTasks()
	st.On("SyncCalendar", mock.Anything, 5).Return(2, nil).Once()
	stats.On("LeagueStatistics", mock.Anything, 5).Return(model.LeagueStatistics{LeagueID: 5}, true, nil).Once()

	tasks.AfterSimulation(context.Background(), []int{5})

	st.AssertExpectations(t)
	stats.AssertExpectations(t)
	assert.Equal(t, []int{5, 5}, c.leagues)
}
