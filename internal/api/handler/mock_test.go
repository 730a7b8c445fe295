package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/albapepper/leaguesim/internal/calendar"
	"github.com/albapepper/leaguesim/internal/external"
	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/store"
	"github.com/albapepper/leaguesim/internal/template"
)

type mockStore struct{ mock.Mock }

// --- runner

func (m *mockStore) GetLeague(ctx context.Context, id int) (model.League, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.League), args.Error(1)
}

func (m *mockStore) GetMatch(ctx context.Context, id int) (model.Match, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Match), args.Error(1)
}

func (m *mockStore) TeamsByID(ctx context.Context, ids []int) (map[int]model.Team, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(map[int]model.Team), args.Error(1)
}

func (m *mockStore) LeagueTeamIDs(ctx context.Context, leagueID int) ([]int, error) {
	args := m.Called(ctx, leagueID)
	return args.Get(0).([]int), args.Error(1)
}

func (m *mockStore) LeagueMatches(ctx context.Context, leagueID, jornada int) ([]model.Match, error) {
	args := m.Called(ctx, leagueID, jornada)
	return args.Get(0).([]model.Match), args.Error(1)
}

func (m *mockStore) InsertMatches(ctx context.Context, matches []model.Match) ([]model.Match, error) {
	args := m.Called(ctx, matches)
	return args.Get(0).([]model.Match), args.Error(1)
}

func (m *mockStore) SaveResult(ctx context.Context, match model.Match) error {
	return m.Called(ctx, match).Error(0)
}

func (m *mockStore) SetPodium(ctx context.Context, leagueID, winner, runnerUp, third int) error {
	return m.Called(ctx, leagueID, winner, runnerUp, third).Error(0)
}

func (m *mockStore) SaveLeagueStatistics(ctx context.Context, st model.LeagueStatistics) error {
	return m.Called(ctx, st).Error(0)
}

func (m *mockStore) ScheduledMatchIDs(ctx context.Context, leagueID int) (map[int]bool, error) {
	args := m.Called(ctx, leagueID)
	return args.Get(0).(map[int]bool), args.Error(1)
}

func (m *mockStore) ApplyCalendarPlan(ctx context.Context, leagueID int, slots []calendar.Slot) (int, error) {
	args := m.Called(ctx, leagueID, slots)
	return args.Int(0), args.Error(1)
}

func (m *mockStore) DueMatches(ctx context.Context, before model.Date, limit int) ([]model.Match, error) {
	args := m.Called(ctx, before, limit)
	return args.Get(0).([]model.Match), args.Error(1)
}

// --- teams

func (m *mockStore) GetTeam(ctx context.Context, id int) (model.Team, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Team), args.Error(1)
}

func (m *mockStore) ListTeams(ctx context.Context, f store.TeamFilter) ([]model.Team, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]model.Team), args.Error(1)
}

func (m *mockStore) CreateTeam(ctx context.Context, c model.TeamCreate) (model.Team, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.Team), args.Error(1)
}

func (m *mockStore) CreateTeams(ctx context.Context, cs []model.TeamCreate) ([]model.Team, error) {
	args := m.Called(ctx, cs)
	return args.Get(0).([]model.Team), args.Error(1)
}

func (m *mockStore) UpdateTeam(ctx context.Context, id int, u model.TeamUpdate) (model.Team, error) {
	args := m.Called(ctx, id, u)
	return args.Get(0).(model.Team), args.Error(1)
}

func (m *mockStore) UpdateTeams(ctx context.Context, ids []int, u model.TeamUpdate) ([]model.Team, error) {
	args := m.Called(ctx, ids, u)
	return args.Get(0).([]model.Team), args.Error(1)
}

func (m *mockStore) DeleteTeam(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) TeamLeagues(ctx context.Context, teamID int, activeOnly bool) ([]model.League, error) {
	args := m.Called(ctx, teamID, activeOnly)
	return args.Get(0).([]model.League), args.Error(1)
}

func (m *mockStore) TeamMatches(ctx context.Context, teamID int) ([]model.Match, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]model.Match), args.Error(1)
}

// --- leagues

func (m *mockStore) ListLeagues(ctx context.Context, f store.LeagueFilter) ([]model.League, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]model.League), args.Error(1)
}

func (m *mockStore) AllLeagues(ctx context.Context) ([]model.League, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.League), args.Error(1)
}

func (m *mockStore) LeagueDetails(ctx context.Context, id int) (model.LeagueDetails, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.LeagueDetails), args.Error(1)
}

func (m *mockStore) CreateLeague(ctx context.Context, c model.LeagueCreate) (model.League, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.League), args.Error(1)
}

func (m *mockStore) UpdateLeague(ctx context.Context, id int, u model.LeagueUpdate) (model.League, error) {
	args := m.Called(ctx, id, u)
	return args.Get(0).(model.League), args.Error(1)
}

func (m *mockStore) DeleteLeague(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) AddTeamToLeague(ctx context.Context, leagueID, teamID int) (model.LeagueTeam, error) {
	args := m.Called(ctx, leagueID, teamID)
	return args.Get(0).(model.LeagueTeam), args.Error(1)
}

func (m *mockStore) RemoveTeamFromLeague(ctx context.Context, leagueID, teamID int) error {
	return m.Called(ctx, leagueID, teamID).Error(0)
}

func (m *mockStore) LeagueTeams(ctx context.Context, leagueID int) ([]model.Team, error) {
	args := m.Called(ctx, leagueID)
	return args.Get(0).([]model.Team), args.Error(1)
}

// --- matches

func (m *mockStore) ListMatches(ctx context.Context, f store.MatchFilter) ([]model.Match, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]model.Match), args.Error(1)
}

func (m *mockStore) CreateLeagueMatch(ctx context.Context, c model.MatchCreate) (model.Match, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.Match), args.Error(1)
}

func (m *mockStore) UpdateMatch(ctx context.Context, id int, u model.MatchUpdate) (model.Match, error) {
	args := m.Called(ctx, id, u)
	return args.Get(0).(model.Match), args.Error(1)
}

func (m *mockStore) UpdateMatches(ctx context.Context, ids []int, u model.MatchUpdate) ([]model.Match, error) {
	args := m.Called(ctx, ids, u)
	return args.Get(0).([]model.Match), args.Error(1)
}

func (m *mockStore) DeleteMatch(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

// --- calendar

func (m *mockStore) GetCalendarEntry(ctx context.Context, id int) (model.CalendarEntry, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.CalendarEntry), args.Error(1)
}

func (m *mockStore) LeagueCalendar(ctx context.Context, leagueID, jornada int) ([]model.CalendarEntryDetails, error) {
	args := m.Called(ctx, leagueID, jornada)
	return args.Get(0).([]model.CalendarEntryDetails), args.Error(1)
}

func (m *mockStore) CreateCalendarEntry(ctx context.Context, c model.CalendarEntryCreate) (model.CalendarEntry, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.CalendarEntry), args.Error(1)
}

func (m *mockStore) UpdateCalendarEntry(ctx context.Context, id int, u model.CalendarEntryUpdate) (model.CalendarEntry, error) {
	args := m.Called(ctx, id, u)
	return args.Get(0).(model.CalendarEntry), args.Error(1)
}

func (m *mockStore) DeleteCalendarEntry(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) SyncCalendar(ctx context.Context, leagueID int) (int, error) {
	args := m.Called(ctx, leagueID)
	return args.Int(0), args.Error(1)
}

func (m *mockStore) ImportCalendar(ctx context.Context, leagueID int, url string, rows []store.ImportRow) (store.ImportResult, error) {
	args := m.Called(ctx, leagueID, url, rows)
	return args.Get(0).(store.ImportResult), args.Error(1)
}

// --- templates

func (m *mockStore) CreateLeagueFromTemplate(ctx context.Context, p template.Plan) (model.League, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.League), args.Error(1)
}

type fakeScraper struct {
	matches []external.ScrapedMatch
	err     error
}

func (f fakeScraper) Fetch(context.Context, string) ([]external.ScrapedMatch, error) {
	return f.matches, f.err
}

type fakePinger struct{ err error }

func (f fakePinger) HealthCheck(context.Context) error { return f.err }
