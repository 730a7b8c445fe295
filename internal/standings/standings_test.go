package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/leaguesim/internal/model"
)

func ptr[T any](v T) *T { return &v }

func played(id, home, away, hg, ag int) model.Match {
	return model.Match{ID: id, LeagueID: 1, Jornada: 1, HomeTeamID: home, AwayTeamID: away, HomeGoals: ptr(hg), AwayGoals: ptr(ag)}
}

func TestCompute(t *testing.T) {
	matches := []model.Match{
		played(1, 1, 2, 2, 0),
		played(2, 3, 1, 1, 1),
		played(3, 2, 3, 3, 1),
		{ID: 4, HomeTeamID: 1, AwayTeamID: 3}, // unplayed
		played(5, 1, 99, 5, 0),               // team outside the table
	}

	table := Compute([]int{1, 2, 3}, matches)
	require.Len(t, table, 3)

	assert.Equal(t, 1, table[0].TeamID)
	assert.Equal(t, 4, table[0].Points)
	assert.Equal(t, 2, table[0].Played)
	assert.Equal(t, 3, table[0].GoalsFor)
	assert.Equal(t, 2, table[0].GoalDifference)

	assert.Equal(t, 2, table[1].TeamID)
	assert.Equal(t, 3, table[1].Points)
	assert.Equal(t, 0, table[1].GoalDifference)

	assert.Equal(t, 3, table[2].TeamID)
	assert.Equal(t, 1, table[2].Points)
	assert.Equal(t, 1, table[2].Drawn)
	assert.Equal(t, 1, table[2].Lost)

	for i, row := range table {
		assert.Equal(t, i+1, row.Position)
	}
}

func TestCompute_TieBreakers(t *testing.T) {
	tests := []struct {
		name    string
		matches []model.Match
		want    []int
	}{
		{
			name: "goal difference",
			matches: []model.Match{
				played(1, 1, 3, 3, 0),
				played(2, 2, 4, 1, 0),
			},
			want: []int{1, 2, 4, 3},
		},
		{
			name: "goals for",
			matches: []model.Match{
				played(1, 1, 3, 3, 2),
				played(2, 2, 4, 2, 1),
			},
			want: []int{1, 2, 3, 4},
		},
		{
			name:    "full tie falls back to team id",
			matches: []model.Match{played(1, 4, 3, 1, 1), played(2, 2, 1, 1, 1)},
			want:    []int{1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Compute([]int{4, 3, 2, 1}, tt.matches)
			got := make([]int, len(table))
			for i, r := range table {
				got[i] = r.TeamID
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPodium(t *testing.T) {
	table := Compute([]int{1, 2, 3}, []model.Match{played(1, 3, 2, 2, 0), played(2, 2, 1, 1, 0)})
	w, r, third, err := Podium(table)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, []int{w, r, third})

	_, _, _, err = Podium(table[:2])
	assert.ErrorIs(t, err, ErrPodiumTooSmall)
}

func TestComputeTeamStats(t *testing.T) {
	matches := []model.Match{
		played(1, 1, 2, 2, 0), // home win, clean sheet
		played(2, 3, 1, 0, 0), // away draw, clean sheet, failed to score
		played(3, 1, 3, 1, 3), // home loss
		{ID: 4, HomeTeamID: 1, AwayTeamID: 2},
	}

	s := ComputeTeamStats(1, matches, 2)
	assert.Equal(t, 3, s.Played)
	assert.Equal(t, 1, s.Won)
	assert.Equal(t, 1, s.Drawn)
	assert.Equal(t, 1, s.Lost)
	assert.Equal(t, 2, s.HomeMatches)
	assert.Equal(t, 1, s.AwayMatches)
	assert.Equal(t, 1, s.HomeWins)
	assert.Equal(t, 1, s.HomeLosses)
	assert.Equal(t, 1, s.AwayDraws)
	assert.Equal(t, 3, s.GoalsFor)
	assert.Equal(t, 3, s.GoalsAgainst)
	assert.Equal(t, 0, s.GoalDifference)
	assert.Equal(t, 4, s.Points)
	assert.Equal(t, 2, s.CleanSheets)
	assert.Equal(t, 1, s.FailedToScore)
	assert.Equal(t, 2, s.LeaguesParticipated)
	assert.Equal(t, 33.33, s.WinPercentage)
	assert.Equal(t, 1.33, s.PointsPerGame)
	assert.Equal(t, 1.0, s.GoalsForPerGame)
}

func TestRound2_HalfToEven(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.125, 0.12},
		{0.375, 0.38},
		{1.0 / 3.0, 0.33},
		{2.0, 2.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, round2(tt.in), "round2(%v)", tt.in)
	}
}

func TestComputeTeamStats_HalfwayAverages(t *testing.T) {
	matches := []model.Match{played(1, 1, 2, 1, 0)}
	for i := 2; i <= 8; i++ {
		matches = append(matches, played(i, 1, 2, 0, 0))
	}

	s := ComputeTeamStats(1, matches, 1)
	require.Equal(t, 8, s.Played)
	// 1/8 = 0.125 rounds half to even.
	assert.Equal(t, 0.12, s.GoalsForPerGame)
	assert.Equal(t, 12.5, s.WinPercentage)
	// 10 points over 8 games.
	assert.Equal(t, 1.25, s.PointsPerGame)

	g := Global([]model.League{{ID: 1}}, map[int]model.LeagueStatistics{1: {TotalGoals: 1, MatchesPlayed: 8}})
	assert.Equal(t, 0.12, g.AvgGoalsPerMatch)
}

func TestComputeTeamStats_NoMatches(t *testing.T) {
	s := ComputeTeamStats(7, nil, 0)
	assert.Equal(t, 0, s.Played)
	assert.Zero(t, s.WinPercentage)
	assert.Zero(t, s.PointsPerGame)
}

func TestLeagueStatistics(t *testing.T) {
	m1 := played(10, 1, 2, 3, 1)
	m1.HomeFormation, m1.AwayFormation = ptr("433A"), ptr("451")
	m1.HomeStyle, m1.AwayStyle = ptr("Pases"), ptr("Disparos")
	m1.HomePossession, m1.AwayPossession = ptr(62), ptr(38)

	m2 := played(11, 2, 3, 0, 0)
	m2.HomeFormation, m2.AwayFormation = ptr("433A"), ptr("532")
	m2.HomeStyle, m2.AwayStyle = ptr("Bandas"), ptr("Contraataque")

	m3 := played(12, 3, 1, 2, 2)

	stats, ok := LeagueStatistics(1, []model.Match{m1, m2, m3, {ID: 13, HomeTeamID: 1, AwayTeamID: 3}})
	require.True(t, ok)

	assert.Equal(t, 3, stats.MatchesPlayed)
	assert.Equal(t, 8, stats.TotalGoals)
	assert.InDelta(t, 8.0/3.0, stats.AvgGoalsPerMatch, 1e-9)
	assert.Equal(t, 4, stats.MaxGoalsInMatch)
	require.NotNil(t, stats.MaxGoalsMatchID)
	assert.Equal(t, 10, *stats.MaxGoalsMatchID)
	assert.Equal(t, "433A", *stats.MostCommonFormation)
	// every style appears once; ties break by name
	assert.Equal(t, "Bandas", *stats.MostCommonStyle)
	assert.Equal(t, 62, stats.HighestPossession)
	assert.Equal(t, 1, stats.HomeWins)
	assert.Equal(t, 0, stats.AwayWins)
	assert.Equal(t, 2, stats.Draws)
	assert.Equal(t, 1, stats.CleanSheets)

	require.NotNil(t, stats.TeamWithMostGoals)
	assert.Equal(t, 1, stats.TeamWithMostGoals.ID)
	assert.Equal(t, 5, *stats.TeamWithMostGoals.Goals)
	require.NotNil(t, stats.TeamWithBestDefense)
	assert.Equal(t, 3, stats.TeamWithBestDefense.ID)
	assert.Equal(t, 2, *stats.TeamWithBestDefense.GoalsAgainst)
}

func TestLeagueStatistics_NothingPlayed(t *testing.T) {
	_, ok := LeagueStatistics(1, []model.Match{{ID: 1, HomeTeamID: 1, AwayTeamID: 2}})
	assert.False(t, ok)
}

func TestGlobal(t *testing.T) {
	leagues := []model.League{
		{ID: 1, Active: true, TipoLiga: model.LigaTactica, TeamsCount: 4},
		{ID: 2, Active: false, TipoLiga: model.LigaTactica, TeamsCount: 6},
		{ID: 3, Active: true, TipoLiga: model.Torneo, TeamsCount: 8},
	}
	stats := map[int]model.LeagueStatistics{
		1: {TotalGoals: 10, MatchesPlayed: 4, MostCommonFormation: ptr("451"), MostCommonStyle: ptr("Disparos")},
		2: {TotalGoals: 5, MatchesPlayed: 1, MostCommonFormation: ptr("433A"), MostCommonStyle: ptr("Disparos")},
	}

	g := Global(leagues, stats)
	assert.Equal(t, 3, g.TotalLeagues)
	assert.Equal(t, 2, g.ActiveLeagues)
	assert.Equal(t, 18, g.TotalTeams)
	assert.Equal(t, 5, g.TotalMatches)
	assert.Equal(t, 15, g.TotalGoals)
	assert.Equal(t, 3.0, g.AvgGoalsPerMatch)
	assert.Equal(t, 2, g.LeaguesByType[model.LigaTactica])
	assert.Equal(t, 1, g.LeaguesByType[model.Torneo])
	assert.Equal(t, []Count{{"433A", 1}, {"451", 1}}, g.MostCommonFormations)
	assert.Equal(t, []Count{{"Disparos", 2}}, g.MostCommonStyles)
}

func TestTop_LimitsAndOrders(t *testing.T) {
	got := Top(map[string]int{"a": 1, "b": 5, "c": 3, "d": 3, "e": 2, "f": 9}, 5)
	assert.Equal(t, []Count{{"f", 9}, {"b", 5}, {"c", 3}, {"d", 3}, {"e", 2}}, got)
}

func TestSummarize(t *testing.T) {
	home := &model.Team{ID: 1, Name: "Atlético Norte"}
	away := &model.Team{ID: 2, Name: "Real Sur"}

	unplayed := model.Match{ID: 5, HomeTeamID: 1, AwayTeamID: 2, HomeTeam: home, AwayTeam: away}
	s := Summarize(unplayed)
	assert.Equal(t, StatusNotPlayed, s.Status)
	assert.Equal(t, "Atlético Norte", s.HomeTeam)
	assert.Nil(t, s.Result)

	m := played(6, 1, 2, 1, 2)
	m.HomeTeam, m.AwayTeam = home, away
	m.HomeFouls, m.AwayFouls = ptr(10), ptr(12)
	s = Summarize(m)
	require.NotNil(t, s.Result)
	assert.Equal(t, "away", s.Result.Winner)
	assert.Empty(t, s.Status)
	require.NotNil(t, s.Stats)
	assert.Nil(t, s.Stats.ShotsOnTarget)
	require.NotNil(t, s.Stats.Fouls)
	assert.Equal(t, 12, *s.Stats.Fouls.Away)
	side, ok := s.HomeTeam.(SideSummary)
	require.True(t, ok)
	assert.Equal(t, "Atlético Norte", side.Name)
}
