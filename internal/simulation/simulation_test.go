package simulation

import (
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/leaguesim/internal/model"
)

var attackPattern = regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{1,2}$`)

func allFormations() []string {
	out := slices.Clone(CommonFormations)
	out = append(out, UncommonFormations...)
	return append(out, RareFormations...)
}

func TestPreMatch(t *testing.T) {
	sim := NewMatchSimulator(42)
	formations := allFormations()

	for i := 0; i < 500; i++ {
		p := sim.PreMatch()
		assert.Contains(t, formations, p.HomeFormation)
		assert.Contains(t, formations, p.AwayFormation)
		assert.Contains(t, FormationStyles[p.HomeFormation], p.HomeStyle)
		assert.Contains(t, FormationStyles[p.AwayFormation], p.AwayStyle)
		assert.Regexp(t, attackPattern, p.HomeAttack)
		assert.Regexp(t, attackPattern, p.AwayAttack)
		assert.Contains(t, Kicks, p.HomeKicks)
		assert.Contains(t, Kicks, p.AwayKicks)
	}
}

func TestStyle_UnknownFormationFallsBack(t *testing.T) {
	sim := NewMatchSimulator(1)
	assert.Equal(t, DefaultStyle, sim.Style("99X"))
}

func TestFormation_MostlyCommon(t *testing.T) {
	sim := NewMatchSimulator(7)
	common := 0
	for i := 0; i < 2000; i++ {
		if slices.Contains(CommonFormations, sim.Formation()) {
			common++
		}
	}
	assert.Greater(t, common, 1950)
}

func TestPlay_Bounds(t *testing.T) {
	sim := NewMatchSimulator(99)
	strengths := []float64{0.7, 1.0, 1.3}

	for i := 0; i < 300; i++ {
		hs := strengths[i%3]
		as := strengths[(i/3)%3]
		pre, r := sim.Simulate(hs, as)

		assert.GreaterOrEqual(t, r.HomePossession, 30)
		assert.LessOrEqual(t, r.HomePossession, 70)
		assert.Equal(t, 100, r.HomePossession+r.AwayPossession)

		assert.GreaterOrEqual(t, r.HomeShots, 1)
		assert.GreaterOrEqual(t, r.AwayShots, 1)
		assert.LessOrEqual(t, r.HomeGoals, r.HomeShots)
		assert.LessOrEqual(t, r.AwayGoals, r.AwayShots)
		assert.GreaterOrEqual(t, r.HomeGoals, 0)

		assert.GreaterOrEqual(t, r.HomeShotsOnTarget, r.HomeGoals)
		assert.LessOrEqual(t, r.HomeShotsOnTarget, r.HomeShots)
		assert.GreaterOrEqual(t, r.AwayShotsOnTarget, r.AwayGoals)
		assert.LessOrEqual(t, r.AwayShotsOnTarget, r.AwayShots)

		assert.GreaterOrEqual(t, r.HomeFouls, 5)
		assert.LessOrEqual(t, r.HomeFouls, 24)
		if pre.HomeKicks == "Duro" {
			assert.GreaterOrEqual(t, r.HomeFouls, 11)
		}
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	a := NewMatchSimulator(2024)
	b := NewMatchSimulator(2024)
	for i := 0; i < 20; i++ {
		preA, resA := a.Simulate(1, 1)
		preB, resB := b.Simulate(1, 1)
		assert.Equal(t, preA, preB)
		assert.Equal(t, resA, resB)
	}
}

func TestResultApply(t *testing.T) {
	var m model.Match
	assert.False(t, m.Played())

	sim := NewMatchSimulator(3)
	pre, r := sim.Simulate(1, 1)
	ApplyPreMatch(&m, pre)
	r.Apply(&m)

	assert.True(t, m.Played())
	assert.True(t, m.HasPreMatch())
	assert.Equal(t, r.HomeGoals, *m.HomeGoals)
	assert.Equal(t, pre.AwayFormation, *m.AwayFormation)

	back, ok := PreMatchOf(m)
	require.True(t, ok)
	assert.Equal(t, pre, back)
}

func TestNew_CryptoSeed(t *testing.T) {
	sim, err := New()
	require.NoError(t, err)
	assert.NotEmpty(t, sim.Formation())
}

func teamIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

func TestGenerateFixture_FullDoubleRoundRobin(t *testing.T) {
	tests := []struct {
		name         string
		teams        int
		wantMatches  int
		wantJornadas int
	}{
		{name: "two teams", teams: 2, wantMatches: 2, wantJornadas: 2},
		{name: "four teams", teams: 4, wantMatches: 12, wantJornadas: 6},
		{name: "five teams with bye", teams: 5, wantMatches: 20, wantJornadas: 10},
		{name: "twenty teams", teams: 20, wantMatches: 380, wantJornadas: 38},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixtures, err := GenerateFixture(teamIDs(tt.teams), 0)
			require.NoError(t, err)
			assert.Len(t, fixtures, tt.wantMatches)
			assert.Equal(t, tt.wantJornadas, FullJornadas(tt.teams))

			pairs := map[[2]int]int{}
			perJornada := map[int]map[int]bool{}
			maxJornada := 0
			for _, f := range fixtures {
				assert.NotEqual(t, f.Home, f.Away)
				pairs[[2]int{f.Home, f.Away}]++

				if perJornada[f.Jornada] == nil {
					perJornada[f.Jornada] = map[int]bool{}
				}
				assert.False(t, perJornada[f.Jornada][f.Home], "team %d twice in jornada %d", f.Home, f.Jornada)
				assert.False(t, perJornada[f.Jornada][f.Away], "team %d twice in jornada %d", f.Away, f.Jornada)
				perJornada[f.Jornada][f.Home] = true
				perJornada[f.Jornada][f.Away] = true
				maxJornada = max(maxJornada, f.Jornada)
			}
			assert.Equal(t, tt.wantJornadas, maxJornada)
			assert.Len(t, pairs, tt.teams*(tt.teams-1))
			for pair, n := range pairs {
				assert.Equal(t, 1, n, "pair %v", pair)
			}
		})
	}
}

func TestGenerateFixture_SecondLegMirrorsFirst(t *testing.T) {
	fixtures, err := GenerateFixture([]string{"A", "B", "C", "D"}, 0)
	require.NoError(t, err)

	first := map[[2]string]int{}
	for _, f := range fixtures {
		if f.Jornada <= 3 {
			first[[2]string{f.Home, f.Away}] = f.Jornada
		}
	}
	for _, f := range fixtures {
		if f.Jornada > 3 {
			j, ok := first[[2]string{f.Away, f.Home}]
			require.True(t, ok)
			assert.Equal(t, j+3, f.Jornada)
		}
	}
}

func TestGenerateFixture_Truncated(t *testing.T) {
	fixtures, err := GenerateFixture(teamIDs(4), 3)
	require.NoError(t, err)
	assert.Len(t, fixtures, 6)
	for _, f := range fixtures {
		assert.LessOrEqual(t, f.Jornada, 3)
	}

	capped, err := GenerateFixture(teamIDs(4), 50)
	require.NoError(t, err)
	assert.Len(t, capped, 12)
}

func TestGenerateFixture_TooFewTeams(t *testing.T) {
	_, err := GenerateFixture([]int{1}, 0)
	assert.ErrorIs(t, err, ErrTooFewTeams)

	_, err = GenerateFixture([]int{}, 0)
	assert.ErrorIs(t, err, ErrTooFewTeams)
}

func TestAutoBalance(t *testing.T) {
	ts := NewTournamentSimulator(NewMatchSimulator(5))
	strengths := ts.AutoBalance(teamIDs(10))
	assert.Len(t, strengths, 10)
	for _, s := range strengths {
		assert.GreaterOrEqual(t, s, 0.7)
		assert.Less(t, s, 1.3)
	}
}

func TestGenerate_PreMatchOnly(t *testing.T) {
	ts := NewTournamentSimulator(NewMatchSimulator(11))
	matches, err := ts.Generate(9, teamIDs(4), 0, nil, false)
	require.NoError(t, err)
	require.Len(t, matches, 12)
	for _, m := range matches {
		assert.Equal(t, 9, m.LeagueID)
		assert.True(t, m.HasPreMatch())
		assert.False(t, m.Played())
	}
}

func TestSimulateLeague(t *testing.T) {
	ts := NewTournamentSimulator(NewMatchSimulator(12))
	matches, table, err := ts.SimulateLeague(1, teamIDs(6), 0, true)
	require.NoError(t, err)
	assert.Len(t, matches, 30)
	require.Len(t, table, 6)

	totalPlayed := 0
	for i, row := range table {
		assert.Equal(t, i+1, row.Position)
		assert.Equal(t, 10, row.Played)
		totalPlayed += row.Played
		if i > 0 {
			assert.GreaterOrEqual(t, table[i-1].Points, row.Points)
		}
	}
	assert.Equal(t, 60, totalPlayed)
}
