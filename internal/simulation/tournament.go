package simulation

import (
	"errors"

	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/standings"
)

// ErrTooFewTeams is returned when a fixture is requested for fewer than two
// teams.
var ErrTooFewTeams = errors.New("at least 2 teams are required to generate a fixture")

const bye = -1

// Fixture is one scheduled pairing.
type Fixture[T any] struct {
	Jornada int
	Home    T
	Away    T
}

// GenerateFixture builds a double round robin with the circle method and
// keeps the jornadas up to the requested count. jornadas <= 0 or above
// FullJornadas yields the full schedule.
func GenerateFixture[T any](teams []T, jornadas int) ([]Fixture[T], error) {
	n := len(teams)
	if n < 2 {
		return nil, ErrTooFewTeams
	}
	if full := FullJornadas(n); jornadas <= 0 || jornadas > full {
		jornadas = full
	}

	// Rotate indices; an odd field gets a bye slot.
	slots := make([]int, n)
	for i := range slots {
		slots[i] = i
	}
	if n%2 == 1 {
		slots = append(slots, bye)
	}
	size := len(slots)
	rounds := size - 1

	type pair struct{ home, away, jornada int }
	firstLeg := make([]pair, 0, rounds*size/2)
	for round := 0; round < rounds; round++ {
		for i := 0; i < size/2; i++ {
			a, b := slots[i], slots[size-1-i]
			if a == bye || b == bye {
				continue
			}
			if round%2 == 0 {
				firstLeg = append(firstLeg, pair{a, b, round + 1})
			} else {
				firstLeg = append(firstLeg, pair{b, a, round + 1})
			}
		}
		rotated := make([]int, 0, size)
		rotated = append(rotated, slots[0], slots[size-1])
		rotated = append(rotated, slots[1:size-1]...)
		slots = rotated
	}

	out := make([]Fixture[T], 0, 2*len(firstLeg))
	for _, p := range firstLeg {
		if p.jornada <= jornadas {
			out = append(out, Fixture[T]{Jornada: p.jornada, Home: teams[p.home], Away: teams[p.away]})
		}
	}
	for _, p := range firstLeg {
		if j := p.jornada + rounds; j <= jornadas {
			out = append(out, Fixture[T]{Jornada: j, Home: teams[p.away], Away: teams[p.home]})
		}
	}
	return out, nil
}

// FullJornadas is the length of a double round robin for n teams. An odd
// field needs one extra round per leg for the bye.
func FullJornadas(n int) int {
	if n < 2 {
		return 0
	}
	if n%2 == 1 {
		n++
	}
	return 2 * (n - 1)
}

// TournamentSimulator generates whole league schedules.
type TournamentSimulator struct {
	Match *MatchSimulator
}

func NewTournamentSimulator(m *MatchSimulator) *TournamentSimulator {
	return &TournamentSimulator{Match: m}
}

// AutoBalance assigns each team a strength in [0.7, 1.3].
func (t *TournamentSimulator) AutoBalance(teamIDs []int) map[int]float64 {
	t.Match.mu.Lock()
	defer t.Match.mu.Unlock()
	strengths := make(map[int]float64, len(teamIDs))
	for _, id := range teamIDs {
		strengths[id] = 0.7 + t.Match.rng.Float64()*0.6
	}
	return strengths
}

// Generate builds the league's matches with line-ups. Results are included
// only when withResults is set; strengths default to 1.0 for unknown teams.
func (t *TournamentSimulator) Generate(leagueID int, teamIDs []int, jornadas int, strengths map[int]float64, withResults bool) ([]model.Match, error) {
	fixtures, err := GenerateFixture(teamIDs, jornadas)
	if err != nil {
		return nil, err
	}
	matches := make([]model.Match, 0, len(fixtures))
	for _, f := range fixtures {
		m := model.Match{
			Jornada:    f.Jornada,
			HomeTeamID: f.Home,
			AwayTeamID: f.Away,
			LeagueID:   leagueID,
		}
		if withResults {
			pre, res := t.Match.Simulate(strength(strengths, f.Home), strength(strengths, f.Away))
			ApplyPreMatch(&m, pre)
			res.Apply(&m)
		} else {
			ApplyPreMatch(&m, t.Match.PreMatch())
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// SimulateLeague plays a full league with balanced strengths and returns
// the matches and the resulting table.
func (t *TournamentSimulator) SimulateLeague(leagueID int, teamIDs []int, jornadas int, balance bool) ([]model.Match, []standings.Row, error) {
	var strengths map[int]float64
	if balance {
		strengths = t.AutoBalance(teamIDs)
	}
	matches, err := t.Generate(leagueID, teamIDs, jornadas, strengths, true)
	if err != nil {
		return nil, nil, err
	}
	return matches, standings.Compute(teamIDs, matches), nil
}

func strength(strengths map[int]float64, id int) float64 {
	if s, ok := strengths[id]; ok {
		return s
	}
	return 1.0
}
