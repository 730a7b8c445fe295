// Package simulation generates line-ups, match results and round-robin
// fixtures for tactical leagues.
package simulation

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/albapepper/leaguesim/internal/model"
)

// Formation pools by rarity.
var (
	CommonFormations = []string{
		"433A", "433B", "442A", "442B", "451", "4231", "541A", "541B",
		"631A", "631B", "532", "523A", "523B", "5311",
	}
	UncommonFormations = []string{"334A", "334B", "352"}
	RareFormations     = []string{"3322", "325"}
)

const (
	weightCommon   = 0.8
	weightUncommon = 0.005
	weightRare     = 0.0001
)

// FormationStyles lists the styles each formation may play.
var FormationStyles = map[string][]string{
	"433A": {"Bandas", "Pases"},
	"433B": {"Bandas", "Pases"},
	"442A": {"Bandas", "Pases"},
	"442B": {"Bandas", "Pases"},
	"451":  {"Disparos"},
	"4231": {"Disparos"},
	"541A": {"Disparos", "Contraataque"},
	"541B": {"Disparos", "Contraataque"},
	"631A": {"Contraataque"},
	"631B": {"Contraataque"},
	"532":  {"Contraataque"},
	"523A": {"Contraataque"},
	"523B": {"Contraataque"},
	"5311": {"Contraataque"},
	"334A": {"Balones Largos"},
	"334B": {"Balones Largos"},
	"352":  {"Disparos"},
	"3322": {"Disparos", "Balones Largos"},
	"325":  {"Balones Largos"},
}

const DefaultStyle = "Pases"

var (
	Kicks    = []string{"Cuidado", "Normal", "Agresivo", "Duro"}
	Supports = []string{"Medios a Defensa", "Delanteros Bajan", "Empujar hacia Adelante"}
)

// Result is the simulated box score of a match.
type Result struct {
	HomePossession    int `json:"home_possession"`
	AwayPossession    int `json:"away_possession"`
	HomeShots         int `json:"home_shots"`
	AwayShots         int `json:"away_shots"`
	HomeGoals         int `json:"home_goals"`
	AwayGoals         int `json:"away_goals"`
	HomeShotsOnTarget int `json:"home_shots_on_target"`
	AwayShotsOnTarget int `json:"away_shots_on_target"`
	HomeFouls         int `json:"home_fouls"`
	AwayFouls         int `json:"away_fouls"`
}

// MatchSimulator produces random match content. It is safe for concurrent
// use.
type MatchSimulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMatchSimulator returns a simulator with a deterministic seed.
func NewMatchSimulator(seed int64) *MatchSimulator {
	return &MatchSimulator{rng: rand.New(rand.NewSource(seed))}
}

// New returns a simulator seeded from crypto/rand.
func New() (*MatchSimulator, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewMatchSimulator(seed), nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Formation picks a formation from the weighted pools.
func (s *MatchSimulator) Formation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formation()
}

func (s *MatchSimulator) formation() string {
	r := s.rng.Float64() * (weightCommon + weightUncommon + weightRare)
	pool := CommonFormations
	switch {
	case r >= weightCommon+weightUncommon:
		pool = RareFormations
	case r >= weightCommon:
		pool = UncommonFormations
	}
	return pool[s.rng.Intn(len(pool))]
}

// Style picks a style compatible with formation.
func (s *MatchSimulator) Style(formation string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.style(formation)
}

func (s *MatchSimulator) style(formation string) string {
	styles, ok := FormationStyles[formation]
	if !ok {
		return DefaultStyle
	}
	return styles[s.rng.Intn(len(styles))]
}

// Attack returns three values in 0..99 formatted as "a-b-c".
func (s *MatchSimulator) Attack() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attack()
}

func (s *MatchSimulator) attack() string {
	return fmt.Sprintf("%d-%d-%d", s.rng.Intn(100), s.rng.Intn(100), s.rng.Intn(100))
}

// Support picks one of Supports.
func (s *MatchSimulator) Support() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Supports[s.rng.Intn(len(Supports))]
}

// PreMatch generates formations, styles, attacks and kicks for both sides.
func (s *MatchSimulator) PreMatch() model.PreMatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preMatch()
}

func (s *MatchSimulator) preMatch() model.PreMatch {
	var p model.PreMatch
	p.HomeFormation = s.formation()
	p.AwayFormation = s.formation()
	p.HomeStyle = s.style(p.HomeFormation)
	p.AwayStyle = s.style(p.AwayFormation)
	p.HomeAttack = s.attack()
	p.AwayAttack = s.attack()
	p.HomeKicks = Kicks[s.rng.Intn(len(Kicks))]
	p.AwayKicks = Kicks[s.rng.Intn(len(Kicks))]
	return p
}

// Play simulates the result of a match whose line-ups are already known.
// Strengths scale possession, shots and conversion; 1.0 is neutral.
func (s *MatchSimulator) Play(pre model.PreMatch, homeStrength, awayStrength float64) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.play(pre, homeStrength, awayStrength)
}

// Simulate generates line-ups and a result in one step.
func (s *MatchSimulator) Simulate(homeStrength, awayStrength float64) (model.PreMatch, Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pre := s.preMatch()
	return pre, s.play(pre, homeStrength, awayStrength)
}

func (s *MatchSimulator) play(pre model.PreMatch, hs, as float64) Result {
	base := 40 + s.rng.Intn(21)
	homePoss := clamp(int(float64(base)+(hs-as)*5), 30, 70)

	var r Result
	r.HomePossession = homePoss
	r.AwayPossession = 100 - homePoss
	r.HomeShots = s.shots(r.HomePossession, hs)
	r.AwayShots = s.shots(r.AwayPossession, as)
	r.HomeGoals = s.goals(r.HomeShots, hs)
	r.AwayGoals = s.goals(r.AwayShots, as)
	r.HomeShotsOnTarget = s.between(r.HomeGoals, r.HomeShots)
	r.AwayShotsOnTarget = s.between(r.AwayGoals, r.AwayShots)
	r.HomeFouls = s.fouls(pre.HomeKicks)
	r.AwayFouls = s.fouls(pre.AwayKicks)
	return r
}

func (s *MatchSimulator) shots(possession int, strength float64) int {
	base := int(float64(possession) / 100 * float64(8+s.rng.Intn(9)))
	return max(1, int(float64(base)*strength))
}

func (s *MatchSimulator) goals(shots int, strength float64) int {
	rate := (0.1 + s.rng.Float64()*0.2) * strength
	return int(math.RoundToEven(float64(shots) * rate))
}

func (s *MatchSimulator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *MatchSimulator) fouls(kicks string) int {
	n := 5 + s.rng.Intn(14)
	switch kicks {
	case "Agresivo":
		n += 3
	case "Duro":
		n += 6
	}
	return n
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// ApplyPreMatch copies generated line-ups onto m.
func ApplyPreMatch(m *model.Match, p model.PreMatch) {
	m.HomeFormation, m.AwayFormation = &p.HomeFormation, &p.AwayFormation
	m.HomeStyle, m.AwayStyle = &p.HomeStyle, &p.AwayStyle
	m.HomeAttack, m.AwayAttack = &p.HomeAttack, &p.AwayAttack
	m.HomeKicks, m.AwayKicks = &p.HomeKicks, &p.AwayKicks
}

// Apply copies the box score onto m.
func (r Result) Apply(m *model.Match) {
	m.HomePossession, m.AwayPossession = &r.HomePossession, &r.AwayPossession
	m.HomeShots, m.AwayShots = &r.HomeShots, &r.AwayShots
	m.HomeGoals, m.AwayGoals = &r.HomeGoals, &r.AwayGoals
	m.HomeShotsOnTarget, m.AwayShotsOnTarget = &r.HomeShotsOnTarget, &r.AwayShotsOnTarget
	m.HomeFouls, m.AwayFouls = &r.HomeFouls, &r.AwayFouls
}

// PreMatchOf extracts the line-ups stored on m. ok is false when either
// side has no formation yet.
func PreMatchOf(m model.Match) (p model.PreMatch, ok bool) {
	if !m.HasPreMatch() {
		return p, false
	}
	p.HomeFormation, p.AwayFormation = *m.HomeFormation, *m.AwayFormation
	p.HomeStyle, p.AwayStyle = deref(m.HomeStyle), deref(m.AwayStyle)
	p.HomeAttack, p.AwayAttack = deref(m.HomeAttack), deref(m.AwayAttack)
	p.HomeKicks, p.AwayKicks = deref(m.HomeKicks), deref(m.AwayKicks)
	return p, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
