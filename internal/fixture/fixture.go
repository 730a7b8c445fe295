// Package fixture drives simulations against the store: single matches,
// whole leagues, calendar generation, podium refreshes and the periodic
// processing of matches whose scheduled day has arrived.
package fixture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/albapepper/leaguesim/internal/calendar"
	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/simulation"
)

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

const (
	DefaultMaxMatches = 200
	DefaultWorkers    = 2
)

var (
	ErrNotSimulatable = errors.New("only Liga Tactica leagues can be simulated")
	ErrAlreadyPlayed  = errors.New("match has already been played")
	ErrNoMatches      = errors.New("league has no matches")
)

// --------------------------------------------------------------------------
// Types
// --------------------------------------------------------------------------

// Store is the persistence the runner needs. *store.Store satisfies it.
type Store interface {
	GetLeague(ctx context.Context, id int) (model.League, error)
	GetMatch(ctx context.Context, id int) (model.Match, error)
	TeamsByID(ctx context.Context, ids []int) (map[int]model.Team, error)
	LeagueTeamIDs(ctx context.Context, leagueID int) ([]int, error)
	LeagueMatches(ctx context.Context, leagueID, jornada int) ([]model.Match, error)
	InsertMatches(ctx context.Context, matches []model.Match) ([]model.Match, error)
	SaveResult(ctx context.Context, m model.Match) error
	SetPodium(ctx context.Context, leagueID, winner, runnerUp, third int) error
	SaveLeagueStatistics(ctx context.Context, st model.LeagueStatistics) error
	ScheduledMatchIDs(ctx context.Context, leagueID int) (map[int]bool, error)
	ApplyCalendarPlan(ctx context.Context, leagueID int, slots []calendar.Slot) (int, error)
	DueMatches(ctx context.Context, before model.Date, limit int) ([]model.Match, error)
}

// Runner owns the simulators and applies their output through a Store.
type Runner struct {
	store      Store
	sim        *simulation.MatchSimulator
	tournament *simulation.TournamentSimulator
	logger     *slog.Logger
}

func NewRunner(store Store, sim *simulation.MatchSimulator, logger *slog.Logger) *Runner {
	return &Runner{
		store:      store,
		sim:        sim,
		tournament: simulation.NewTournamentSimulator(sim),
		logger:     logger,
	}
}

// Simulator exposes the match simulator for pre-match previews.
func (r *Runner) Simulator() *simulation.MatchSimulator { return r.sim }

// Result tracks the outcome of simulating a single match.
type Result struct {
	MatchID   int
	LeagueID  int
	Jornada   int
	HomeGoals int
	AwayGoals int
	Success   bool
	Error     string
}

// Summary returns a human-readable summary.
func (r *Result) Summary() string {
	if !r.Success {
		return fmt.Sprintf("match=%d league=%d status=FAILED error=%s", r.MatchID, r.LeagueID, r.Error)
	}
	return fmt.Sprintf("match=%d league=%d jornada=%d score=%d-%d status=ok",
		r.MatchID, r.LeagueID, r.Jornada, r.HomeGoals, r.AwayGoals)
}

// RunResult tracks the outcome of a ProcessDue run.
type RunResult struct {
	MatchesFound     int
	MatchesProcessed int
	MatchesSucceeded int
	MatchesFailed    int
	LeaguesUpdated   int
	Duration         time.Duration
	Errors           []string
	Results          []Result
}

// Summary returns a human-readable summary.
func (r *RunResult) Summary() string {
	return fmt.Sprintf(
		"found=%d processed=%d succeeded=%d failed=%d leagues=%d dur=%s",
		r.MatchesFound, r.MatchesProcessed, r.MatchesSucceeded,
		r.MatchesFailed, r.LeaguesUpdated, r.Duration.Round(time.Millisecond))
}
