// Package standings aggregates league tables and statistics from played
// matches. Everything here is pure computation over model values.
package standings

import (
	"errors"
	"math"
	"sort"

	"github.com/albapepper/leaguesim/internal/model"
)

// ErrPodiumTooSmall is returned when fewer than three teams are ranked.
var ErrPodiumTooSmall = errors.New("at least 3 teams are needed for a podium")

const (
	PointsWin  = 3
	PointsDraw = 1
)

// Row is one line of a league table.
type Row struct {
	Position       int            `json:"position"`
	TeamID         int            `json:"team_id"`
	Team           *model.TeamRef `json:"team,omitempty"`
	Played         int            `json:"played"`
	Won            int            `json:"won"`
	Drawn          int            `json:"drawn"`
	Lost           int            `json:"lost"`
	GoalsFor       int            `json:"goals_for"`
	GoalsAgainst   int            `json:"goals_against"`
	GoalDifference int            `json:"goal_difference"`
	Points         int            `json:"points"`
}

func (r *Row) record(scored, conceded int) {
	r.Played++
	r.GoalsFor += scored
	r.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		r.Won++
		r.Points += PointsWin
	case scored < conceded:
		r.Lost++
	default:
		r.Drawn++
		r.Points += PointsDraw
	}
	r.GoalDifference = r.GoalsFor - r.GoalsAgainst
}

// Compute builds the table for teamIDs. Unplayed matches and matches
// involving teams outside the table are ignored. Rows are ordered by
// points, goal difference, goals for and finally team id.
func Compute(teamIDs []int, matches []model.Match) []Row {
	rows := make(map[int]*Row, len(teamIDs))
	for _, id := range teamIDs {
		rows[id] = &Row{TeamID: id}
	}
	for _, m := range matches {
		if !m.Played() {
			continue
		}
		home, okH := rows[m.HomeTeamID]
		away, okA := rows[m.AwayTeamID]
		if !okH || !okA {
			continue
		}
		hg, ag := m.Goals()
		home.record(hg, ag)
		away.record(ag, hg)
	}

	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.TeamID < b.TeamID
	})
	for i := range out {
		out[i].Position = i + 1
	}
	return out
}

// Podium returns winner, runner-up and third place.
func Podium(rows []Row) (winner, runnerUp, third int, err error) {
	if len(rows) < 3 {
		return 0, 0, 0, ErrPodiumTooSmall
	}
	return rows[0].TeamID, rows[1].TeamID, rows[2].TeamID, nil
}

func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
