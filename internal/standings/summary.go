package standings

import (
	"time"

	"github.com/albapepper/leaguesim/internal/model"
)

const StatusNotPlayed = "No jugado"

// SideSummary is one team's line-up in a match summary.
type SideSummary struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Manager   *string `json:"manager"`
	Formation *string `json:"formation"`
	Style     *string `json:"style"`
	Attack    *string `json:"attack"`
	Kicks     *string `json:"kicks"`
}

// Pair holds a home and away value.
type Pair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type MatchResult struct {
	HomeGoals int    `json:"home_goals"`
	AwayGoals int    `json:"away_goals"`
	Winner    string `json:"winner"`
}

type MatchStats struct {
	Possession    Pair  `json:"possession"`
	Shots         Pair  `json:"shots"`
	ShotsOnTarget *Pair `json:"shots_on_target"`
	Fouls         *Pair `json:"fouls"`
}

// MatchSummary is the statistics view of a single match. Unplayed matches
// carry only Status and the schedule.
type MatchSummary struct {
	MatchID  int          `json:"match_id"`
	Jornada  int          `json:"jornada"`
	LeagueID int          `json:"league_id"`
	Status   string       `json:"status,omitempty"`
	HomeTeam any          `json:"home_team"`
	AwayTeam any          `json:"away_team"`
	Result   *MatchResult `json:"result,omitempty"`
	Stats    *MatchStats  `json:"stats,omitempty"`
	Date     *model.Date  `json:"date"`
	Time     *string      `json:"time"`
	PlayedAt *time.Time   `json:"played_at,omitempty"`
}

// Summarize builds the statistics view of m. The match must carry its
// HomeTeam and AwayTeam.
func Summarize(m model.Match) MatchSummary {
	s := MatchSummary{
		MatchID:  m.ID,
		Jornada:  m.Jornada,
		LeagueID: m.LeagueID,
		Date:     m.Date,
		Time:     m.Time,
	}
	home := side(m.HomeTeamID, m.HomeTeam)
	away := side(m.AwayTeamID, m.AwayTeam)

	if !m.Played() {
		s.Status = StatusNotPlayed
		s.HomeTeam, s.AwayTeam = home.Name, away.Name
		return s
	}

	home.Formation, home.Style, home.Attack, home.Kicks = m.HomeFormation, m.HomeStyle, m.HomeAttack, m.HomeKicks
	away.Formation, away.Style, away.Attack, away.Kicks = m.AwayFormation, m.AwayStyle, m.AwayAttack, m.AwayKicks
	s.HomeTeam, s.AwayTeam = home, away

	hg, ag := m.Goals()
	winner := "draw"
	switch {
	case hg > ag:
		winner = "home"
	case ag > hg:
		winner = "away"
	}
	s.Result = &MatchResult{HomeGoals: hg, AwayGoals: ag, Winner: winner}

	s.Stats = &MatchStats{
		Possession: Pair{m.HomePossession, m.AwayPossession},
		Shots:      Pair{m.HomeShots, m.AwayShots},
	}
	if m.HomeShotsOnTarget != nil {
		s.Stats.ShotsOnTarget = &Pair{m.HomeShotsOnTarget, m.AwayShotsOnTarget}
	}
	if m.HomeFouls != nil {
		s.Stats.Fouls = &Pair{m.HomeFouls, m.AwayFouls}
	}
	playedAt := m.UpdatedAt
	s.PlayedAt = &playedAt
	return s
}

func side(id int, t *model.Team) SideSummary {
	s := SideSummary{ID: id}
	if t != nil {
		s.Name = t.Name
		s.Manager = t.Manager
	}
	return s
}
