package standings

import "github.com/albapepper/leaguesim/internal/model"

// TeamStats is the career record of a team across every league.
type TeamStats struct {
	TeamID              int     `json:"team_id"`
	Played              int     `json:"played"`
	Won                 int     `json:"won"`
	Drawn               int     `json:"drawn"`
	Lost                int     `json:"lost"`
	GoalsFor            int     `json:"goals_for"`
	GoalsAgainst        int     `json:"goals_against"`
	GoalDifference      int     `json:"goal_difference"`
	Points              int     `json:"points"`
	HomeMatches         int     `json:"home_matches"`
	AwayMatches         int     `json:"away_matches"`
	HomeWins            int     `json:"home_wins"`
	HomeDraws           int     `json:"home_draws"`
	HomeLosses          int     `json:"home_losses"`
	AwayWins            int     `json:"away_wins"`
	AwayDraws           int     `json:"away_draws"`
	AwayLosses          int     `json:"away_losses"`
	CleanSheets         int     `json:"clean_sheets"`
	FailedToScore       int     `json:"failed_to_score"`
	LeaguesParticipated int     `json:"leagues_participated"`
	WinPercentage       float64 `json:"win_percentage"`
	DrawPercentage      float64 `json:"draw_percentage"`
	LossPercentage      float64 `json:"loss_percentage"`
	PointsPerGame       float64 `json:"points_per_game"`
	GoalsForPerGame     float64 `json:"goals_for_per_game"`
	GoalsAgainstPerGame float64 `json:"goals_against_per_game"`
}

// ComputeTeamStats summarises every played match of teamID.
func ComputeTeamStats(teamID int, matches []model.Match, leaguesParticipated int) TeamStats {
	s := TeamStats{TeamID: teamID, LeaguesParticipated: leaguesParticipated}
	for _, m := range matches {
		if !m.Played() {
			continue
		}
		hg, ag := m.Goals()
		var scored, conceded int
		switch teamID {
		case m.HomeTeamID:
			scored, conceded = hg, ag
			s.HomeMatches++
			switch {
			case hg > ag:
				s.HomeWins++
			case hg < ag:
				s.HomeLosses++
			default:
				s.HomeDraws++
			}
		case m.AwayTeamID:
			scored, conceded = ag, hg
			s.AwayMatches++
			switch {
			case ag > hg:
				s.AwayWins++
			case ag < hg:
				s.AwayLosses++
			default:
				s.AwayDraws++
			}
		default:
			continue
		}
		s.GoalsFor += scored
		s.GoalsAgainst += conceded
		if conceded == 0 {
			s.CleanSheets++
		}
		if scored == 0 {
			s.FailedToScore++
		}
	}

	s.Played = s.HomeMatches + s.AwayMatches
	s.Won = s.HomeWins + s.AwayWins
	s.Drawn = s.HomeDraws + s.AwayDraws
	s.Lost = s.HomeLosses + s.AwayLosses
	s.Points = s.Won*PointsWin + s.Drawn*PointsDraw
	s.GoalDifference = s.GoalsFor - s.GoalsAgainst

	if s.Played > 0 {
		p := float64(s.Played)
		s.WinPercentage = round2(float64(s.Won) / p * 100)
		s.DrawPercentage = round2(float64(s.Drawn) / p * 100)
		s.LossPercentage = round2(float64(s.Lost) / p * 100)
		s.PointsPerGame = round2(float64(s.Points) / p)
		s.GoalsForPerGame = round2(float64(s.GoalsFor) / p)
		s.GoalsAgainstPerGame = round2(float64(s.GoalsAgainst) / p)
	}
	return s
}
