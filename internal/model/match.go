package model

import "time"

// Match is a fixture between two teams of the same league.
type Match struct {
	ID         int     `json:"id"`
	Jornada    int     `json:"jornada"`
	HomeTeamID int     `json:"home_team_id"`
	AwayTeamID int     `json:"away_team_id"`
	LeagueID   int     `json:"league_id"`
	Date       *Date   `json:"date"`
	Time       *string `json:"time"`

	HomeFormation     *string `json:"home_formation"`
	HomeStyle         *string `json:"home_style"`
	HomeAttack        *string `json:"home_attack"`
	HomeKicks         *string `json:"home_kicks"`
	HomePossession    *int    `json:"home_possession"`
	HomeShots         *int    `json:"home_shots"`
	HomeGoals         *int    `json:"home_goals"`
	HomeShotsOnTarget *int    `json:"home_shots_on_target"`
	HomeFouls         *int    `json:"home_fouls"`

	AwayFormation     *string `json:"away_formation"`
	AwayStyle         *string `json:"away_style"`
	AwayAttack        *string `json:"away_attack"`
	AwayKicks         *string `json:"away_kicks"`
	AwayPossession    *int    `json:"away_possession"`
	AwayShots         *int    `json:"away_shots"`
	AwayGoals         *int    `json:"away_goals"`
	AwayShotsOnTarget *int    `json:"away_shots_on_target"`
	AwayFouls         *int    `json:"away_fouls"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	HomeTeam *Team `json:"home_team,omitempty"`
	AwayTeam *Team `json:"away_team,omitempty"`
}

// Played reports whether both scores are recorded.
func (m Match) Played() bool {
	return m.HomeGoals != nil && m.AwayGoals != nil
}

// HasPreMatch reports whether both line-ups were generated.
func (m Match) HasPreMatch() bool {
	return m.HomeFormation != nil && m.AwayFormation != nil
}

// Goals returns both scores, zero when unplayed.
func (m Match) Goals() (home, away int) {
	if m.HomeGoals != nil {
		home = *m.HomeGoals
	}
	if m.AwayGoals != nil {
		away = *m.AwayGoals
	}
	return home, away
}

// MatchCreate is the payload for creating a match.
type MatchCreate struct {
	Jornada    int     `json:"jornada"`
	HomeTeamID int     `json:"home_team_id"`
	AwayTeamID int     `json:"away_team_id"`
	LeagueID   int     `json:"league_id"`
	Date       *Date   `json:"date,omitempty"`
	Time       *string `json:"time,omitempty"`

	HomeFormation     *string `json:"home_formation,omitempty"`
	HomeStyle         *string `json:"home_style,omitempty"`
	HomeAttack        *string `json:"home_attack,omitempty"`
	HomeKicks         *string `json:"home_kicks,omitempty"`
	HomePossession    *int    `json:"home_possession,omitempty"`
	HomeShots         *int    `json:"home_shots,omitempty"`
	HomeGoals         *int    `json:"home_goals,omitempty"`
	HomeShotsOnTarget *int    `json:"home_shots_on_target,omitempty"`
	HomeFouls         *int    `json:"home_fouls,omitempty"`

	AwayFormation     *string `json:"away_formation,omitempty"`
	AwayStyle         *string `json:"away_style,omitempty"`
	AwayAttack        *string `json:"away_attack,omitempty"`
	AwayKicks         *string `json:"away_kicks,omitempty"`
	AwayPossession    *int    `json:"away_possession,omitempty"`
	AwayShots         *int    `json:"away_shots,omitempty"`
	AwayGoals         *int    `json:"away_goals,omitempty"`
	AwayShotsOnTarget *int    `json:"away_shots_on_target,omitempty"`
	AwayFouls         *int    `json:"away_fouls,omitempty"`
}

func (m MatchCreate) Validate() error {
	if m.Jornada < 1 {
		return invalid("jornada", "must be at least 1")
	}
	if m.LeagueID <= 0 {
		return invalid("league_id", "is required")
	}
	if m.HomeTeamID <= 0 || m.AwayTeamID <= 0 {
		return invalid("home_team_id", "both teams are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return invalid("away_team_id", "must differ from home_team_id")
	}
	return validateBox(m.HomePossession, m.AwayPossession, m.HomeGoals, m.AwayGoals, m.HomeShots, m.AwayShots)
}

// MatchUpdate is a partial update; nil fields are left untouched.
type MatchUpdate struct {
	Jornada    *int    `json:"jornada,omitempty"`
	Date       *Date   `json:"date,omitempty"`
	Time       *string `json:"time,omitempty"`
	HomeTeamID *int    `json:"home_team_id,omitempty"`
	AwayTeamID *int    `json:"away_team_id,omitempty"`
	LeagueID   *int    `json:"league_id,omitempty"`

	HomeFormation     *string `json:"home_formation,omitempty"`
	HomeStyle         *string `json:"home_style,omitempty"`
	HomeAttack        *string `json:"home_attack,omitempty"`
	HomeKicks         *string `json:"home_kicks,omitempty"`
	HomePossession    *int    `json:"home_possession,omitempty"`
	HomeShots         *int    `json:"home_shots,omitempty"`
	HomeGoals         *int    `json:"home_goals,omitempty"`
	HomeShotsOnTarget *int    `json:"home_shots_on_target,omitempty"`
	HomeFouls         *int    `json:"home_fouls,omitempty"`

	AwayFormation     *string `json:"away_formation,omitempty"`
	AwayStyle         *string `json:"away_style,omitempty"`
	AwayAttack        *string `json:"away_attack,omitempty"`
	AwayKicks         *string `json:"away_kicks,omitempty"`
	AwayPossession    *int    `json:"away_possession,omitempty"`
	AwayShots         *int    `json:"away_shots,omitempty"`
	AwayGoals         *int    `json:"away_goals,omitempty"`
	AwayShotsOnTarget *int    `json:"away_shots_on_target,omitempty"`
	AwayFouls         *int    `json:"away_fouls,omitempty"`
}

func (m MatchUpdate) Validate() error {
	if m.Jornada != nil && *m.Jornada < 1 {
		return invalid("jornada", "must be at least 1")
	}
	if m.HomeTeamID != nil && m.AwayTeamID != nil && *m.HomeTeamID == *m.AwayTeamID {
		return invalid("away_team_id", "must differ from home_team_id")
	}
	return validateBox(m.HomePossession, m.AwayPossession, m.HomeGoals, m.AwayGoals, m.HomeShots, m.AwayShots)
}

// TouchesResult reports whether the update changes the score or possession,
// which marks the match as played in the calendar.
func (m MatchUpdate) TouchesResult() bool {
	return m.HomeGoals != nil || m.AwayGoals != nil || m.HomePossession != nil || m.AwayPossession != nil
}

// Apply overlays the non-nil fields onto match.
func (m MatchUpdate) Apply(match *Match) {
	setInt(&match.Jornada, m.Jornada)
	setInt(&match.HomeTeamID, m.HomeTeamID)
	setInt(&match.AwayTeamID, m.AwayTeamID)
	setInt(&match.LeagueID, m.LeagueID)
	if m.Date != nil {
		match.Date = m.Date
	}
	overlay(&match.Time, m.Time)
	overlay(&match.HomeFormation, m.HomeFormation)
	overlay(&match.HomeStyle, m.HomeStyle)
	overlay(&match.HomeAttack, m.HomeAttack)
	overlay(&match.HomeKicks, m.HomeKicks)
	overlay(&match.HomePossession, m.HomePossession)
	overlay(&match.HomeShots, m.HomeShots)
	overlay(&match.HomeGoals, m.HomeGoals)
	overlay(&match.HomeShotsOnTarget, m.HomeShotsOnTarget)
	overlay(&match.HomeFouls, m.HomeFouls)
	overlay(&match.AwayFormation, m.AwayFormation)
	overlay(&match.AwayStyle, m.AwayStyle)
	overlay(&match.AwayAttack, m.AwayAttack)
	overlay(&match.AwayKicks, m.AwayKicks)
	overlay(&match.AwayPossession, m.AwayPossession)
	overlay(&match.AwayShots, m.AwayShots)
	overlay(&match.AwayGoals, m.AwayGoals)
	overlay(&match.AwayShotsOnTarget, m.AwayShotsOnTarget)
	overlay(&match.AwayFouls, m.AwayFouls)
}

type BatchMatchUpdate struct {
	MatchIDs []int       `json:"match_ids"`
	Data     MatchUpdate `json:"data"`
}

func (b BatchMatchUpdate) Validate() error {
	if len(b.MatchIDs) == 0 {
		return invalid("match_ids", "must not be empty")
	}
	return b.Data.Validate()
}

// PreMatch is the generated line-up data for both sides.
type PreMatch struct {
	HomeFormation string `json:"home_formation"`
	HomeStyle     string `json:"home_style"`
	HomeAttack    string `json:"home_attack"`
	HomeKicks     string `json:"home_kicks"`
	AwayFormation string `json:"away_formation"`
	AwayStyle     string `json:"away_style"`
	AwayAttack    string `json:"away_attack"`
	AwayKicks     string `json:"away_kicks"`
}

func validateBox(homePoss, awayPoss, homeGoals, awayGoals, homeShots, awayShots *int) error {
	for _, p := range []*int{homePoss, awayPoss} {
		if p != nil && (*p < 0 || *p > 100) {
			return invalid("possession", "must be between 0 and 100")
		}
	}
	if homePoss != nil && awayPoss != nil && *homePoss+*awayPoss != 100 {
		return invalid("possession", "home and away must add up to 100")
	}
	for _, n := range []*int{homeGoals, awayGoals, homeShots, awayShots} {
		if n != nil && *n < 0 {
			return invalid("goals", "counts must not be negative")
		}
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func overlay[T any](dst **T, v *T) {
	if v != nil {
		*dst = v
	}
}
