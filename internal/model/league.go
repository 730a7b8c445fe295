package model

import "time"

// TipoLiga classifies how a league is played.
type TipoLiga string

const (
	LigaTactica TipoLiga = "Liga Tactica"
	LigaInterna TipoLiga = "Liga Interna"
	Torneo      TipoLiga = "Torneo"
	Batallas    TipoLiga = "Batallas"
)

// TiposLiga lists every accepted league kind.
var TiposLiga = []TipoLiga{LigaTactica, LigaInterna, Torneo, Batallas}

func (t TipoLiga) Valid() bool {
	for _, v := range TiposLiga {
		if t == v {
			return true
		}
	}
	return false
}

// Simulatable reports whether fixtures and results may be generated
// automatically. Only tactical leagues qualify.
func (t TipoLiga) Simulatable() bool { return t == LigaTactica }

const (
	LeagueTypeLeague     = "League"
	LeagueTypeTournament = "Tournament"
)

// League is a competition with a fixed number of slots and jornadas.
type League struct {
	ID                  int      `json:"id"`
	Name                string   `json:"name"`
	Country             *string  `json:"country"`
	TipoLiga            TipoLiga `json:"tipo_liga"`
	LeagueType          string   `json:"league_type"`
	MaxTeams            int      `json:"max_teams"`
	Jornadas            int      `json:"jornadas"`
	ManagerID           *string  `json:"manager_id"`
	ManagerName         *string  `json:"manager_name"`
	Active              bool     `json:"active"`
	StartDate           *Date    `json:"start_date"`
	EndDate             *Date    `json:"end_date"`
	HighestValueTeamID  *int     `json:"highest_value_team_id"`
	LowestValueTeamID   *int     `json:"lowest_value_team_id"`
	AvgTeamValue        *float64 `json:"avg_team_value"`
	ValueDifference     *float64 `json:"value_difference"`
	WinnerID            *int     `json:"winner_id"`
	RunnerUpID          *int     `json:"runner_up_id"`
	ThirdPlaceID        *int     `json:"third_place_id"`
	CalendarGenerated   bool     `json:"calendar_generated"`
	ExternalCalendarURL *string  `json:"external_calendar_url,omitempty"`

	CreatedAt    time.Time `json:"created_at"`
	MatchesCount int       `json:"matches_count"`
	TeamsCount   int       `json:"teams_count"`
}

// LeagueCreate is the payload for creating a league.
type LeagueCreate struct {
	Name               string   `json:"name"`
	Country            *string  `json:"country,omitempty"`
	TipoLiga           TipoLiga `json:"tipo_liga"`
	LeagueType         string   `json:"league_type,omitempty"`
	MaxTeams           int      `json:"max_teams"`
	Jornadas           int      `json:"jornadas"`
	ManagerID          *string  `json:"manager_id,omitempty"`
	ManagerName        *string  `json:"manager_name,omitempty"`
	Active             *bool    `json:"active,omitempty"`
	StartDate          *Date    `json:"start_date,omitempty"`
	EndDate            *Date    `json:"end_date,omitempty"`
	HighestValueTeamID *int     `json:"highest_value_team_id,omitempty"`
	LowestValueTeamID  *int     `json:"lowest_value_team_id,omitempty"`
	AvgTeamValue       *float64 `json:"avg_team_value,omitempty"`
	ValueDifference    *float64 `json:"value_difference,omitempty"`
}

func (l LeagueCreate) Validate() error {
	if blank(l.Name) {
		return invalid("name", "is required")
	}
	if !l.TipoLiga.Valid() {
		return invalid("tipo_liga", "must be one of %v", TiposLiga)
	}
	if l.MaxTeams < 2 {
		return invalid("max_teams", "must be at least 2")
	}
	if l.Jornadas < 1 {
		return invalid("jornadas", "must be at least 1")
	}
	if l.StartDate != nil && l.EndDate != nil && !l.StartDate.Before(l.EndDate.Time) {
		return invalid("start_date", "must be before end_date")
	}
	return nil
}

// Normalize fills defaults that the database does not set.
func (l *LeagueCreate) Normalize() {
	if l.LeagueType == "" {
		l.LeagueType = LeagueTypeLeague
	}
	if l.Active == nil {
		t := true
		l.Active = &t
	}
}

// LeagueUpdate is a partial update; nil fields are left untouched.
type LeagueUpdate struct {
	Name               *string   `json:"name,omitempty"`
	Country            *string   `json:"country,omitempty"`
	TipoLiga           *TipoLiga `json:"tipo_liga,omitempty"`
	LeagueType         *string   `json:"league_type,omitempty"`
	MaxTeams           *int      `json:"max_teams,omitempty"`
	Jornadas           *int      `json:"jornadas,omitempty"`
	ManagerID          *string   `json:"manager_id,omitempty"`
	ManagerName        *string   `json:"manager_name,omitempty"`
	Active             *bool     `json:"active,omitempty"`
	StartDate          *Date     `json:"start_date,omitempty"`
	EndDate            *Date     `json:"end_date,omitempty"`
	HighestValueTeamID *int      `json:"highest_value_team_id,omitempty"`
	LowestValueTeamID  *int      `json:"lowest_value_team_id,omitempty"`
	AvgTeamValue       *float64  `json:"avg_team_value,omitempty"`
	ValueDifference    *float64  `json:"value_difference,omitempty"`
	WinnerID           *int      `json:"winner_id,omitempty"`
	RunnerUpID         *int      `json:"runner_up_id,omitempty"`
	ThirdPlaceID       *int      `json:"third_place_id,omitempty"`
	CalendarGenerated  *bool     `json:"calendar_generated,omitempty"`
}

func (l LeagueUpdate) Validate() error {
	if l.Name != nil && blank(*l.Name) {
		return invalid("name", "must not be empty")
	}
	if l.TipoLiga != nil && !l.TipoLiga.Valid() {
		return invalid("tipo_liga", "must be one of %v", TiposLiga)
	}
	if l.MaxTeams != nil && *l.MaxTeams < 2 {
		return invalid("max_teams", "must be at least 2")
	}
	if l.Jornadas != nil && *l.Jornadas < 1 {
		return invalid("jornadas", "must be at least 1")
	}
	if l.StartDate != nil && l.EndDate != nil && !l.StartDate.Before(l.EndDate.Time) {
		return invalid("start_date", "must be before end_date")
	}
	return nil
}

// LeagueTeam links a team to a league.
type LeagueTeam struct {
	ID               int       `json:"id"`
	LeagueID         int       `json:"league_id"`
	TeamID           int       `json:"team_id"`
	RegistrationDate time.Time `json:"registration_date"`
}

// Creator identifies the manager that created a league.
type Creator struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// LeagueDetails is a league with its teams and podium resolved.
type LeagueDetails struct {
	League
	Teams            []Team   `json:"teams"`
	Winner           *TeamRef `json:"winner"`
	RunnerUp         *TeamRef `json:"runner_up"`
	ThirdPlace       *TeamRef `json:"third_place"`
	HighestValueTeam *TeamRef `json:"highest_value_team"`
	LowestValueTeam  *TeamRef `json:"lowest_value_team"`
	Creator          *Creator `json:"creator"`
}

// SimulationRequest drives fixture generation for a tactical league.
type SimulationRequest struct {
	Teams           []int `json:"teams"`
	Jornadas        *int  `json:"jornadas,omitempty"`
	AutoSchedule    bool  `json:"auto_schedule"`
	SimulateResults bool  `json:"simulate_results"`
}

func (r SimulationRequest) Validate() error {
	if r.Jornadas != nil && *r.Jornadas < 1 {
		return invalid("jornadas", "must be at least 1")
	}
	seen := make(map[int]bool, len(r.Teams))
	for _, id := range r.Teams {
		if seen[id] {
			return invalid("teams", "duplicate team %d", id)
		}
		seen[id] = true
	}
	return nil
}

// LeagueTemplateSelect picks a league out of a template file.
type LeagueTemplateSelect struct {
	LeagueName  string   `json:"league_name"`
	TipoLiga    TipoLiga `json:"tipo_liga"`
	ManagerID   string   `json:"manager_id"`
	ManagerName string   `json:"manager_name"`
}

func (s LeagueTemplateSelect) Validate() error {
	if blank(s.LeagueName) {
		return invalid("league_name", "is required")
	}
	if !s.TipoLiga.Valid() {
		return invalid("tipo_liga", "must be one of %v", TiposLiga)
	}
	return nil
}

// LeagueStatistics is the persisted analytics snapshot of a league.
type LeagueStatistics struct {
	LeagueID            int      `json:"league_id"`
	TotalGoals          int      `json:"total_goals"`
	AvgGoalsPerMatch    float64  `json:"avg_goals_per_match"`
	MaxGoalsInMatch     int      `json:"max_goals_in_match"`
	MaxGoalsMatchID     *int     `json:"max_goals_match_id"`
	MostCommonFormation *string  `json:"most_common_formation"`
	MostCommonStyle     *string  `json:"most_common_style"`
	HighestPossession   int      `json:"highest_possession"`
	TeamWithMostGoals   *TeamTop `json:"team_with_most_goals"`
	TeamWithBestDefense *TeamTop `json:"team_with_best_defense"`
	HomeWins            int      `json:"home_wins"`
	AwayWins            int      `json:"away_wins"`
	Draws               int      `json:"draws"`
	CleanSheets         int      `json:"clean_sheets"`
	MatchesPlayed       int      `json:"matches_played"`
}

// TeamTop names a team that leads a statistic.
type TeamTop struct {
	ID           int    `json:"id"`
	Name         string `json:"name,omitempty"`
	Goals        *int   `json:"goals,omitempty"`
	GoalsAgainst *int   `json:"goals_against,omitempty"`
}
