package model

import "time"

// CalendarEntry schedules one match (or a placeholder) on a jornada.
type CalendarEntry struct {
	ID            int       `json:"id"`
	LeagueID      int       `json:"league_id"`
	Jornada       int       `json:"jornada"`
	MatchID       *int      `json:"match_id"`
	ScheduledDate *Date     `json:"scheduled_date"`
	ScheduledTime *string   `json:"scheduled_time"`
	Venue         *string   `json:"venue"`
	IsPlayed      bool      `json:"is_played"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CalendarEntryCreate struct {
	LeagueID      int     `json:"league_id"`
	Jornada       int     `json:"jornada"`
	MatchID       *int    `json:"match_id,omitempty"`
	ScheduledDate *Date   `json:"scheduled_date,omitempty"`
	ScheduledTime *string `json:"scheduled_time,omitempty"`
	Venue         *string `json:"venue,omitempty"`
}

func (c CalendarEntryCreate) Validate() error {
	if c.LeagueID <= 0 {
		return invalid("league_id", "is required")
	}
	if c.Jornada < 1 {
		return invalid("jornada", "must be at least 1")
	}
	return nil
}

type CalendarEntryUpdate struct {
	Jornada       *int    `json:"jornada,omitempty"`
	MatchID       *int    `json:"match_id,omitempty"`
	ScheduledDate *Date   `json:"scheduled_date,omitempty"`
	ScheduledTime *string `json:"scheduled_time,omitempty"`
	Venue         *string `json:"venue,omitempty"`
	IsPlayed      *bool   `json:"is_played,omitempty"`
}

func (c CalendarEntryUpdate) Validate() error {
	if c.Jornada != nil && *c.Jornada < 1 {
		return invalid("jornada", "must be at least 1")
	}
	return nil
}

// GenerateCalendarRequest controls automatic scheduling. MatchDays uses
// 0 for Monday through 6 for Sunday.
type GenerateCalendarRequest struct {
	StartDate    *Date `json:"start_date,omitempty"`
	EndDate      *Date `json:"end_date,omitempty"`
	AutoSchedule bool  `json:"auto_schedule"`
	MatchDays    []int `json:"match_days,omitempty"`
}

func (g GenerateCalendarRequest) Validate() error {
	if g.StartDate != nil && g.EndDate != nil && !g.StartDate.Before(g.EndDate.Time) {
		return invalid("start_date", "must be before end_date")
	}
	for _, d := range g.MatchDays {
		if d < 0 || d > 6 {
			return invalid("match_days", "must be between 0 (Monday) and 6 (Sunday)")
		}
	}
	return nil
}

type ImportExternalCalendarRequest struct {
	ExternalURL string `json:"external_url"`
}

func (r ImportExternalCalendarRequest) Validate() error {
	if blank(r.ExternalURL) {
		return invalid("external_url", "is required")
	}
	return nil
}

// CalendarMatch is the match summary embedded in a calendar view.
type CalendarMatch struct {
	ID            int      `json:"id"`
	Jornada       int      `json:"jornada"`
	HomeTeam      *TeamRef `json:"home_team"`
	AwayTeam      *TeamRef `json:"away_team"`
	HomeFormation *string  `json:"home_formation"`
	AwayFormation *string  `json:"away_formation"`
	HomeStyle     *string  `json:"home_style"`
	AwayStyle     *string  `json:"away_style"`
	HomeGoals     *int     `json:"home_goals"`
	AwayGoals     *int     `json:"away_goals"`
	Date          *Date    `json:"date"`
	Time          *string  `json:"time"`
}

// CalendarEntryDetails is an entry with its match resolved.
type CalendarEntryDetails struct {
	CalendarEntry
	Match *CalendarMatch `json:"match"`
}

// LeagueCalendar groups a league's entries by jornada.
type LeagueCalendar struct {
	LeagueID         int                            `json:"league_id"`
	LeagueName       string                         `json:"league_name"`
	Jornadas         int                            `json:"jornadas"`
	EntriesByJornada map[int][]CalendarEntryDetails `json:"entries_by_jornada"`
}
