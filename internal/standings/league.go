package standings

import (
	"sort"

	"github.com/albapepper/leaguesim/internal/model"
)

const topN = 5

// LeagueStatistics aggregates the played matches of a league. ok is false
// when nothing has been played yet. Team names are left for the caller to
// resolve.
func LeagueStatistics(leagueID int, matches []model.Match) (stats model.LeagueStatistics, ok bool) {
	stats.LeagueID = leagueID
	formations := map[string]int{}
	styles := map[string]int{}
	scored := map[int]int{}
	conceded := map[int]int{}

	for _, m := range matches {
		if !m.Played() {
			continue
		}
		stats.MatchesPlayed++
		hg, ag := m.Goals()
		goals := hg + ag
		stats.TotalGoals += goals
		if stats.MaxGoalsMatchID == nil || goals > stats.MaxGoalsInMatch {
			id := m.ID
			stats.MaxGoalsInMatch = goals
			stats.MaxGoalsMatchID = &id
		}

		for _, f := range []*string{m.HomeFormation, m.AwayFormation} {
			if f != nil && *f != "" {
				formations[*f]++
			}
		}
		for _, s := range []*string{m.HomeStyle, m.AwayStyle} {
			if s != nil && *s != "" {
				styles[*s]++
			}
		}
		for _, p := range []*int{m.HomePossession, m.AwayPossession} {
			if p != nil && *p > stats.HighestPossession {
				stats.HighestPossession = *p
			}
		}

		scored[m.HomeTeamID] += hg
		scored[m.AwayTeamID] += ag
		conceded[m.HomeTeamID] += ag
		conceded[m.AwayTeamID] += hg

		switch {
		case hg > ag:
			stats.HomeWins++
		case hg < ag:
			stats.AwayWins++
		default:
			stats.Draws++
		}
		if hg == 0 || ag == 0 {
			stats.CleanSheets++
		}
	}
	if stats.MatchesPlayed == 0 {
		return stats, false
	}

	stats.AvgGoalsPerMatch = float64(stats.TotalGoals) / float64(stats.MatchesPlayed)
	if top := Top(formations, 1); len(top) > 0 {
		stats.MostCommonFormation = &top[0].Name
	}
	if top := Top(styles, 1); len(top) > 0 {
		stats.MostCommonStyle = &top[0].Name
	}
	if id, n, found := extreme(scored, func(a, b int) bool { return a > b }); found {
		stats.TeamWithMostGoals = &model.TeamTop{ID: id, Goals: &n}
	}
	if id, n, found := extreme(conceded, func(a, b int) bool { return a < b }); found {
		stats.TeamWithBestDefense = &model.TeamTop{ID: id, GoalsAgainst: &n}
	}
	return stats, true
}

// extreme returns the key whose value wins under better, breaking ties on
// the lower key.
func extreme(m map[int]int, better func(a, b int) bool) (key, value int, ok bool) {
	for k, v := range m {
		if !ok || better(v, value) || (v == value && k < key) {
			key, value, ok = k, v, true
		}
	}
	return key, value, ok
}

// Count is a named tally.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Top returns the n largest tallies, ties broken by name.
func Top(tally map[string]int, n int) []Count {
	out := make([]Count, 0, len(tally))
	for k, v := range tally {
		out = append(out, Count{Name: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// GlobalStats summarises every league.
type GlobalStats struct {
	TotalLeagues         int                    `json:"total_leagues"`
	ActiveLeagues        int                    `json:"active_leagues"`
	TotalTeams           int                    `json:"total_teams"`
	TotalMatches         int                    `json:"total_matches"`
	TotalGoals           int                    `json:"total_goals"`
	AvgGoalsPerMatch     float64                `json:"avg_goals_per_match"`
	LeaguesByType        map[model.TipoLiga]int `json:"leagues_by_type"`
	MostCommonFormations []Count                `json:"most_common_formations"`
	MostCommonStyles     []Count                `json:"most_common_styles"`
}

// Global combines per-league statistics. Each league contributes its most
// common formation and style once.
func Global(leagues []model.League, statsByLeague map[int]model.LeagueStatistics) GlobalStats {
	g := GlobalStats{
		TotalLeagues:         len(leagues),
		LeaguesByType:        map[model.TipoLiga]int{},
		MostCommonFormations: []Count{},
		MostCommonStyles:     []Count{},
	}
	formations := map[string]int{}
	styles := map[string]int{}
	for _, l := range leagues {
		if l.Active {
			g.ActiveLeagues++
		}
		g.TotalTeams += l.TeamsCount
		g.LeaguesByType[l.TipoLiga]++

		s, ok := statsByLeague[l.ID]
		if !ok {
			continue
		}
		g.TotalGoals += s.TotalGoals
		g.TotalMatches += s.MatchesPlayed
		if s.MostCommonFormation != nil {
			formations[*s.MostCommonFormation]++
		}
		if s.MostCommonStyle != nil {
			styles[*s.MostCommonStyle]++
		}
	}
	if g.TotalMatches > 0 {
		g.AvgGoalsPerMatch = round2(float64(g.TotalGoals) / float64(g.TotalMatches))
	}
	g.MostCommonFormations = append(g.MostCommonFormations, Top(formations, topN)...)
	g.MostCommonStyles = append(g.MostCommonStyles, Top(styles, topN)...)
	return g
}
