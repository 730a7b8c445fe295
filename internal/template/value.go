package template

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/albapepper/leaguesim/internal/model"
)

// ParseValue converts a market value such as "30,3M" or "800K" to a number.
// Unparseable input yields 0.
func ParseValue(s string) float64 {
	clean := strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), ",", ".")
	mult := 1.0
	switch {
	case strings.HasSuffix(clean, "M"):
		mult, clean = 1e6, strings.TrimSuffix(clean, "M")
	case strings.HasSuffix(clean, "K"):
		mult, clean = 1e3, strings.TrimSuffix(clean, "K")
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return v * mult
}

var valuePrinter = message.NewPrinter(language.Spanish)

// FormatValue renders v the way templates write it: "30,3M" or "800K".
func FormatValue(v float64) string {
	if v >= 1e6 {
		return valuePrinter.Sprintf("%.1fM", v/1e6)
	}
	return valuePrinter.Sprintf("%.0fK", v/1e3)
}

// Values summarises the market values of a league's teams.
type Values struct {
	Highest    *TeamEntry
	Lowest     *TeamEntry
	Average    float64
	Difference float64
}

// ValueSummary finds the most and least valuable teams. The first team
// wins ties.
func ValueSummary(teams []TeamEntry) Values {
	var out Values
	if len(teams) == 0 {
		return out
	}
	var hi, lo, sum float64
	for i := range teams {
		v := ParseValue(teams[i].Value)
		sum += v
		if out.Highest == nil || v > hi {
			out.Highest, hi = &teams[i], v
		}
		if out.Lowest == nil || v < lo {
			out.Lowest, lo = &teams[i], v
		}
	}
	out.Average = sum / float64(len(teams))
	out.Difference = hi - lo
	return out
}

// Plan is everything needed to create a league from a template.
type Plan struct {
	League       model.LeagueCreate
	Teams        []model.TeamCreate
	HighestValue string // team name
	LowestValue  string
}

// Build turns a template league into a league creation plan. max_teams
// never drops below the number of listed teams. Highest and lowest value
// team ids are resolved once the teams exist.
func Build(l League, sel model.LeagueTemplateSelect) Plan {
	values := ValueSummary(l.Teams)
	jornadas := defaultJornadas
	if l.Jornadas != nil {
		jornadas = *l.Jornadas
	}
	active := true
	lc := model.LeagueCreate{
		Name:            l.Name,
		Country:         l.Country,
		TipoLiga:        sel.TipoLiga,
		LeagueType:      l.Kind(),
		MaxTeams:        max(l.Size(), len(l.Teams)),
		Jornadas:        jornadas,
		Active:          &active,
		AvgTeamValue:    &values.Average,
		ValueDifference: &values.Difference,
	}
	if sel.ManagerID != "" {
		lc.ManagerID = &sel.ManagerID
	}
	if sel.ManagerName != "" {
		lc.ManagerName = &sel.ManagerName
	}

	p := Plan{League: lc, Teams: make([]model.TeamCreate, 0, len(l.Teams))}
	for _, t := range l.Teams {
		tc := model.TeamCreate{Name: t.Name}
		if t.Value != "" {
			v := t.Value
			tc.Value = &v
		}
		p.Teams = append(p.Teams, tc)
	}
	if values.Highest != nil {
		p.HighestValue = values.Highest.Name
		p.LowestValue = values.Lowest.Name
	}
	return p
}
