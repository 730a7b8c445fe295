package seed

import (
	"context"
	"errors"
	"log/slog"

	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/store"
)

// DemoLeague is the name of the league Demo creates.
const DemoLeague = "Liga Demo"

// DemoTeams are created unless a team with the same name exists.
var DemoTeams = []string{"Real Madrid", "Barcelona", "Atlético de Madrid", "Sevilla"}

// Store is what Demo writes through. *store.Store satisfies it.
type Store interface {
	GetTeamByName(ctx context.Context, name string) (model.Team, error)
	CreateTeam(ctx context.Context, c model.TeamCreate) (model.Team, error)
	CreateLeague(ctx context.Context, c model.LeagueCreate) (model.League, error)
	AddTeamToLeague(ctx context.Context, leagueID, teamID int) (model.LeagueTeam, error)
	CreateMatch(ctx context.Context, c model.MatchCreate) (model.Match, error)
}

// Demo creates four teams, a tactical league holding them and one played
// match. Existing teams are reused; a failed step is recorded and the
// remaining steps that do not depend on it still run.
func Demo(ctx context.Context, st Store, logger *slog.Logger) Result {
	var res Result

	ids := make(map[string]int, len(DemoTeams))
	for _, name := range DemoTeams {
		t, err := st.GetTeamByName(ctx, name)
		switch {
		case err == nil:
			res.TeamsExisting++
		case errors.Is(err, store.ErrNotFound):
			t, err = st.CreateTeam(ctx, model.TeamCreate{Name: name})
			if err != nil {
				res.AddErrorf("team %s: %v", name, err)
				continue
			}
			res.TeamsCreated++
		default:
			res.AddErrorf("team %s: %v", name, err)
			continue
		}
		ids[name] = t.ID
	}
	logger.Info("Demo teams ready", "created", res.TeamsCreated, "existing", res.TeamsExisting)

	league, err := st.CreateLeague(ctx, model.LeagueCreate{
		Name:     DemoLeague,
		TipoLiga: model.LigaTactica,
		MaxTeams: len(DemoTeams),
		Jornadas: 2 * (len(DemoTeams) - 1),
	})
	if err != nil {
		res.AddErrorf("league %s: %v", DemoLeague, err)
		return res
	}
	res.LeaguesCreated++

	for _, name := range DemoTeams {
		id, ok := ids[name]
		if !ok {
			continue
		}
		if _, err := st.AddTeamToLeague(ctx, league.ID, id); err != nil {
			res.AddErrorf("register %s: %v", name, err)
		}
	}

	home, okHome := ids["Real Madrid"]
	away, okAway := ids["Barcelona"]
	if !okHome || !okAway {
		return res
	}
	if _, err := st.CreateMatch(ctx, demoMatch(league.ID, home, away)); err != nil {
		res.AddErrorf("demo match: %v", err)
		return res
	}
	res.MatchesCreated++
	logger.Info("Demo league seeded", "league_id", league.ID, "name", league.Name)
	return res
}

func demoMatch(leagueID, home, away int) model.MatchCreate {
	s := func(v string) *string { return &v }
	n := func(v int) *int { return &v }
	return model.MatchCreate{
		Jornada:    1,
		LeagueID:   leagueID,
		HomeTeamID: home,
		AwayTeamID: away,

		HomeFormation:  s("433A"),
		HomeStyle:      s("Pases"),
		HomeAttack:     s("65-35-70"),
		HomeKicks:      s("Normal"),
		HomePossession: n(60),
		HomeShots:      n(8),
		HomeGoals:      n(3),

		AwayFormation:  s("442B"),
		AwayStyle:      s("Contraataque"),
		AwayAttack:     s("55-40-65"),
		AwayKicks:      s("Agresivo"),
		AwayPossession: n(40),
		AwayShots:      n(5),
		AwayGoals:      n(1),
	}
}
