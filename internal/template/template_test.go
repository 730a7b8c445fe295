package template

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/leaguesim/internal/model"
)

const sample = `{
  "LaLiga Española": {
    "type": "League",
    "country": "Spain",
    "team_count": 4,
    "jornadas": 6,
    "teams": [
      {"name": "Real Madrid", "value": "1200M"},
      {"name": "Getafe", "value": "80,5M"},
      {"name": "Cádiz", "value": "800K"},
      {"name": "Sevilla", "value": "300M"}
    ]
  },
  "Copa Rápida": {
    "type": "Tournament",
    "teams": [
      {"name": "Alpha", "value": "10M"},
      {"name": "Beta", "value": "20M"}
    ]
  }
}`

func newLoader(t *testing.T) *Loader {
	t.Helper()
	l, err := NewLoader(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return l
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"30,3M", 30.3e6},
		{"800K", 800e3},
		{"1200M", 1200e6},
		{" 1 500 ", 1500},
		{"", 0},
		{"abc", 0},
		{"M", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseValue(tt.in), 1e-6)
		})
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "30,3M", FormatValue(30.3e6))
	assert.Equal(t, "800K", FormatValue(800e3))
}

func TestValueSummary(t *testing.T) {
	teams := []TeamEntry{{"A", "10M"}, {"B", "30M"}, {"C", "5M"}, {"D", "30M"}}
	v := ValueSummary(teams)
	require.NotNil(t, v.Highest)
	assert.Equal(t, "B", v.Highest.Name)
	assert.Equal(t, "C", v.Lowest.Name)
	assert.InDelta(t, 18.75e6, v.Average, 1e-6)
	assert.InDelta(t, 25e6, v.Difference, 1e-6)

	empty := ValueSummary(nil)
	assert.Nil(t, empty.Highest)
	assert.Zero(t, empty.Average)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	_, err = Parse([]byte(`null`))
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	_, err = Parse([]byte(`[1, 2]`))
	assert.ErrorIs(t, err, ErrInvalidTemplate)
}

func TestLoader_SaveLoadList(t *testing.T) {
	l := newLoader(t)

	n, err := l.Save("spain", []byte(sample))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, os.WriteFile(filepath.Join(l.Dir(), "notes.txt"), []byte("x"), 0o644))
	names, err := l.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"spain"}, names)

	tpl, err := l.Load("spain")
	require.NoError(t, err)
	assert.Equal(t, "LaLiga Española", tpl["LaLiga Española"].Name)

	_, err = l.Load("missing")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestLoader_RejectsBadNames(t *testing.T) {
	l := newLoader(t)
	for _, name := range []string{"", "..", "../etc", "a/b", `a\b`} {
		_, err := l.Save(name, []byte(sample))
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}

func TestLoader_SaveRejectsInvalidJSON(t *testing.T) {
	l := newLoader(t)
	_, err := l.Save("broken", []byte(`{"x":`))
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	names, err := l.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLoader_Leagues(t *testing.T) {
	l := newLoader(t)
	_, err := l.Save("spain", []byte(sample))
	require.NoError(t, err)

	all, err := l.Leagues("spain", Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Copa Rápida", all[0].Name)
	assert.Equal(t, 2, all[0].TeamCount)
	assert.Equal(t, "30,0M", all[0].TotalValue)

	min3 := 3
	big, err := l.Leagues("spain", Filter{MinTeams: &min3})
	require.NoError(t, err)
	require.Len(t, big, 1)
	assert.Equal(t, 4, big[0].TeamCount)
	assert.Equal(t, []string{"1200M", "80,5M", "800K", "300M"}, big[0].TeamValues)

	tournaments, err := l.Leagues("spain", Filter{Type: "Tournament"})
	require.NoError(t, err)
	require.Len(t, tournaments, 1)

	search, err := l.Leagues("spain", Filter{Search: "LALIGA"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "LaLiga Española", search[0].Name)
}

func TestLoader_League(t *testing.T) {
	l := newLoader(t)
	_, err := l.Save("spain", []byte(sample))
	require.NoError(t, err)

	lg, err := l.League("spain", "Copa Rápida")
	require.NoError(t, err)
	assert.Equal(t, "Tournament", lg.Kind())

	_, err = l.League("spain", "Serie A")
	assert.ErrorIs(t, err, ErrLeagueNotFound)
}

func TestBuild(t *testing.T) {
	tpl, err := Parse([]byte(sample))
	require.NoError(t, err)

	sel := model.LeagueTemplateSelect{LeagueName: "LaLiga Española", TipoLiga: model.LigaTactica, ManagerID: "m-1", ManagerName: "Ana"}
	p := Build(tpl["LaLiga Española"], sel)

	assert.Equal(t, "LaLiga Española", p.League.Name)
	assert.Equal(t, model.LigaTactica, p.League.TipoLiga)
	assert.Equal(t, 4, p.League.MaxTeams)
	assert.Equal(t, 6, p.League.Jornadas)
	assert.Equal(t, "Spain", *p.League.Country)
	assert.Equal(t, "m-1", *p.League.ManagerID)
	assert.Len(t, p.Teams, 4)
	assert.Equal(t, "Real Madrid", p.HighestValue)
	assert.Equal(t, "Cádiz", p.LowestValue)
	assert.InDelta(t, 1200e6-800e3, *p.League.ValueDifference, 1e-3)
	require.NoError(t, p.League.Validate())

	cup := Build(tpl["Copa Rápida"], sel)
	assert.Equal(t, defaultJornadas, cup.League.Jornadas)
	assert.Equal(t, 2, cup.League.MaxTeams)
	assert.Equal(t, "Tournament", cup.League.LeagueType)
}
