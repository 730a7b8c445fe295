// Package template loads league templates: JSON files that describe ready
// made leagues and their teams.
//
// A template file maps league names to their definition:
//
//	{"LaLiga": {"type": "League", "country": "Spain", "team_count": 20,
//	            "jornadas": 38, "teams": [{"name": "...", "value": "30,3M"}]}}
package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/albapepper/leaguesim/internal/model"
)

const (
	ext             = ".json"
	defaultJornadas = 38
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidTemplate  = errors.New("invalid template JSON")
	ErrInvalidName      = errors.New("invalid template name")
	ErrLeagueNotFound   = errors.New("league not found in template")
)

// TeamEntry is a team as listed in a template.
type TeamEntry struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// League is one league definition. Name is filled from the map key.
type League struct {
	Name      string      `json:"name"`
	Type      string      `json:"type,omitempty"`
	Country   *string     `json:"country,omitempty"`
	TeamCount *int        `json:"team_count,omitempty"`
	Jornadas  *int        `json:"jornadas,omitempty"`
	Teams     []TeamEntry `json:"teams"`
}

// Size is the declared team count, or the number of listed teams.
func (l League) Size() int {
	if l.TeamCount != nil {
		return *l.TeamCount
	}
	return len(l.Teams)
}

// Kind defaults to "League".
func (l League) Kind() string {
	if l.Type == "" {
		return model.LeagueTypeLeague
	}
	return l.Type
}

// Template is a parsed template file keyed by league name.
type Template map[string]League

// Parse decodes a template document.
func Parse(data []byte) (Template, error) {
	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	if t == nil {
		return nil, fmt.Errorf("%w: expected an object of leagues", ErrInvalidTemplate)
	}
	for name, l := range t {
		l.Name = name
		t[name] = l
	}
	return t, nil
}

// Filter narrows Leagues. Zero values disable a criterion.
type Filter struct {
	Type     string
	MinTeams *int
	MaxTeams *int
	Search   string
}

// Summary is the listing view of a template league.
type Summary struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	TeamCount  int      `json:"team_count"`
	TeamValues []string `json:"team_values"`
	TotalValue string   `json:"total_value"`
}

// Loader reads templates from a directory and caches parsed files.
type Loader struct {
	dir    string
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string]Template
}

// NewLoader creates dir if needed.
func NewLoader(dir string, logger *slog.Logger) (*Loader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create templates dir: %w", err)
	}
	return &Loader{dir: dir, logger: logger, cache: make(map[string]Template)}, nil
}

func (l *Loader) Dir() string { return l.dir }

func checkName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func (l *Loader) path(name string) string {
	return filepath.Join(l.dir, name+ext)
}

// Load returns the named template, reading it from disk on first use.
func (l *Loader) Load(name string) (Template, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	l.mu.RLock()
	t, ok := l.cache[name]
	l.mu.RUnlock()
	if ok {
		return t, nil
	}

	data, err := os.ReadFile(l.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}
	t, err = Parse(data)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[name] = t
	l.mu.Unlock()
	return t, nil
}

// List returns the template names in the directory, sorted.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}

// Save validates data, writes it as the named template and refreshes the
// cache. It returns the number of leagues in the file.
func (l *Loader) Save(name string, data []byte) (int, error) {
	if err := checkName(name); err != nil {
		return 0, err
	}
	t, err := Parse(data)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(l.path(name), data, 0o644); err != nil {
		return 0, fmt.Errorf("write template %s: %w", name, err)
	}

	l.mu.Lock()
	l.cache[name] = t
	l.mu.Unlock()

	l.logger.Info("Template saved", "template", name, "leagues", len(t))
	return len(t), nil
}

// Leagues lists the leagues of a template that match f, sorted by name.
func (l *Loader) Leagues(name string, f Filter) ([]Summary, error) {
	t, err := l.Load(name)
	if err != nil {
		return nil, err
	}
	fold := cases.Fold()
	search := fold.String(strings.TrimSpace(f.Search))

	out := []Summary{}
	for _, lg := range t {
		if f.Type != "" && lg.Kind() != f.Type {
			continue
		}
		size := lg.Size()
		if f.MinTeams != nil && size < *f.MinTeams {
			continue
		}
		if f.MaxTeams != nil && size > *f.MaxTeams {
			continue
		}
		if search != "" && !strings.Contains(fold.String(lg.Name), search) {
			continue
		}
		values := make([]string, len(lg.Teams))
		total := 0.0
		for i, team := range lg.Teams {
			values[i] = team.Value
			total += ParseValue(team.Value)
		}
		out = append(out, Summary{
			Name:       lg.Name,
			Type:       lg.Kind(),
			TeamCount:  size,
			TeamValues: values,
			TotalValue: FormatValue(total),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// League returns one league of a template.
func (l *Loader) League(name, league string) (League, error) {
	t, err := l.Load(name)
	if err != nil {
		return League{}, err
	}
	lg, ok := t[league]
	if !ok {
		return League{}, fmt.Errorf("%w: %s in %s", ErrLeagueNotFound, league, name)
	}
	return lg, nil
}
