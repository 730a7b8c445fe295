// Package external scrapes league calendars from third-party football
// sites.
package external

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/time/rate"

	"github.com/albapepper/leaguesim/internal/model"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	scraperTimeout = 10 * time.Second
	maxBodyBytes   = 5 << 20
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

var (
	ErrUnsupportedURL = errors.New("unsupported calendar URL")
	ErrFetch          = errors.New("fetch calendar")
)

// Source identifies the site a calendar comes from.
type Source string

const (
	SourceFlashscore   Source = "flashscore"
	SourceMarca        Source = "marca"
	SourceAS           Source = "as"
	SourceSportingNews Source = "sportingnews"
	SourceFCStats      Source = "fcstats"
	SourceUnknown      Source = "unknown"
)

var allowedHosts = map[string]bool{
	"www.flashscore.com":   true,
	"www.marca.com":        true,
	"www.as.com":           true,
	"www.sportingnews.com": true,
	"www.fcstats.com":      true,
}

// ValidateURL accepts http(s) URLs on the supported hosts only.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q", ErrUnsupportedURL, u.Scheme)
	}
	if !allowedHosts[u.Host] {
		return fmt.Errorf("%w: host %q", ErrUnsupportedURL, u.Host)
	}
	return nil
}

// DetectSource maps a URL to the parser that understands it.
func DetectSource(raw string) Source {
	u, err := url.Parse(raw)
	if err != nil {
		return SourceUnknown
	}
	host := strings.ToLower(u.Host)
	switch {
	case strings.Contains(host, "flashscore"):
		return SourceFlashscore
	case strings.Contains(host, "marca.com"):
		return SourceMarca
	case strings.Contains(host, "as.com"):
		return SourceAS
	case strings.Contains(host, "sportingnews"):
		return SourceSportingNews
	case strings.Contains(host, "fcstats"):
		return SourceFCStats
	}
	return SourceUnknown
}

// ScrapedMatch is one fixture read from an external calendar.
type ScrapedMatch struct {
	Jornada  int         `json:"jornada"`
	HomeTeam string      `json:"home_team"`
	AwayTeam string      `json:"away_team"`
	Date     *model.Date `json:"date"`
	Time     *string     `json:"time"`
	Venue    *string     `json:"venue"`
}

// ---------------------------------------------------------------------------
// CalendarScraper
// ---------------------------------------------------------------------------

// CalendarScraper downloads and parses calendar pages. Requests share one
// rate limiter so imports cannot hammer the upstream sites.
type CalendarScraper struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	now        func() time.Time
}

// NewCalendarScraper allows requestsPerMinute fetches per minute.
func NewCalendarScraper(requestsPerMinute int, logger *slog.Logger) *CalendarScraper {
	if requestsPerMinute < 1 {
		requestsPerMinute = 1
	}
	return &CalendarScraper{
		httpClient: &http.Client{Timeout: scraperTimeout},
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1),
		logger:     logger,
		now:        time.Now,
	}
}

// Fetch validates rawURL, downloads it and parses it with the parser of
// its source. Sources without a parser return an empty list.
func (s *CalendarScraper) Fetch(ctx context.Context, rawURL string) ([]ScrapedMatch, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}
	return s.scrape(ctx, rawURL, DetectSource(rawURL))
}

func (s *CalendarScraper) scrape(ctx context.Context, rawURL string, source Source) ([]ScrapedMatch, error) {
	doc, err := s.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	matches := Parse(source, doc, s.now().Year())
	s.logger.Info("Calendar scraped", "source", source, "url", rawURL, "matches", len(matches))
	return matches, nil
}

func (s *CalendarScraper) get(ctx context.Context, rawURL string) (*html.Node, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrFetch, rawURL, resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %v", ErrFetch, err)
	}
	return doc, nil
}

// Parse extracts fixtures from a parsed page. year completes dates that
// omit it.
func Parse(source Source, doc *html.Node, year int) []ScrapedMatch {
	switch source {
	case SourceFlashscore:
		return parseFlashscore(doc, year)
	case SourceMarca:
		return parseMarca(doc)
	}
	return []ScrapedMatch{}
}

// ---------------------------------------------------------------------------
// Parsers
// ---------------------------------------------------------------------------

// parseFlashscore reads div.event__round headers, each followed by sibling
// div.event__match rows.
func parseFlashscore(doc *html.Node, year int) []ScrapedMatch {
	out := []ScrapedMatch{}
	jornada := 1
	for _, round := range findAll(doc, "div", "event__round") {
		if n, ok := digits(text(round)); ok {
			jornada = n
		}
		for sib := nextElement(round); sib != nil && hasClass(sib, "event__match"); sib = nextElement(sib) {
			home := find(sib, "div", "event__participant--home")
			away := find(sib, "div", "event__participant--away")
			if home == nil || away == nil {
				continue
			}
			m := ScrapedMatch{Jornada: jornada, HomeTeam: text(home), AwayTeam: text(away)}
			if when := find(sib, "div", "event__time"); when != nil {
				if t, err := time.Parse("02.01. 15:04", text(when)); err == nil {
					d := model.NewDate(time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
					clock := t.Format("15:04")
					m.Date, m.Time = &d, &clock
				}
			}
			out = append(out, m)
		}
		jornada++
	}
	return out
}

var marcaDateLayouts = []string{"02/01/2006", "2006-01-02", "02-01-2006", "02.01.2006"}

// parseMarca reads div.jornada blocks titled by an h2, holding div.partido
// rows.
func parseMarca(doc *html.Node) []ScrapedMatch {
	out := []ScrapedMatch{}
	for i, block := range findAll(doc, "div", "jornada") {
		jornada := i + 1
		if h := find(block, "h2", ""); h != nil {
			if n, ok := digits(text(h)); ok {
				jornada = n
			}
		}
		for _, row := range findAll(block, "div", "partido") {
			home := find(row, "span", "local")
			away := find(row, "span", "visitante")
			if home == nil || away == nil {
				continue
			}
			m := ScrapedMatch{Jornada: jornada, HomeTeam: text(home), AwayTeam: text(away)}
			if el := find(row, "span", "fecha"); el != nil {
				m.Date = parseDate(text(el))
			}
			if el := find(row, "span", "hora"); el != nil {
				if clock := text(el); clock != "" {
					m.Time = &clock
				}
			}
			out = append(out, m)
		}
	}
	return out
}

func parseDate(s string) *model.Date {
	for _, layout := range marcaDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := model.NewDate(t)
			return &d
		}
	}
	return nil
}

// MatchTeam resolves a scraped team name: an exact case-folded match
// first, then a substring match in either direction.
func MatchTeam(name string, teams []model.Team) (model.Team, bool) {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(name))
	if want == "" {
		return model.Team{}, false
	}
	for _, t := range teams {
		if fold.String(t.Name) == want {
			return t, true
		}
	}
	for _, t := range teams {
		have := fold.String(t.Name)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return t, true
		}
	}
	return model.Team{}, false
}

// ---------------------------------------------------------------------------
// HTML helpers
// ---------------------------------------------------------------------------

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

func matches(n *html.Node, tag, class string) bool {
	return n.Type == html.ElementNode && n.Data == tag && (class == "" || hasClass(n, class))
}

// findAll returns the descendants of n matching tag and class, in document
// order. It does not descend into a match.
func findAll(n *html.Node, tag, class string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if matches(c, tag, class) {
			out = append(out, c)
			continue
		}
		out = append(out, findAll(c, tag, class)...)
	}
	return out
}

func find(n *html.Node, tag, class string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if matches(c, tag, class) {
			return c
		}
		if f := find(c, tag, class); f != nil {
			return f
		}
	}
	return nil
}

func nextElement(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// digits concatenates the digits of s: "Jornada 12" is 12.
func digits(s string) (int, bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(b.String())
	return n, err == nil
}
