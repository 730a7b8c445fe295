// Package handler provides HTTP handlers for all API endpoints.
// Handlers talk to the store through the Store interface; simulations and
// calendar generation go through the fixture runner.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/leaguesim/internal/api/respond"
	"github.com/albapepper/leaguesim/internal/cache"
	"github.com/albapepper/leaguesim/internal/external"
	"github.com/albapepper/leaguesim/internal/fixture"
	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/simulation"
	"github.com/albapepper/leaguesim/internal/standings"
	"github.com/albapepper/leaguesim/internal/store"
	"github.com/albapepper/leaguesim/internal/template"
)

const (
	apiName    = "League Simulator API"
	apiVersion = "1.0.0"
	maxBody    = 1 << 20
)

// Store is everything the handlers read and write. *store.Store
// satisfies it.
type Store interface {
	fixture.Store

	GetTeam(ctx context.Context, id int) (model.Team, error)
	ListTeams(ctx context.Context, f store.TeamFilter) ([]model.Team, error)
	CreateTeam(ctx context.Context, c model.TeamCreate) (model.Team, error)
	CreateTeams(ctx context.Context, cs []model.TeamCreate) ([]model.Team, error)
	UpdateTeam(ctx context.Context, id int, u model.TeamUpdate) (model.Team, error)
	UpdateTeams(ctx context.Context, ids []int, u model.TeamUpdate) ([]model.Team, error)
	DeleteTeam(ctx context.Context, id int) error
	TeamLeagues(ctx context.Context, teamID int, activeOnly bool) ([]model.League, error)
	TeamMatches(ctx context.Context, teamID int) ([]model.Match, error)

	ListLeagues(ctx context.Context, f store.LeagueFilter) ([]model.League, error)
	AllLeagues(ctx context.Context) ([]model.League, error)
	LeagueDetails(ctx context.Context, id int) (model.LeagueDetails, error)
	CreateLeague(ctx context.Context, c model.LeagueCreate) (model.League, error)
	UpdateLeague(ctx context.Context, id int, u model.LeagueUpdate) (model.League, error)
	DeleteLeague(ctx context.Context, id int) error
	AddTeamToLeague(ctx context.Context, leagueID, teamID int) (model.LeagueTeam, error)
	RemoveTeamFromLeague(ctx context.Context, leagueID, teamID int) error
	LeagueTeams(ctx context.Context, leagueID int) ([]model.Team, error)

	ListMatches(ctx context.Context, f store.MatchFilter) ([]model.Match, error)
	CreateLeagueMatch(ctx context.Context, c model.MatchCreate) (model.Match, error)
	UpdateMatch(ctx context.Context, id int, u model.MatchUpdate) (model.Match, error)
	UpdateMatches(ctx context.Context, ids []int, u model.MatchUpdate) ([]model.Match, error)
	DeleteMatch(ctx context.Context, id int) error

	GetCalendarEntry(ctx context.Context, id int) (model.CalendarEntry, error)
	LeagueCalendar(ctx context.Context, leagueID, jornada int) ([]model.CalendarEntryDetails, error)
	CreateCalendarEntry(ctx context.Context, c model.CalendarEntryCreate) (model.CalendarEntry, error)
	UpdateCalendarEntry(ctx context.Context, id int, u model.CalendarEntryUpdate) (model.CalendarEntry, error)
	DeleteCalendarEntry(ctx context.Context, id int) error
	SyncCalendar(ctx context.Context, leagueID int) (int, error)
	ImportCalendar(ctx context.Context, leagueID int, url string, rows []store.ImportRow) (store.ImportResult, error)

	CreateLeagueFromTemplate(ctx context.Context, p template.Plan) (model.League, error)
}

// Scraper fetches external calendars.
type Scraper interface {
	Fetch(ctx context.Context, url string) ([]external.ScrapedMatch, error)
}

// Pinger checks database connectivity.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Deps are the handler's collaborators.
type Deps struct {
	Store     Store
	DB        Pinger
	Cache     *cache.Cache
	Templates *template.Loader
	Scraper   Scraper
	Runner    *fixture.Runner
	Logger    *slog.Logger
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	store     Store
	db        Pinger
	cache     *cache.Cache
	templates *template.Loader
	scraper   Scraper
	runner    *fixture.Runner
	logger    *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(d Deps) *Handler {
	return &Handler{
		store:     d.Store,
		db:        d.DB,
		cache:     d.Cache,
		templates: d.Templates,
		scraper:   d.Scraper,
		runner:    d.Runner,
		logger:    d.Logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and the docs location.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    apiName,
		"version": apiVersion,
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.db.HealthCheck(r.Context()); err != nil {
		h.logger.Warn("Database health check failed", "error", err)
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// --------------------------------------------------------------------------
// Request helpers
// --------------------------------------------------------------------------

// pathID parses an integer URL param, writing a 400 when it is not one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		respond.BadRequest(w, respond.CodeInvalidID, fmt.Sprintf("%s must be a positive integer", name))
		return 0, false
	}
	return id, true
}

type validator interface {
	Validate() error
}

// decode reads a JSON body into v and validates it, writing a 400 on
// failure.
func decode(w http.ResponseWriter, r *http.Request, v validator) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(v); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, respond.CodeInvalidBody, "Request body is not valid JSON", err.Error())
		return false
	}
	if err := v.Validate(); err != nil {
		respond.BadRequest(w, respond.CodeValidationFailed, err.Error())
		return false
	}
	return true
}

func queryInt(w http.ResponseWriter, r *http.Request, key string, def int) (int, bool) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		respond.BadRequest(w, respond.CodeValidationFailed, fmt.Sprintf("%s must be an integer", key))
		return 0, false
	}
	return n, true
}

func queryBool(r *http.Request, key string, def bool) bool {
	b, err := strconv.ParseBool(r.URL.Query().Get(key))
	if err != nil {
		return def
	}
	return b
}

func page(w http.ResponseWriter, r *http.Request) (store.Page, bool) {
	skip, ok := queryInt(w, r, "skip", 0)
	if !ok {
		return store.Page{}, false
	}
	limit, ok := queryInt(w, r, "limit", store.DefaultLimit)
	if !ok {
		return store.Page{}, false
	}
	if skip < 0 || limit < 1 || limit > store.MaxLimit {
		respond.BadRequest(w, respond.CodeValidationFailed,
			fmt.Sprintf("skip must be >= 0 and limit between 1 and %d", store.MaxLimit))
		return store.Page{}, false
	}
	return store.Page{Skip: skip, Limit: limit}, true
}

// --------------------------------------------------------------------------
// Response helpers
// --------------------------------------------------------------------------

// fail maps domain errors to HTTP responses. what names the resource for
// 404s.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, what string) {
	var verr *model.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, template.ErrTemplateNotFound),
		errors.Is(err, template.ErrLeagueNotFound):
		respond.NotFound(w, what)
	case errors.Is(err, store.ErrConflict):
		respond.WriteErrorDetail(w, http.StatusConflict, respond.CodeConflict, what+" already exists", err.Error())
	case errors.Is(err, store.ErrLeagueFull):
		respond.BadRequest(w, respond.CodeLeagueFull, "League has reached its maximum number of teams")
	case errors.Is(err, fixture.ErrNotSimulatable):
		respond.BadRequest(w, respond.CodeNotSimulatable, err.Error())
	case errors.Is(err, fixture.ErrAlreadyPlayed):
		respond.BadRequest(w, respond.CodeAlreadyPlayed, err.Error())
	case errors.Is(err, store.ErrTeamNotInLeague), errors.Is(err, store.ErrJornadaOutOfRange),
		errors.Is(err, store.ErrMatchNotInLeague), errors.Is(err, store.ErrAlreadyListed),
		errors.Is(err, store.ErrInvalidValue),
		errors.Is(err, fixture.ErrNoMatches), errors.Is(err, simulation.ErrTooFewTeams),
		errors.Is(err, standings.ErrPodiumTooSmall), errors.Is(err, template.ErrInvalidTemplate),
		errors.Is(err, template.ErrInvalidName), errors.Is(err, external.ErrUnsupportedURL),
		errors.As(err, &verr):
		respond.BadRequest(w, respond.CodeValidationFailed, err.Error())
	default:
		h.logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		respond.Internal(w, "Internal server error")
	}
}

// serveCached writes the cached JSON for key, or builds it with load,
// caches it for ttl and writes it. If-None-Match is honoured either way.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, what string, load func(ctx context.Context) (any, error)) {
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	v, err := load(r.Context())
	if err != nil {
		h.fail(w, r, err, what)
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		h.fail(w, r, err, what)
		return
	}
	etag := h.cache.Set(key, data, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}

// invalidate drops cached views of a league and of the given teams.
func (h *Handler) invalidate(leagueID int, teamIDs ...int) {
	if leagueID > 0 {
		h.cache.InvalidateLeague(leagueID)
	}
	for _, id := range teamIDs {
		h.cache.Delete(cache.TeamKey(id, "stats"))
	}
}
