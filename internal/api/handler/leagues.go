package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/leaguesim/internal/api/respond"
	"github.com/albapepper/leaguesim/internal/cache"
	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/store"
)

// CreateLeague creates a league.
// @Summary Create league
// @Tags leagues
// @Accept json
// @Produce json
// @Param league body model.LeagueCreate true "League"
// @Success 201 {object} model.League
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/leagues [post]
func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	var req model.LeagueCreate
	if !decode(w, r, &req) {
		return
	}
	league, err := h.store.CreateLeague(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, "League")
		return
	}
	h.cache.DeletePrefix(cache.PrefixAnalytics)
	respond.WriteJSONObject(w, http.StatusCreated, league)
}

// ListLeagues lists leagues.
// @Summary List leagues
// @Tags leagues
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Param active_only query bool false "Only active leagues"
// @Param manager_id query string false "Manager filter"
// @Param tipo_liga query string false "League kind"
// @Success 200 {array} model.League
// @Router /api/v1/leagues [get]
func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	p, ok := page(w, r)
	if !ok {
		return
	}
	f := store.LeagueFilter{
		Page:       p,
		ActiveOnly: queryBool(r, "active_only", false),
		ManagerID:  r.URL.Query().Get("manager_id"),
	}
	if tipo := model.TipoLiga(r.URL.Query().Get("tipo_liga")); tipo != "" {
		if !tipo.Valid() {
			respond.BadRequest(w, respond.CodeValidationFailed, fmt.Sprintf("tipo_liga must be one of %v", model.TiposLiga))
			return
		}
		f.TipoLiga = tipo
	}
	h.listLeagues(w, r, f)
}

// ManagerLeagues lists the leagues of one manager.
// @Summary Leagues by manager
// @Tags leagues
// @Produce json
// @Param managerID path string true "Manager ID"
// @Param active_only query bool false "Only active leagues"
// @Success 200 {array} model.League
// @Router /api/v1/leagues/manager/{managerID} [get]
func (h *Handler) ManagerLeagues(w http.ResponseWriter, r *http.Request) {
	h.listLeagues(w, r, store.LeagueFilter{
		Page:       store.Page{Limit: store.MaxLimit},
		ActiveOnly: queryBool(r, "active_only", false),
		ManagerID:  chi.URLParam(r, "managerID"),
	})
}

func (h *Handler) listLeagues(w http.ResponseWriter, r *http.Request, f store.LeagueFilter) {
	leagues, err := h.store.ListLeagues(r.Context(), f)
	if err != nil {
		h.fail(w, r, err, "Leagues")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, leagues)
}

// GetLeague returns a league with its teams, podium and creator.
// @Summary Get league
// @Tags leagues
// @Produce json
// @Param id path int true "League ID"
// @Success 200 {object} model.LeagueDetails
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/leagues/{id} [get]
func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	details, err := h.store.LeagueDetails(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "League")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, details)
}

// UpdateLeague applies a partial update.
// @Summary Update league
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path int true "League ID"
// @Param league body model.LeagueUpdate true "Fields to change"
// @Success 200 {object} model.League
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/leagues/{id} [put]
func (h *Handler) UpdateLeague(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.LeagueUpdate
	if !decode(w, r, &req) {
		return
	}
	league, err := h.store.UpdateLeague(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, err, "League")
		return
	}
	h.invalidate(id)
	respond.WriteJSONObject(w, http.StatusOK, league)
}

// DeleteLeague removes a league with its matches, calendar and statistics.
// @Summary Delete league
// @Tags leagues
// @Produce json
// @Param id path int true "League ID"
// @Success 200 {object} respond.Message
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/leagues/{id} [delete]
func (h *Handler) DeleteLeague(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteLeague(r.Context(), id); err != nil {
		h.fail(w, r, err, "League")
		return
	}
	h.invalidate(id)
	respond.WriteDetail(w, http.StatusOK, "League deleted successfully")
}

// AddTeamToLeague registers a team. Registering twice is a no-op.
// @Summary Add team to league
// @Tags leagues
// @Produce json
// @Param id path int true "League ID"
// @Param teamID path int true "Team ID"
// @Success 200 {object} model.LeagueTeam
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/leagues/{id}/teams/{teamID} [post]
func (h *Handler) AddTeamToLeague(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	teamID, ok := pathID(w, r, "teamID")
	if !ok {
		return
	}
	link, err := h.store.AddTeamToLeague(r.Context(), id, teamID)
	if err != nil {
		h.fail(w, r, err, "League or team")
		return
	}
	h.invalidate(id)
	respond.WriteJSONObject(w, http.StatusOK, link)
}

// LeagueTeams lists the teams registered in a league.
// @Summary League teams
// @Tags leagues
// @Produce json
// @Param id path int true "League ID"
// @Success 200 {array} model.Team
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/leagues/{id}/teams [get]
func (h *Handler) LeagueTeams(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetLeague(r.Context(), id); err != nil {
		h.fail(w, r, err, "League")
		return
	}
	teams, err := h.store.LeagueTeams(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "League")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, teams)
}

// RemoveTeamFromLeague unregisters a team.
// @Summary Remove team from league
// @Tags leagues
// @Produce json
// @Param id path int true "League ID"
// @Param teamID path int true "Team ID"
// @Success 200 {object} respond.Message
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/leagues/{id}/teams/{teamID} [delete]
func (h *Handler) RemoveTeamFromLeague(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	teamID, ok := pathID(w, r, "teamID")
	if !ok {
		return
	}
	if err := h.store.RemoveTeamFromLeague(r.Context(), id, teamID); err != nil {
		h.fail(w, r, err, "Team in league")
		return
	}
	h.invalidate(id)
	respond.WriteDetail(w, http.StatusOK, "Team removed from league")
}

// SimulateLeague generates the fixture of a tactical league.
// @Summary Simulate league
// @Description Generates matches for every jornada. Results are stored when simulate_results is set; a calendar is generated when auto_schedule is set.
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path int true "League ID"
// @Param request body model.SimulationRequest true "Simulation options"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/leagues/{id}/simulate [post]
func (h *Handler) SimulateLeague(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.SimulationRequest
	if !decode(w, r, &req) {
		return
	}
	n, err := h.runner.SimulateLeague(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, err, "League")
		return
	}
	h.invalidate(id)
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"detail":            fmt.Sprintf("Simulation completed for league %d", id),
		"simulated_matches": n,
	})
}

// Standings returns the league table.
// @Summary League standings
// @Tags leagues
// @Produce json
// @Param id path int true "League ID"
// @Success 200 {array} standings.Row
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/leagues/{id}/standings [get]
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.serveCached(w, r, cache.LeagueKey(id, "standings"), cache.TTLStandings, "League", func(ctx context.Context) (any, error) {
		return h.runner.Standings(ctx, id)
	})
}

// LeagueMatches lists a league's matches, optionally for one jornada.
// @Summary League matches
// @Tags leagues
// @Produce json
// @Param id path int true "League ID"
// @Param jornada query int false "Jornada"
// @Success 200 {array} model.Match
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/leagues/{id}/matches [get]
func (h *Handler) LeagueMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	jornada, ok := queryInt(w, r, "jornada", 0)
	if !ok {
		return
	}
	if _, err := h.store.GetLeague(r.Context(), id); err != nil {
		h.fail(w, r, err, "League")
		return
	}
	matches, err := h.store.LeagueMatches(r.Context(), id, jornada)
	if err != nil {
		h.fail(w, r, err, "League")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, matches)
}

// UpdatePodium stores the current top three as the league's podium.
// @Summary Update podium
// @Tags leagues
// @Produce json
// @Param id path int true "League ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/leagues/{id}/update-podium [post]
func (h *Handler) UpdatePodium(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetLeague(r.Context(), id); err != nil {
		h.fail(w, r, err, "League")
		return
	}
	podium, err := h.runner.RefreshPodium(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "League")
		return
	}
	h.invalidate(id)
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"detail": "Podium updated",
		"podium": podium,
	})
}

// GenerateLeagueCalendar schedules a league's matches from the league's own
// dates.
// @Summary Generate league calendar
// @Tags leagues
// @Produce json
// @Param id path int true "League ID"
// @Param auto_schedule query bool false "Assign dates and times"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/leagues/{id}/generate-calendar [post]
func (h *Handler) GenerateLeagueCalendar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.generateCalendar(w, r, id, model.GenerateCalendarRequest{AutoSchedule: queryBool(r, "auto_schedule", true)})
}

func (h *Handler) generateCalendar(w http.ResponseWriter, r *http.Request, id int, req model.GenerateCalendarRequest) {
	n, err := h.runner.GenerateCalendar(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, err, "League")
		return
	}
	h.invalidate(id)
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"detail":          fmt.Sprintf("Calendar generated for league %d", id),
		"entries_created": n,
	})
}
