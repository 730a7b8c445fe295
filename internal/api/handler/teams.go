package handler

import (
	"context"
	"net/http"

	"github.com/albapepper/leaguesim/internal/api/respond"
	"github.com/albapepper/leaguesim/internal/cache"
	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/standings"
	"github.com/albapepper/leaguesim/internal/store"
)

// CreateTeam creates a team.
// @Summary Create team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body model.TeamCreate true "Team"
// @Success 201 {object} model.Team
// @Failure 409 {object} respond.ErrorResponse
// @Router /api/v1/teams [post]
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req model.TeamCreate
	if !decode(w, r, &req) {
		return
	}
	team, err := h.store.CreateTeam(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, "Team")
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, team)
}

// ListTeams lists teams.
// @Summary List teams
// @Tags teams
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Param manager_id query string false "Manager filter"
// @Param clan query string false "Clan filter"
// @Success 200 {array} model.Team
// @Router /api/v1/teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	p, ok := page(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	teams, err := h.store.ListTeams(r.Context(), store.TeamFilter{
		Page:      p,
		ManagerID: q.Get("manager_id"),
		Clan:      q.Get("clan"),
	})
	if err != nil {
		h.fail(w, r, err, "Teams")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, teams)
}

// GetTeam returns one team.
// @Summary Get team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} model.Team
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/teams/{id} [get]
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	team, err := h.store.GetTeam(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Team")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, team)
}

// UpdateTeam applies a partial update.
// @Summary Update team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body model.TeamUpdate true "Fields to change"
// @Success 200 {object} model.Team
// @Failure 404 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /api/v1/teams/{id} [put]
func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.TeamUpdate
	if !decode(w, r, &req) {
		return
	}
	team, err := h.store.UpdateTeam(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, err, "Team")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, team)
}

// DeleteTeam removes a team with its registrations and matches.
// @Summary Delete team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} respond.Message
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/teams/{id} [delete]
func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteTeam(r.Context(), id); err != nil {
		h.fail(w, r, err, "Team")
		return
	}
	// Any league may have lost matches.
	h.cache.DeletePrefix("league:")
	h.invalidate(0, id)
	respond.WriteDetail(w, http.StatusOK, "Team deleted successfully")
}

// TeamLeagues lists the leagues a team is registered in.
// @Summary Team leagues
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Param active_only query bool false "Only active leagues"
// @Success 200 {array} model.League
// @Router /api/v1/teams/{id}/leagues [get]
func (h *Handler) TeamLeagues(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetTeam(r.Context(), id); err != nil {
		h.fail(w, r, err, "Team")
		return
	}
	leagues, err := h.store.TeamLeagues(r.Context(), id, queryBool(r, "active_only", false))
	if err != nil {
		h.fail(w, r, err, "Team")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, leagues)
}

// TeamMatches lists every match of a team.
// @Summary Team matches
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} model.Match
// @Router /api/v1/teams/{id}/matches [get]
func (h *Handler) TeamMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetTeam(r.Context(), id); err != nil {
		h.fail(w, r, err, "Team")
		return
	}
	matches, err := h.store.TeamMatches(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Team")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, matches)
}

// TeamStats returns the team's record across every league.
// @Summary Team statistics
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} standings.TeamStats
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/teams/{id}/stats [get]
func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.serveCached(w, r, cache.TeamKey(id, "stats"), cache.TTLTeamStats, "Team", func(ctx context.Context) (any, error) {
		if _, err := h.store.GetTeam(ctx, id); err != nil {
			return nil, err
		}
		matches, err := h.store.TeamMatches(ctx, id)
		if err != nil {
			return nil, err
		}
		leagues, err := h.store.TeamLeagues(ctx, id, false)
		if err != nil {
			return nil, err
		}
		return standings.ComputeTeamStats(id, matches, len(leagues)), nil
	})
}

// CreateTeams creates several teams in one transaction.
// @Summary Create teams in batch
// @Tags teams
// @Accept json
// @Produce json
// @Param teams body model.TeamBatchCreate true "Teams"
// @Success 201 {array} model.Team
// @Failure 409 {object} respond.ErrorResponse
// @Router /api/v1/teams/batch [post]
func (h *Handler) CreateTeams(w http.ResponseWriter, r *http.Request) {
	var req model.TeamBatchCreate
	if !decode(w, r, &req) {
		return
	}
	teams, err := h.store.CreateTeams(r.Context(), req.Teams)
	if err != nil {
		h.fail(w, r, err, "Team")
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, teams)
}

// UpdateTeams applies one partial update to several teams.
// @Summary Update teams in batch
// @Tags teams
// @Accept json
// @Produce json
// @Param teams body model.TeamBatchUpdate true "Team ids and fields"
// @Success 200 {array} model.Team
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/teams/batch [patch]
func (h *Handler) UpdateTeams(w http.ResponseWriter, r *http.Request) {
	var req model.TeamBatchUpdate
	if !decode(w, r, &req) {
		return
	}
	teams, err := h.store.UpdateTeams(r.Context(), req.TeamIDs, req.Data)
	if err != nil {
		h.fail(w, r, err, "Team")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, teams)
}
