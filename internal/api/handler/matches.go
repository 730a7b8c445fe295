package handler

import (
	"net/http"

	"github.com/albapepper/leaguesim/internal/api/respond"
	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/standings"
	"github.com/albapepper/leaguesim/internal/store"
)

// CreateMatch creates a match between two teams registered in the league.
// @Summary Create match
// @Tags matches
// @Accept json
// @Produce json
// @Param match body model.MatchCreate true "Match"
// @Success 201 {object} model.Match
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/matches [post]
func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req model.MatchCreate
	if !decode(w, r, &req) {
		return
	}
	m, err := h.store.CreateLeagueMatch(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, "League")
		return
	}
	h.invalidate(m.LeagueID, m.HomeTeamID, m.AwayTeamID)
	respond.WriteJSONObject(w, http.StatusCreated, m)
}

// ListMatches lists matches.
// @Summary List matches
// @Tags matches
// @Produce json
// @Param jornada query int false "Jornada"
// @Param league_id query int false "League"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Match
// @Router /api/v1/matches [get]
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	p, ok := page(w, r)
	if !ok {
		return
	}
	jornada, ok := queryInt(w, r, "jornada", 0)
	if !ok {
		return
	}
	leagueID, ok := queryInt(w, r, "league_id", 0)
	if !ok {
		return
	}
	matches, err := h.store.ListMatches(r.Context(), store.MatchFilter{Page: p, Jornada: jornada, LeagueID: leagueID})
	if err != nil {
		h.fail(w, r, err, "Matches")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, matches)
}

type formationsResponse struct {
	HomeTeam *model.TeamRef `json:"home_team"`
	AwayTeam *model.TeamRef `json:"away_team"`
	model.PreMatch
	HomeSupport string `json:"home_support"`
	AwaySupport string `json:"away_support"`
}

// Formations previews generated line-ups for two teams without saving.
// @Summary Generate formations
// @Tags matches
// @Produce json
// @Param home_team_id query int true "Home team"
// @Param away_team_id query int true "Away team"
// @Success 200 {object} formationsResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/matches/formations [get]
func (h *Handler) Formations(w http.ResponseWriter, r *http.Request) {
	homeID, ok := queryInt(w, r, "home_team_id", 0)
	if !ok {
		return
	}
	awayID, ok := queryInt(w, r, "away_team_id", 0)
	if !ok {
		return
	}
	if homeID <= 0 || awayID <= 0 {
		respond.BadRequest(w, respond.CodeValidationFailed, "home_team_id and away_team_id are required")
		return
	}
	home, err := h.store.GetTeam(r.Context(), homeID)
	if err != nil {
		h.fail(w, r, err, "Home team")
		return
	}
	away, err := h.store.GetTeam(r.Context(), awayID)
	if err != nil {
		h.fail(w, r, err, "Away team")
		return
	}
	sim := h.runner.Simulator()
	respond.WriteJSONObject(w, http.StatusOK, formationsResponse{
		HomeTeam:    home.Ref(),
		AwayTeam:    away.Ref(),
		PreMatch:    sim.PreMatch(),
		HomeSupport: sim.Support(),
		AwaySupport: sim.Support(),
	})
}

// UpdateMatches applies one partial update to several matches.
// @Summary Update matches in batch
// @Tags matches
// @Accept json
// @Produce json
// @Param request body model.BatchMatchUpdate true "Match ids and fields"
// @Success 200 {array} model.Match
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/matches/batch [patch]
func (h *Handler) UpdateMatches(w http.ResponseWriter, r *http.Request) {
	var req model.BatchMatchUpdate
	if !decode(w, r, &req) {
		return
	}
	matches, err := h.store.UpdateMatches(r.Context(), req.MatchIDs, req.Data)
	if err != nil {
		h.fail(w, r, err, "Match")
		return
	}
	for _, m := range matches {
		h.invalidate(m.LeagueID, m.HomeTeamID, m.AwayTeamID)
	}
	respond.WriteJSONObject(w, http.StatusOK, matches)
}

// GetMatch returns a match with both teams.
// @Summary Get match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} model.Match
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/matches/{id} [get]
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	m, err := h.store.GetMatch(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Match")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, m)
}

// UpdateMatch applies a partial update. Updating goals or possession
// marks the calendar entry as played.
// @Summary Update match
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param match body model.MatchUpdate true "Fields to change"
// @Success 200 {object} model.Match
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/matches/{id} [patch]
func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.MatchUpdate
	if !decode(w, r, &req) {
		return
	}
	m, err := h.store.UpdateMatch(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, err, "Match")
		return
	}
	h.invalidate(m.LeagueID, m.HomeTeamID, m.AwayTeamID)
	respond.WriteJSONObject(w, http.StatusOK, m)
}

// DeleteMatch removes a match and its calendar entry.
// @Summary Delete match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} respond.Message
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/matches/{id} [delete]
func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	m, err := h.store.GetMatch(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Match")
		return
	}
	if err := h.store.DeleteMatch(r.Context(), id); err != nil {
		h.fail(w, r, err, "Match")
		return
	}
	h.invalidate(m.LeagueID, m.HomeTeamID, m.AwayTeamID)
	respond.WriteDetail(w, http.StatusOK, "Match deleted successfully")
}

// SimulateMatch plays one match of a tactical league.
// @Summary Simulate match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} model.Match
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/matches/{id}/simulate [post]
func (h *Handler) SimulateMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	m, err := h.runner.SimulateMatch(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Match")
		return
	}
	h.invalidate(m.LeagueID, m.HomeTeamID, m.AwayTeamID)
	respond.WriteJSONObject(w, http.StatusOK, m)
}

// MatchStatistics returns the result and box score of a match.
// @Summary Match statistics
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} standings.MatchSummary
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/matches/{id}/statistics [get]
func (h *Handler) MatchStatistics(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	m, err := h.store.GetMatch(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Match")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, standings.Summarize(m))
}
