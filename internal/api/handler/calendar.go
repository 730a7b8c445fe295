package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/albapepper/leaguesim/internal/api/respond"
	"github.com/albapepper/leaguesim/internal/cache"
	"github.com/albapepper/leaguesim/internal/calendar"
	"github.com/albapepper/leaguesim/internal/external"
	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/store"
)

// GetLeagueCalendar returns a league's entries grouped by jornada.
// @Summary League calendar
// @Tags calendar
// @Produce json
// @Param id path int true "League ID"
// @Param jornada query int false "Jornada"
// @Success 200 {object} model.LeagueCalendar
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/calendar/leagues/{id} [get]
func (h *Handler) GetLeagueCalendar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	jornada, ok := queryInt(w, r, "jornada", 0)
	if !ok {
		return
	}
	key := cache.LeagueKey(id, "calendar", strconv.Itoa(jornada))
	h.serveCached(w, r, key, cache.TTLCalendar, "League", func(ctx context.Context) (any, error) {
		league, err := h.store.GetLeague(ctx, id)
		if err != nil {
			return nil, err
		}
		entries, err := h.store.LeagueCalendar(ctx, id, jornada)
		if err != nil {
			return nil, err
		}
		return model.LeagueCalendar{
			LeagueID:         league.ID,
			LeagueName:       league.Name,
			Jornadas:         league.Jornadas,
			EntriesByJornada: calendar.Group(entries),
		}, nil
	})
}

// CreateCalendarEntry adds an entry to a league's calendar.
// @Summary Create calendar entry
// @Tags calendar
// @Accept json
// @Produce json
// @Param entry body model.CalendarEntryCreate true "Entry"
// @Success 201 {object} model.CalendarEntry
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/calendar/entries [post]
func (h *Handler) CreateCalendarEntry(w http.ResponseWriter, r *http.Request) {
	var req model.CalendarEntryCreate
	if !decode(w, r, &req) {
		return
	}
	entry, err := h.store.CreateCalendarEntry(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, "League or match")
		return
	}
	h.invalidate(entry.LeagueID)
	respond.WriteJSONObject(w, http.StatusCreated, entry)
}

// UpdateCalendarEntry applies a partial update.
// @Summary Update calendar entry
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param entry body model.CalendarEntryUpdate true "Fields to change"
// @Success 200 {object} model.CalendarEntry
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/calendar/entries/{id} [put]
func (h *Handler) UpdateCalendarEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.CalendarEntryUpdate
	if !decode(w, r, &req) {
		return
	}
	entry, err := h.store.UpdateCalendarEntry(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, err, "Calendar entry")
		return
	}
	h.invalidate(entry.LeagueID)
	respond.WriteJSONObject(w, http.StatusOK, entry)
}

// DeleteCalendarEntry removes an entry; its match is kept.
// @Summary Delete calendar entry
// @Tags calendar
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} respond.Message
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/calendar/entries/{id} [delete]
func (h *Handler) DeleteCalendarEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	entry, err := h.store.GetCalendarEntry(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Calendar entry")
		return
	}
	if err := h.store.DeleteCalendarEntry(r.Context(), id); err != nil {
		h.fail(w, r, err, "Calendar entry")
		return
	}
	h.invalidate(entry.LeagueID)
	respond.WriteDetail(w, http.StatusOK, "Calendar entry deleted successfully")
}

// GenerateCalendar schedules a league's unscheduled matches.
// @Summary Generate calendar
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path int true "League ID"
// @Param request body model.GenerateCalendarRequest true "Scheduling options"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/calendar/leagues/{id}/generate [post]
func (h *Handler) GenerateCalendar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.GenerateCalendarRequest
	if !decode(w, r, &req) {
		return
	}
	h.generateCalendar(w, r, id, req)
}

// SyncCalendar marks entries of played matches as played.
// @Summary Sync calendar
// @Tags calendar
// @Produce json
// @Param id path int true "League ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/calendar/leagues/{id}/sync [post]
func (h *Handler) SyncCalendar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.store.GetLeague(r.Context(), id); err != nil {
		h.fail(w, r, err, "League")
		return
	}
	n, err := h.store.SyncCalendar(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "League")
		return
	}
	h.invalidate(id)
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"detail":          fmt.Sprintf("Calendar synchronized for league %d", id),
		"updated_entries": n,
	})
}

// ImportCalendar scrapes an external calendar into the league.
// @Summary Import external calendar
// @Description Supported sources: flashscore, marca, as, sportingnews and fcstats. Team names are matched against the league's registered teams.
// @Tags calendar
// @Accept json
// @Produce json
// @Param id path int true "League ID"
// @Param request body model.ImportExternalCalendarRequest true "Calendar URL"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/calendar/leagues/{id}/import [post]
func (h *Handler) ImportCalendar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req model.ImportExternalCalendarRequest
	if !decode(w, r, &req) {
		return
	}
	if err := external.ValidateURL(req.ExternalURL); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, respond.CodeValidationFailed, "URL not supported", err.Error())
		return
	}
	if _, err := h.store.GetLeague(r.Context(), id); err != nil {
		h.fail(w, r, err, "League")
		return
	}

	scraped, err := h.scraper.Fetch(r.Context(), req.ExternalURL)
	switch {
	case errors.Is(err, external.ErrFetch):
		respond.WriteErrorDetail(w, http.StatusBadRequest, respond.CodeValidationFailed, "Could not fetch the calendar", err.Error())
		return
	case err != nil:
		h.fail(w, r, err, "Calendar")
		return
	case len(scraped) == 0:
		respond.BadRequest(w, respond.CodeValidationFailed, "No matches could be extracted from the calendar")
		return
	}

	teams, err := h.store.LeagueTeams(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "League")
		return
	}
	rows, unmatched := resolveTeams(scraped, teams)

	res, err := h.store.ImportCalendar(r.Context(), id, req.ExternalURL, rows)
	if err != nil {
		h.fail(w, r, err, "League")
		return
	}
	res.Errors = append(unmatched, res.Errors...)
	h.invalidate(id)
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"detail":          fmt.Sprintf("Calendar imported for league %d", id),
		"source":          external.DetectSource(req.ExternalURL),
		"matches_created": res.MatchesCreated,
		"entries_created": res.EntriesCreated,
		"errors":          res.Errors,
	})
}

// resolveTeams maps scraped names onto registered teams. Rows whose teams
// cannot be resolved are reported instead of imported.
func resolveTeams(scraped []external.ScrapedMatch, teams []model.Team) ([]store.ImportRow, []string) {
	rows := make([]store.ImportRow, 0, len(scraped))
	unmatched := []string{}
	for _, s := range scraped {
		home, okHome := external.MatchTeam(s.HomeTeam, teams)
		away, okAway := external.MatchTeam(s.AwayTeam, teams)
		switch {
		case !okHome:
			unmatched = append(unmatched, fmt.Sprintf("jornada %d: team %q not found in league", s.Jornada, s.HomeTeam))
		case !okAway:
			unmatched = append(unmatched, fmt.Sprintf("jornada %d: team %q not found in league", s.Jornada, s.AwayTeam))
		case home.ID == away.ID:
			unmatched = append(unmatched, fmt.Sprintf("jornada %d: %q and %q resolve to the same team", s.Jornada, s.HomeTeam, s.AwayTeam))
		default:
			rows = append(rows, store.ImportRow{
				Jornada:    s.Jornada,
				HomeTeamID: home.ID,
				AwayTeamID: away.ID,
				Date:       s.Date,
				Time:       s.Time,
				Venue:      s.Venue,
			})
		}
	}
	return rows, unmatched
}
