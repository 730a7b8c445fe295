package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/leaguesim/internal/api/respond"
	"github.com/albapepper/leaguesim/internal/cache"
	"github.com/albapepper/leaguesim/internal/model"
	"github.com/albapepper/leaguesim/internal/template"
)

const maxUpload = 5 << 20

// UploadTemplate stores an uploaded JSON template.
// @Summary Upload template
// @Tags templates
// @Accept mpfd
// @Produce json
// @Param template_name query string false "Name to store the template under; defaults to the file name"
// @Param file formData file true "Template JSON"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/templates/upload [post]
func (h *Handler) UploadTemplate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, respond.CodeInvalidBody, "Expected a multipart upload", err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respond.BadRequest(w, respond.CodeInvalidBody, "Missing file field")
		return
	}
	defer file.Close()

	name := r.URL.Query().Get("template_name")
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
	}
	data, err := io.ReadAll(file)
	if err != nil {
		respond.BadRequest(w, respond.CodeInvalidBody, "Could not read the uploaded file")
		return
	}
	leagues, err := h.templates.Save(name, data)
	if err != nil {
		h.fail(w, r, err, "Template")
		return
	}
	h.cache.DeletePrefix(cache.PrefixTemplates + name + ":")
	respond.WriteJSONObject(w, http.StatusCreated, map[string]interface{}{
		"detail":        fmt.Sprintf("Template %s uploaded", name),
		"template_name": name,
		"leagues":       leagues,
	})
}

// ListTemplates lists the stored template names.
// @Summary List templates
// @Tags templates
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/templates [get]
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	names, err := h.templates.List()
	if err != nil {
		h.fail(w, r, err, "Templates")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{"templates": names})
}

// TemplateLeagues lists the leagues of a template.
// @Summary Template leagues
// @Tags templates
// @Produce json
// @Param name path string true "Template name"
// @Param type query string false "League or Tournament"
// @Param min_teams query int false "Minimum team count"
// @Param max_teams query int false "Maximum team count"
// @Param search query string false "Case-insensitive name search"
// @Success 200 {array} template.Summary
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/templates/{name}/leagues [get]
func (h *Handler) TemplateLeagues(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	q := r.URL.Query()
	f := template.Filter{Type: q.Get("type"), Search: q.Get("search")}
	if q.Has("min_teams") {
		n, ok := queryInt(w, r, "min_teams", 0)
		if !ok {
			return
		}
		f.MinTeams = &n
	}
	if q.Has("max_teams") {
		n, ok := queryInt(w, r, "max_teams", 0)
		if !ok {
			return
		}
		f.MaxTeams = &n
	}

	key := cache.PrefixTemplates + name + ":leagues:" + q.Encode()
	h.serveCached(w, r, key, cache.TTLTemplates, "Template", func(context.Context) (any, error) {
		return h.templates.Leagues(name, f)
	})
}

// TemplateLeague returns one league of a template with its teams.
// @Summary Template league
// @Tags templates
// @Produce json
// @Param name path string true "Template name"
// @Param leagueName path string true "League name (URL-encoded)"
// @Success 200 {object} template.League
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/templates/{name}/leagues/{leagueName} [get]
func (h *Handler) TemplateLeague(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	leagueName, err := url.PathUnescape(chi.URLParam(r, "leagueName"))
	if err != nil {
		respond.BadRequest(w, respond.CodeValidationFailed, "leagueName is not a valid URL-encoded string")
		return
	}
	league, err := h.templates.League(name, leagueName)
	if err != nil {
		h.fail(w, r, err, "Template league")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, league)
}

// CreateLeagueFromTemplate creates a league with all of a template
// league's teams.
// @Summary Create league from template
// @Tags templates
// @Accept json
// @Produce json
// @Param name path string true "Template name"
// @Param request body model.LeagueTemplateSelect true "League selection"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/templates/{name}/create-league [post]
func (h *Handler) CreateLeagueFromTemplate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	var req model.LeagueTemplateSelect
	if !decode(w, r, &req) {
		return
	}
	tl, err := h.templates.League(name, req.LeagueName)
	if err != nil {
		h.fail(w, r, err, "Template league")
		return
	}
	plan := template.Build(tl, req)
	league, err := h.store.CreateLeagueFromTemplate(r.Context(), plan)
	if err != nil {
		h.fail(w, r, err, "League")
		return
	}
	h.cache.DeletePrefix(cache.PrefixAnalytics)
	respond.WriteJSONObject(w, http.StatusCreated, map[string]interface{}{
		"detail":      fmt.Sprintf("League %s created from template %s", league.Name, name),
		"league_id":   league.ID,
		"league_name": league.Name,
		"teams_count": len(plan.Teams),
	})
}
