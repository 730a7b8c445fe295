package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/leaguesim/internal/api/handler"
	"github.com/albapepper/leaguesim/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(h *handler.Handler, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(TimingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Routes ---

	r.Get("/", h.Root)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/teams", func(r chi.Router) {
			r.Post("/", h.CreateTeam)
			r.Get("/", h.ListTeams)
			r.Post("/batch", h.CreateTeams)
			r.Patch("/batch", h.UpdateTeams)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetTeam)
				r.Put("/", h.UpdateTeam)
				r.Delete("/", h.DeleteTeam)
				r.Get("/leagues", h.TeamLeagues)
				r.Get("/matches", h.TeamMatches)
				r.Get("/stats", h.TeamStats)
			})
		})

		r.Route("/leagues", func(r chi.Router) {
			r.Post("/", h.CreateLeague)
			r.Get("/", h.ListLeagues)
			r.Get("/manager/{managerID}", h.ManagerLeagues)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetLeague)
				r.Put("/", h.UpdateLeague)
				r.Delete("/", h.DeleteLeague)
				r.Get("/teams", h.LeagueTeams)
				r.Post("/teams/{teamID}", h.AddTeamToLeague)
				r.Delete("/teams/{teamID}", h.RemoveTeamFromLeague)
				r.Post("/simulate", h.SimulateLeague)
				r.Get("/standings", h.Standings)
				r.Get("/matches", h.LeagueMatches)
				r.Post("/update-podium", h.UpdatePodium)
				r.Post("/generate-calendar", h.GenerateLeagueCalendar)
			})
		})

		r.Route("/matches", func(r chi.Router) {
			r.Post("/", h.CreateMatch)
			r.Get("/", h.ListMatches)
			r.Get("/formations", h.Formations)
			r.Patch("/batch", h.UpdateMatches)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetMatch)
				r.Patch("/", h.UpdateMatch)
				r.Delete("/", h.DeleteMatch)
				r.Post("/simulate", h.SimulateMatch)
				r.Get("/statistics", h.MatchStatistics)
			})
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Post("/entries", h.CreateCalendarEntry)
			r.Put("/entries/{id}", h.UpdateCalendarEntry)
			r.Delete("/entries/{id}", h.DeleteCalendarEntry)
			r.Route("/leagues/{id}", func(r chi.Router) {
				r.Get("/", h.GetLeagueCalendar)
				r.Post("/generate", h.GenerateCalendar)
				r.Post("/sync", h.SyncCalendar)
				r.Post("/import", h.ImportCalendar)
			})
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", h.ListTemplates)
			r.Post("/upload", h.UploadTemplate)
			r.Get("/{name}/leagues", h.TemplateLeagues)
			r.Get("/{name}/leagues/{leagueName}", h.TemplateLeague)
			r.Post("/{name}/create-league", h.CreateLeagueFromTemplate)
		})

		r.Get("/analytics", h.GlobalAnalytics)
		r.Get("/analytics/leagues/{id}", h.LeagueAnalytics)
	})

	return r
}
