package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/config"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/metrics"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/handlers"
	authmw "github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/middleware"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/response"
)

type Handlers struct {
	Events    *handlers.EventsHandler
	Filter    *handlers.FilterHandler
	Auth      *handlers.AuthHandler
	Organizer *handlers.OrganizerHandler
	Health    *handlers.HealthHandler
}

func New(h Handlers, auth *authmw.AuthMiddleware, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(authmw.RequestID)
	r.Use(authmw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(authmw.Metrics)
	r.Use(authmw.AccessLog)

	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/events", h.Events.Filtered)
		r.Get("/events/all", h.Events.All)
		r.Get("/events/featured", h.Events.Featured)
		r.Get("/events/{event_id}", h.Events.Get)
		r.Post("/events/{event_id}/views", h.Events.View)
		r.Post("/events/{event_id}/like", h.Events.ToggleLike)
		r.Get("/events/{event_id}/share", h.Events.Share)
		r.Get("/likes", h.Events.Likes)

		r.Get("/filter", h.Filter.Get)
		r.Put("/filter", h.Filter.Put)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if cfg.RLEnabled {
					r.Use(httprate.Limit(
						cfg.RLAuthLimit,
						cfg.RLAuthWindow,
						httprate.WithKeyFuncs(httprate.KeyByIP),
						httprate.WithLimitHandler(rateLimited),
					))
				}
				r.Post("/login", h.Auth.Login)
				r.Post("/register", h.Auth.Register)
			})
			r.With(auth.Require).Post("/logout", h.Auth.Logout)
			r.Get("/session", h.Auth.Session)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Require)
			r.Post("/events", h.Organizer.Create)
			r.Put("/events/{event_id}", h.Organizer.Update)
			r.Delete("/events/{event_id}", h.Organizer.Delete)
			r.Get("/organizer/events", h.Organizer.ListMine)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Err(w, r, domain.ErrNotFound("route not found"))
	})

	return r
}

func rateLimited(w http.ResponseWriter, r *http.Request) {
	response.Err(w, r, domain.ErrRateLimited("too many requests"))
}
