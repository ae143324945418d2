package rest

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/docugallery/gallery-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the router mounts.
type RouterDeps struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Projects *ProjectHandler
	Users    *UserHandler
	Quota    *QuotaHandler

	AuthMW      middleware.Middleware
	CORS        middleware.Middleware
	RateLimiter *middleware.RateLimiter

	Log *slog.Logger
}

// NewRouter builds the chi router with the full middleware chain.
func NewRouter(d RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(d.CORS)
	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.Logger(d.Log))
	r.Use(d.AuthMW)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", d.Health.Health)
		r.Get("/live", d.Health.Live)
		r.Get("/ready", d.Health.Ready)

		r.Route("/auth", func(r chi.Router) {
			if d.RateLimiter != nil {
				r.Use(d.RateLimiter.Limit(20))
			}
			r.Post("/register", d.Auth.Register)
			r.Post("/login", d.Auth.Login)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", d.Projects.List)
			r.Post("/", d.Projects.Create)
			r.Get("/{id}", d.Projects.Get)
			r.Patch("/{id}", d.Projects.Update)
			r.Delete("/{id}", d.Projects.Delete)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/users", d.Users.List)
			r.Post("/users/{id}/approve", d.Users.Approve)
			r.Post("/users/{id}/reject", d.Users.Reject)
			r.Put("/users/{id}/role", d.Users.SetRole)
			r.Post("/projects/repair-thumbnails", d.Projects.RepairThumbnails)
			r.Get("/quota", d.Quota.Get)
		})
	})

	return r
}
