package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes requiring a valid x-auth-token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth", h.whoAmI)

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/profile", h.getProfile)
			r.Put("/profile", h.updateProfile)
		})

		r.Route("/api/meals", func(r chi.Router) {
			r.Post("/generate", h.generatePlan)
			r.Get("/my-plans", h.myPlans)
			r.Get("/{id}", h.getPlan)
		})
	})

	return router
}
