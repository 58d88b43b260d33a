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
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Get("/api/recipes", h.getAllRecipes)
		r.Get("/api/recipes/{id}", h.getRecipe)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes behind the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/token-test", h.tokenTest)
		r.Post("/api/recipes", h.createRecipe)
		r.Patch("/api/recipes/{id}", h.updateRecipe)
		r.Delete("/api/recipes/{id}", h.deleteRecipe)
		r.Delete("/api/account", h.deleteAccount)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
