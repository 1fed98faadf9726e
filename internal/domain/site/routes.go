package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes registers site settings and synthesis routes
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/settings", h.GetSettings)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Put("/settings", h.SaveSettings)
		r.Post("/regenerate", h.Regenerate)
		r.Put("/hero-image", h.PatchHeroImage)
	})

	return r
}
