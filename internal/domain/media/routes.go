package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes registers media routes; all of them are operator-only
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Upload)
		r.Get("/", h.List)
	})

	return r
}
