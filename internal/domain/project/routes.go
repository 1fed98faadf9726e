package project

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes registers project registry routes
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Public reads (detail pages fetch these)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	// Mutations require the operator token
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Patch("/reorder", h.Reorder)
		r.Put("/{id}", h.Upsert)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
