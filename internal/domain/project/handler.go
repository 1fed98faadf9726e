package project

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/folio/folio-api/internal/pkg/response"
	"github.com/folio/folio-api/internal/pkg/validator"
)

// Handler handles project registry HTTP requests
type Handler struct {
	store *Store
}

// NewHandler creates project handler
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Get handles GET /projects/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.NotFound(w, "Project not found")
			return
		}
		response.InternalError(w)
		return
	}

	response.OK(w, p)
}

// List handles GET /projects
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.store.List())
}

// Upsert handles PUT /projects/{id}
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := validator.ValidateVar(id, "projectid"); err != nil {
		response.BadRequest(w, "Invalid project identifier")
		return
	}

	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	p := &Project{
		ID:          id,
		Title:       req.Title,
		Medium:      req.Medium,
		Description: req.Description,
		Images:      emptyIfNil(req.Images),
		Videos:      emptyIfNil(req.Videos),
		PDFs:        emptyIfNil(req.PDFs),
	}
	hasOrder := req.Order != nil
	if hasOrder {
		p.Order = *req.Order
	}

	saved, err := h.store.Upsert(p, hasOrder)
	if err != nil {
		log.Error().Err(err).Str("project", id).Msg("Failed to persist project")
		response.InternalError(w)
		return
	}

	response.OK(w, saved)
}

// Delete handles DELETE /projects/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			response.NotFound(w, "Project not found")
			return
		}
		log.Error().Err(err).Str("project", id).Msg("Failed to delete project")
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

// Reorder handles PATCH /projects/reorder
func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	if err := h.store.Reorder(req.IDs); err != nil {
		log.Error().Err(err).Msg("Failed to persist reorder")
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"status": "ok"})
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
