package site

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/folio/folio-api/internal/pkg/response"
	"github.com/folio/folio-api/internal/pkg/validator"
)

// Handler handles site settings and synthesis HTTP requests
type Handler struct {
	settings    *SettingsStore
	synthesizer *Synthesizer
}

// NewHandler creates site handler
func NewHandler(settings *SettingsStore, synthesizer *Synthesizer) *Handler {
	return &Handler{settings: settings, synthesizer: synthesizer}
}

// GetSettings handles GET /site/settings
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.settings.Load())
}

// SaveSettings handles PUT /site/settings. A successful save also
// refreshes the index artifact so the public page reflects the new
// text immediately.
func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	settings := Settings{
		HeroTitle:    req.HeroTitle,
		HeroSubtitle: req.HeroSubtitle,
		ContactTitle: req.ContactTitle,
		ContactText:  req.ContactText,
		ContactEmail: req.ContactEmail,
	}
	if err := h.settings.Save(settings); err != nil {
		log.Error().Err(err).Msg("Failed to persist settings")
		response.InternalError(w)
		return
	}

	if err := h.synthesizer.RegenerateIndex(); err != nil {
		log.Error().Err(err).Msg("Index refresh after settings save failed")
		response.ErrorWithDetails(w, http.StatusInternalServerError, "SYNTHESIS_FAILED",
			"Settings saved but index regeneration failed", map[string]string{"index": err.Error()})
		return
	}

	response.OK(w, settings)
}

// Regenerate handles POST /site/regenerate
func (h *Handler) Regenerate(w http.ResponseWriter, r *http.Request) {
	if err := h.synthesizer.RegenerateAll(); err != nil {
		if errors.Is(err, ErrArtifactMissing) {
			response.NotFound(w, "Site artifact not found")
			return
		}
		response.ErrorWithDetails(w, http.StatusInternalServerError, "SYNTHESIS_FAILED",
			"Site regeneration failed", map[string]string{"error": err.Error()})
		return
	}

	response.OK(w, map[string]string{"status": "regenerated"})
}

// PatchHeroImage handles PUT /site/hero-image
func (h *Handler) PatchHeroImage(w http.ResponseWriter, r *http.Request) {
	var req HeroImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	if err := h.synthesizer.PatchHeroImage(req.URL); err != nil {
		if errors.Is(err, ErrArtifactMissing) {
			response.NotFound(w, "Site artifact not found")
			return
		}
		log.Error().Err(err).Msg("Hero image patch failed")
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"status": "updated"})
}
