package media

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/folio/folio-api/internal/pkg/response"
	"github.com/folio/folio-api/internal/pkg/storage"
)

// Handler handles media HTTP requests
type Handler struct {
	service *Service
	storage storage.Storage
}

// NewHandler creates media handler
func NewHandler(service *Service, st storage.Storage) *Handler {
	return &Handler{service: service, storage: st}
}

// Upload handles POST /media: a multipart batch under the "files" field
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	// 64 MiB in-memory threshold; larger parts spill to disk
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	uploads := make([]Upload, len(headers))
	for i, fh := range headers {
		fh := fh
		uploads[i] = Upload{
			Filename: fh.Filename,
			Size:     fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		}
	}

	files, err := h.service.Ingest(r.Context(), uploads)
	if err != nil {
		var te *TransformError
		switch {
		case errors.Is(err, ErrNoFiles),
			errors.Is(err, ErrTooManyFiles),
			errors.Is(err, ErrTypeNotAllowed):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.PayloadTooLarge(w, err.Error())
		case errors.As(err, &te):
			log.Error().Err(te.Err).Str("file", te.Filename).Msg("Media transform failed")
			response.Error(w, http.StatusInternalServerError, "TRANSFORM_FAILED",
				fmt.Sprintf("Failed to process %s", te.Filename))
		default:
			log.Error().Err(err).Msg("Media ingest failed")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, files)
}

// List handles GET /media, optionally filtered by ?prefix=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.storage.List(r.Context(), r.URL.Query().Get("prefix"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list media")
		response.InternalError(w)
		return
	}

	response.WithMeta(w, files, response.Meta{Total: len(files)})
}
