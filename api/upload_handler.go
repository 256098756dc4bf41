package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fableration/site-backend/errs"
	"github.com/fableration/site-backend/storage"
)

// maxUploadSize caps image uploads at 5 MB.
const maxUploadSize = 5 << 20

var uploadKinds = map[string]bool{
	"event":     true,
	"icon":      true,
	"blog":      true,
	"highlight": true,
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.Storage
}

func newUploadHandler(store storage.Storage) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// uploadImage accepts a multipart image of at most 5 MB and returns the
// servable URL the storage backend assigned. The rest of the system only
// ever holds that URL string.
// @Summary Upload image
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Param kind path string true "Upload kind" Enums(event, icon, blog, highlight)
// @Param image formData file true "Image file"
// @Success 200 {object} map[string]string "Servable URL"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Router /upload/{kind}-image [post]
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := chi.URLParam(r, "kind")
		if !uploadKinds[kind] {
			h.responder.WriteError(w, errs.NewBadRequestError("unknown upload kind"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("image exceeds the 5MB limit or form is malformed"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteValidationError(w, "image", "image file is required")
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			h.responder.WriteValidationError(w, "image", "only image uploads are allowed")
			return
		}

		ext := filepath.Ext(header.Filename)
		name := uuid.New().String() + ext

		url, err := h.store.Save(r.Context(), kind, name, contentType, file)
		if err != nil {
			h.logger.Error().Err(err).Str("kind", kind).Msg("Failed to store upload")
			h.responder.WriteError(w, errs.NewInternalError("could not store upload"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"url": url})
	}
}
