package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fableration/site-backend/database"
	"github.com/fableration/site-backend/errs"
	"github.com/fableration/site-backend/models"
)

type highlightHandler struct {
	responder     Responder
	logger        zerolog.Logger
	highlightRepo *database.HighlightRepo
}

func newHighlightHandler(highlightRepo *database.HighlightRepo) highlightHandler {
	logger := log.With().Str("handlerName", "highlightHandler").Logger()

	return highlightHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		highlightRepo: highlightRepo,
	}
}

func validHighlightType(t string) bool {
	return t == models.HighlightTypeImage || t == models.HighlightTypeVideo
}

func (h highlightHandler) getAllHighlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		highlights, err := h.highlightRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find highlights", "highlights", err))
			return
		}
		h.responder.WriteJSON(w, highlights)
	}
}

func (h highlightHandler) getActiveHighlights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		highlights, err := h.highlightRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find active highlights", "highlights", err))
			return
		}
		h.responder.WriteJSON(w, highlights)
	}
}

func (h highlightHandler) createHighlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var highlight models.Highlight
		if err := json.NewDecoder(r.Body).Decode(&highlight); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if highlight.Title == "" {
			h.responder.WriteValidationError(w, "title", "title is required")
			return
		}
		if highlight.Type == "" {
			highlight.Type = models.HighlightTypeImage
		}
		if !validHighlightType(highlight.Type) {
			h.responder.WriteValidationError(w, "type", "type must be image or video")
			return
		}

		highlight.ID = 0
		if err := h.highlightRepo.Add(&highlight); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create highlight", "highlight", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, highlight)
	}
}

func (h highlightHandler) updateHighlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		highlightID, ok := parseIDParam(w, r, h.responder, "highlightID")
		if !ok {
			return
		}

		existing, err := h.highlightRepo.FindByID(highlightID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find highlight", "highlight", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("highlight not found"))
			return
		}

		var highlight models.Highlight
		if err := json.NewDecoder(r.Body).Decode(&highlight); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if highlight.Title == "" {
			h.responder.WriteValidationError(w, "title", "title is required")
			return
		}
		if highlight.Type == "" {
			highlight.Type = existing.Type
		}
		if !validHighlightType(highlight.Type) {
			h.responder.WriteValidationError(w, "type", "type must be image or video")
			return
		}

		highlight.ID = highlightID
		highlight.CreatedAt = existing.CreatedAt
		if err := h.highlightRepo.Update(&highlight); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update highlight", "highlight", err))
			return
		}

		h.responder.WriteJSON(w, highlight)
	}
}

func (h highlightHandler) deleteHighlight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		highlightID, ok := parseIDParam(w, r, h.responder, "highlightID")
		if !ok {
			return
		}

		existing, err := h.highlightRepo.FindByID(highlightID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find highlight", "highlight", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("highlight not found"))
			return
		}

		if err := h.highlightRepo.Delete(highlightID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete highlight", "highlight", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "highlight deleted successfully",
		})
	}
}
