package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fableration/site-backend/database"
	"github.com/fableration/site-backend/errs"
	"github.com/fableration/site-backend/models"
)

type announcementHandler struct {
	responder        Responder
	logger           zerolog.Logger
	announcementRepo *database.AnnouncementRepo
}

func newAnnouncementHandler(announcementRepo *database.AnnouncementRepo) announcementHandler {
	logger := log.With().Str("handlerName", "announcementHandler").Logger()

	return announcementHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		announcementRepo: announcementRepo,
	}
}

func (h announcementHandler) getAllAnnouncements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		announcements, err := h.announcementRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find announcements", "announcements", err))
			return
		}
		h.responder.WriteJSON(w, announcements)
	}
}

// getActiveAnnouncements returns rows with active=true whose expiry is null
// or in the future, evaluated against the current time. Expired rows are
// not flipped inactive; they just stop appearing here.
// @Summary Get active announcements
// @Tags Announcements
// @Produce json
// @Success 200 {array} models.Announcement "Active announcements"
// @Router /announcements/active [get]
func (h announcementHandler) getActiveAnnouncements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		announcements, err := h.announcementRepo.FindActive(time.Now())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find active announcements", "announcements", err))
			return
		}
		h.responder.WriteJSON(w, announcements)
	}
}

func (h announcementHandler) createAnnouncement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var announcement models.Announcement
		if err := json.NewDecoder(r.Body).Decode(&announcement); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if announcement.Title == "" {
			h.responder.WriteValidationError(w, "title", "title is required")
			return
		}

		announcement.ID = 0
		if err := h.announcementRepo.Add(&announcement); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create announcement", "announcement", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, announcement)
	}
}

func (h announcementHandler) updateAnnouncement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		announcementID, ok := parseIDParam(w, r, h.responder, "announcementID")
		if !ok {
			return
		}

		existing, err := h.announcementRepo.FindByID(announcementID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find announcement", "announcement", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("announcement not found"))
			return
		}

		var announcement models.Announcement
		if err := json.NewDecoder(r.Body).Decode(&announcement); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if announcement.Title == "" {
			h.responder.WriteValidationError(w, "title", "title is required")
			return
		}

		announcement.ID = announcementID
		announcement.CreatedAt = existing.CreatedAt
		if err := h.announcementRepo.Update(&announcement); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update announcement", "announcement", err))
			return
		}

		h.responder.WriteJSON(w, announcement)
	}
}

func (h announcementHandler) deleteAnnouncement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		announcementID, ok := parseIDParam(w, r, h.responder, "announcementID")
		if !ok {
			return
		}

		existing, err := h.announcementRepo.FindByID(announcementID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find announcement", "announcement", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("announcement not found"))
			return
		}

		if err := h.announcementRepo.Delete(announcementID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete announcement", "announcement", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "announcement deleted successfully",
		})
	}
}
