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

type eventHandler struct {
	responder Responder
	logger    zerolog.Logger
	eventRepo *database.EventRepo
}

func newEventHandler(eventRepo *database.EventRepo) eventHandler {
	logger := log.With().Str("handlerName", "eventHandler").Logger()

	return eventHandler{
		responder: NewResponder(logger),
		logger:    logger,
		eventRepo: eventRepo,
	}
}

func (h eventHandler) getAllEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := h.eventRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find events", "events", err))
			return
		}
		h.responder.WriteJSON(w, events)
	}
}

func (h eventHandler) getEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseIDParam(w, r, h.responder, "eventID")
		if !ok {
			return
		}

		event, err := h.eventRepo.FindByID(eventID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find event", "event", err))
			return
		}
		if event == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("event not found"))
			return
		}

		h.responder.WriteJSON(w, event)
	}
}

// createEvent creates an event with its full item list; item positions are
// taken from list order.
// @Summary Create event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body EventInput true "Event data"
// @Success 201 {object} models.Event "Created event"
// @Router /events [post]
func (h eventHandler) createEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input EventInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if input.Title == "" {
			h.responder.WriteValidationError(w, "title", "title is required")
			return
		}

		event := models.Event{
			Title:        input.Title,
			ImageURL:     input.ImageURL,
			Summary:      input.Summary,
			Content:      input.Content,
			ExternalLink: input.ExternalLink,
			Published:    input.Published,
		}

		if err := h.eventRepo.Create(&event, input.Items); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create event", "event", err))
			return
		}

		created, err := h.eventRepo.FindByID(event.ID)
		if err != nil || created == nil {
			h.responder.WriteError(w, wrapDatabaseError("find created event", "event", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateEvent updates an event, replacing its item list wholesale. There is
// no partial-item-update path.
// @Summary Update event
// @Tags Events
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param event body EventInput true "Updated event data"
// @Success 200 {object} models.Event "Updated event"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /events/{eventID} [put]
func (h eventHandler) updateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseIDParam(w, r, h.responder, "eventID")
		if !ok {
			return
		}

		existing, err := h.eventRepo.FindByID(eventID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find event", "event", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("event not found"))
			return
		}

		var input EventInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if input.Title == "" {
			h.responder.WriteValidationError(w, "title", "title is required")
			return
		}

		event := models.Event{
			ID:           eventID,
			Title:        input.Title,
			ImageURL:     input.ImageURL,
			Summary:      input.Summary,
			Content:      input.Content,
			ExternalLink: input.ExternalLink,
			Published:    input.Published,
			CreatedAt:    existing.CreatedAt,
		}

		if err := h.eventRepo.Update(&event, input.Items); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update event", "event", err))
			return
		}

		updated, err := h.eventRepo.FindByID(eventID)
		if err != nil || updated == nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated event", "event", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h eventHandler) deleteEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := parseIDParam(w, r, h.responder, "eventID")
		if !ok {
			return
		}

		existing, err := h.eventRepo.FindByID(eventID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find event", "event", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("event not found"))
			return
		}

		if err := h.eventRepo.Delete(eventID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete event", "event", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "event deleted successfully",
		})
	}
}
