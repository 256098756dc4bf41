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

type logoHandler struct {
	responder Responder
	logger    zerolog.Logger
	logoRepo  *database.LogoRepo
}

func newLogoHandler(logoRepo *database.LogoRepo) logoHandler {
	logger := log.With().Str("handlerName", "logoHandler").Logger()

	return logoHandler{
		responder: NewResponder(logger),
		logger:    logger,
		logoRepo:  logoRepo,
	}
}

func (h logoHandler) getAllLogos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logos, err := h.logoRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find logos", "logos", err))
			return
		}
		h.responder.WriteJSON(w, logos)
	}
}

func (h logoHandler) getLogo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logoID, ok := parseIDParam(w, r, h.responder, "logoID")
		if !ok {
			return
		}

		logo, err := h.logoRepo.FindByID(logoID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find logo", "logo", err))
			return
		}
		if logo == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("logo not found"))
			return
		}

		h.responder.WriteJSON(w, logo)
	}
}

func (h logoHandler) createLogo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var logo models.Logo
		if err := json.NewDecoder(r.Body).Decode(&logo); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if logo.Name == "" {
			h.responder.WriteValidationError(w, "name", "name is required")
			return
		}

		logo.ID = 0
		if err := h.logoRepo.Add(&logo); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create logo", "logo", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, logo)
	}
}

func (h logoHandler) updateLogo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logoID, ok := parseIDParam(w, r, h.responder, "logoID")
		if !ok {
			return
		}

		existing, err := h.logoRepo.FindByID(logoID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find logo", "logo", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("logo not found"))
			return
		}

		var logo models.Logo
		if err := json.NewDecoder(r.Body).Decode(&logo); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if logo.Name == "" {
			h.responder.WriteValidationError(w, "name", "name is required")
			return
		}

		logo.ID = logoID
		logo.CreatedAt = existing.CreatedAt
		if err := h.logoRepo.Update(&logo); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update logo", "logo", err))
			return
		}

		h.responder.WriteJSON(w, logo)
	}
}

func (h logoHandler) deleteLogo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logoID, ok := parseIDParam(w, r, h.responder, "logoID")
		if !ok {
			return
		}

		existing, err := h.logoRepo.FindByID(logoID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find logo", "logo", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("logo not found"))
			return
		}

		if err := h.logoRepo.Delete(logoID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete logo", "logo", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "logo deleted successfully",
		})
	}
}
