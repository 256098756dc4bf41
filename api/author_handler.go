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

type authorHandler struct {
	responder  Responder
	logger     zerolog.Logger
	authorRepo *database.AuthorRepo
}

func newAuthorHandler(authorRepo *database.AuthorRepo) authorHandler {
	logger := log.With().Str("handlerName", "authorHandler").Logger()

	return authorHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		authorRepo: authorRepo,
	}
}

func (h authorHandler) getAllAuthors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authors, err := h.authorRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find authors", "authors", err))
			return
		}
		h.responder.WriteJSON(w, authors)
	}
}

func (h authorHandler) getAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, ok := parseIDParam(w, r, h.responder, "authorID")
		if !ok {
			return
		}

		author, err := h.authorRepo.FindByID(authorID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find author", "author", err))
			return
		}
		if author == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("author not found"))
			return
		}

		h.responder.WriteJSON(w, author)
	}
}

func (h authorHandler) createAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var author models.Author
		if err := json.NewDecoder(r.Body).Decode(&author); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if author.Name == "" {
			h.responder.WriteValidationError(w, "name", "name is required")
			return
		}

		author.ID = 0
		if err := h.authorRepo.Add(&author); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create author", "author", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, author)
	}
}

func (h authorHandler) updateAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, ok := parseIDParam(w, r, h.responder, "authorID")
		if !ok {
			return
		}

		existing, err := h.authorRepo.FindByID(authorID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find author", "author", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("author not found"))
			return
		}

		var author models.Author
		if err := json.NewDecoder(r.Body).Decode(&author); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if author.Name == "" {
			h.responder.WriteValidationError(w, "name", "name is required")
			return
		}

		author.ID = authorID
		author.CreatedAt = existing.CreatedAt
		if err := h.authorRepo.Update(&author); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update author", "author", err))
			return
		}

		h.responder.WriteJSON(w, author)
	}
}

func (h authorHandler) deleteAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, ok := parseIDParam(w, r, h.responder, "authorID")
		if !ok {
			return
		}

		existing, err := h.authorRepo.FindByID(authorID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find author", "author", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("author not found"))
			return
		}

		if err := h.authorRepo.Delete(authorID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete author", "author", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "author deleted successfully",
		})
	}
}
