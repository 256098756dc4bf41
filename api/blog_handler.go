package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fableration/site-backend/database"
	"github.com/fableration/site-backend/errs"
	"github.com/fableration/site-backend/models"
	"github.com/fableration/site-backend/slug"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogRepo  *database.BlogRepo
}

func newBlogHandler(blogRepo *database.BlogRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogRepo:  blogRepo,
	}
}

// enrich joins the blog's tags and resolves its reference list into
// published article summaries, each with their own tags.
func (h blogHandler) enrich(blog models.Blog) (BlogWithRelations, error) {
	tags, err := h.blogRepo.TagsFor(blog.ID)
	if err != nil {
		return BlogWithRelations{}, err
	}
	if tags == nil {
		tags = []models.Tag{}
	}

	referenced, err := h.blogRepo.References(blog.ID)
	if err != nil {
		return BlogWithRelations{}, err
	}

	references := make([]ReferenceArticle, 0, len(referenced))
	for _, ref := range referenced {
		refTags, err := h.blogRepo.TagsFor(ref.ID)
		if err != nil {
			return BlogWithRelations{}, err
		}
		if refTags == nil {
			refTags = []models.Tag{}
		}
		references = append(references, ReferenceArticle{
			ID:       ref.ID,
			Title:    ref.Title,
			Slug:     ref.Slug,
			Summary:  ref.Summary,
			Category: ref.Category,
			ImageURL: ref.ImageURL,
			Tags:     refTags,
		})
	}

	return BlogWithRelations{Blog: blog, Tags: tags, ReferenceArticles: references}, nil
}

// getAllBlogs retrieves all blogs, enriched with tags and references
// @Summary Get all blogs
// @Tags Blogs
// @Produce json
// @Success 200 {object} BlogCollection "List of blogs"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /blogs [get]
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blogs", "blogs", err))
			return
		}

		enriched := make([]BlogWithRelations, 0, len(blogs))
		for _, blog := range blogs {
			item, err := h.enrich(blog)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("enrich blog", "blog", err))
				return
			}
			enriched = append(enriched, item)
		}

		h.responder.WriteJSON(w, BlogCollection{Blogs: enriched, Total: len(enriched)})
	}
}

// getBlog retrieves a blog by numeric id or by slug. All-digit identifiers
// are tried against the id, everything else against the slug; both forms
// return the identical enriched payload.
// @Summary Get blog
// @Tags Blogs
// @Produce json
// @Param identifier path string true "Blog ID or slug"
// @Success 200 {object} BlogWithRelations "Blog details"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /blogs/{identifier} [get]
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identifier := chi.URLParam(r, "identifier")
		if identifier == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing identifier"))
			return
		}

		var blog *models.Blog
		var err error
		if id, convErr := strconv.ParseUint(identifier, 10, 64); convErr == nil {
			blog, err = h.blogRepo.FindByID(uint(id))
		} else {
			blog, err = h.blogRepo.FindBySlug(identifier)
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
			return
		}

		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		response, err := h.enrich(*blog)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("enrich blog", "blog", err))
			return
		}

		h.responder.WriteJSON(w, response)
	}
}

// createBlog creates a new blog. A slug is derived from the title and
// resolved to uniqueness before the insert; tag ids are deduplicated.
// @Summary Create blog
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blog body BlogInput true "Blog data"
// @Success 201 {object} BlogWithRelations "Created blog"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Router /blogs [post]
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input BlogInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		// A missing title is allowed; slug.Make falls back to a
		// time-based placeholder so the row is still addressable.
		candidate, err := h.blogRepo.UniqueSlug(slug.Make(input.Title), 0)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("resolve slug", "blog", err))
			return
		}

		blog := models.Blog{
			Title:        input.Title,
			Slug:         candidate,
			Content:      input.Content,
			Summary:      input.Summary,
			Category:     input.Category,
			ImageURL:     input.ImageURL,
			CoverImage:   input.CoverImage,
			ExternalLink: input.ExternalLink,
			LogoID:       input.LogoID,
			AuthorID:     input.AuthorID,
			Published:    input.Published,
		}

		if err := h.blogRepo.Create(&blog, input.Tags, input.ReferenceArticles); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog", "blog", err))
			return
		}

		created, err := h.blogRepo.FindByID(blog.ID)
		if err != nil || created == nil {
			h.responder.WriteError(w, wrapDatabaseError("find created blog", "blog", err))
			return
		}

		response, err := h.enrich(*created)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("enrich blog", "blog", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, response)
	}
}

// updateBlog updates an existing blog. The slug is recomputed only when the
// title actually changed; tag and reference sets are replaced wholesale.
// @Summary Update blog
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogID path int true "Blog ID"
// @Param blog body BlogInput true "Updated blog data"
// @Success 200 {object} BlogWithRelations "Updated blog"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /blogs/{blogID} [put]
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := parseIDParam(w, r, h.responder, "identifier")
		if !ok {
			return
		}

		existing, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		var input BlogInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		blog := models.Blog{
			ID:           existing.ID,
			Title:        input.Title,
			Slug:         existing.Slug,
			Content:      input.Content,
			Summary:      input.Summary,
			Category:     input.Category,
			ImageURL:     input.ImageURL,
			CoverImage:   input.CoverImage,
			ExternalLink: input.ExternalLink,
			LogoID:       input.LogoID,
			AuthorID:     input.AuthorID,
			Published:    input.Published,
			CreatedAt:    existing.CreatedAt,
		}

		// Slug follows the title, but only when the title moved; routine
		// content edits keep existing links stable.
		if input.Title != existing.Title || existing.Slug == "" {
			candidate, err := h.blogRepo.UniqueSlug(slug.Make(input.Title), existing.ID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("resolve slug", "blog", err))
				return
			}
			blog.Slug = candidate
		}

		if err := h.blogRepo.Update(&blog, input.Tags, input.ReferenceArticles); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog", "blog", err))
			return
		}

		updated, err := h.blogRepo.FindByID(blogID)
		if err != nil || updated == nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated blog", "blog", err))
			return
		}

		response, err := h.enrich(*updated)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("enrich blog", "blog", err))
			return
		}

		h.responder.WriteJSON(w, response)
	}
}

// deleteBlog deletes a blog. Its tag links and references disappear with it
// through the cascading foreign keys; the tags themselves stay.
// @Summary Delete blog
// @Tags Blogs
// @Produce json
// @Param blogID path int true "Blog ID"
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /blogs/{blogID} [delete]
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, ok := parseIDParam(w, r, h.responder, "identifier")
		if !ok {
			return
		}

		existing, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog", "blog", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		if err := h.blogRepo.Delete(blogID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog", "blog", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog deleted successfully",
		})
	}
}

// parseIDParam extracts a positive numeric id from the route, writing a
// bad-request response and returning false when it is missing or invalid.
func parseIDParam(w http.ResponseWriter, r *http.Request, responder Responder, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		responder.WriteError(w, errs.NewBadRequestError("missing "+name))
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		responder.WriteError(w, errs.NewBadRequestError("invalid "+name))
		return 0, false
	}

	return uint(id), true
}
