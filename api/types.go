package api

import (
	"github.com/fableration/site-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	blogHandler         blogHandler
	authorHandler       authorHandler
	logoHandler         logoHandler
	tagHandler          tagHandler
	announcementHandler announcementHandler
	eventHandler        eventHandler
	highlightHandler    highlightHandler
	authHandler         authHandler
	uploadHandler       uploadHandler
}

// BlogWithRelations is a blog enriched with its tags and resolved reference
// articles. The embedded blog already carries its logo and author when set.
type BlogWithRelations struct {
	models.Blog
	Tags              []models.Tag       `json:"tags"`
	ReferenceArticles []ReferenceArticle `json:"referenceArticles"`
}

// ReferenceArticle is the summary form of a cited blog, each with its own
// tags. Only published articles are resolved.
type ReferenceArticle struct {
	ID       uint         `json:"id"`
	Title    string       `json:"title"`
	Slug     string       `json:"slug"`
	Summary  string       `json:"summary"`
	Category string       `json:"category"`
	ImageURL string       `json:"imageUrl"`
	Tags     []models.Tag `json:"tags"`
}

// BlogCollection is the list payload.
type BlogCollection struct {
	Blogs []BlogWithRelations `json:"blogs"`
	Total int                 `json:"total,omitempty"`
}

// BlogInput is the write payload for blog create/update. Tags and
// referenceArticles are id lists; both association sets are replaced
// wholesale on every write.
type BlogInput struct {
	Title             string `json:"title"`
	Content           string `json:"content"`
	Summary           string `json:"summary"`
	Category          string `json:"category"`
	ImageURL          string `json:"imageUrl"`
	CoverImage        string `json:"coverImage"`
	ExternalLink      string `json:"externalLink"`
	LogoID            *uint  `json:"logoId"`
	AuthorID          *uint  `json:"authorId"`
	Published         bool   `json:"published"`
	Tags              []uint `json:"tags"`
	ReferenceArticles []uint `json:"referenceArticles"`
}

// EventInput is the write payload for event create/update. The item list is
// the unit of change: it is replaced in full, with positions taken from
// list order.
type EventInput struct {
	Title        string             `json:"title"`
	ImageURL     string             `json:"imageUrl"`
	Summary      string             `json:"summary"`
	Content      string             `json:"content"`
	ExternalLink string             `json:"externalLink"`
	Published    bool               `json:"published"`
	Items        []models.EventItem `json:"items"`
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}
