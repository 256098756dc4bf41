package api

import (
	"github.com/fableration/site-backend/auth"
	"github.com/fableration/site-backend/database"
	"github.com/fableration/site-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, jwt *auth.JWT, store storage.Storage) *routeHandlers {
	return &routeHandlers{
		blogHandler:         newBlogHandler(db.BlogRepo()),
		authorHandler:       newAuthorHandler(db.AuthorRepo()),
		logoHandler:         newLogoHandler(db.LogoRepo()),
		tagHandler:          newTagHandler(db.TagRepo()),
		announcementHandler: newAnnouncementHandler(db.AnnouncementRepo()),
		eventHandler:        newEventHandler(db.EventRepo()),
		highlightHandler:    newHighlightHandler(db.HighlightRepo()),
		authHandler:         newAuthHandler(db.UserRepo(), jwt),
		uploadHandler:       newUploadHandler(store),
	}
}
