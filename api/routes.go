package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the API surface under the common /api prefix. Reads are
// public; every mutating endpoint sits behind the bearer-credential
// middleware.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public reads
		r.Get("/blogs", handlers.blogHandler.getAllBlogs())
		r.Get("/blogs/{identifier}", handlers.blogHandler.getBlog())
		r.Get("/authors", handlers.authorHandler.getAllAuthors())
		r.Get("/authors/{authorID}", handlers.authorHandler.getAuthor())
		r.Get("/logos", handlers.logoHandler.getAllLogos())
		r.Get("/logos/{logoID}", handlers.logoHandler.getLogo())
		r.Get("/tags", handlers.tagHandler.getAllTags())
		r.Get("/announcements", handlers.announcementHandler.getAllAnnouncements())
		r.Get("/announcements/active", handlers.announcementHandler.getActiveAnnouncements())
		r.Get("/events", handlers.eventHandler.getAllEvents())
		r.Get("/events/{eventID}", handlers.eventHandler.getEvent())
		r.Get("/highlights", handlers.highlightHandler.getAllHighlights())
		r.Get("/highlights/active", handlers.highlightHandler.getActiveHighlights())

		// Authentication
		r.Post("/auth/login", handlers.authHandler.login())
		r.Get("/auth/verify", handlers.authHandler.verify())

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/blogs", handlers.blogHandler.createBlog())
			r.Put("/blogs/{identifier}", handlers.blogHandler.updateBlog())
			r.Delete("/blogs/{identifier}", handlers.blogHandler.deleteBlog())

			r.Post("/authors", handlers.authorHandler.createAuthor())
			r.Put("/authors/{authorID}", handlers.authorHandler.updateAuthor())
			r.Delete("/authors/{authorID}", handlers.authorHandler.deleteAuthor())

			r.Post("/logos", handlers.logoHandler.createLogo())
			r.Put("/logos/{logoID}", handlers.logoHandler.updateLogo())
			r.Delete("/logos/{logoID}", handlers.logoHandler.deleteLogo())

			r.Post("/tags", handlers.tagHandler.createTag())
			r.Put("/tags/{tagID}", handlers.tagHandler.updateTag())
			r.Delete("/tags/{tagID}", handlers.tagHandler.deleteTag())

			r.Post("/announcements", handlers.announcementHandler.createAnnouncement())
			r.Put("/announcements/{announcementID}", handlers.announcementHandler.updateAnnouncement())
			r.Delete("/announcements/{announcementID}", handlers.announcementHandler.deleteAnnouncement())

			r.Post("/events", handlers.eventHandler.createEvent())
			r.Put("/events/{eventID}", handlers.eventHandler.updateEvent())
			r.Delete("/events/{eventID}", handlers.eventHandler.deleteEvent())

			r.Post("/highlights", handlers.highlightHandler.createHighlight())
			r.Put("/highlights/{highlightID}", handlers.highlightHandler.updateHighlight())
			r.Delete("/highlights/{highlightID}", handlers.highlightHandler.deleteHighlight())

			r.Post("/auth/change-password", handlers.authHandler.changePassword())
			r.Post("/upload/{kind}-image", handlers.uploadHandler.uploadImage())
		})
	})
}
