package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/fableration/site-backend/auth"
	"github.com/fableration/site-backend/config"
	"github.com/fableration/site-backend/database"
	"github.com/fableration/site-backend/storage"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(db database.Database) (Server, error) {
	c := config.New()

	// Ensure correct port is set
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	secret := config.GetString(c, "JWT_SECRET", "")
	ttl := time.Duration(config.GetInt(c, "TOKEN_TTL_HOURS", 72)) * time.Hour
	jwt, err := auth.New(secret, ttl)
	if err != nil {
		return Server{}, fmt.Errorf("init token signer: %w", err)
	}

	store, err := newUploadStorage(c)
	if err != nil {
		return Server{}, fmt.Errorf("init upload storage: %w", err)
	}

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(db,
		withConfig(c),
		withStartupTime(startupTime),
		withTokenSigner(jwt),
		withUploadStorage(store),
	)

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,  // Timeout for reading the entire request
		WriteTimeout: writeTimeout, // Timeout for writing the response
		IdleTimeout:  idleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

// newUploadStorage picks the upload backend from config: local disk by
// default, S3 when UPLOAD_BACKEND=s3.
func newUploadStorage(c map[string]string) (storage.Storage, error) {
	switch config.GetString(c, "UPLOAD_BACKEND", "local") {
	case "s3":
		return storage.NewS3(
			context.Background(),
			config.GetString(c, "S3_BUCKET", ""),
			config.GetString(c, "S3_REGION", "us-east-1"),
			config.GetString(c, "S3_PUBLIC_BASE_URL", ""),
		)
	default:
		return storage.NewLocal(
			config.GetString(c, "UPLOAD_DIR", "uploads"),
			config.GetString(c, "PUBLIC_BASE_URL", fmt.Sprintf("http://localhost:%s", config.GetString(c, "PORT", "8080"))),
		), nil
	}
}

type router struct {
	config      map[string]string
	startupTime time.Time
	jwt         *auth.JWT
	store       storage.Storage
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withTokenSigner(jwt *auth.JWT) func(*router) {
	return func(r *router) {
		r.jwt = jwt
	}
}

func withUploadStorage(store storage.Storage) func(*router) {
	return func(r *router) {
		r.store = store
	}
}

func newRouter(db database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: config.GetBool(router.config, "CORS_ALLOW_CREDENTIALS", true),
	}))

	// Initialize all handlers
	handlers := initializeHandlers(db, router.jwt, router.store)

	// Initialize auth middleware
	authMiddleware := newAuthMiddleware(router.jwt)

	// Setup all route types
	setupRoutes(chiRouter, handlers, authMiddleware)

	uploadDir := config.GetString(router.config, "UPLOAD_DIR", "uploads")
	chiRouter.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
