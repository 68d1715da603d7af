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

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(db database.Database, uploader *services.S3Uploader) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router, err := newRouter(db, withConfig(c), withStartupTime(startupTime), withUploader(uploader))
	if err != nil {
		return Server{}, err
	}

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
	uploader    *services.S3Uploader
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

func withUploader(uploader *services.S3Uploader) func(*router) {
	return func(r *router) {
		r.uploader = uploader
	}
}

func newRouter(db database.Database, opts ...func(*router)) (*chi.Mux, error) {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	signingSecret := config.GetString(router.config, "JWT_SECRET", "")
	if signingSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not configured")
	}
	adminUsername := config.GetString(router.config, "ADMIN_USERNAME", "")
	adminPassword := config.GetString(router.config, "ADMIN_PASSWORD", "")
	if adminUsername == "" || adminPassword == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be configured")
	}

	exposeDetails := !config.IsProduction(router.config)
	tokens := auth.NewTokenManager(signingSecret)
	notifier := services.NewNotifier(router.config)

	// Avoid a typed-nil interface when object storage is not configured
	var uploader resumeUploader
	if router.uploader != nil {
		uploader = router.uploader
	}

	// Initialize all handlers
	handlers := initializeHandlers(
		db,
		tokens,
		adminUsername,
		adminPassword,
		uploader,
		notifier,
		router.startupTime,
		exposeDetails,
	)

	// Initialize auth middleware
	authMiddleware := newAuthMiddleware(tokens, exposeDetails)

	// CORS for the public site and the admin UI origins
	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Blunt edge guard for the public write endpoints
	rateLimit := config.GetInt(router.config, "RATE_LIMIT_REQUESTS", 60)
	rateWindow := time.Duration(config.GetInt(router.config, "RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second
	publicLimiter := RateLimitMiddleware(rateLimit, rateWindow, exposeDetails)

	setupRoutes(chiRouter, handlers, authMiddleware, publicLimiter)

	return chiRouter, nil
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
