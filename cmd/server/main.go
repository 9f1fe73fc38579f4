package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"conferencecentral/config"
	_ "conferencecentral/docs"
	"conferencecentral/internal/adapters/auth"
	"conferencecentral/internal/adapters/cache"
	"conferencecentral/internal/adapters/email"
	deliveryhttp "conferencecentral/internal/delivery/http"
	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
	"conferencecentral/internal/queue"
	"conferencecentral/internal/repository/postgres"
	"conferencecentral/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Conference Central API
// @version 1.0
// @description Conference management API: conferences, sessions, profiles, registrations, wishlists and announcements.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancel()
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	cancel()

	confRepo := postgres.NewConferenceRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	wishlistRepo := postgres.NewWishlistRepository(db)

	appCache := cache.New(cfg.Cache)
	taskQueue := queue.NewPublisher(cfg.Queue)

	mailer, err := email.NewMailer(cfg.Mailer)
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	conferenceService := services.NewConferenceService(confRepo, profileRepo, taskQueue, serviceTimeout)
	sessionService := services.NewSessionService(sessionRepo, confRepo, speakerRepo, profileRepo, taskQueue, serviceTimeout)
	profileService := services.NewProfileService(profileRepo, serviceTimeout)
	attendeeService := services.NewAttendeeService(profileRepo, registrationRepo, wishlistRepo, confRepo, sessionRepo, serviceTimeout)
	announcementService := services.NewAnnouncementService(confRepo, appCache, serviceTimeout)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	worker := queue.NewWorker(cfg.Queue, map[string]domain.TaskHandlerFunc{
		domain.TaskSendConfirmationEmail: services.NewConfirmationEmailHandler(emailService),
		domain.TaskSetFeaturedSpeaker:    services.NewFeaturedSpeakerHandler(announcementService),
	}, logger)
	go func() {
		if err := worker.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("task worker stopped", "error", err)
		}
	}()

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	mux := deliveryhttp.NewRouter(
		verifier,
		controllers.NewConferenceController(logger, conferenceService),
		controllers.NewSessionController(logger, sessionService),
		controllers.NewProfileController(logger, profileService),
		controllers.NewAttendeeController(logger, attendeeService),
		controllers.NewAnnouncementController(logger, announcementService),
	)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	stopWorker()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
