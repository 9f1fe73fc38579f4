package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	verifier domain.TokenVerifier,
	conferenceController *controllers.ConferenceController,
	sessionController *controllers.SessionController,
	profileController *controllers.ProfileController,
	attendeeController *controllers.AttendeeController,
	announcementController *controllers.AnnouncementController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Conferences
	mux.HandleFunc("POST /conferences", auth(conferenceController.CreateConference))
	mux.HandleFunc("GET /conferences/created", auth(conferenceController.ListCreated))
	mux.HandleFunc("POST /conferences/query", conferenceController.QueryConferences)
	mux.HandleFunc("GET /conferences/{conferenceID}", conferenceController.GetConference)
	mux.HandleFunc("PATCH /conferences/{conferenceID}", auth(conferenceController.UpdateConference))

	// Registrations
	mux.HandleFunc("POST /conferences/{conferenceID}/registrations", auth(attendeeController.Register))
	mux.HandleFunc("DELETE /conferences/{conferenceID}/registrations", auth(attendeeController.Unregister))
	mux.HandleFunc("GET /attendee/conferences", auth(attendeeController.ListAttending))

	// Profile
	mux.HandleFunc("GET /profile", auth(profileController.GetProfile))
	mux.HandleFunc("POST /profile", auth(profileController.SaveProfile))

	// Sessions
	mux.HandleFunc("POST /conferences/{conferenceID}/sessions", auth(sessionController.CreateSession))
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions", sessionController.ListSessions)
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions/type/{type}", sessionController.ListSessionsByType)
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions/date/{date}", sessionController.ListSessionsByDate)
	mux.HandleFunc("GET /sessions/speaker/{speakerName}", sessionController.ListSessionsBySpeaker)
	mux.HandleFunc("POST /conferences/{conferenceID}/sessions/query", sessionController.QuerySessions)

	// Wishlist
	mux.HandleFunc("POST /sessions/{sessionID}/wishlist", auth(attendeeController.AddToWishlist))
	mux.HandleFunc("GET /conferences/{conferenceID}/wishlist/sessions", auth(attendeeController.ListWishlistSessions))
	mux.HandleFunc("GET /sessions/{sessionID}/wishlist/profiles", auth(attendeeController.ListWishingProfiles))

	// Announcements
	mux.HandleFunc("GET /announcement", announcementController.GetAnnouncement)
	mux.HandleFunc("GET /featured-speaker", announcementController.GetFeaturedSpeaker)
	mux.HandleFunc("POST /internal/crons/set_announcement", announcementController.SetAnnouncement)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
