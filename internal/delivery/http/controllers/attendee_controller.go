package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// RegistrationResponse reports the outcome of a registration.
type RegistrationResponse struct {
	Registered bool `json:"registered"`
}

// UnregistrationResponse reports whether a registration was removed.
// Unregistered is false when the user was not registered to begin with.
type UnregistrationResponse struct {
	Unregistered bool `json:"unregistered"`
}

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{Logger: logger, Service: svc}
}

// Register godoc
// @Summary Register for a conference
// @Description Registers the authenticated user and takes one seat. Atomic with the seat count.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Success 201 {object} helpers.APIResponse "data: {registered: true}"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered or no seats left)"
// @Router /conferences/{conferenceID}/registrations [post]
func (c *AttendeeController) Register(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	registered, err := c.Service.Register(r.Context(), id.UserID, id.Email, conferenceID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, RegistrationResponse{Registered: registered})
}

// Unregister godoc
// @Summary Cancel a conference registration
// @Description Removes the registration and frees the seat. Returns registered=false without error when the user was not registered.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Success 200 {object} helpers.APIResponse "data: {unregistered: bool}"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /conferences/{conferenceID}/registrations [delete]
func (c *AttendeeController) Unregister(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	removed, err := c.Service.Unregister(r.Context(), id.UserID, id.Email, conferenceID)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, UnregistrationResponse{Unregistered: removed})
}

// ListAttending godoc
// @Summary List conferences the authenticated user attends
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ConferenceListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /attendee/conferences [get]
func (c *AttendeeController) ListAttending(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	confs, err := c.Service.ListAttending(r.Context(), id.UserID, id.Email)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, confs)
}

// AddToWishlist godoc
// @Summary Add a session to the user's wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 201 {object} helpers.APIResponse "data: {added: true}"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /sessions/{sessionID}/wishlist [post]
func (c *AttendeeController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.AddToWishlist(r.Context(), id.UserID, id.Email, sessionID); err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, map[string]bool{"added": true})
}

// ListWishlistSessions godoc
// @Summary List the user's wishlisted sessions within a conference
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Success 200 {object} controllers.SessionListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /conferences/{conferenceID}/wishlist/sessions [get]
func (c *AttendeeController) ListWishlistSessions(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sessions, err := c.Service.ListWishlistSessions(r.Context(), id.UserID, id.Email, conferenceID)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListWishingProfiles godoc
// @Summary List profiles that wishlisted a session
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse "data contains the profiles"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /sessions/{sessionID}/wishlist/profiles [get]
func (c *AttendeeController) ListWishingProfiles(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	profiles, err := c.Service.ListProfilesWishingSession(r.Context(), sessionID)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, profiles)
}
