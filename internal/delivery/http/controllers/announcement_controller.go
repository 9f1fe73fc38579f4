package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/domain"
)

// AnnouncementResponse carries a cached announcement or featured-speaker text.
// Message is empty when nothing is cached.
type AnnouncementResponse struct {
	Message string `json:"message"`
}

type AnnouncementController struct {
	Logger  *slog.Logger
	Service domain.AnnouncementService
}

func NewAnnouncementController(logger *slog.Logger, svc domain.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{Logger: logger, Service: svc}
}

// GetAnnouncement godoc
// @Summary Get the current "almost sold out" announcement
// @Tags announcements
// @Produce json
// @Success 200 {object} helpers.APIResponse "data: {message: string}, empty message when none"
// @Router /announcement [get]
func (c *AnnouncementController) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	msg, err := c.Service.Announcement(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AnnouncementResponse{Message: msg})
}

// GetFeaturedSpeaker godoc
// @Summary Get the current featured speaker
// @Tags announcements
// @Produce json
// @Success 200 {object} helpers.APIResponse "data: {message: string}, empty message when none"
// @Router /featured-speaker [get]
func (c *AnnouncementController) GetFeaturedSpeaker(w http.ResponseWriter, r *http.Request) {
	msg, err := c.Service.FeaturedSpeaker(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AnnouncementResponse{Message: msg})
}

// SetAnnouncement godoc
// @Summary Recompute the announcement cache
// @Description Internal cron hook. Rebuilds the announcement from conferences with few seats left.
// @Tags announcements
// @Produce json
// @Success 200 {object} helpers.APIResponse "data: {message: string}"
// @Router /internal/crons/set_announcement [post]
func (c *AnnouncementController) SetAnnouncement(w http.ResponseWriter, r *http.Request) {
	msg, err := c.Service.RecomputeAnnouncement(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AnnouncementResponse{Message: msg})
}
