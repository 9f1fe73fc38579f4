package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// FilterDTO is one query filter clause as submitted by clients.
type FilterDTO struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// QueryRequest is the request body for the conference and session query endpoints.
type QueryRequest struct {
	Filters []FilterDTO `json:"filters"`
}

func (q QueryRequest) toDomain() []domain.Filter {
	filters := make([]domain.Filter, 0, len(q.Filters))
	for _, f := range q.Filters {
		filters = append(filters, domain.Filter{Field: f.Field, Operator: f.Operator, Value: f.Value})
	}
	return filters
}

// CreateConferenceRequest is the request body for POST /conferences.
type CreateConferenceRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Topics       []string `json:"topics"`
	City         string   `json:"city"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	MaxAttendees int      `json:"max_attendees"`
}

// Validate implements Validator.
func (c CreateConferenceRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.MaxAttendees < 0 {
		errs = append(errs, "max_attendees cannot be negative")
	}
	return errs
}

// ConferenceSuccessResponse is the success envelope carrying a single conference.
type ConferenceSuccessResponse struct {
	Data  *domain.Conference `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ConferenceListSuccessResponse is the success envelope carrying a list of conferences.
type ConferenceListSuccessResponse struct {
	Data  []*domain.Conference `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type ConferenceController struct {
	Logger  *slog.Logger
	Service domain.ConferenceService
}

func NewConferenceController(logger *slog.Logger, svc domain.ConferenceService) *ConferenceController {
	return &ConferenceController{Logger: logger, Service: svc}
}

// CreateConference godoc
// @Summary Create a conference
// @Description Create a new conference owned by the authenticated user. Missing city and topics get defaults; month and seats are derived server-side. A confirmation email is sent asynchronously.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conference body CreateConferenceRequest true "Conference data"
// @Success 201 {object} controllers.ConferenceSuccessResponse "data contains the created conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences [post]
func (c *ConferenceController) CreateConference(w http.ResponseWriter, r *http.Request) {
	var req CreateConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	conf := &domain.Conference{
		Name:         req.Name,
		Description:  req.Description,
		Topics:       req.Topics,
		City:         req.City,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		MaxAttendees: req.MaxAttendees,
	}
	conf, err := c.Service.Create(r.Context(), id.UserID, id.Email, conf)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, conf)
}

// GetConference godoc
// @Summary Get a conference by ID
// @Tags conferences
// @Produce json
// @Param conferenceID path string true "Conference ID"
// @Success 200 {object} controllers.ConferenceSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID} [get]
func (c *ConferenceController) GetConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	conf, err := c.Service.Get(r.Context(), conferenceID)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conf)
}

// UpdateConferenceRequest is the request body for PATCH /conferences/{conferenceID}.
// Absent fields are left unchanged.
type UpdateConferenceRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Topics       []string `json:"topics"`
	City         *string  `json:"city"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	MaxAttendees *int     `json:"max_attendees"`
}

// UpdateConference godoc
// @Summary Update a conference
// @Description Partial update of a conference. Only the organizer may update it.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Param conference body UpdateConferenceRequest true "Fields to update"
// @Success 200 {object} controllers.ConferenceSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /conferences/{conferenceID} [patch]
func (c *ConferenceController) UpdateConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	var req UpdateConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := &domain.ConferenceUpdate{
		Name:         req.Name,
		Description:  req.Description,
		Topics:       req.Topics,
		City:         req.City,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		MaxAttendees: req.MaxAttendees,
	}
	conf, err := c.Service.Update(r.Context(), id.UserID, conferenceID, upd)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conf)
}

// ListCreated godoc
// @Summary List conferences created by the authenticated user
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ConferenceListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /conferences/created [get]
func (c *ConferenceController) ListCreated(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	confs, err := c.Service.ListCreated(r.Context(), id.UserID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, confs)
}

// QueryConferences godoc
// @Summary Query conferences by filters
// @Description Conjunctive filtering over CITY, TOPIC, MONTH and MAX_ATTENDEES with operators EQ, GT, GTEQ, LT, LTEQ, NE. At most one field may use an inequality operator for ordering; additional inequality fields are applied after the ordered query.
// @Tags conferences
// @Accept json
// @Produce json
// @Param query body QueryRequest true "Filters"
// @Success 200 {object} controllers.ConferenceListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /conferences/query [post]
func (c *ConferenceController) QueryConferences(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	confs, err := c.Service.Query(r.Context(), req.toDomain())
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, confs)
}
