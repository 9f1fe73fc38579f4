package controllers

import (
	"log/slog"
	"net/http"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// CreateSessionRequest is the request body for POST /conferences/{conferenceID}/sessions.
type CreateSessionRequest struct {
	Name          string `json:"name"`
	SpeakerEmail  string `json:"speaker_email"`
	SpeakerName   string `json:"speaker_name"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	Duration      int    `json:"duration"`
	TypeOfSession string `json:"type_of_session"`
	Highlights    string `json:"highlights"`
}

// Validate implements Validator.
func (c CreateSessionRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.SpeakerEmail == "" {
		errs = append(errs, "speaker_email is required")
	}
	if c.Date == "" {
		errs = append(errs, "date is required")
	}
	if c.StartTime == "" {
		errs = append(errs, "start_time is required")
	}
	return errs
}

// SessionSuccessResponse is the success envelope carrying a single session.
type SessionSuccessResponse struct {
	Data  *domain.Session   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SessionListSuccessResponse is the success envelope carrying a list of sessions.
type SessionListSuccessResponse struct {
	Data  []*domain.Session `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{Logger: logger, Service: svc}
}

// CreateSession godoc
// @Summary Create a session in a conference
// @Description Create a session under the conference. Only the organizer may add sessions. The speaker record is created on first use of the email.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Param session body CreateSessionRequest true "Session data"
// @Success 201 {object} controllers.SessionSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /conferences/{conferenceID}/sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sess := &domain.Session{
		ConferenceID:  conferenceID,
		Name:          req.Name,
		SpeakerEmail:  req.SpeakerEmail,
		Date:          req.Date,
		StartTime:     req.StartTime,
		Duration:      req.Duration,
		TypeOfSession: req.TypeOfSession,
		Highlights:    req.Highlights,
	}
	sess, err := c.Service.Create(r.Context(), id.UserID, sess, req.SpeakerName)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sess)
}

// ListSessions godoc
// @Summary List all sessions of a conference
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference ID"
// @Success 200 {object} controllers.SessionListSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /conferences/{conferenceID}/sessions [get]
func (c *SessionController) ListSessions(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	sessions, err := c.Service.ListByConference(r.Context(), conferenceID)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListSessionsByType godoc
// @Summary List a conference's sessions of one type
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference ID"
// @Param type path string true "Session type (e.g. WORKSHOP, LECTURE)"
// @Success 200 {object} controllers.SessionListSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /conferences/{conferenceID}/sessions/type/{type} [get]
func (c *SessionController) ListSessionsByType(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	typeOfSession := r.PathValue("type")
	sessions, err := c.Service.ListByType(r.Context(), conferenceID, typeOfSession)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListSessionsByDate godoc
// @Summary List a conference's sessions on a date, ordered by start time
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} controllers.SessionListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /conferences/{conferenceID}/sessions/date/{date} [get]
func (c *SessionController) ListSessionsByDate(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	date := r.PathValue("date")
	sessions, err := c.Service.ListByDate(r.Context(), conferenceID, date)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListSessionsBySpeaker godoc
// @Summary List sessions by speaker name across all conferences
// @Tags sessions
// @Produce json
// @Param speakerName path string true "Speaker name"
// @Success 200 {object} controllers.SessionListSuccessResponse
// @Router /sessions/speaker/{speakerName} [get]
func (c *SessionController) ListSessionsBySpeaker(w http.ResponseWriter, r *http.Request) {
	speakerName := r.PathValue("speakerName")
	sessions, err := c.Service.ListBySpeaker(r.Context(), speakerName)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// QuerySessions godoc
// @Summary Query a conference's sessions by filters
// @Description Conjunctive filtering over DURATION, DATE, START_TIME and TYPE_OF_SESSION with operators EQ, GT, GTEQ, LT, LTEQ, NE. At most one field may use an inequality operator for ordering; additional inequality fields are applied after the ordered query.
// @Tags sessions
// @Accept json
// @Produce json
// @Param conferenceID path string true "Conference ID"
// @Param query body QueryRequest true "Filters"
// @Success 200 {object} controllers.SessionListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /conferences/{conferenceID}/sessions/query [post]
func (c *SessionController) QuerySessions(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	var req QueryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sessions, err := c.Service.Query(r.Context(), conferenceID, req.toDomain())
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}
