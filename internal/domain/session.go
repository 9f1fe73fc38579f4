package domain

import (
	"context"
	"time"
)

// Default field values applied when a session is created without them.
const (
	SessionTypeNotSpecified = "NOT_SPECIFIED"
	DefaultHighlights       = "Certainly an awesome session!"
)

// Session represents a talk within a conference. A session is owned by
// exactly one conference; it cannot exist outside of one.
// swagger:model Session
type Session struct {
	ID            string    `json:"id"`
	ConferenceID  string    `json:"conference_id"`
	Name          string    `json:"name"`
	SpeakerEmail  string    `json:"speaker_email"`
	Date          string    `json:"date"`       // YYYY-MM-DD
	StartTime     string    `json:"start_time"` // HH:MM
	Duration      int       `json:"duration"`   // minutes
	TypeOfSession string    `json:"type_of_session"`
	Highlights    string    `json:"highlights"`
	CreatedAt     time.Time `json:"created_at"`

	// SpeakerName is resolved from the speaker record when the session is
	// shaped for a response; it is not stored on the session row.
	SpeakerName string `json:"speaker_name,omitempty"`
}

// SessionRepository defines the interface for session storage. All
// conference-scoped listings are strict ownership lookups, not joins across
// conferences.
type SessionRepository interface {
	Create(ctx context.Context, sess *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	ListByConference(ctx context.Context, conferenceID string) ([]*Session, error)
	ListByType(ctx context.Context, conferenceID, typeOfSession string) ([]*Session, error)
	ListByDate(ctx context.Context, conferenceID, date string) ([]*Session, error)
	ListBySpeakerName(ctx context.Context, speakerName string) ([]*Session, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Session, error)
	// CountBySpeaker returns how many sessions of the conference reference
	// the speaker, used for the featured-speaker recompute.
	CountBySpeaker(ctx context.Context, conferenceID, speakerEmail string) (int, error)
	// Query runs the primary clauses of fs against the conference's sessions,
	// ordered by the active inequality field (if any) then name. Excess
	// clauses are the caller's concern.
	Query(ctx context.Context, conferenceID string, fs *FilterSet) ([]*Session, error)
}

// SessionService defines the business logic for session management.
type SessionService interface {
	// Create stores a new session under its conference, resolving or lazily
	// creating the speaker record for speakerEmail, and dispatches a
	// featured-speaker recompute task.
	Create(ctx context.Context, userID string, sess *Session, speakerName string) (*Session, error)
	ListByConference(ctx context.Context, conferenceID string) ([]*Session, error)
	ListByType(ctx context.Context, conferenceID, typeOfSession string) ([]*Session, error)
	ListByDate(ctx context.Context, conferenceID, date string) ([]*Session, error)
	ListBySpeaker(ctx context.Context, speakerName string) ([]*Session, error)
	// Query applies parsed filters: primary clauses through the repository,
	// excess inequality clauses in memory.
	Query(ctx context.Context, conferenceID string, filters []Filter) ([]*Session, error)
}
