package domain

import (
	"context"
	"time"
)

// Default field values applied when a conference is created without them.
const (
	DefaultCity = "Default City"
)

// DefaultTopics returns the topics applied to a conference created without any.
func DefaultTopics() []string {
	return []string{"Default", "Topic"}
}

// Conference represents a conference owned by its organizer. Conferences are
// never hard-deleted.
// swagger:model Conference
type Conference struct {
	ID           string   `json:"id"`
	OrganizerID  string   `json:"organizer_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Topics       []string `json:"topics"`
	City         string   `json:"city"`
	StartDate    *string  `json:"start_date"` // YYYY-MM-DD
	EndDate      *string  `json:"end_date"`   // YYYY-MM-DD
	Month        int      `json:"month"`      // derived from StartDate; 0 when absent
	MaxAttendees int      `json:"max_attendees"`
	// SeatsAvailable is decremented on registration and incremented on
	// cancellation. Invariant: 0 <= SeatsAvailable <= MaxAttendees when
	// MaxAttendees > 0.
	SeatsAvailable int       `json:"seats_available"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// OrganizerDisplayName is resolved from the organizer's profile when the
	// conference is shaped for a response; it is not stored.
	OrganizerDisplayName string `json:"organizer_display_name,omitempty"`
}

// ConferenceUpdate carries the owner-mutable fields of a partial update.
// Nil pointers (and a nil Topics slice) leave the stored value unchanged.
type ConferenceUpdate struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Topics       []string `json:"topics"`
	City         *string  `json:"city"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	MaxAttendees *int     `json:"max_attendees"`
}

// ConferenceRepository defines the interface for conference storage
type ConferenceRepository interface {
	Create(ctx context.Context, conf *Conference) error
	GetByID(ctx context.Context, id string) (*Conference, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*Conference, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Conference, error)
	Update(ctx context.Context, conf *Conference) error
	// Query runs the primary clauses of fs as one conjunctive query, ordered
	// by the active inequality field (if any) then name. Excess clauses are
	// the caller's concern.
	Query(ctx context.Context, fs *FilterSet) ([]*Conference, error)
	// ListAlmostSoldOutNames returns the names of conferences with 1 to 5
	// seats remaining, used for the announcement cache.
	ListAlmostSoldOutNames(ctx context.Context) ([]string, error)
}

// ConferenceService defines the business logic for conference management.
type ConferenceService interface {
	// Create stores a new conference for the organizer, applying defaults and
	// deriving Month and SeatsAvailable, and dispatches a confirmation email
	// task. The organizer email is used for the confirmation.
	Create(ctx context.Context, organizerID, organizerEmail string, conf *Conference) (*Conference, error)
	// Update applies an owner-only partial update. ErrForbidden when the
	// caller does not own the conference.
	Update(ctx context.Context, userID, conferenceID string, upd *ConferenceUpdate) (*Conference, error)
	Get(ctx context.Context, conferenceID string) (*Conference, error)
	ListCreated(ctx context.Context, organizerID string) ([]*Conference, error)
	Query(ctx context.Context, filters []Filter) ([]*Conference, error)
}
