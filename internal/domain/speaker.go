package domain

import (
	"context"
	"time"
)

// Speaker represents a session speaker, keyed by email. A speaker record is
// created lazily the first time a session references its email.
// swagger:model Speaker
type Speaker struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	// ProfileUserID links the speaker to a user profile when one existed for
	// the email at creation time; empty otherwise.
	ProfileUserID string    `json:"profile_user_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// SpeakerRepository defines the interface for speaker storage.
type SpeakerRepository interface {
	// GetOrCreate returns the speaker for email, creating it with the given
	// name and profile link when absent. The boolean reports whether a new
	// record was created. An existing speaker is returned unchanged: a later
	// submission with a different name does not update the record. Known
	// limitation carried over from the original design.
	GetOrCreate(ctx context.Context, email, name, profileUserID string) (*Speaker, bool, error)
	GetByEmail(ctx context.Context, email string) (*Speaker, error)
	GetByName(ctx context.Context, name string) (*Speaker, error)
}
