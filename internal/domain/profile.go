package domain

import (
	"context"
	"time"
)

// TeeShirtSizeNotSpecified is the default shirt-size preference.
const TeeShirtSizeNotSpecified = "NOT_SPECIFIED"

// Profile represents a user's profile, keyed by the identity provider's user
// ID. Profiles are created lazily on first access.
// swagger:model Profile
type Profile struct {
	UserID       string    `json:"user_id"`
	DisplayName  string    `json:"display_name"`
	MainEmail    string    `json:"main_email"`
	TeeShirtSize string    `json:"tee_shirt_size"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfileRepository defines the interface for profile storage.
type ProfileRepository interface {
	// GetOrCreate returns the profile for userID, creating one with the given
	// display name and email when absent. The boolean reports whether a new
	// profile was created.
	GetOrCreate(ctx context.Context, userID, displayName, email string) (*Profile, bool, error)
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	Update(ctx context.Context, prof *Profile) error
	// ListBySessionWish returns the profiles of all users whose wishlist
	// contains the session.
	ListBySessionWish(ctx context.Context, sessionID string) ([]*Profile, error)
}

// ProfileService defines the business logic for profile access and updates.
type ProfileService interface {
	// Get returns the caller's profile, creating it lazily from the identity
	// claims when it does not exist yet.
	Get(ctx context.Context, userID, email string) (*Profile, error)
	// Save updates the user-modifiable fields (display name, shirt size) and
	// returns the stored profile. Empty values leave fields unchanged.
	Save(ctx context.Context, userID, email, displayName, teeShirtSize string) (*Profile, error)
}
