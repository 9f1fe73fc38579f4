package domain

import "context"

// RegistrationRepository defines storage operations for conference
// registrations. Register and Unregister mutate both the registration row and
// the conference seat count inside a single transaction; the two writes
// either both commit or neither does.
type RegistrationRepository interface {
	// Register records attendance and decrements the seat count.
	// ErrNotFound when the conference does not exist; ErrConflict when the
	// user is already registered or no seats remain.
	Register(ctx context.Context, conferenceID, userID string) error
	// Unregister removes attendance and increments the seat count. Returns
	// false without error when the user was not registered; the seat count is
	// left unchanged in that case.
	Unregister(ctx context.Context, conferenceID, userID string) (bool, error)
	// ListConferenceIDs returns the conference IDs the user is registered for.
	ListConferenceIDs(ctx context.Context, userID string) ([]string, error)
}

// WishlistRepository defines storage operations for session wishlists.
type WishlistRepository interface {
	// Add records the user's intent to attend the session. ErrConflict when
	// the session is already on the wishlist.
	Add(ctx context.Context, userID, sessionID string) error
	// ListSessionIDs returns the session IDs on the user's wishlist.
	ListSessionIDs(ctx context.Context, userID string) ([]string, error)
}

// AttendeeService defines attendee-facing operations: registration, the
// attending list, and wishlists. Operations that may be the user's first
// touch of the system create the profile lazily from identity claims.
type AttendeeService interface {
	// Register registers the user for the conference. ErrConflict on
	// duplicate registration or when no seats remain.
	Register(ctx context.Context, userID, email, conferenceID string) (bool, error)
	// Unregister cancels the registration. Returns false without error when
	// the user was not registered.
	Unregister(ctx context.Context, userID, email, conferenceID string) (bool, error)
	ListAttending(ctx context.Context, userID, email string) ([]*Conference, error)
	// AddToWishlist puts the session on the user's wishlist. ErrConflict on
	// duplicates.
	AddToWishlist(ctx context.Context, userID, email, sessionID string) error
	// ListWishlistSessions returns the conference's sessions that are on the
	// user's wishlist.
	ListWishlistSessions(ctx context.Context, userID, email, conferenceID string) ([]*Session, error)
	// ListProfilesWishingSession returns every profile whose wishlist holds
	// the session.
	ListProfilesWishingSession(ctx context.Context, sessionID string) ([]*Profile, error)
}
