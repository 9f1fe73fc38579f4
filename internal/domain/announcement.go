package domain

import "context"

// AnnouncementService maintains the best-effort announcement and
// featured-speaker cache entries. Reads tolerate staleness or absence and
// return "" rather than blocking.
type AnnouncementService interface {
	// Announcement returns the cached "almost sold out" announcement, or "".
	Announcement(ctx context.Context) (string, error)
	// FeaturedSpeaker returns the cached featured-speaker text, or "".
	FeaturedSpeaker(ctx context.Context) (string, error)
	// RecomputeAnnouncement rebuilds the announcement from conferences with 1
	// to 5 seats remaining, caching the result or deleting the entry when
	// there are none. Returns the new announcement.
	RecomputeAnnouncement(ctx context.Context) (string, error)
	// SetFeaturedSpeaker updates the featured-speaker cache entry when count
	// is at least the cached count.
	SetFeaturedSpeaker(ctx context.Context, speaker string, count int) error
}
