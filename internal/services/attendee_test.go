package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conferencecentral/internal/domain"
)

type attendeeFixture struct {
	profileRepo  *fakeProfileRepo
	registration *fakeRegistrationRepo
	wishlist     *fakeWishlistRepo
	confRepo     *fakeConferenceRepo
	sessionRepo  *fakeSessionRepo
	svc          domain.AttendeeService
	confID       string
	sessionID    string
}

func newAttendeeFixture(t *testing.T) *attendeeFixture {
	t.Helper()
	f := &attendeeFixture{
		profileRepo:  newFakeProfileRepo(),
		registration: newFakeRegistrationRepo(),
		wishlist:     newFakeWishlistRepo(),
		confRepo:     newFakeConferenceRepo(),
		sessionRepo:  newFakeSessionRepo(),
	}
	f.svc = NewAttendeeService(f.profileRepo, f.registration, f.wishlist, f.confRepo, f.sessionRepo, 2*time.Second)
	conf := &domain.Conference{Name: "Conf", OrganizerID: "owner-1", MaxAttendees: 10, SeatsAvailable: 10}
	require.NoError(t, f.confRepo.Create(context.Background(), conf))
	f.confID = conf.ID
	sess := &domain.Session{ConferenceID: f.confID, Name: "Talk"}
	require.NoError(t, f.sessionRepo.Create(context.Background(), sess))
	f.sessionID = sess.ID
	return f
}

func TestAttendeeService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and creates profile lazily", func(t *testing.T) {
		f := newAttendeeFixture(t)

		ok, err := f.svc.Register(ctx, "user-1", "user1@example.com", f.confID)
		require.NoError(t, err)
		assert.True(t, ok)

		prof, err := f.profileRepo.GetByUserID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "user1", prof.DisplayName)
	})

	t.Run("duplicate registration conflicts", func(t *testing.T) {
		f := newAttendeeFixture(t)

		_, err := f.svc.Register(ctx, "user-1", "user1@example.com", f.confID)
		require.NoError(t, err)
		_, err = f.svc.Register(ctx, "user-1", "user1@example.com", f.confID)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestAttendeeService_Unregister(t *testing.T) {
	ctx := context.Background()
	f := newAttendeeFixture(t)

	_, err := f.svc.Register(ctx, "user-1", "user1@example.com", f.confID)
	require.NoError(t, err)

	removed, err := f.svc.Unregister(ctx, "user-1", "user1@example.com", f.confID)
	require.NoError(t, err)
	assert.True(t, removed)

	// not registered anymore: false, no error
	removed, err = f.svc.Unregister(ctx, "user-1", "user1@example.com", f.confID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestAttendeeService_ListAttending(t *testing.T) {
	ctx := context.Background()
	f := newAttendeeFixture(t)

	confs, err := f.svc.ListAttending(ctx, "user-1", "user1@example.com")
	require.NoError(t, err)
	assert.Empty(t, confs)

	_, err = f.svc.Register(ctx, "user-1", "user1@example.com", f.confID)
	require.NoError(t, err)

	confs, err = f.svc.ListAttending(ctx, "user-1", "user1@example.com")
	require.NoError(t, err)
	require.Len(t, confs, 1)
	assert.Equal(t, f.confID, confs[0].ID)
}

func TestAttendeeService_Wishlist(t *testing.T) {
	ctx := context.Background()

	t.Run("add and list scoped to conference", func(t *testing.T) {
		f := newAttendeeFixture(t)
		otherConf := &domain.Conference{Name: "Other", OrganizerID: "owner-1"}
		require.NoError(t, f.confRepo.Create(ctx, otherConf))
		otherSess := &domain.Session{ConferenceID: otherConf.ID, Name: "Elsewhere"}
		require.NoError(t, f.sessionRepo.Create(ctx, otherSess))

		require.NoError(t, f.svc.AddToWishlist(ctx, "user-1", "user1@example.com", f.sessionID))
		require.NoError(t, f.svc.AddToWishlist(ctx, "user-1", "user1@example.com", otherSess.ID))

		sessions, err := f.svc.ListWishlistSessions(ctx, "user-1", "user1@example.com", f.confID)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, f.sessionID, sessions[0].ID)
	})

	t.Run("duplicate wish conflicts", func(t *testing.T) {
		f := newAttendeeFixture(t)

		require.NoError(t, f.svc.AddToWishlist(ctx, "user-1", "user1@example.com", f.sessionID))
		err := f.svc.AddToWishlist(ctx, "user-1", "user1@example.com", f.sessionID)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newAttendeeFixture(t)

		err := f.svc.AddToWishlist(ctx, "user-1", "user1@example.com", "sess-missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("profiles wishing a session", func(t *testing.T) {
		f := newAttendeeFixture(t)
		f.profileRepo.wishing = []*domain.Profile{{UserID: "user-1", DisplayName: "Ada"}}

		profiles, err := f.svc.ListProfilesWishingSession(ctx, f.sessionID)
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, "Ada", profiles[0].DisplayName)

		_, err = f.svc.ListProfilesWishingSession(ctx, "sess-missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestProfileService(t *testing.T) {
	ctx := context.Background()

	t.Run("get creates lazily with defaults", func(t *testing.T) {
		profileRepo := newFakeProfileRepo()
		svc := NewProfileService(profileRepo, 2*time.Second)

		prof, err := svc.Get(ctx, "user-1", "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, "ada", prof.DisplayName)
		assert.Equal(t, domain.TeeShirtSizeNotSpecified, prof.TeeShirtSize)
	})

	t.Run("save updates fields, empty values keep current", func(t *testing.T) {
		profileRepo := newFakeProfileRepo()
		svc := NewProfileService(profileRepo, 2*time.Second)

		prof, err := svc.Save(ctx, "user-1", "ada@example.com", "Ada Lovelace", "M_W")
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", prof.DisplayName)
		assert.Equal(t, "M_W", prof.TeeShirtSize)

		prof, err = svc.Save(ctx, "user-1", "ada@example.com", "", "")
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", prof.DisplayName)
		assert.Equal(t, "M_W", prof.TeeShirtSize)
	})
}
