package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conferencecentral/internal/domain"
)

type sessionFixture struct {
	sessionRepo *fakeSessionRepo
	confRepo    *fakeConferenceRepo
	speakerRepo *fakeSpeakerRepo
	profileRepo *fakeProfileRepo
	queue       *fakeTaskQueue
	svc         domain.SessionService
	confID      string
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	f := &sessionFixture{
		sessionRepo: newFakeSessionRepo(),
		confRepo:    newFakeConferenceRepo(),
		speakerRepo: newFakeSpeakerRepo(),
		profileRepo: newFakeProfileRepo(),
		queue:       &fakeTaskQueue{},
	}
	f.svc = NewSessionService(f.sessionRepo, f.confRepo, f.speakerRepo, f.profileRepo, f.queue, 2*time.Second)
	conf := &domain.Conference{Name: "Conf", OrganizerID: "owner-1"}
	require.NoError(t, f.confRepo.Create(context.Background(), conf))
	f.confID = conf.ID
	return f
}

func validSession(conferenceID string) *domain.Session {
	return &domain.Session{
		ConferenceID: conferenceID,
		Name:         "Concurrency Patterns",
		SpeakerEmail: "rob@example.com",
		Date:         "2026-06-15",
		StartTime:    "14:00",
		Duration:     45,
	}
}

func TestSessionService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates session with defaults and lazy speaker", func(t *testing.T) {
		f := newSessionFixture(t)

		sess, err := f.svc.Create(ctx, "owner-1", validSession(f.confID), "Rob")
		require.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, domain.SessionTypeNotSpecified, sess.TypeOfSession)
		assert.Equal(t, domain.DefaultHighlights, sess.Highlights)
		assert.Equal(t, "Rob", sess.SpeakerName)

		speaker, err := f.speakerRepo.GetByEmail(ctx, "rob@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Rob", speaker.Name)
	})

	t.Run("links speaker to existing profile", func(t *testing.T) {
		f := newSessionFixture(t)
		_, _, err := f.profileRepo.GetOrCreate(ctx, "user-9", "Rob", "rob@example.com")
		require.NoError(t, err)

		_, err = f.svc.Create(ctx, "owner-1", validSession(f.confID), "Rob")
		require.NoError(t, err)

		speaker, err := f.speakerRepo.GetByEmail(ctx, "rob@example.com")
		require.NoError(t, err)
		assert.Equal(t, "user-9", speaker.ProfileUserID)
	})

	t.Run("existing speaker is not renamed", func(t *testing.T) {
		f := newSessionFixture(t)
		_, err := f.svc.Create(ctx, "owner-1", validSession(f.confID), "Rob")
		require.NoError(t, err)

		sess2 := validSession(f.confID)
		sess2.Name = "Another Talk"
		_, err = f.svc.Create(ctx, "owner-1", sess2, "Robert")
		require.NoError(t, err)

		speaker, err := f.speakerRepo.GetByEmail(ctx, "rob@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Rob", speaker.Name)
	})

	t.Run("enqueues featured speaker task with session count", func(t *testing.T) {
		f := newSessionFixture(t)
		_, err := f.svc.Create(ctx, "owner-1", validSession(f.confID), "Rob")
		require.NoError(t, err)
		sess2 := validSession(f.confID)
		sess2.Name = "Second Talk"
		_, err = f.svc.Create(ctx, "owner-1", sess2, "Rob")
		require.NoError(t, err)

		require.Len(t, f.queue.tasks, 2)
		last := f.queue.tasks[1]
		assert.Equal(t, domain.TaskSetFeaturedSpeaker, last.Handler)
		assert.Equal(t, "Rob", last.Params[domain.TaskParamSpeaker])
		assert.Equal(t, strconv.Itoa(2), last.Params[domain.TaskParamCount])
	})

	t.Run("only the organizer can add sessions", func(t *testing.T) {
		f := newSessionFixture(t)

		_, err := f.svc.Create(ctx, "intruder", validSession(f.confID), "Rob")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown conference", func(t *testing.T) {
		f := newSessionFixture(t)

		_, err := f.svc.Create(ctx, "owner-1", validSession("conf-missing"), "Rob")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		f := newSessionFixture(t)
		cases := []struct {
			name   string
			mutate func(*domain.Session)
		}{
			{"missing name", func(s *domain.Session) { s.Name = "" }},
			{"missing speaker email", func(s *domain.Session) { s.SpeakerEmail = "" }},
			{"bad date", func(s *domain.Session) { s.Date = "15/06/2026" }},
			{"bad start time", func(s *domain.Session) { s.StartTime = "2pm" }},
			{"negative duration", func(s *domain.Session) { s.Duration = -5 }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				sess := validSession(f.confID)
				tc.mutate(sess)
				_, err := f.svc.Create(ctx, "owner-1", sess, "Rob")
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			})
		}
	})
}

func TestSessionService_Query(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	f.sessionRepo.queryResult = []*domain.Session{
		{ID: "s1", ConferenceID: f.confID, Name: "Short", Duration: 45, StartTime: "15:00", SpeakerEmail: "rob@example.com"},
		{ID: "s2", ConferenceID: f.confID, Name: "Early", Duration: 60, StartTime: "10:00", SpeakerEmail: "rob@example.com"},
	}

	sessions, err := f.svc.Query(ctx, f.confID, []domain.Filter{
		{Field: "DURATION", Operator: "GT", Value: "30"},
		{Field: "START_TIME", Operator: "GTEQ", Value: "14:00"},
	})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "s1", sessions[0].ID)

	require.NotNil(t, f.sessionRepo.lastFilterSet)
	assert.Len(t, f.sessionRepo.lastFilterSet.Primary, 1)
	assert.Len(t, f.sessionRepo.lastFilterSet.Excess, 1)
}

func TestSessionService_ListBySpeaker(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	f.sessionRepo.bySpeakerName = []*domain.Session{
		{ID: "s1", Name: "Talk A", SpeakerEmail: "rob@example.com"},
	}

	sessions, err := f.svc.ListBySpeaker(ctx, "Rob")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Rob", sessions[0].SpeakerName)

	_, err = f.svc.ListBySpeaker(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSessionService_ListByConference(t *testing.T) {
	ctx := context.Background()
	f := newSessionFixture(t)
	_, err := f.svc.Create(ctx, "owner-1", validSession(f.confID), "Rob")
	require.NoError(t, err)

	sessions, err := f.svc.ListByConference(ctx, f.confID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Rob", sessions[0].SpeakerName)

	_, err = f.svc.ListByConference(ctx, "conf-missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
