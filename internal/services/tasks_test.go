package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conferencecentral/internal/domain"
)

func TestConfirmationEmailHandler(t *testing.T) {
	ctx := context.Background()
	mailer := &fakeMailer{}
	handler := NewConfirmationEmailHandler(NewEmailService(mailer, fakeRenderer{}))

	err := handler(ctx, map[string]string{
		domain.TaskParamEmail:          "ada@example.com",
		domain.TaskParamConferenceName: "GopherCon",
	})
	require.NoError(t, err)
	require.Len(t, mailer.to, 1)
	assert.Equal(t, "ada@example.com", mailer.to[0])
	assert.Equal(t, "subject:conference_created", mailer.subject[0])

	err = handler(ctx, map[string]string{})
	assert.Error(t, err)
}

func TestFeaturedSpeakerHandler(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()
	svc := NewAnnouncementService(newFakeConferenceRepo(), cache, 2*time.Second)
	handler := NewFeaturedSpeakerHandler(svc)

	err := handler(ctx, map[string]string{
		domain.TaskParamSpeaker: "Rob",
		domain.TaskParamCount:   "2",
	})
	require.NoError(t, err)
	assert.Equal(t, "Check out the sessions by Rob!", cache.values[featuredSpeakerCacheKey])

	err = handler(ctx, map[string]string{domain.TaskParamSpeaker: "Rob", domain.TaskParamCount: "two"})
	assert.Error(t, err)
}
