package services

import (
	"context"
	"fmt"
	"strconv"

	"conferencecentral/internal/domain"
)

// NewConfirmationEmailHandler returns the task handler for
// domain.TaskSendConfirmationEmail.
func NewConfirmationEmailHandler(emailService domain.EmailService) domain.TaskHandlerFunc {
	return func(ctx context.Context, params map[string]string) error {
		email := params[domain.TaskParamEmail]
		if email == "" {
			return fmt.Errorf("confirmation email task missing %q param", domain.TaskParamEmail)
		}
		return emailService.SendConferenceCreated(ctx, &domain.ConferenceCreatedEmailData{
			Email:          email,
			ConferenceName: params[domain.TaskParamConferenceName],
		})
	}
}

// NewFeaturedSpeakerHandler returns the task handler for
// domain.TaskSetFeaturedSpeaker.
func NewFeaturedSpeakerHandler(announcements domain.AnnouncementService) domain.TaskHandlerFunc {
	return func(ctx context.Context, params map[string]string) error {
		speaker := params[domain.TaskParamSpeaker]
		count, err := strconv.Atoi(params[domain.TaskParamCount])
		if err != nil {
			return fmt.Errorf("featured speaker task has invalid %q param: %w", domain.TaskParamCount, err)
		}
		return announcements.SetFeaturedSpeaker(ctx, speaker, count)
	}
}
