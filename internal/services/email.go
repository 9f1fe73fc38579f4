package services

import (
	"context"
	"fmt"
	"log"

	"conferencecentral/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendConferenceCreated sends the conference-creation confirmation using the
// "conference_created" template and the given data.
func (s *emailService) SendConferenceCreated(ctx context.Context, data *domain.ConferenceCreatedEmailData) error {
	if data == nil {
		return fmt.Errorf("conference created data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("conference_created", data)
	if err != nil {
		return fmt.Errorf("failed to render conference_created template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send conference created email: %w", err)
	}
	log.Printf("[EMAIL] Conference created email sent to %s", data.Email)
	return nil
}
