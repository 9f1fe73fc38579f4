package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

type profileService struct {
	profileRepo    domain.ProfileRepository
	contextTimeout time.Duration
}

func NewProfileService(profileRepo domain.ProfileRepository, timeout time.Duration) domain.ProfileService {
	return &profileService{profileRepo: profileRepo, contextTimeout: timeout}
}

func (s *profileService) Get(ctx context.Context, userID, email string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	prof, _, err := s.profileRepo.GetOrCreate(ctx, userID, defaultDisplayName(email), email)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return prof, nil
}

func (s *profileService) Save(ctx context.Context, userID, email, displayName, teeShirtSize string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	prof, _, err := s.profileRepo.GetOrCreate(ctx, userID, defaultDisplayName(email), email)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if displayName != "" {
		prof.DisplayName = displayName
	}
	if teeShirtSize != "" {
		prof.TeeShirtSize = teeShirtSize
	}
	prof.UpdatedAt = time.Now()
	if err := s.profileRepo.Update(ctx, prof); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return prof, nil
}

// defaultDisplayName derives an initial display name from the email's local
// part, matching what a new profile gets before the user sets one.
func defaultDisplayName(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
