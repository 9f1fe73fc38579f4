package services

import (
	"context"
	"fmt"
	"time"

	"conferencecentral/internal/domain"
)

type attendeeService struct {
	profileRepo      domain.ProfileRepository
	registrationRepo domain.RegistrationRepository
	wishlistRepo     domain.WishlistRepository
	confRepo         domain.ConferenceRepository
	sessionRepo      domain.SessionRepository
	contextTimeout   time.Duration
}

func NewAttendeeService(profileRepo domain.ProfileRepository,
	registrationRepo domain.RegistrationRepository,
	wishlistRepo domain.WishlistRepository,
	confRepo domain.ConferenceRepository,
	sessionRepo domain.SessionRepository,
	timeout time.Duration,
) domain.AttendeeService {
	return &attendeeService{
		profileRepo:      profileRepo,
		registrationRepo: registrationRepo,
		wishlistRepo:     wishlistRepo,
		confRepo:         confRepo,
		sessionRepo:      sessionRepo,
		contextTimeout:   timeout,
	}
}

func (s *attendeeService) Register(ctx context.Context, userID, email, conferenceID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.ensureProfile(ctx, userID, email); err != nil {
		return false, err
	}
	if err := s.registrationRepo.Register(ctx, conferenceID, userID); err != nil {
		return false, fmt.Errorf("failed to register: %w", err)
	}
	return true, nil
}

func (s *attendeeService) Unregister(ctx context.Context, userID, email, conferenceID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.ensureProfile(ctx, userID, email); err != nil {
		return false, err
	}
	removed, err := s.registrationRepo.Unregister(ctx, conferenceID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to unregister: %w", err)
	}
	return removed, nil
}

func (s *attendeeService) ListAttending(ctx context.Context, userID, email string) ([]*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.ensureProfile(ctx, userID, email); err != nil {
		return nil, err
	}
	ids, err := s.registrationRepo.ListConferenceIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	if len(ids) == 0 {
		return []*domain.Conference{}, nil
	}
	confs, err := s.confRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list conferences: %w", err)
	}
	return confs, nil
}

func (s *attendeeService) AddToWishlist(ctx context.Context, userID, email, sessionID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.ensureProfile(ctx, userID, email); err != nil {
		return err
	}
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if err := s.wishlistRepo.Add(ctx, userID, sessionID); err != nil {
		return fmt.Errorf("failed to add to wishlist: %w", err)
	}
	return nil
}

func (s *attendeeService) ListWishlistSessions(ctx context.Context, userID, email, conferenceID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.ensureProfile(ctx, userID, email); err != nil {
		return nil, err
	}
	if _, err := s.confRepo.GetByID(ctx, conferenceID); err != nil {
		return nil, fmt.Errorf("failed to get conference: %w", err)
	}
	ids, err := s.wishlistRepo.ListSessionIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}
	if len(ids) == 0 {
		return []*domain.Session{}, nil
	}
	sessions, err := s.sessionRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	scoped := make([]*domain.Session, 0, len(sessions))
	for _, sess := range sessions {
		if sess.ConferenceID == conferenceID {
			scoped = append(scoped, sess)
		}
	}
	return scoped, nil
}

func (s *attendeeService) ListProfilesWishingSession(ctx context.Context, sessionID string) ([]*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	profiles, err := s.profileRepo.ListBySessionWish(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishing profiles: %w", err)
	}
	return profiles, nil
}

func (s *attendeeService) ensureProfile(ctx context.Context, userID, email string) error {
	if _, _, err := s.profileRepo.GetOrCreate(ctx, userID, defaultDisplayName(email), email); err != nil {
		return fmt.Errorf("failed to ensure profile: %w", err)
	}
	return nil
}
