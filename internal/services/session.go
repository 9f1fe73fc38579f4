package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"conferencecentral/internal/domain"
)

type sessionService struct {
	sessionRepo    domain.SessionRepository
	confRepo       domain.ConferenceRepository
	speakerRepo    domain.SpeakerRepository
	profileRepo    domain.ProfileRepository
	taskQueue      domain.TaskQueue
	contextTimeout time.Duration
}

func NewSessionService(sessionRepo domain.SessionRepository,
	confRepo domain.ConferenceRepository,
	speakerRepo domain.SpeakerRepository,
	profileRepo domain.ProfileRepository,
	taskQueue domain.TaskQueue,
	timeout time.Duration,
) domain.SessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		confRepo:       confRepo,
		speakerRepo:    speakerRepo,
		profileRepo:    profileRepo,
		taskQueue:      taskQueue,
		contextTimeout: timeout,
	}
}

func (s *sessionService) Create(ctx context.Context, userID string, sess *domain.Session, speakerName string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if sess.Name == "" {
		return nil, fmt.Errorf("%w: session name is required", domain.ErrInvalidInput)
	}
	if sess.SpeakerEmail == "" {
		return nil, fmt.Errorf("%w: speaker email is required", domain.ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateLayout, sess.Date); err != nil {
		return nil, fmt.Errorf("%w: session date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if _, err := time.Parse(domain.TimeLayout, sess.StartTime); err != nil {
		return nil, fmt.Errorf("%w: session start time must be HH:MM", domain.ErrInvalidInput)
	}
	if sess.Duration < 0 {
		return nil, fmt.Errorf("%w: session duration cannot be negative", domain.ErrInvalidInput)
	}

	conf, err := s.confRepo.GetByID(ctx, sess.ConferenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conference: %w", err)
	}
	if conf.OrganizerID != userID {
		return nil, fmt.Errorf("%w: only the organizer can add sessions", domain.ErrForbidden)
	}

	// Link the speaker to a profile when one exists for the email.
	profileUserID := ""
	if prof, err := s.profileRepo.GetByEmail(ctx, sess.SpeakerEmail); err == nil {
		profileUserID = prof.UserID
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up speaker profile: %w", err)
	}
	speaker, _, err := s.speakerRepo.GetOrCreate(ctx, sess.SpeakerEmail, speakerName, profileUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve speaker: %w", err)
	}

	if sess.TypeOfSession == "" {
		sess.TypeOfSession = domain.SessionTypeNotSpecified
	}
	if sess.Highlights == "" {
		sess.Highlights = domain.DefaultHighlights
	}
	sess.CreatedAt = time.Now()

	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	sess.SpeakerName = speaker.Name

	count, err := s.sessionRepo.CountBySpeaker(ctx, sess.ConferenceID, sess.SpeakerEmail)
	if err != nil {
		log.Printf("[SESSION] failed to count sessions for speaker %s: %v", sess.SpeakerEmail, err)
		return sess, nil
	}
	task := domain.Task{
		Handler: domain.TaskSetFeaturedSpeaker,
		Params: map[string]string{
			domain.TaskParamSpeaker: speaker.Name,
			domain.TaskParamCount:   strconv.Itoa(count),
		},
	}
	if err := s.taskQueue.Enqueue(ctx, task); err != nil {
		log.Printf("[SESSION] failed to enqueue featured speaker task for %s: %v", sess.ID, err)
	}
	return sess, nil
}

func (s *sessionService) ListByConference(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.confRepo.GetByID(ctx, conferenceID); err != nil {
		return nil, fmt.Errorf("failed to get conference: %w", err)
	}
	sessions, err := s.sessionRepo.ListByConference(ctx, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	s.resolveSpeakerNames(ctx, sessions)
	return sessions, nil
}

func (s *sessionService) ListByType(ctx context.Context, conferenceID, typeOfSession string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if typeOfSession == "" {
		return nil, fmt.Errorf("%w: session type is required", domain.ErrInvalidInput)
	}
	if _, err := s.confRepo.GetByID(ctx, conferenceID); err != nil {
		return nil, fmt.Errorf("failed to get conference: %w", err)
	}
	sessions, err := s.sessionRepo.ListByType(ctx, conferenceID, typeOfSession)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions by type: %w", err)
	}
	s.resolveSpeakerNames(ctx, sessions)
	return sessions, nil
}

func (s *sessionService) ListByDate(ctx context.Context, conferenceID, date string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if _, err := s.confRepo.GetByID(ctx, conferenceID); err != nil {
		return nil, fmt.Errorf("failed to get conference: %w", err)
	}
	sessions, err := s.sessionRepo.ListByDate(ctx, conferenceID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions by date: %w", err)
	}
	s.resolveSpeakerNames(ctx, sessions)
	return sessions, nil
}

func (s *sessionService) ListBySpeaker(ctx context.Context, speakerName string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if speakerName == "" {
		return nil, fmt.Errorf("%w: speaker name is required", domain.ErrInvalidInput)
	}
	sessions, err := s.sessionRepo.ListBySpeakerName(ctx, speakerName)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions by speaker: %w", err)
	}
	for _, sess := range sessions {
		sess.SpeakerName = speakerName
	}
	return sessions, nil
}

func (s *sessionService) Query(ctx context.Context, conferenceID string, filters []domain.Filter) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.confRepo.GetByID(ctx, conferenceID); err != nil {
		return nil, fmt.Errorf("failed to get conference: %w", err)
	}
	fs, err := domain.ParseSessionFilters(filters)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.Query(ctx, conferenceID, fs)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	sessions = domain.PostFilterSessions(fs.Excess, sessions)
	s.resolveSpeakerNames(ctx, sessions)
	return sessions, nil
}

// resolveSpeakerNames fills the transient speaker name on each session. Best
// effort: a missing speaker record leaves the field empty.
func (s *sessionService) resolveSpeakerNames(ctx context.Context, sessions []*domain.Session) {
	names := make(map[string]string)
	for _, sess := range sessions {
		name, ok := names[sess.SpeakerEmail]
		if !ok {
			speaker, err := s.speakerRepo.GetByEmail(ctx, sess.SpeakerEmail)
			if err == nil {
				name = speaker.Name
			}
			names[sess.SpeakerEmail] = name
		}
		sess.SpeakerName = name
	}
}
