package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"conferencecentral/internal/domain"
)

type conferenceService struct {
	confRepo       domain.ConferenceRepository
	profileRepo    domain.ProfileRepository
	taskQueue      domain.TaskQueue
	contextTimeout time.Duration
}

func NewConferenceService(confRepo domain.ConferenceRepository,
	profileRepo domain.ProfileRepository,
	taskQueue domain.TaskQueue,
	timeout time.Duration,
) domain.ConferenceService {
	return &conferenceService{
		confRepo:       confRepo,
		profileRepo:    profileRepo,
		taskQueue:      taskQueue,
		contextTimeout: timeout,
	}
}

func (s *conferenceService) Create(ctx context.Context, organizerID, organizerEmail string, conf *domain.Conference) (*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if conf.Name == "" {
		return nil, fmt.Errorf("%w: conference name is required", domain.ErrInvalidInput)
	}
	if conf.MaxAttendees < 0 {
		return nil, fmt.Errorf("%w: max attendees cannot be negative", domain.ErrInvalidInput)
	}
	if conf.City == "" {
		conf.City = domain.DefaultCity
	}
	if len(conf.Topics) == 0 {
		conf.Topics = domain.DefaultTopics()
	}
	month, err := monthFromStartDate(conf.StartDate)
	if err != nil {
		return nil, err
	}
	if err := validateDate(conf.EndDate); err != nil {
		return nil, err
	}
	conf.Month = month
	if conf.MaxAttendees > 0 {
		conf.SeatsAvailable = conf.MaxAttendees
	}
	conf.OrganizerID = organizerID
	conf.CreatedAt = time.Now()
	conf.UpdatedAt = time.Now()

	if err := s.confRepo.Create(ctx, conf); err != nil {
		return nil, fmt.Errorf("failed to create conference: %w", err)
	}

	task := domain.Task{
		Handler: domain.TaskSendConfirmationEmail,
		Params: map[string]string{
			domain.TaskParamEmail:          organizerEmail,
			domain.TaskParamConferenceName: conf.Name,
		},
	}
	if err := s.taskQueue.Enqueue(ctx, task); err != nil {
		log.Printf("[CONFERENCE] failed to enqueue confirmation email for %s: %v", conf.ID, err)
	}

	s.resolveOrganizerNames(ctx, []*domain.Conference{conf})
	return conf, nil
}

func (s *conferenceService) Update(ctx context.Context, userID, conferenceID string, upd *domain.ConferenceUpdate) (*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conf, err := s.confRepo.GetByID(ctx, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conference: %w", err)
	}
	if conf.OrganizerID != userID {
		return nil, fmt.Errorf("%w: only the organizer can update a conference", domain.ErrForbidden)
	}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, fmt.Errorf("%w: conference name cannot be empty", domain.ErrInvalidInput)
		}
		conf.Name = *upd.Name
	}
	if upd.Description != nil {
		conf.Description = *upd.Description
	}
	if upd.Topics != nil {
		conf.Topics = upd.Topics
	}
	if upd.City != nil {
		conf.City = *upd.City
	}
	if upd.StartDate != nil {
		conf.StartDate = upd.StartDate
		month, err := monthFromStartDate(conf.StartDate)
		if err != nil {
			return nil, err
		}
		conf.Month = month
	}
	if upd.EndDate != nil {
		if err := validateDate(upd.EndDate); err != nil {
			return nil, err
		}
		conf.EndDate = upd.EndDate
	}
	if upd.MaxAttendees != nil {
		if *upd.MaxAttendees < 0 {
			return nil, fmt.Errorf("%w: max attendees cannot be negative", domain.ErrInvalidInput)
		}
		conf.MaxAttendees = *upd.MaxAttendees
		if conf.SeatsAvailable > conf.MaxAttendees {
			conf.SeatsAvailable = conf.MaxAttendees
		}
	}
	conf.UpdatedAt = time.Now()

	if err := s.confRepo.Update(ctx, conf); err != nil {
		return nil, fmt.Errorf("failed to update conference: %w", err)
	}
	s.resolveOrganizerNames(ctx, []*domain.Conference{conf})
	return conf, nil
}

func (s *conferenceService) Get(ctx context.Context, conferenceID string) (*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conf, err := s.confRepo.GetByID(ctx, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conference: %w", err)
	}
	s.resolveOrganizerNames(ctx, []*domain.Conference{conf})
	return conf, nil
}

func (s *conferenceService) ListCreated(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	confs, err := s.confRepo.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conferences: %w", err)
	}
	s.resolveOrganizerNames(ctx, confs)
	return confs, nil
}

func (s *conferenceService) Query(ctx context.Context, filters []domain.Filter) ([]*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	fs, err := domain.ParseConferenceFilters(filters)
	if err != nil {
		return nil, err
	}
	confs, err := s.confRepo.Query(ctx, fs)
	if err != nil {
		return nil, fmt.Errorf("failed to query conferences: %w", err)
	}
	confs = domain.PostFilterConferences(fs.Excess, confs)
	s.resolveOrganizerNames(ctx, confs)
	return confs, nil
}

// resolveOrganizerNames fills the transient organizer display name on each
// conference. Best effort: a missing profile leaves the field empty.
func (s *conferenceService) resolveOrganizerNames(ctx context.Context, confs []*domain.Conference) {
	names := make(map[string]string)
	for _, conf := range confs {
		name, ok := names[conf.OrganizerID]
		if !ok {
			prof, err := s.profileRepo.GetByUserID(ctx, conf.OrganizerID)
			if err == nil {
				name = prof.DisplayName
			}
			names[conf.OrganizerID] = name
		}
		conf.OrganizerDisplayName = name
	}
}

func monthFromStartDate(startDate *string) (int, error) {
	if startDate == nil || *startDate == "" {
		return 0, nil
	}
	t, err := time.Parse(domain.DateLayout, *startDate)
	if err != nil {
		return 0, fmt.Errorf("%w: start date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return int(t.Month()), nil
}

func validateDate(date *string) error {
	if date == nil || *date == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, *date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return nil
}
