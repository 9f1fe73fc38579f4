package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

// Cache keys for the announcement and featured-speaker texts.
const (
	announcementCacheKey         = "announcement:recent"
	featuredSpeakerCacheKey      = "featured_speaker"
	featuredSpeakerCountCacheKey = "featured_speaker:count"
)

const announcementPrefix = "Last chance to attend! The following conferences are nearly sold out: "

type announcementService struct {
	confRepo       domain.ConferenceRepository
	cache          domain.Cache
	contextTimeout time.Duration
}

func NewAnnouncementService(confRepo domain.ConferenceRepository, cache domain.Cache, timeout time.Duration) domain.AnnouncementService {
	return &announcementService{confRepo: confRepo, cache: cache, contextTimeout: timeout}
}

func (s *announcementService) Announcement(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	value, err := s.cache.Get(ctx, announcementCacheKey)
	if err != nil {
		return "", fmt.Errorf("failed to read announcement: %w", err)
	}
	return value, nil
}

func (s *announcementService) FeaturedSpeaker(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	value, err := s.cache.Get(ctx, featuredSpeakerCacheKey)
	if err != nil {
		return "", fmt.Errorf("failed to read featured speaker: %w", err)
	}
	return value, nil
}

func (s *announcementService) RecomputeAnnouncement(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	names, err := s.confRepo.ListAlmostSoldOutNames(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list almost sold out conferences: %w", err)
	}
	if len(names) == 0 {
		if err := s.cache.Delete(ctx, announcementCacheKey); err != nil {
			return "", fmt.Errorf("failed to clear announcement: %w", err)
		}
		return "", nil
	}
	announcement := announcementPrefix + strings.Join(names, ", ")
	if err := s.cache.Set(ctx, announcementCacheKey, announcement); err != nil {
		return "", fmt.Errorf("failed to cache announcement: %w", err)
	}
	return announcement, nil
}

func (s *announcementService) SetFeaturedSpeaker(ctx context.Context, speaker string, count int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// A speaker is featured once they have more than one session in a
	// conference.
	if speaker == "" || count < 2 {
		return nil
	}
	cached, err := s.cache.Get(ctx, featuredSpeakerCountCacheKey)
	if err != nil {
		return fmt.Errorf("failed to read featured speaker count: %w", err)
	}
	cachedCount, _ := strconv.Atoi(cached)
	if count < cachedCount {
		return nil
	}
	message := fmt.Sprintf("Check out the sessions by %s!", speaker)
	if err := s.cache.Set(ctx, featuredSpeakerCacheKey, message); err != nil {
		return fmt.Errorf("failed to cache featured speaker: %w", err)
	}
	if err := s.cache.Set(ctx, featuredSpeakerCountCacheKey, strconv.Itoa(count)); err != nil {
		return fmt.Errorf("failed to cache featured speaker count: %w", err)
	}
	return nil
}
