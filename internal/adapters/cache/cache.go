// Package cache provides domain.Cache implementations for the announcement
// and featured-speaker texts. Values are best effort: a missing key reads as
// the empty string and callers never treat the cache as authoritative.
package cache

import (
	"context"
	"errors"
	"log"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"conferencecentral/config"
	"conferencecentral/internal/domain"
)

// New creates a cache from config. Provider "redis" uses a Redis server;
// "memory" uses an in-process store; "noop" or unknown discards everything.
// A Redis server that cannot be reached at startup degrades to noop.
func New(cfg config.CacheConfig) domain.Cache {
	switch cfg.Provider {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[CACHE] Redis at %s unreachable (%v), using noop", cfg.RedisAddr, err)
			return &noopCache{}
		}
		return &redisCache{client: client}
	case "memory":
		return &memoryCache{store: gocache.New(gocache.NoExpiration, 10*time.Minute)}
	case "noop":
		return &noopCache{}
	default:
		log.Printf("[CACHE] Unknown cache provider %q, using noop", cfg.Provider)
		return &noopCache{}
	}
}

type redisCache struct {
	client *redis.Client
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (c *redisCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, key, value, 0).Err()
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

type memoryCache struct {
	store *gocache.Cache
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := c.store.Get(key); ok {
		if s, ok := v.(string); ok {
			return s, nil
		}
	}
	return "", nil
}

func (c *memoryCache) Set(_ context.Context, key, value string) error {
	c.store.Set(key, value, gocache.NoExpiration)
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.store.Delete(key)
	return nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (string, error) { return "", nil }
func (noopCache) Set(context.Context, string, string) error   { return nil }
func (noopCache) Delete(context.Context, string) error        { return nil }
