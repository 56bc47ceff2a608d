package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/techconnect/backend/internal/usecase/discover"
)

// ErrCacheMiss is returned when no recommendation list is cached.
var ErrCacheMiss = errors.New("discover cache miss")

type discoverCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDiscoverCache returns a redis-backed recommendation cache. Entries
// expire after ttl so profile edits show up without explicit invalidation.
func NewDiscoverCache(client *redis.Client, ttl time.Duration) discover.ResultCache {
	return &discoverCache{client: client, ttl: ttl}
}

func cacheKey(eventID, viewerID string) string {
	return "discover:" + eventID + ":" + viewerID
}

func (c *discoverCache) Get(ctx context.Context, eventID, viewerID string) ([]discover.MatchResult, error) {
	data, err := c.client.Get(ctx, cacheKey(eventID, viewerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read discover cache: %w", err)
	}

	var results []discover.MatchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to decode discover cache: %w", err)
	}
	return results, nil
}

func (c *discoverCache) Set(ctx context.Context, eventID, viewerID string, results []discover.MatchResult) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode discover cache: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(eventID, viewerID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write discover cache: %w", err)
	}
	return nil
}

func (c *discoverCache) Invalidate(ctx context.Context, eventID, viewerID string) error {
	if err := c.client.Del(ctx, cacheKey(eventID, viewerID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate discover cache: %w", err)
	}
	return nil
}
