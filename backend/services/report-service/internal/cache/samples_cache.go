package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"eyewave/backend/services/report-service/internal/analytics"
)

// ErrMiss is returned when no cached sample set exists for the key.
var ErrMiss = errors.New("cache: miss")

// SamplesCache keeps the normalized sample records of recently viewed
// sessions so slider drags and zoom requests re-slice in memory instead of
// refetching from the platform API. Entries expire on TTL; there is no
// invalidation because session data is immutable once recorded.
type SamplesCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSamplesCache returns a redis-backed cache.
func NewSamplesCache(client *redis.Client, ttl time.Duration) *SamplesCache {
	return &SamplesCache{client: client, ttl: ttl}
}

func (c *SamplesCache) key(userID, gameID int64) string {
	return fmt.Sprintf("samples:%d:%d", userID, gameID)
}

// Save caches the record slice.
func (c *SamplesCache) Save(ctx context.Context, userID, gameID int64, records []analytics.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID, gameID), data, c.ttl).Err()
}

// Get returns the cached records or ErrMiss.
func (c *SamplesCache) Get(ctx context.Context, userID, gameID int64) ([]analytics.Record, error) {
	data, err := c.client.Get(ctx, c.key(userID, gameID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	var records []analytics.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
