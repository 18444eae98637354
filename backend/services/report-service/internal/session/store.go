package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a session id has no stored token, either
// because it was cleared by logout or because it expired.
var ErrNotFound = errors.New("session: not found")

// Store keeps the upstream access token of each signed-in administrator,
// keyed by gateway session id. It is the single read/write/clear point for
// auth tokens; nothing else in the service touches them.
type Store interface {
	Set(ctx context.Context, sessionID, token string) error
	Get(ctx context.Context, sessionID string) (string, error)
	Clear(ctx context.Context, sessionID string) error
}

// RedisStore is the redis-backed Store used in deployments.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(sessionID string) string {
	return fmt.Sprintf("admin:session:%s", sessionID)
}

// Set stores the upstream token under the session id.
func (s *RedisStore) Set(ctx context.Context, sessionID, token string) error {
	return s.client.Set(ctx, s.key(sessionID), token, s.ttl).Err()
}

// Get returns the upstream token for the session id.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (string, error) {
	token, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Clear drops the session.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

type memoryEntry struct {
	token     string
	expiresAt time.Time
}

// MemoryStore is the in-process Store used when no redis address is
// configured and in tests. A ttl <= 0 disables expiry.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewMemoryStore returns an in-memory session store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

// Set stores the upstream token under the session id.
func (s *MemoryStore) Set(_ context.Context, sessionID, token string) error {
	entry := memoryEntry{token: token}
	if s.ttl > 0 {
		entry.expiresAt = time.Now().Add(s.ttl)
	}
	s.mu.Lock()
	s.entries[sessionID] = entry
	s.mu.Unlock()
	return nil
}

// Get returns the upstream token for the session id.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()
	if !ok {
		return "", ErrNotFound
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, sessionID)
		s.mu.Unlock()
		return "", ErrNotFound
	}
	return entry.token, nil
}

// Clear drops the session.
func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}
