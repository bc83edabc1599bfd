package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"dealshare/internal/cache"
)

const sessionKeyPrefix = "session:"

// sessionCache is the slice of the Redis client sessions need.
type sessionCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RedisStore keeps sessions in Redis so they survive web tier restarts.
// Expiry rides on the Redis key TTL. Redis failures propagate: Create
// never hands out a session id that was not durably written.
type RedisStore struct {
	cache sessionCache
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(cache *cache.Client) *RedisStore {
	return &RedisStore{cache: cache}
}

// Create starts a session for the user.
func (s *RedisStore) Create(ctx context.Context, userID uint) (string, error) {
	sid := uuid.New().String()
	payload := []byte(strconv.FormatUint(uint64(userID), 10))
	if err := s.cache.Set(ctx, sessionKeyPrefix+sid, payload, TTL); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return sid, nil
}

// Get resolves a session id. A missing or unreadable key is ErrNoSession;
// a Redis failure is reported as itself so callers do not mistake an
// outage for an expired login.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (uint, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return 0, fmt.Errorf("load session: %w", err)
	}
	if data == nil {
		return 0, ErrNoSession
	}
	userID, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return 0, ErrNoSession
	}
	return uint(userID), nil
}

// Destroy ends a session.
func (s *RedisStore) Destroy(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, sessionKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
