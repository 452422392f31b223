package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultSessionTTL = 14 * 24 * time.Hour

// SessionStore keeps session contexts server-side as Redis hashes.
// Key format: session:<session_id>
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore whose entries expire after ttl of
// inactivity. Every request that carries a live session either saves or
// touches it.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Load returns the values stored under id. A missing or expired session
// yields an empty map.
func (s *SessionStore) Load(ctx context.Context, id string) (map[string]string, error) {
	values, err := s.client.HGetAll(ctx, s.key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("session load: %w", err)
	}
	return values, nil
}

// Save replaces the values stored under id and refreshes the expiry.
func (s *SessionStore) Save(ctx context.Context, id string, values map[string]string) error {
	key := s.key(id)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) == 0 {
			return nil
		}
		args := make([]interface{}, 0, len(values)*2)
		for k, v := range values {
			args = append(args, k, v)
		}
		pipe.HSet(ctx, key, args...)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Touch pushes the expiry of the session stored under id back to ttl from now.
// A session that already expired stays gone.
func (s *SessionStore) Touch(ctx context.Context, id string) error {
	if err := s.client.Expire(ctx, s.key(id), s.ttl).Err(); err != nil {
		return fmt.Errorf("session touch: %w", err)
	}
	return nil
}

// Destroy removes the session stored under id.
func (s *SessionStore) Destroy(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("session destroy: %w", err)
	}
	return nil
}

// TTL is the idle lifetime of a stored session.
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}
