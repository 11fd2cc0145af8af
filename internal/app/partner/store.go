package partner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrContextNotFound is returned by Store.Load when no context is
// persisted for the session.
var ErrContextNotFound = errors.New("no partner context persisted for session")

// Store is the persistence hook for partner contexts. The context itself
// is session state; durability across restarts is optional and entirely
// the caller's choice of Store implementation.
type Store interface {
	Save(ctx context.Context, sessionID string, pc *Context) error
	Load(ctx context.Context, sessionID string) (*Context, error)
	Delete(ctx context.Context, sessionID string) error
}

// NopStore is the default Store: contexts live only in process memory.
type NopStore struct{}

func (NopStore) Save(context.Context, string, *Context) error { return nil }

func (NopStore) Load(context.Context, string) (*Context, error) {
	return nil, ErrContextNotFound
}

func (NopStore) Delete(context.Context, string) error { return nil }

// RedisStore persists partner contexts in Redis as JSON with a TTL, for
// deployments that want the active branding to survive a restart.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore with the given client and TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(sessionID string) string {
	return "partner:context:" + sessionID
}

// Save stores the context under the session key.
func (s *RedisStore) Save(ctx context.Context, sessionID string, pc *Context) error {
	payload, err := json.Marshal(pc)
	if err != nil {
		return fmt.Errorf("failed to marshal partner context: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(sessionID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to persist partner context: %w", err)
	}

	return nil
}

// Load retrieves the context for the session key.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (*Context, error) {
	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrContextNotFound
		}
		return nil, fmt.Errorf("failed to load partner context: %w", err)
	}

	pc := &Context{}
	if err := json.Unmarshal(payload, pc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal partner context: %w", err)
	}

	return pc, nil
}

// Delete drops the persisted context for the session key.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete partner context: %w", err)
	}
	return nil
}
