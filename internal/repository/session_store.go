package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/admin-console/internal/domain"
)

// SessionStore records issued access tokens so they can be revoked on logout.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type redisSessionStore struct {
	client *redis.Client
	prefix string
}

// NewRedisSessionStore persists sessions in Redis with a TTL matching the
// token expiry.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client, prefix: "session:"}
}

func (s *redisSessionStore) Save(ctx context.Context, session domain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session %s already expired", session.ID)
	}
	return s.client.Set(ctx, s.prefix+session.ID, session.AccountID, ttl).Err()
}

func (s *redisSessionStore) Exists(ctx context.Context, id string) (bool, error) {
	err := s.client.Get(ctx, s.prefix+id).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.prefix+id).Err()
}

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	now      func() time.Time
}

// NewMemorySessionStore keeps sessions in process memory.
func NewMemorySessionStore(now func() time.Time) SessionStore {
	if now == nil {
		now = time.Now
	}
	return &memorySessionStore{sessions: make(map[string]domain.Session), now: now}
}

func (s *memorySessionStore) Save(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *memorySessionStore) Exists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return false, nil
	}
	if !s.now().Before(session.ExpiresAt) {
		delete(s.sessions, id)
		return false, nil
	}
	return true, nil
}

func (s *memorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
