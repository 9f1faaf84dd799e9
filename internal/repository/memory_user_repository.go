package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/admin-console/internal/domain"
)

// MemoryUserRepository keeps the directory in process memory. Every mutation
// holds the write lock for its whole duration, so List never observes a
// partially applied change.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []domain.User
	now   func() time.Time
	newID func() string
}

// MemoryOption customizes a MemoryUserRepository.
type MemoryOption func(*MemoryUserRepository)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) MemoryOption {
	return func(r *MemoryUserRepository) { r.now = now }
}

// WithIDGenerator overrides identifier generation.
func WithIDGenerator(gen func() string) MemoryOption {
	return func(r *MemoryUserRepository) { r.newID = gen }
}

// NewMemoryUserRepository builds a repository holding copies of seed.
func NewMemoryUserRepository(seed []domain.User, opts ...MemoryOption) *MemoryUserRepository {
	r := &MemoryUserRepository{
		users: make([]domain.User, 0, len(seed)),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, u := range seed {
		r.users = append(r.users, u.Clone())
	}
	return r
}

func (r *MemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTakenLocked(user.Email, "") {
		return ErrDuplicateEmail
	}
	user.ID = r.newID()
	user.CreatedAt = r.now()
	r.users = append(r.users, user.Clone())
	return nil
}

func (r *MemoryUserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(user.ID)
	if idx < 0 {
		return ErrNotFound
	}
	if r.emailTakenLocked(user.Email, user.ID) {
		return ErrDuplicateEmail
	}
	updated := user.Clone()
	updated.CreatedAt = r.users[idx].CreatedAt
	r.users[idx] = updated
	user.CreatedAt = updated.CreatedAt
	return nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return ErrNotFound
	}
	r.users = append(r.users[:idx:idx], r.users[idx+1:]...)
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	u := r.users[idx].Clone()
	return &u, nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			clone := u.Clone()
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

// List returns a deep copy of the current record set in insertion order.
func (r *MemoryUserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Clone())
	}
	return out, nil
}

func (r *MemoryUserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func (r *MemoryUserRepository) indexLocked(id string) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryUserRepository) emailTakenLocked(email, exceptID string) bool {
	for _, u := range r.users {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
