package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/admin-console/internal/domain"
)

// ProfileRepository stores per-account profile and settings data.
type ProfileRepository interface {
	Get(ctx context.Context, accountID string) (*domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) error
}

type memoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
}

// NewMemoryProfileRepository builds an empty in-memory profile store.
func NewMemoryProfileRepository() ProfileRepository {
	return &memoryProfileRepository{profiles: make(map[string]domain.Profile)}
}

func (r *memoryProfileRepository) Get(_ context.Context, accountID string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[accountID]
	if !ok {
		return nil, ErrNotFound
	}
	return &profile, nil
}

func (r *memoryProfileRepository) Save(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.AccountID] = *profile
	return nil
}
