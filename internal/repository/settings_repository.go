package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/admin-console/internal/domain"
)

// SettingsRepository stores the single system settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SystemSettings, error)
	Save(ctx context.Context, settings *domain.SystemSettings) error
}

type memorySettingsRepository struct {
	mu       sync.RWMutex
	settings domain.SystemSettings
}

// NewMemorySettingsRepository starts from the given settings.
func NewMemorySettingsRepository(initial domain.SystemSettings) SettingsRepository {
	return &memorySettingsRepository{settings: initial}
}

func (r *memorySettingsRepository) Get(_ context.Context) (*domain.SystemSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	settings := r.settings
	return &settings, nil
}

func (r *memorySettingsRepository) Save(_ context.Context, settings *domain.SystemSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = *settings
	return nil
}
