package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/spec-kit/admin-console/internal/domain"
)

// AccountRepository stores console login credentials.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
}

type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

// NewMemoryAccountRepository builds an in-memory credential store.
func NewMemoryAccountRepository(accounts []domain.Account) AccountRepository {
	repo := &memoryAccountRepository{accounts: make(map[string]domain.Account, len(accounts))}
	for _, a := range accounts {
		repo.accounts[a.ID] = a
	}
	return repo
}

func (r *memoryAccountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &account, nil
}

func (r *memoryAccountRepository) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if strings.EqualFold(account.Email, email) {
			out := account
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryAccountRepository) Update(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; !ok {
		return ErrNotFound
	}
	for id, other := range r.accounts {
		if id != account.ID && strings.EqualFold(other.Email, account.Email) {
			return ErrDuplicateEmail
		}
	}
	r.accounts[account.ID] = *account
	return nil
}
