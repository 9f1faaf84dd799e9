package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/admin-console/internal/domain"
)

func TestMemorySessionStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemorySessionStore(func() time.Time { return now })

	require.NoError(t, store.Save(ctx, domain.Session{ID: "s1", AccountID: "1", ExpiresAt: now.Add(time.Hour)}))

	ok, err := store.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Delete(ctx, "s1"))
	ok, err = store.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySessionStoreExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemorySessionStore(func() time.Time { return now })

	require.NoError(t, store.Save(ctx, domain.Session{ID: "s1", AccountID: "1", ExpiresAt: now}))
	ok, err := store.Exists(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAccountRepository([]domain.Account{
		{ID: "1", Email: "admin@example.com", Role: domain.RoleAdmin},
		{ID: "2", Email: "user@example.com", Role: domain.RoleUser},
	})

	a, err := repo.GetByEmail(ctx, "ADMIN@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", a.ID)

	a.Email = "user@example.com"
	assert.ErrorIs(t, repo.Update(ctx, a), ErrDuplicateEmail)

	_, err = repo.GetByID(ctx, "9")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &domain.Account{ID: "9"}), ErrNotFound)
}
