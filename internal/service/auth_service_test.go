package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/admin-console/internal/config"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/repository"
	apperrors "github.com/spec-kit/admin-console/pkg/util/errorutil"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	accounts, err := BuildDemoAccounts("password", testCost)
	require.NoError(t, err)
	return NewAuthService(config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 15}, AuthDependencies{
		Accounts: repository.NewMemoryAccountRepository(accounts),
		Sessions: repository.NewMemorySessionStore(nil),
	})
}

func TestLoginAuthenticateLogout(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	account, token, session, err := svc.Login(ctx, "ADMIN@example.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "1", account.ID)
	assert.NotEmpty(t, token)
	assert.Equal(t, "1", session.AccountID)

	principal, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, principal.Account.Role)
	assert.Equal(t, session.ID, principal.Claims.SessionID())

	require.NoError(t, svc.Logout(ctx, principal))

	_, err = svc.Authenticate(ctx, token)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	_, _, _, err := svc.Login(ctx, "user@example.com", "wrong")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))

	_, _, _, err = svc.Login(ctx, "ghost@example.com", "password")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	svc := newAuthFixture(t)
	_, err := svc.Authenticate(context.Background(), "not.a.token")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))
}

func TestLogoutWithoutPrincipal(t *testing.T) {
	svc := newAuthFixture(t)
	err := svc.Logout(context.Background(), nil)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))
}
