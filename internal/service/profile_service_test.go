package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/admin-console/internal/auth"
	"github.com/spec-kit/admin-console/internal/config"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/repository"
	apperrors "github.com/spec-kit/admin-console/pkg/util/errorutil"
)

const testCost = 4

func newProfileFixture(t *testing.T) (*ProfileService, repository.AccountRepository) {
	t.Helper()
	accounts, err := BuildDemoAccounts("password", testCost)
	require.NoError(t, err)
	accountRepo := repository.NewMemoryAccountRepository(accounts)
	svc := NewProfileService(config.AuthConfig{BcryptCost: testCost, MinPasswordLength: 8}, ProfileDependencies{
		Profiles: repository.NewMemoryProfileRepository(),
		Accounts: accountRepo,
	})
	svc.now = func() time.Time { return time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC) }
	return svc, accountRepo
}

func TestGetProfileMergesAccountIdentity(t *testing.T) {
	svc, _ := newProfileFixture(t)

	p, err := svc.GetProfile(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Admin User", p.Name)
	assert.Equal(t, "admin@example.com", p.Email)
	assert.Equal(t, domain.RoleAdmin, p.Role)
	require.NotNil(t, p.Timezone)
	assert.Equal(t, "America/Los_Angeles", *p.Timezone)
	assert.True(t, p.Notifications.Email)
	assert.False(t, p.Security.TwoFactorEnabled)

	_, err = svc.GetProfile(context.Background(), "99")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestChangePasswordShortButMatchingIsValidation(t *testing.T) {
	svc, _ := newProfileFixture(t)
	err := svc.ChangePassword(context.Background(), "1", PasswordChange{
		CurrentPassword: "password",
		NewPassword:     "abc",
		ConfirmPassword: "abc",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestChangePasswordMismatchIsValidation(t *testing.T) {
	svc, _ := newProfileFixture(t)
	err := svc.ChangePassword(context.Background(), "1", PasswordChange{
		CurrentPassword: "wrong",
		NewPassword:     "longenough1",
		ConfirmPassword: "longenough2",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestChangePasswordTooLongIsValidation(t *testing.T) {
	svc, accounts := newProfileFixture(t)
	long := strings.Repeat("x", 80)
	err := svc.ChangePassword(context.Background(), "1", PasswordChange{
		CurrentPassword: "password",
		NewPassword:     long,
		ConfirmPassword: long,
	})
	require.True(t, apperrors.IsValidation(err))
	assert.Equal(t, auth.MaxPasswordBytes, apperrors.ToDomainError(err).Details["max_length"])

	account, _ := accounts.GetByID(context.Background(), "1")
	assert.NoError(t, auth.ComparePassword(account.PasswordHash, "password"))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc, _ := newProfileFixture(t)
	err := svc.ChangePassword(context.Background(), "1", PasswordChange{
		CurrentPassword: "nope",
		NewPassword:     "longenough",
		ConfirmPassword: "longenough",
	})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))
}

func TestChangePasswordSuccess(t *testing.T) {
	svc, accounts := newProfileFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.ChangePassword(ctx, "2", PasswordChange{
		CurrentPassword: "password",
		NewPassword:     "n3w-secret",
		ConfirmPassword: "n3w-secret",
	}))

	account, err := accounts.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.NoError(t, auth.ComparePassword(account.PasswordHash, "n3w-secret"))

	p, err := svc.GetProfile(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC), p.Security.LastPasswordChange)
}

func TestUpdateProfile(t *testing.T) {
	svc, accounts := newProfileFixture(t)
	ctx := context.Background()

	p, err := svc.UpdateProfile(ctx, "2", ProfileUpdate{
		Name:     "Renamed User",
		Email:    "renamed@example.com",
		Timezone: strp("Europe/Berlin"),
		Bio:      strp(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed User", p.Name)
	assert.Nil(t, p.Bio)
	assert.Equal(t, "Europe/Berlin", *p.Timezone)

	account, _ := accounts.GetByID(ctx, "2")
	assert.Equal(t, "renamed@example.com", account.Email)
}

func TestUpdateProfileValidation(t *testing.T) {
	svc, _ := newProfileFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, "2", ProfileUpdate{Name: "", Email: "x", Timezone: strp("Mars/Olympus")})
	de := apperrors.ToDomainError(err)
	assert.Equal(t, apperrors.CodeValidation, de.Code)
	assert.Len(t, de.Details, 3)

	_, err = svc.UpdateProfile(ctx, "2", ProfileUpdate{Name: "User", Email: "admin@example.com"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
}

func TestNotificationAndTwoFactorSettings(t *testing.T) {
	svc, _ := newProfileFixture(t)
	ctx := context.Background()

	settings, err := svc.UpdateNotificationSettings(ctx, "1", domain.NotificationSettings{Marketing: true})
	require.NoError(t, err)
	assert.True(t, settings.Marketing)

	enabled, err := svc.SetTwoFactor(ctx, "1", true)
	require.NoError(t, err)
	assert.True(t, enabled)

	p, _ := svc.GetProfile(ctx, "1")
	assert.True(t, p.Security.TwoFactorEnabled)
	assert.False(t, p.Notifications.Email)
	assert.Len(t, svc.Timezones(), 10)
}
