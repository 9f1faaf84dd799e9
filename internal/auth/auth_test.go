package auth

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/admin-console/internal/domain"
	apperrors "github.com/spec-kit/admin-console/pkg/util/errorutil"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 30*time.Minute)
	account := &domain.Account{ID: "1", Role: domain.RoleAdmin}

	token, session, err := tm.GenerateToken(account)
	require.NoError(t, err)
	assert.Equal(t, "1", session.AccountID)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), session.ExpiresAt, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.AccountID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, session.ID, claims.SessionID())
}

func TestGenerateTokenTTL(t *testing.T) {
	tm := NewTokenManager("secret", 30*time.Minute)
	account := &domain.Account{ID: "1", Role: domain.RoleUser}

	_, session, err := tm.GenerateTokenTTL(account, 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, session.ExpiresAt.Sub(session.IssuedAt))

	_, session, err = tm.GenerateTokenTTL(account, 0)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, session.ExpiresAt.Sub(session.IssuedAt))
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	token, _, err := NewTokenManager("one", time.Minute).GenerateToken(&domain.Account{ID: "1", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Minute).ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tm := NewTokenManager("secret", time.Minute)
	issued := time.Now().Add(-2 * time.Hour)
	tm.now = func() time.Time { return issued }
	token, _, err := tm.GenerateToken(&domain.Account{ID: "1", Role: domain.RoleUser})
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password", 4)
	require.NoError(t, err)
	assert.NoError(t, ComparePassword(hash, "password"))
	assert.Error(t, ComparePassword(hash, "Password"))
}

type stubAuthenticator struct {
	principal *Principal
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*Principal, error) {
	if token != "good" {
		return nil, apperrors.NewUnauthorized("invalid token")
	}
	return s.principal, nil
}

func newTestApp(role domain.Role) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.SendStatus(fe.Code)
		}
		return c.SendStatus(apperrors.ToDomainError(err).HTTPStatus)
	}})
	mw := NewAuthMiddleware(stubAuthenticator{principal: &Principal{Account: &domain.Account{ID: "1", Role: role}}})
	app.Get("/me", mw.Handle, RequireAuthenticated(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/admin", mw.Handle, RequireAdmin(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/user", mw.Handle, RequireRole(domain.RoleUser), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, header string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestMiddlewareAndRoleGuards(t *testing.T) {
	userApp := newTestApp(domain.RoleUser)
	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, userApp, "/me", ""))
	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, userApp, "/me", "Basic abc"))
	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, userApp, "/me", "Bearer bad"))
	assert.Equal(t, fiber.StatusOK, doRequest(t, userApp, "/me", "Bearer good"))
	assert.Equal(t, fiber.StatusForbidden, doRequest(t, userApp, "/admin", "Bearer good"))
	assert.Equal(t, fiber.StatusOK, doRequest(t, userApp, "/user", "Bearer good"))

	adminApp := newTestApp(domain.RoleAdmin)
	assert.Equal(t, fiber.StatusOK, doRequest(t, adminApp, "/admin", "Bearer good"))
	assert.Equal(t, fiber.StatusOK, doRequest(t, adminApp, "/user", "Bearer good"))
}
