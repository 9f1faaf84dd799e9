package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/admin-console/internal/auth"
	"github.com/spec-kit/admin-console/internal/config"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/repository"
	apperrors "github.com/spec-kit/admin-console/pkg/util/errorutil"
)

// AuthService coordinates login, logout and token validation.
type AuthService struct {
	accounts repository.AccountRepository
	sessions repository.SessionStore
	settings *SettingsService
	tokenMgr *auth.TokenManager
	logger   *zap.Logger
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	Accounts repository.AccountRepository
	Sessions repository.SessionStore
	Settings *SettingsService
	Logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		accounts: deps.Accounts,
		sessions: deps.Sessions,
		settings: deps.Settings,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL()),
		logger:   logger,
	}
}

// Login authenticates an account and opens a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Account, string, domain.Session, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", domain.Session{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", domain.Session{}, err
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", domain.Session{}, apperrors.NewUnauthorized("invalid credentials")
	}

	ttl, err := s.sessionTimeout(ctx)
	if err != nil {
		return nil, "", domain.Session{}, err
	}
	token, session, err := s.tokenMgr.GenerateTokenTTL(account, ttl)
	if err != nil {
		return nil, "", domain.Session{}, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, "", domain.Session{}, err
	}
	s.logger.Info("account signed in", zap.String("account_id", account.ID))
	return account, token, session, nil
}

// Logout revokes the session behind the principal's token.
func (s *AuthService) Logout(ctx context.Context, principal *auth.Principal) error {
	if principal == nil || principal.Claims == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := s.sessions.Delete(ctx, principal.Claims.SessionID()); err != nil {
		return err
	}
	s.logger.Info("account signed out", zap.String("account_id", principal.Account.ID))
	return nil
}

// Authenticate validates a bearer token against its live session and loads
// the account behind it.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Principal, error) {
	claims, err := s.tokenMgr.ParseToken(token)
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid token")
	}
	alive, err := s.sessions.Exists(ctx, claims.SessionID())
	if err != nil {
		return nil, err
	}
	if !alive {
		return nil, apperrors.NewUnauthorized("session expired")
	}
	account, err := s.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewUnauthorized("account not found")
		}
		return nil, err
	}
	return &auth.Principal{Account: account, Claims: claims}, nil
}

// sessionTimeout is the stored session lifetime, or zero to use the token
// manager's default.
func (s *AuthService) sessionTimeout(ctx context.Context) (time.Duration, error) {
	if s.settings == nil {
		return 0, nil
	}
	security, err := s.settings.Security(ctx)
	if err != nil {
		return 0, err
	}
	return security.SessionTimeout(), nil
}

// TokenManager exposes the underlying token manager.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// BuildDemoAccounts hashes password for every demo login.
func BuildDemoAccounts(password string, bcryptCost int) ([]domain.Account, error) {
	demo := repository.DemoAccounts()
	accounts := make([]domain.Account, 0, len(demo))
	for _, d := range demo {
		hash, err := auth.HashPassword(password, bcryptCost)
		if err != nil {
			return nil, err
		}
		avatar := d.Avatar
		accounts = append(accounts, domain.Account{
			ID:           d.ID,
			Name:         d.Name,
			Email:        d.Email,
			Role:         d.Role,
			Avatar:       &avatar,
			PasswordHash: hash,
		})
	}
	return accounts, nil
}
