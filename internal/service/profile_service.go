package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-console/internal/auth"
	"github.com/spec-kit/admin-console/internal/config"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/events"
	"github.com/spec-kit/admin-console/internal/repository"
	apperrors "github.com/spec-kit/admin-console/pkg/util/errorutil"
)

// DefaultMinPasswordLength applies when no minimum is configured.
const DefaultMinPasswordLength = 8

var timezones = []string{
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Asia/Tokyo",
	"Asia/Shanghai",
	"Australia/Sydney",
}

// ProfileService manages the signed-in account's profile and settings.
type ProfileService struct {
	profiles       repository.ProfileRepository
	accounts       repository.AccountRepository
	dispatcher     events.Dispatcher
	settings       *SettingsService
	logger         *zap.Logger
	bcryptCost     int
	minPasswordLen int
	now            func() time.Time
}

// ProfileDependencies encapsulates collaborators of the profile service.
type ProfileDependencies struct {
	Profiles   repository.ProfileRepository
	Accounts   repository.AccountRepository
	Dispatcher events.Dispatcher
	Settings   *SettingsService
	Logger     *zap.Logger
}

// NewProfileService builds the service.
func NewProfileService(cfg config.AuthConfig, deps ProfileDependencies) *ProfileService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	minLen := cfg.MinPasswordLength
	if minLen <= 0 {
		minLen = DefaultMinPasswordLength
	}
	return &ProfileService{
		profiles:       deps.Profiles,
		accounts:       deps.Accounts,
		dispatcher:     deps.Dispatcher,
		settings:       deps.Settings,
		logger:         logger,
		bcryptCost:     cfg.BcryptCost,
		minPasswordLen: minLen,
		now:            time.Now,
	}
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name       string
	Email      string
	Avatar     *string
	Department *string
	Phone      *string
	Bio        *string
	Location   *string
	Timezone   *string
}

// PasswordChange is a password change request.
type PasswordChange struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// GetProfile returns the account's profile, creating it from the defaults on
// first access.
func (s *ProfileService) GetProfile(ctx context.Context, accountID string) (*domain.Profile, error) {
	profile, err := s.profiles.Get(ctx, accountID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	account, err := s.account(ctx, accountID)
	if err != nil {
		return nil, err
	}
	fresh := repository.DefaultProfile()
	fresh.AccountID = account.ID
	fresh.Name = account.Name
	fresh.Email = account.Email
	fresh.Role = account.Role
	fresh.Avatar = account.Avatar
	if err := s.profiles.Save(ctx, &fresh); err != nil {
		return nil, err
	}
	return &fresh, nil
}

// UpdateProfile replaces the editable profile fields and mirrors name, email
// and avatar onto the account.
func (s *ProfileService) UpdateProfile(ctx context.Context, accountID string, update ProfileUpdate) (*domain.Profile, error) {
	update.Name = strings.TrimSpace(update.Name)
	update.Email = strings.TrimSpace(update.Email)

	details := map[string]any{}
	if update.Name == "" {
		details["name"] = "required"
	}
	if update.Email == "" {
		details["email"] = "required"
	} else if !validEmail(update.Email) {
		details["email"] = "invalid email address"
	}
	if tz := normalizeOptional(update.Timezone); tz != nil && !slices.Contains(timezones, *tz) {
		details["timezone"] = "unsupported timezone"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid profile", details)
	}

	profile, err := s.GetProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	account, err := s.account(ctx, accountID)
	if err != nil {
		return nil, err
	}

	account.Name = update.Name
	account.Email = update.Email
	if update.Avatar != nil {
		account.Avatar = normalizeOptional(update.Avatar)
	}
	if err := s.accounts.Update(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("email already in use", nil)
		}
		return nil, err
	}

	profile.Name = account.Name
	profile.Email = account.Email
	profile.Avatar = account.Avatar
	profile.Department = normalizeOptional(update.Department)
	profile.Phone = normalizeOptional(update.Phone)
	profile.Bio = normalizeOptional(update.Bio)
	profile.Location = normalizeOptional(update.Location)
	profile.Timezone = normalizeOptional(update.Timezone)
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateNotificationSettings stores the notification toggles.
func (s *ProfileService) UpdateNotificationSettings(ctx context.Context, accountID string, settings domain.NotificationSettings) (domain.NotificationSettings, error) {
	profile, err := s.GetProfile(ctx, accountID)
	if err != nil {
		return domain.NotificationSettings{}, err
	}
	profile.Notifications = settings
	if err := s.profiles.Save(ctx, profile); err != nil {
		return domain.NotificationSettings{}, err
	}
	return settings, nil
}

// ChangePassword validates the request before checking the current password
// and storing the new hash.
func (s *ProfileService) ChangePassword(ctx context.Context, accountID string, req PasswordChange) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.NewValidationError("passwords do not match", map[string]any{"confirm_password": "must match new_password"})
	}
	minLen, err := s.passwordMinLength(ctx)
	if err != nil {
		return err
	}
	if len([]rune(req.NewPassword)) < minLen {
		return apperrors.NewValidationError("password too short", map[string]any{"min_length": minLen})
	}
	if len(req.NewPassword) > auth.MaxPasswordBytes {
		return apperrors.NewValidationError("password too long", map[string]any{"max_length": auth.MaxPasswordBytes})
	}

	account, err := s.account(ctx, accountID)
	if err != nil {
		return err
	}
	if err := auth.ComparePassword(account.PasswordHash, req.CurrentPassword); err != nil {
		return apperrors.NewUnauthorized("current password is incorrect")
	}

	hash, err := auth.HashPassword(req.NewPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	profile, err := s.GetProfile(ctx, accountID)
	if err != nil {
		return err
	}

	account.PasswordHash = hash
	if err := s.accounts.Update(ctx, account); err != nil {
		return err
	}
	profile.Security.LastPasswordChange = s.now().UTC()
	if err := s.profiles.Save(ctx, profile); err != nil {
		return err
	}

	if s.dispatcher != nil {
		event := events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPasswordChanged,
			SubjectID: accountID,
			ActorID:   accountID,
			Timestamp: s.now().UTC(),
		}
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
		}
	}
	return nil
}

// SetTwoFactor toggles two-factor authentication.
func (s *ProfileService) SetTwoFactor(ctx context.Context, accountID string, enabled bool) (bool, error) {
	profile, err := s.GetProfile(ctx, accountID)
	if err != nil {
		return false, err
	}
	profile.Security.TwoFactorEnabled = enabled
	if err := s.profiles.Save(ctx, profile); err != nil {
		return false, err
	}
	return enabled, nil
}

// passwordMinLength prefers the stored security policy over the configured
// minimum.
func (s *ProfileService) passwordMinLength(ctx context.Context) (int, error) {
	if s.settings == nil {
		return s.minPasswordLen, nil
	}
	security, err := s.settings.Security(ctx)
	if err != nil {
		return 0, err
	}
	if security.PasswordMinLength <= 0 {
		return s.minPasswordLen, nil
	}
	return security.PasswordMinLength, nil
}

// Timezones lists the timezones a profile may select.
func (s *ProfileService) Timezones() []string {
	return slices.Clone(timezones)
}

func (s *ProfileService) account(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("account", map[string]any{"id": accountID})
		}
		return nil, err
	}
	return account, nil
}
