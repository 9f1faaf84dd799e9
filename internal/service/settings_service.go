package service

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/spec-kit/admin-console/internal/auth"
	"github.com/spec-kit/admin-console/internal/config"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/events"
	"github.com/spec-kit/admin-console/internal/repository"
	apperrors "github.com/spec-kit/admin-console/pkg/util/errorutil"
)

// Security policy bounds accepted from administrators.
const (
	MinSessionTimeoutMinutes = 5
	MaxSessionTimeoutMinutes = 24 * 60
	MaxLoginAttemptsLimit    = 100
)

// SettingsService manages the admin-only system settings.
type SettingsService struct {
	mu         sync.Mutex
	repo       repository.SettingsRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	onSecurity []func(domain.SecuritySettings)
	now        func() time.Time
}

// SettingsDependencies encapsulates collaborators of the settings service.
type SettingsDependencies struct {
	Settings   repository.SettingsRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewSettingsService builds the service.
func NewSettingsService(deps SettingsDependencies) *SettingsService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{
		repo:       deps.Settings,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// InitialSettings returns the default settings with the security policy
// taken from the environment where it is set.
func InitialSettings(authCfg config.AuthConfig, rateCfg config.RateLimitConfig) domain.SystemSettings {
	settings := repository.DefaultSettings()
	if authCfg.AccessTokenTTLMinutes > 0 {
		settings.Security.SessionTimeoutMinutes = authCfg.AccessTokenTTLMinutes
	}
	if rateCfg.LoginBurst > 0 {
		settings.Security.MaxLoginAttempts = rateCfg.LoginBurst
	}
	if authCfg.MinPasswordLength > 0 {
		settings.Security.PasswordMinLength = authCfg.MinPasswordLength
	}
	return settings
}

// OnSecurityChange registers fn to run after the security policy is saved.
func (s *SettingsService) OnSecurityChange(fn func(domain.SecuritySettings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSecurity = append(s.onSecurity, fn)
}

// Get returns the current settings.
func (s *SettingsService) Get(ctx context.Context) (*domain.SystemSettings, error) {
	return s.repo.Get(ctx)
}

// Security returns the current security policy.
func (s *SettingsService) Security(ctx context.Context) (domain.SecuritySettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return domain.SecuritySettings{}, err
	}
	return settings.Security, nil
}

// UpdateGeneral replaces the general settings.
func (s *SettingsService) UpdateGeneral(ctx context.Context, actorID string, general domain.GeneralSettings) (*domain.SystemSettings, error) {
	general.SiteName = strings.TrimSpace(general.SiteName)
	general.SiteDescription = strings.TrimSpace(general.SiteDescription)
	general.Language = strings.TrimSpace(general.Language)

	details := map[string]any{}
	if general.SiteName == "" {
		details["site_name"] = "required"
	}
	if !slices.Contains(timezones, general.Timezone) {
		details["timezone"] = "unsupported timezone"
	}
	if general.Language == "" {
		details["language"] = "required"
	} else if tag, err := language.Parse(general.Language); err != nil {
		details["language"] = "invalid language tag"
	} else {
		general.Language = tag.String()
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid general settings", details)
	}

	return s.update(ctx, actorID, "general", func(settings *domain.SystemSettings) {
		settings.General = general
	})
}

// UpdateEmail replaces the email settings. An empty SMTP password keeps the
// stored one.
func (s *SettingsService) UpdateEmail(ctx context.Context, actorID string, email domain.EmailSettings) (*domain.SystemSettings, error) {
	email.SMTPHost = strings.TrimSpace(email.SMTPHost)
	email.SMTPUsername = strings.TrimSpace(email.SMTPUsername)
	email.FromEmail = strings.TrimSpace(email.FromEmail)
	email.FromName = strings.TrimSpace(email.FromName)

	details := map[string]any{}
	if email.SMTPHost == "" {
		details["smtp_host"] = "required"
	}
	if email.SMTPPort < 1 || email.SMTPPort > 65535 {
		details["smtp_port"] = "must be between 1 and 65535"
	}
	if email.FromEmail == "" {
		details["from_email"] = "required"
	} else if !validEmail(email.FromEmail) {
		details["from_email"] = "invalid email address"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid email settings", details)
	}

	return s.update(ctx, actorID, "email", func(settings *domain.SystemSettings) {
		if email.SMTPPassword == "" {
			email.SMTPPassword = settings.Email.SMTPPassword
		}
		settings.Email = email
	})
}

// UpdateSecurity replaces the security policy and notifies listeners.
func (s *SettingsService) UpdateSecurity(ctx context.Context, actorID string, security domain.SecuritySettings) (*domain.SystemSettings, error) {
	details := map[string]any{}
	if security.SessionTimeoutMinutes < MinSessionTimeoutMinutes || security.SessionTimeoutMinutes > MaxSessionTimeoutMinutes {
		details["session_timeout"] = map[string]any{"min": MinSessionTimeoutMinutes, "max": MaxSessionTimeoutMinutes}
	}
	if security.MaxLoginAttempts < 1 || security.MaxLoginAttempts > MaxLoginAttemptsLimit {
		details["max_login_attempts"] = map[string]any{"min": 1, "max": MaxLoginAttemptsLimit}
	}
	if security.PasswordMinLength < DefaultMinPasswordLength || security.PasswordMinLength > auth.MaxPasswordBytes {
		details["password_min_length"] = map[string]any{"min": DefaultMinPasswordLength, "max": auth.MaxPasswordBytes}
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid security settings", details)
	}

	updated, err := s.update(ctx, actorID, "security", func(settings *domain.SystemSettings) {
		settings.Security = security
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	listeners := slices.Clone(s.onSecurity)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(updated.Security)
	}
	return updated, nil
}

func (s *SettingsService) update(ctx context.Context, actorID, section string, apply func(*domain.SystemSettings)) (*domain.SystemSettings, error) {
	s.mu.Lock()
	settings, err := s.repo.Get(ctx)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	apply(settings)
	settings.UpdatedAt = s.now().UTC()
	err = s.repo.Save(ctx, settings)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.logger.Info("settings updated", zap.String("section", section), zap.String("actor_id", actorID))
	if s.dispatcher != nil {
		event := events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSettingsUpdated,
			SubjectID: section,
			ActorID:   actorID,
			Timestamp: settings.UpdatedAt,
			Payload:   events.SettingsUpdatedPayload{Section: section},
		}
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
		}
	}
	return settings, nil
}
