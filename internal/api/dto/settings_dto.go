package dto

import (
	"time"

	"github.com/spec-kit/admin-console/internal/domain"
)

// GeneralSettings payload.
type GeneralSettings struct {
	SiteName        string `json:"site_name"`
	SiteDescription string `json:"site_description"`
	Timezone        string `json:"timezone"`
	Language        string `json:"language"`
	MaintenanceMode bool   `json:"maintenance_mode"`
}

// EmailSettingsRequest payload. An empty smtp_password keeps the stored one.
type EmailSettingsRequest struct {
	SMTPHost     string `json:"smtp_host"`
	SMTPPort     int    `json:"smtp_port"`
	SMTPUsername string `json:"smtp_username"`
	SMTPPassword string `json:"smtp_password"`
	FromEmail    string `json:"from_email"`
	FromName     string `json:"from_name"`
}

// EmailSettingsResponse never echoes the SMTP password.
type EmailSettingsResponse struct {
	SMTPHost        string `json:"smtp_host"`
	SMTPPort        int    `json:"smtp_port"`
	SMTPUsername    string `json:"smtp_username"`
	SMTPPasswordSet bool   `json:"smtp_password_set"`
	FromEmail       string `json:"from_email"`
	FromName        string `json:"from_name"`
}

// SecuritySettings payload.
type SecuritySettings struct {
	SessionTimeout    int  `json:"session_timeout"`
	MaxLoginAttempts  int  `json:"max_login_attempts"`
	PasswordMinLength int  `json:"password_min_length"`
	RequireTwoFactor  bool `json:"require_two_factor"`
	AllowRegistration bool `json:"allow_registration"`
}

// SettingsResponse is the full settings document.
type SettingsResponse struct {
	General   GeneralSettings       `json:"general"`
	Email     EmailSettingsResponse `json:"email"`
	Security  SecuritySettings      `json:"security"`
	UpdatedAt *time.Time            `json:"updated_at"`
}

// NewSettingsResponse maps domain settings.
func NewSettingsResponse(s *domain.SystemSettings) SettingsResponse {
	resp := SettingsResponse{
		General: GeneralSettings(s.General),
		Email: EmailSettingsResponse{
			SMTPHost:        s.Email.SMTPHost,
			SMTPPort:        s.Email.SMTPPort,
			SMTPUsername:    s.Email.SMTPUsername,
			SMTPPasswordSet: s.Email.SMTPPassword != "",
			FromEmail:       s.Email.FromEmail,
			FromName:        s.Email.FromName,
		},
		Security: SecuritySettings{
			SessionTimeout:    s.Security.SessionTimeoutMinutes,
			MaxLoginAttempts:  s.Security.MaxLoginAttempts,
			PasswordMinLength: s.Security.PasswordMinLength,
			RequireTwoFactor:  s.Security.RequireTwoFactor,
			AllowRegistration: s.Security.AllowRegistration,
		},
	}
	if !s.UpdatedAt.IsZero() {
		updated := s.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
