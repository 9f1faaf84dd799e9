package domain

import "time"

// GeneralSettings describes the site as a whole.
type GeneralSettings struct {
	SiteName        string
	SiteDescription string
	Timezone        string
	Language        string
	MaintenanceMode bool
}

// EmailSettings configures outbound mail.
type EmailSettings struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// SecuritySettings are the console wide sign-in and password policies.
type SecuritySettings struct {
	SessionTimeoutMinutes int
	MaxLoginAttempts      int
	PasswordMinLength     int
	RequireTwoFactor      bool
	AllowRegistration     bool
}

// SessionTimeout returns the session lifetime, zero when unset.
func (s SecuritySettings) SessionTimeout() time.Duration {
	if s.SessionTimeoutMinutes <= 0 {
		return 0
	}
	return time.Duration(s.SessionTimeoutMinutes) * time.Minute
}

// SystemSettings is the admin-managed configuration of the console.
type SystemSettings struct {
	General   GeneralSettings
	Email     EmailSettings
	Security  SecuritySettings
	UpdatedAt time.Time
}
