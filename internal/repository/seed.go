package repository

import (
	"time"

	"github.com/spec-kit/admin-console/internal/domain"
)

func seedDate(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func seedDatePtr(year int, month time.Month, d int) *time.Time {
	t := seedDate(year, month, d)
	return &t
}

func ptr(s string) *string { return &s }

// SeedUsers returns the demo directory used when no database is configured.
func SeedUsers() []domain.User {
	return []domain.User{
		{
			ID: "1", Name: "John Doe", Email: "john@example.com",
			Role: domain.RoleAdmin, Status: domain.UserStatusActive,
			Avatar: ptr("/professional-male-avatar.png"), Department: ptr("Engineering"),
			CreatedAt: seedDate(2024, time.January, 15), LastLogin: seedDatePtr(2024, time.March, 20),
		},
		{
			ID: "2", Name: "Jane Smith", Email: "jane@example.com",
			Role: domain.RoleUser, Status: domain.UserStatusActive,
			Avatar: ptr("/professional-female-avatar.png"), Department: ptr("Marketing"),
			CreatedAt: seedDate(2024, time.February, 10), LastLogin: seedDatePtr(2024, time.March, 19),
		},
		{
			ID: "3", Name: "Mike Johnson", Email: "mike@example.com",
			Role: domain.RoleUser, Status: domain.UserStatusInactive,
			Avatar: ptr("/professional-male-avatar-2.png"), Department: ptr("Sales"),
			CreatedAt: seedDate(2024, time.January, 20), LastLogin: seedDatePtr(2024, time.March, 10),
		},
		{
			ID: "4", Name: "Sarah Wilson", Email: "sarah@example.com",
			Role: domain.RoleUser, Status: domain.UserStatusActive,
			Avatar: ptr("/professional-female-avatar-2.png"), Department: ptr("Design"),
			CreatedAt: seedDate(2024, time.March, 1), LastLogin: seedDatePtr(2024, time.March, 21),
		},
		{
			ID: "5", Name: "David Brown", Email: "david@example.com",
			Role: domain.RoleUser, Status: domain.UserStatusActive,
			Avatar: ptr("/professional-male-avatar-3.png"), Department: ptr("Engineering"),
			CreatedAt: seedDate(2024, time.February, 15), LastLogin: seedDatePtr(2024, time.March, 18),
		},
	}
}

// DemoAccount describes a console login seeded at startup.
type DemoAccount struct {
	ID     string
	Name   string
	Email  string
	Role   domain.Role
	Avatar string
}

// DemoAccounts returns the console logins available in demo mode.
func DemoAccounts() []DemoAccount {
	return []DemoAccount{
		{ID: "1", Name: "Admin User", Email: "admin@example.com", Role: domain.RoleAdmin, Avatar: "/admin-avatar.png"},
		{ID: "2", Name: "Regular User", Email: "user@example.com", Role: domain.RoleUser, Avatar: "/diverse-user-avatars.png"},
	}
}

// DefaultProfile returns the profile details shared by demo accounts before
// they are personalized.
func DefaultProfile() domain.Profile {
	return domain.Profile{
		Department: ptr("Engineering"),
		Phone:      ptr("+1 (555) 123-4567"),
		Bio:        ptr("Senior Software Engineer with 8+ years of experience in full-stack development. Passionate about creating scalable solutions and mentoring junior developers."),
		Location:   ptr("San Francisco, CA"),
		Timezone:   ptr("America/Los_Angeles"),
		Notifications: domain.NotificationSettings{
			Email:     true,
			Push:      true,
			Marketing: false,
		},
		Security: domain.SecurityState{
			TwoFactorEnabled:   false,
			LastPasswordChange: seedDate(2024, time.January, 15),
		},
	}
}

// DefaultSettings returns the settings a fresh console starts with.
func DefaultSettings() domain.SystemSettings {
	return domain.SystemSettings{
		General: domain.GeneralSettings{
			SiteName:        "Admin Dashboard",
			SiteDescription: "Modern business management platform",
			Timezone:        "America/Los_Angeles",
			Language:        "en",
		},
		Email: domain.EmailSettings{
			SMTPHost:     "smtp.example.com",
			SMTPPort:     587,
			SMTPUsername: "admin@example.com",
			FromEmail:    "noreply@example.com",
			FromName:     "Admin Dashboard",
		},
		Security: domain.SecuritySettings{
			SessionTimeoutMinutes: 30,
			MaxLoginAttempts:      5,
			PasswordMinLength:     8,
			AllowRegistration:     true,
		},
	}
}
