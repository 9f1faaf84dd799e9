package dto

import (
	"time"

	"github.com/spec-kit/admin-console/internal/domain"
)

// ProfileResponse is the signed-in account's profile.
type ProfileResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Role          domain.Role           `json:"role"`
	Avatar        *string               `json:"avatar"`
	Department    *string               `json:"department"`
	Phone         *string               `json:"phone"`
	Bio           *string               `json:"bio"`
	Location      *string               `json:"location"`
	Timezone      *string               `json:"timezone"`
	Notifications NotificationSettings  `json:"notifications"`
	Security      SecurityStateResponse `json:"security"`
}

// UpdateProfileRequest payload.
type UpdateProfileRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Avatar     *string `json:"avatar"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`
	Bio        *string `json:"bio"`
	Location   *string `json:"location"`
	Timezone   *string `json:"timezone"`
}

// NotificationSettings toggles.
type NotificationSettings struct {
	Email     bool `json:"email"`
	Push      bool `json:"push"`
	Marketing bool `json:"marketing"`
}

// SecurityStateResponse summarizes account security settings.
type SecurityStateResponse struct {
	TwoFactorEnabled   bool      `json:"two_factor_enabled"`
	LastPasswordChange time.Time `json:"last_password_change"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// TwoFactorRequest payload.
type TwoFactorRequest struct {
	Enabled bool `json:"enabled"`
}

// NewProfileResponse maps a domain profile.
func NewProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:            p.AccountID,
		Name:          p.Name,
		Email:         p.Email,
		Role:          p.Role,
		Avatar:        p.Avatar,
		Department:    p.Department,
		Phone:         p.Phone,
		Bio:           p.Bio,
		Location:      p.Location,
		Timezone:      p.Timezone,
		Notifications: NotificationSettings(p.Notifications),
		Security: SecurityStateResponse{
			TwoFactorEnabled:   p.Security.TwoFactorEnabled,
			LastPasswordChange: p.Security.LastPasswordChange,
		},
	}
}
