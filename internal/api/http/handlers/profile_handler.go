package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-console/internal/api/dto"
	"github.com/spec-kit/admin-console/internal/auth"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/service"
	apperrors "github.com/spec-kit/admin-console/pkg/util/errorutil"
)

// ProfileHandler exposes the signed-in account's profile and settings.
type ProfileHandler struct {
	service *service.ProfileService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: profileService}
}

// GetProfile GET /profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	profile, err := h.service.GetProfile(c.UserContext(), principal.Account.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// UpdateProfile PUT /profile.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	profile, err := h.service.UpdateProfile(c.UserContext(), principal.Account.ID, service.ProfileUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Avatar:     req.Avatar,
		Department: req.Department,
		Phone:      req.Phone,
		Bio:        req.Bio,
		Location:   req.Location,
		Timezone:   req.Timezone,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// UpdateNotifications PUT /profile/notifications.
func (h *ProfileHandler) UpdateNotifications(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.NotificationSettings
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	settings, err := h.service.UpdateNotificationSettings(c.UserContext(), principal.Account.ID, domain.NotificationSettings(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NotificationSettings(settings)})
}

// ChangePassword POST /profile/password.
func (h *ProfileHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	err := h.service.ChangePassword(c.UserContext(), principal.Account.ID, service.PasswordChange{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetTwoFactor PUT /profile/two-factor.
func (h *ProfileHandler) SetTwoFactor(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.TwoFactorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	enabled, err := h.service.SetTwoFactor(c.UserContext(), principal.Account.ID, req.Enabled)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TwoFactorRequest{Enabled: enabled}})
}

// Timezones GET /profile/timezones.
func (h *ProfileHandler) Timezones(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.Timezones()})
}
