package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-console/internal/api/dto"
	"github.com/spec-kit/admin-console/internal/auth"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/service"
	apperrors "github.com/spec-kit/admin-console/pkg/util/errorutil"
)

// SettingsHandler exposes the admin system settings.
type SettingsHandler struct {
	service *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: settingsService}
}

// GetSettings GET /settings.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.Get(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSettingsResponse(settings)})
}

// UpdateGeneral PUT /settings/general.
func (h *SettingsHandler) UpdateGeneral(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.GeneralSettings
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	settings, err := h.service.UpdateGeneral(c.UserContext(), principal.Account.ID, domain.GeneralSettings(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSettingsResponse(settings)})
}

// UpdateEmail PUT /settings/email.
func (h *SettingsHandler) UpdateEmail(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.EmailSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	settings, err := h.service.UpdateEmail(c.UserContext(), principal.Account.ID, domain.EmailSettings(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSettingsResponse(settings)})
}

// UpdateSecurity PUT /settings/security.
func (h *SettingsHandler) UpdateSecurity(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.SecuritySettings
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	settings, err := h.service.UpdateSecurity(c.UserContext(), principal.Account.ID, domain.SecuritySettings{
		SessionTimeoutMinutes: req.SessionTimeout,
		MaxLoginAttempts:      req.MaxLoginAttempts,
		PasswordMinLength:     req.PasswordMinLength,
		RequireTwoFactor:      req.RequireTwoFactor,
		AllowRegistration:     req.AllowRegistration,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSettingsResponse(settings)})
}
