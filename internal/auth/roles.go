package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-console/internal/domain"
	apperrors "github.com/spec-kit/admin-console/pkg/util/errorutil"
)

// RequireRole ensures the caller holds role. Admins satisfy every role.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if principal.Account.Role != role && !principal.Account.IsAdmin() {
			return apperrors.NewDomainError(apperrors.CodeForbidden, "insufficient role", fiber.StatusForbidden,
				map[string]any{"required_role": string(role)})
		}
		return c.Next()
	}
}

// RequireAdmin restricts a route to administrators.
func RequireAdmin() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}

// RequireAuthenticated ensures the auth middleware resolved a principal.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
