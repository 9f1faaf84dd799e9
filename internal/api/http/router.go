package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/admin-console/internal/api/http/handlers"
	"github.com/spec-kit/admin-console/internal/auth"
	"github.com/spec-kit/admin-console/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Profile        *handlers.ProfileHandler
	Analytics      *handlers.AnalyticsHandler
	Settings       *handlers.SettingsHandler
	AuthMiddleware *auth.AuthMiddleware
	LoginLimiter   *IPRateLimiter
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	authGroup := app.Group("/auth")
	if cfg.LoginLimiter != nil {
		authGroup.Post("/login", cfg.LoginLimiter.Handle, cfg.Auth.Login)
	} else {
		authGroup.Post("/login", cfg.Auth.Login)
	}
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	users.Get("/", cfg.Users.ListUsers)
	users.Get("/departments", cfg.Users.Departments)
	users.Get("/:id", cfg.Users.GetUser)
	users.Post("/", auth.RequireAdmin(), cfg.Users.CreateUser)
	users.Patch("/:id", auth.RequireAdmin(), cfg.Users.UpdateUser)
	users.Delete("/:id", auth.RequireAdmin(), cfg.Users.DeleteUser)

	profile := app.Group("/profile", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	profile.Get("/", cfg.Profile.GetProfile)
	profile.Put("/", cfg.Profile.UpdateProfile)
	profile.Put("/notifications", cfg.Profile.UpdateNotifications)
	profile.Post("/password", cfg.Profile.ChangePassword)
	profile.Put("/two-factor", cfg.Profile.SetTwoFactor)
	profile.Get("/timezones", cfg.Profile.Timezones)

	analytics := app.Group("/analytics", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	analytics.Get("/stats", cfg.Analytics.Stats)
	analytics.Get("/revenue", cfg.Analytics.Revenue)
	analytics.Get("/user-growth", cfg.Analytics.UserGrowth)
	analytics.Get("/categories", cfg.Analytics.Categories)

	settings := app.Group("/settings", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	settings.Get("/", cfg.Settings.GetSettings)
	settings.Put("/general", cfg.Settings.UpdateGeneral)
	settings.Put("/email", cfg.Settings.UpdateEmail)
	settings.Put("/security", cfg.Settings.UpdateSecurity)
}
