package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/admin-console/internal/api/http"
	"github.com/spec-kit/admin-console/internal/api/http/handlers"
	"github.com/spec-kit/admin-console/internal/auth"
	"github.com/spec-kit/admin-console/internal/config"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/events"
	"github.com/spec-kit/admin-console/internal/observability"
	"github.com/spec-kit/admin-console/internal/persistence"
	"github.com/spec-kit/admin-console/internal/repository"
	"github.com/spec-kit/admin-console/internal/service"
	"github.com/spec-kit/admin-console/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations && pg.Enabled() {
		if err := persistence.RunMigrations(ctx, pg.Pool, cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	var sessions repository.SessionStore
	if redis.Enabled() {
		sessions = repository.NewRedisSessionStore(redis.Client)
	} else {
		sessions = repository.NewMemorySessionStore(nil)
	}

	demoAccounts, err := service.BuildDemoAccounts(cfg.Auth.DemoPassword, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash demo passwords", zap.Error(err))
	}
	accountRepo := repository.NewMemoryAccountRepository(demoAccounts)
	userRepo := repository.OpenUserRepository(pg.Pool, cfg.Directory.SeedDemoData)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	settingsService := service.NewSettingsService(service.SettingsDependencies{
		Settings:   repository.NewMemorySettingsRepository(service.InitialSettings(cfg.Auth, cfg.RateLimit)),
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	loginLimiter := httptransport.NewIPRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst)
	settingsService.OnSecurityChange(func(security domain.SecuritySettings) {
		loginLimiter.SetBurst(security.MaxLoginAttempts)
	})

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		Accounts: accountRepo,
		Sessions: sessions,
		Settings: settingsService,
		Logger:   logger,
	})
	directoryService := service.NewDirectoryService(cfg.Directory, service.DirectoryDependencies{
		Users:      userRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	profileService := service.NewProfileService(cfg.Auth, service.ProfileDependencies{
		Profiles:   repository.NewMemoryProfileRepository(),
		Accounts:   accountRepo,
		Dispatcher: dispatcher,
		Settings:   settingsService,
		Logger:     logger,
	})
	analyticsService := service.NewAnalyticsService(cfg.Directory, userRepo)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(directoryService, metrics, cfg.Directory.MaxPageSize),
		Profile:        handlers.NewProfileHandler(profileService),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		Settings:       handlers.NewSettingsHandler(settingsService),
		AuthMiddleware: auth.NewAuthMiddleware(authService),
		LoginLimiter:   loginLimiter,
		Metrics:        metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
