package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/study-tracker/internal/api/http"
	"github.com/spec-kit/study-tracker/internal/api/http/handlers"
	"github.com/spec-kit/study-tracker/internal/auth"
	"github.com/spec-kit/study-tracker/internal/config"
	"github.com/spec-kit/study-tracker/internal/events"
	"github.com/spec-kit/study-tracker/internal/observability"
	"github.com/spec-kit/study-tracker/internal/persistence"
	"github.com/spec-kit/study-tracker/internal/repository"
	"github.com/spec-kit/study-tracker/internal/service"
	"github.com/spec-kit/study-tracker/internal/worker"
	"github.com/spec-kit/study-tracker/pkg/util/validate"
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

	if cfg.Postgres.DSN == "" {
		logger.Fatal("POSTGRES_DSN is required")
	}
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, cfg.Postgres.DSN, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	tokens, err := auth.NewTokenProvider(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL())
	if err != nil {
		logger.Fatal("failed to init token provider", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartActivityWorker(service.NewActivityService(dispatcher, logger))

	pool := pg.PoolHandle()
	directories := repository.NewDirectoryRepository(pool)
	loginAttempts := persistence.NewLoginAttempts(redis, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow())
	userService := service.NewUserService(repository.NewUserRepository(pool), tokens, cfg.Auth.BcryptCost).
		WithLoginLimiter(loginAttempts, logger).
		WithEvents(dispatcher, logger)
	directoryService := service.NewDirectoryService(directories).
		WithEvents(dispatcher, logger)
	journeyService := service.NewJourneyService(repository.NewJourneyRepository(pool), directories)
	settingsService := service.NewSettingsService(repository.NewSettingsRepository(pool))
	progressService := service.NewProgressService(repository.NewProgressRepository(pool)).
		WithEvents(dispatcher, logger)

	metrics := observability.NewMetrics()
	validator := validate.New()
	protect := handlers.Protection{Authenticate: auth.NewAuthMiddleware(tokens, logger).Handle}

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:       logger,
		Metrics:      metrics,
		Timeout:      cfg.App.RequestTimeout(),
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	router := httptransport.NewRouter(app, logger)
	sources := []handlers.RouteSource{
		handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}, metrics),
		handlers.NewUsersHandler(userService, validator, protect),
		handlers.NewDirectoriesHandler(directoryService, validator, protect),
		handlers.NewJourneysHandler(journeyService, validator, protect),
		handlers.NewSettingsHandler(settingsService, validator, protect),
		handlers.NewProgressHandler(progressService, validator, protect),
	}
	for _, source := range sources {
		if err := router.Register(source.Routes()...); err != nil {
			logger.Fatal("failed to register routes", zap.Error(err))
		}
	}

	go func() {
		if err := router.Start(cfg.App.Addr()); err != nil {
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
