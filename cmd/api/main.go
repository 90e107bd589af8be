package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/afit-dev/staff-management/internal/api/http"
	"github.com/afit-dev/staff-management/internal/api/http/handlers"
	"github.com/afit-dev/staff-management/internal/auth"
	"github.com/afit-dev/staff-management/internal/cache"
	"github.com/afit-dev/staff-management/internal/config"
	"github.com/afit-dev/staff-management/internal/events"
	"github.com/afit-dev/staff-management/internal/observability"
	"github.com/afit-dev/staff-management/internal/persistence"
	"github.com/afit-dev/staff-management/internal/repository"
	"github.com/afit-dev/staff-management/internal/service"
	"github.com/afit-dev/staff-management/internal/validation"
	"github.com/afit-dev/staff-management/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
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

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	prefixes, err := validation.LoadPrefixTable(cfg.Staff.MobilePrefixFile)
	if err != nil {
		logger.Fatal("failed to load mobile prefix table", zap.Error(err))
	}
	validator := validation.NewIdentityValidator(prefixes)

	store := repository.NewStore(pg.PoolHandle())
	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	publisher := cache.NewStaffCachePublisher(redis.Client, cfg.Staff.CacheTTL(), logger)

	onboardingService := service.NewOnboardingService(cfg, service.OnboardingDependencies{
		Store:      store,
		Validator:  validator,
		Cache:      publisher,
		Dispatcher: dispatcher,
		Logger:     logger,
		Metrics:    metrics,
	})
	departmentService := service.NewDepartmentService(store, dispatcher, logger)
	authService := service.NewAuthService(cfg, store)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), store.Users())

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Staff:          handlers.NewStaffHandler(onboardingService, departmentService),
		Departments:    handlers.NewDepartmentHandler(departmentService),
		AuthMiddleware: authMiddleware,
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
