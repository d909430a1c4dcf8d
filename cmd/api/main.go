package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/badobtech/backoffice-service/internal/api/http"
	"github.com/badobtech/backoffice-service/internal/api/http/handlers"
	"github.com/badobtech/backoffice-service/internal/auth"
	"github.com/badobtech/backoffice-service/internal/config"
	"github.com/badobtech/backoffice-service/internal/events"
	"github.com/badobtech/backoffice-service/internal/observability"
	"github.com/badobtech/backoffice-service/internal/persistence"
	"github.com/badobtech/backoffice-service/internal/repository"
	"github.com/badobtech/backoffice-service/internal/service"
	"github.com/badobtech/backoffice-service/internal/worker"
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

	pool := pg.PoolHandle()
	employeeRepo := repository.NewEmployeeRepository(pool)
	accountRepo := repository.NewAccountRepository(pool)
	callRepo := repository.NewCallRepository(pool)
	hourLogRepo := repository.NewHourLogRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		EmployeeRepo:      employeeRepo,
		PasswordResetRepo: resetRepo,
	})
	employeeService := service.NewEmployeeService(service.EmployeeDependencies{
		EmployeeRepo: employeeRepo,
		BcryptCost:   cfg.Auth.BcryptCost,
		Dispatcher:   dispatcher,
	})
	accountService := service.NewAccountService(service.AccountDependencies{
		AccountRepo: accountRepo,
		CallRepo:    callRepo,
		Dispatcher:  dispatcher,
	})
	callService := service.NewCallService(service.CallDependencies{
		CallRepo:    callRepo,
		AccountRepo: accountRepo,
		Dispatcher:  dispatcher,
	})
	hourLogService := service.NewHourLogService(service.HourLogDependencies{
		HourLogRepo:  hourLogRepo,
		EmployeeRepo: employeeRepo,
		Dispatcher:   dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Employees:      handlers.NewEmployeesHandler(employeeService),
		Accounts:       handlers.NewAccountsHandler(accountService),
		Calls:          handlers.NewCallsHandler(callService),
		Hours:          handlers.NewHoursHandler(hourLogService),
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
