package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/account-ledger/internal/domain/port/usecase"
	transactionUseCase "github.com/amirhossein-jamali/account-ledger/internal/domain/usecase/transaction"
	userUseCase "github.com/amirhossein-jamali/account-ledger/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger *logger.ZapLogger) error {
	gin.SetMode(cfg.Server.Mode)

	tp, err := timeProvider.NewRealTimeProviderIn(cfg.TimeZone)
	if err != nil {
		return fmt.Errorf("time zone: %w", err)
	}

	dbConfig, err := database.NewConfig(cfg.Database)
	if err != nil {
		return fmt.Errorf("database config: %w", err)
	}

	ctx := context.Background()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	migrationMgr := migration.NewMigrationManager(dbManager.DB(), dbConfig.Driver, appLogger, tp)
	if err := database.RetryOnTransientError(ctx, database.DefaultRetryConfig(), func() error {
		return migrationMgr.MigrateAll(ctx)
	}, dbManager.ErrorClassifier(), appLogger); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	uow := dbManager.CreateUnitOfWork()
	pinHasher := security.NewBcryptPinHasher(cfg.Security.PinHashCost)

	userService := userUseCase.NewUserUseCase(uow.GetUserRepository(ctx), pinHasher, tp, appLogger)
	transactionService := transactionUseCase.NewTransactionService(userService, uow, tp, appLogger, transactionUseCase.Options{
		QueueSize:    cfg.Transaction.QueueSize,
		MaxAttempts:  cfg.Transaction.MaxRetries,
		RetryBackoff: cfg.Transaction.RetryBackoff,
	})

	if err := migration.SeedUsers(ctx, userService, seedUsers(cfg), appLogger); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	router := routes.NewRouter(
		appLogger,
		tp,
		cfg.Server.AllowedOrigins,
		handler.NewUserHandler(userService, appLogger),
		handler.NewTransactionHandler(transactionService, appLogger),
		handler.NewHealthHandler(dbManager, appLogger),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": dbConfig.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		transactionService.Shutdown()
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{"signal": sig.String()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting requests first so no posting is enqueued after the queues close
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down transaction manager...", nil)
	transactionService.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// seedUsers converts configured seed accounts
func seedUsers(cfg *config.Config) []usecase.SeedUser {
	seeds := make([]usecase.SeedUser, 0, len(cfg.Seed.Users))
	for _, u := range cfg.Seed.Users {
		seeds = append(seeds, usecase.SeedUser{Email: u.Email, Pin: u.Pin})
	}
	return seeds
}
