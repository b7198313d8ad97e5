package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront_service/config"
	"storefront_service/internal/clients"
	"storefront_service/internal/delivery"
	grpcHandler "storefront_service/internal/delivery/grpc"
	"storefront_service/internal/repository"
	"storefront_service/internal/seed"
	"storefront_service/internal/usecase"
	"storefront_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := setupLogger("info")

	cfg := config.LoadConfig(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: info", cfg.LogLevel)
	} else {
		logger.SetLevel(logLevel)
	}
	logger.Info("Starting Storefront Service...")

	if err := run(cfg, logger); err != nil {
		logger.Fatalf("Storefront Service stopped: %v", err)
	}
}

// run owns every resource it opens, so deferred cleanup happens before main exits.
func run(cfg *config.Config, logger *logrus.Logger) error {
	// --- Database Connection ---
	database, err := db.Connect(cfg.DatabaseURL, db.Options{
		Driver:          cfg.DBDriver,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		SlowThreshold:   cfg.DBSlowThreshold,
	}, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Errorf("Error closing database connection: %v", err)
		} else {
			logger.Info("Database connection closed.")
		}
	}()
	if err := db.Migrate(database); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	logger.Info("Database connection established.")

	// --- Dependency Injection ---
	productRepo := repository.NewGormProductRepository(database, logger)
	userRepo := repository.NewGormUserRepository(database, logger)

	hasher, err := usecase.NewPasswordHasher(cfg.PasswordMode)
	if err != nil {
		return fmt.Errorf("password mode: %w", err)
	}
	if hasher.Plain() {
		logger.Warn("PASSWORD_MODE=plain: passwords are stored and compared in plaintext")
	}
	productUseCase := usecase.NewProductUseCase(productRepo, logger)
	userUseCase := usecase.NewUserUseCase(userRepo, hasher, logger)

	// --- Seeding, before any listener accepts traffic ---
	if cfg.SeedEnabled {
		catalogClient := clients.NewCatalogHTTPClient(cfg.SeedURL, cfg.SeedTimeout, logger)
		n, err := seed.NewSeeder(productRepo, catalogClient, logger).SeedProducts(context.Background())
		if err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		logger.Infof("Seeding finished, %d products imported.", n)
	} else {
		logger.Info("Seeding disabled.")
	}

	// --- HTTP ---
	gin.SetMode(cfg.GinMode)
	router := delivery.NewRouter(logger,
		delivery.NewProductHandler(productUseCase, logger),
		delivery.NewUserHandler(userUseCase, logger),
	)
	httpServer := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}

	// --- gRPC ---
	grpcServer := grpcHandler.NewServer(grpcHandler.NewCatalogHandler(productUseCase, logger), logger)
	lis, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.GrpcPort, err)
	}

	serveErr := make(chan error, 2)
	go func() {
		logger.Infof("Starting HTTP server on port %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			serveErr <- err
		}
	}()
	grpcServer.MarkServing()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		logger.Warnf("Shutdown signal received: %s", sig)
	case runErr = <-serveErr:
		logger.Errorf("Server failed: %v", runErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf("HTTP shutdown error: %v", err)
	}
	grpcServer.Stop(ctx)
	if runErr != nil {
		return runErr
	}
	logger.Info("Storefront Service shut down gracefully.")
	return nil
}

func setupLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}
