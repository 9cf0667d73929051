package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"job_board/internal/config"
	"job_board/internal/handler"
	"job_board/internal/repository"
	"job_board/internal/service"
	"job_board/internal/utils"
	"job_board/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	bootLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load .env file
	if err := godotenv.Load(); err != nil {
		bootLogger.Info("no .env file found, relying on environment variables")
	}

	cfg, err := config.Load(bootLogger)
	if err != nil {
		bootLogger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server exiting")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, cfg.DB, logger)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(ctx, dbPool, logger); err != nil {
		return err
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpiration)
	hasher := utils.NewPasswordHasher(cfg.BcryptCost)
	validator := validation.New()

	// --- Initialize Repositories ---
	accountRepo := repository.NewAccountRepository(dbPool)
	companyRepo := repository.NewCompanyRepository(dbPool)
	jobRepo := repository.NewJobRepository(dbPool)
	applicationRepo := repository.NewApplicationRepository(dbPool)

	// --- Initialize Services ---
	services := handler.Services{
		Auth:         service.NewAuthService(accountRepo, hasher, jwtUtil, logger),
		Accounts:     service.NewAccountService(accountRepo, hasher),
		Companies:    service.NewCompanyService(companyRepo, accountRepo, jobRepo, applicationRepo),
		Jobs:         service.NewJobService(jobRepo),
		Applications: service.NewApplicationService(applicationRepo, jobRepo),
	}

	router := handler.NewRouter(logger, jwtUtil, validator, services, dbPool)

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// --- Graceful Shutdown ---
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
