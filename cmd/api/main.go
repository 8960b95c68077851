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
	"time"

	"jobboard-backend/config"
	_ "jobboard-backend/docs" // Important for Swagger
	"jobboard-backend/internal/delivery/http/middleware"
	v1 "jobboard-backend/internal/delivery/http/v1"
	"jobboard-backend/internal/repository/postgres"
	"jobboard-backend/internal/schema"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/database"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/security"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Job Board API
// @version         1.0
// @description     Multi-tenant job board: accounts, companies and job postings.
// @host            localhost:8000
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		logger.Log.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

// run wires the application and serves until a signal arrives or the
// listener fails. Deferred cleanup always runs before it returns.
func run() error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "mode", cfg.GinMode)

	// 3. Setup Database
	ctx := context.Background()
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer dbPool.Close()

	if cfg.RunMigrations {
		if err := database.RunMigrations(ctx, cfg.DBUrl); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	// 4. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)

	// 5. Setup Credentials
	hasher := security.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)

	// 6. Setup UseCases
	userUC := usecase.NewUserUsecase(userRepo, hasher, tokens)
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, usecase.JobPolicy{OwnershipCheck: cfg.JobOwnershipCheck})
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 7. Setup Request Pipeline (validation -> authentication -> authorization)
	pipeline := middleware.NewPipeline(schema.NewRegistry(), validation.New(), tokens, userUC)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:    userUC,
		CompanyUC: companyUC,
		JobUC:     jobUC,
		HealthUC:  healthUC,
		Pipeline:  pipeline,
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	return serve(srv, quit, 5*time.Second)
}

// serve runs srv until quit fires or the listener fails, then drains
// in-flight requests for at most grace.
func serve(srv *http.Server, quit <-chan os.Signal, grace time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}
