package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/retail_pos_app/internal/core/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/SscSPs/retail_pos_app/internal/handlers"
	"github.com/SscSPs/retail_pos_app/internal/middleware"
	"github.com/SscSPs/retail_pos_app/internal/platform/config"
	"github.com/SscSPs/retail_pos_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/retail_pos_app/internal/utils"
	"github.com/SscSPs/retail_pos_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Retail POS API
// @version 1.0
// @description Point of sale backend for a small store: credit sales paid in installments, cash drawer, service orders and reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), posthogClient)

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		admin, err := container.User.EnsureUser(context.Background(), dto.CreateUserRequest{
			Username: cfg.AdminUsername,
			Name:     cfg.AdminUsername,
			Password: cfg.AdminPassword,
		})
		if err != nil {
			logger.Error("Failed to seed admin operator", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Admin operator ready", slog.String("user_id", admin.UserID))
	}

	apiLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, apiLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
