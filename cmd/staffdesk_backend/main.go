package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/caterops/staffdesk/internal/core/services"
	"github.com/caterops/staffdesk/internal/handlers"
	"github.com/caterops/staffdesk/internal/middleware"
	"github.com/caterops/staffdesk/internal/platform/config"
	"github.com/caterops/staffdesk/internal/repositories/memory"
	"github.com/caterops/staffdesk/internal/repositories/database/pgsql"
	"github.com/caterops/staffdesk/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer := services.NewServiceContainer(repos, cfg)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories picks the persistence backend: Postgres when PGSQL_URL is
// configured, otherwise the seeded in-memory provider for local development.
func buildRepositories(cfg *config.Config, logger *slog.Logger) (services.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("PGSQL_URL not set, using seeded in-memory repositories")
		return memory.NewSeededProvider(), func() {}, nil
	}

	pool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations"); err != nil {
		database.ClosePgxPool(pool)
		return nil, nil, err
	}

	return pgsql.NewProvider(pool), func() { database.ClosePgxPool(pool) }, nil
}
