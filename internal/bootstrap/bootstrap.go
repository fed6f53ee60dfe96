package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ecetin/gradpath/internal/app/controllers"
	appMigrations "github.com/ecetin/gradpath/internal/app/migrations"
	appRepos "github.com/ecetin/gradpath/internal/app/repositories"
	appRoutes "github.com/ecetin/gradpath/internal/app/routes"
	appServices "github.com/ecetin/gradpath/internal/app/services"
	"github.com/ecetin/gradpath/internal/config"
	"github.com/ecetin/gradpath/internal/db"
	appMiddleware "github.com/ecetin/gradpath/internal/middleware"
	"github.com/ecetin/gradpath/internal/pkg/logger"
	"github.com/ecetin/gradpath/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService        *appServices.CatalogService
	ProgramService        *appServices.ProgramService
	RequirementService    *appServices.RequirementService
	PlanService           *appServices.PlanService
	ProgressService       *appServices.ProgressService
	EquivalencyService    *appServices.EquivalencyService
	CatalogController     *appControllers.CatalogController
	ProgramController     *appControllers.ProgramController
	RequirementController *appControllers.RequirementController
	PlanController        *appControllers.PlanController
	ProgressController    *appControllers.ProgressController
	EquivalencyController *appControllers.EquivalencyController
	Repos                 *appRepos.Repositories
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateSampleData(context.Background(), dbPool, lgr); err != nil {
			// Sample data is a development convenience; startup continues
			lgr.Error().Err(err).Msg("Failed to create sample data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.CatalogService = appServices.NewCatalogService(deps.Repos.Course)
	deps.ProgramService = appServices.NewProgramService(deps.Repos.Program)
	deps.RequirementService = appServices.NewRequirementService(deps.Repos.Requirement, deps.Repos.Program)
	deps.PlanService = appServices.NewPlanService(deps.Repos.Plan, deps.Repos.Program)
	deps.ProgressService = appServices.NewProgressService(
		deps.Repos.Plan,
		deps.Repos.Program,
		deps.Repos.Requirement,
		deps.Repos.Course,
		deps.Repos.Equivalency,
		lgr,
	)
	deps.EquivalencyService = appServices.NewEquivalencyService(deps.Repos.Equivalency)

	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.ProgramController = appControllers.NewProgramController(deps.ProgramService)
	deps.RequirementController = appControllers.NewRequirementController(deps.RequirementService)
	deps.PlanController = appControllers.NewPlanController(deps.PlanService)
	deps.ProgressController = appControllers.NewProgressController(deps.ProgressService)
	deps.EquivalencyController = appControllers.NewEquivalencyController(deps.EquivalencyService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.CatalogController,
		deps.ProgramController,
		deps.RequirementController,
		deps.PlanController,
		deps.ProgressController,
		deps.EquivalencyController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
