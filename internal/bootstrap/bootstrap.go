package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/formadesk/formadesk/internal/app/controllers"
	appMigrations "github.com/formadesk/formadesk/internal/app/migrations"
	appRepos "github.com/formadesk/formadesk/internal/app/repositories"
	appRoutes "github.com/formadesk/formadesk/internal/app/routes"
	appServices "github.com/formadesk/formadesk/internal/app/services"
	"github.com/formadesk/formadesk/internal/config"
	"github.com/formadesk/formadesk/internal/db"
	appMiddleware "github.com/formadesk/formadesk/internal/middleware"
	pkgAuth "github.com/formadesk/formadesk/internal/pkg/auth"
	"github.com/formadesk/formadesk/internal/pkg/helpers"
	"github.com/formadesk/formadesk/internal/pkg/logger"
	"github.com/formadesk/formadesk/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      appServices.AuthService
	RequestService   appServices.RequestService
	TrainingService  appServices.TrainingService
	SessionService   appServices.SessionService
	CohortService    appServices.CohortService
	CommunityService appServices.CommunityService
	AssetService     appServices.AssetService
	WorkOrderService appServices.WorkOrderService
	OrgUnitService   appServices.OrgUnitService
	ProfileService   appServices.ProfileService
	Controllers      *appRoutes.Controllers
	AuthMiddleware   *appMiddleware.AuthMiddleware
	Repos            *appRepos.Repositories
	JWTService       *pkgAuth.JWTService
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  strings.ToLower(cfg.Logging.Level),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// optionally seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
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

	if cfg.Seed {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			// Log the error but don't fail the startup.
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.ProfileRepository,
		deps.Repos.RoleRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.RequestService = appServices.NewRequestService(
		deps.Repos.RequestRepository,
		deps.Repos.ApprovalStepRepository,
		deps.Repos.ProfileRepository,
		database,
		lgr,
	)
	deps.TrainingService = appServices.NewTrainingService(deps.Repos.TrainingRepository, lgr)
	deps.SessionService = appServices.NewSessionService(deps.Repos.SessionRepository, deps.Repos.TrainingRepository, lgr)
	deps.CohortService = appServices.NewCohortService(deps.Repos.CohortRepository, lgr)
	deps.CommunityService = appServices.NewCommunityService(deps.Repos.CommunityRepository, lgr)
	deps.AssetService = appServices.NewAssetService(deps.Repos.AssetRepository, lgr)
	deps.WorkOrderService = appServices.NewWorkOrderService(deps.Repos.WorkOrderRepository, lgr)
	deps.OrgUnitService = appServices.NewOrgUnitService(deps.Repos.OrgUnitRepository, lgr)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.ProfileRepository, deps.Repos.RoleRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = &appRoutes.Controllers{
		Auth:      appControllers.NewAuthController(deps.AuthService),
		Request:   appControllers.NewRequestController(deps.RequestService),
		Training:  appControllers.NewTrainingController(deps.TrainingService, deps.SessionService),
		Session:   appControllers.NewSessionController(deps.SessionService),
		Cohort:    appControllers.NewCohortController(deps.CohortService),
		Community: appControllers.NewCommunityController(deps.CommunityService),
		Asset:     appControllers.NewAssetController(deps.AssetService),
		WorkOrder: appControllers.NewWorkOrderController(deps.WorkOrderService),
		OrgUnit:   appControllers.NewOrgUnitController(deps.OrgUnitService),
		Profile:   appControllers.NewProfileController(deps.ProfileService),
	}

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

	router := gin.Default()
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(appMiddleware.Metrics())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
