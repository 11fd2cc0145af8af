package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kaan/edusphere/internal/app/controllers"
	appMigrations "github.com/kaan/edusphere/internal/app/migrations"
	"github.com/kaan/edusphere/internal/app/partner"
	appRepos "github.com/kaan/edusphere/internal/app/repositories"
	appRoutes "github.com/kaan/edusphere/internal/app/routes"
	appServices "github.com/kaan/edusphere/internal/app/services"
	"github.com/kaan/edusphere/internal/config"
	"github.com/kaan/edusphere/internal/db"
	appMiddleware "github.com/kaan/edusphere/internal/middleware"
	pkgAuth "github.com/kaan/edusphere/internal/pkg/auth"
	"github.com/kaan/edusphere/internal/pkg/helpers"
	"github.com/kaan/edusphere/internal/pkg/logger"
	"github.com/kaan/edusphere/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	UniversityService appServices.UniversityService
	BranchService     appServices.BranchService
	CollegeService    appServices.CollegeService
	CourseService     appServices.CourseService
	PartnerService    appServices.PartnerService
	ProgressService   appServices.ProgressService
	StatsService      appServices.StatsService

	AuthController       *appControllers.AuthController
	UniversityController *appControllers.UniversityController
	BranchController     *appControllers.BranchController
	CollegeController    *appControllers.CollegeController
	CourseController     *appControllers.CourseController
	PartnerController    *appControllers.PartnerController
	ProgressController   *appControllers.ProgressController
	StatsController      *appControllers.StatsController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	PartnerStore   partner.Store
	Logger         zerolog.Logger
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// newPartnerStore selects the partner-context persistence backend. With
// Redis disabled, sessions live in process memory only.
func newPartnerStore(cfg *config.Config, lgr zerolog.Logger) partner.Store {
	if !cfg.Redis.Enabled {
		lgr.Info().Msg("Redis disabled, partner sessions are in-memory only")
		return partner.NopStore{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ttl := helpers.ParseDuration(cfg.Redis.SessionTTL, 24*time.Hour)
	lgr.Info().Str("addr", cfg.Redis.Addr).Dur("sessionTTL", ttl).Msg("Partner sessions persisted to Redis")
	return partner.NewRedisStore(client, ttl)
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.PartnerStore = newPartnerStore(cfg, lgr)

	deps.AuthService = appServices.NewAuthService(cfg, deps.JWTService)
	deps.UniversityService = appServices.NewUniversityService(
		deps.Repos.UniversityRepository,
		deps.Repos.BranchRepository,
		deps.Repos.CollegeRepository,
	)
	deps.BranchService = appServices.NewBranchService(
		deps.Repos.BranchRepository,
		deps.Repos.UniversityRepository,
	)
	deps.CollegeService = appServices.NewCollegeService(
		deps.Repos.CollegeRepository,
		deps.Repos.BranchRepository,
		deps.Repos.UniversityRepository,
	)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.PartnerService = appServices.NewPartnerService(
		deps.Repos.CollegeRepository,
		deps.Repos.UniversityRepository,
		deps.Repos.BranchRepository,
		deps.PartnerStore,
	)
	deps.ProgressService = appServices.NewProgressService(
		deps.Repos.CourseRepository,
		deps.Repos.ProgressRepository,
	)
	deps.StatsService = appServices.NewStatsService(deps.Repos)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UniversityController = appControllers.NewUniversityController(deps.UniversityService)
	deps.BranchController = appControllers.NewBranchController(deps.BranchService)
	deps.CollegeController = appControllers.NewCollegeController(deps.CollegeService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.PartnerController = appControllers.NewPartnerController(deps.PartnerService)
	deps.ProgressController = appControllers.NewProgressController(deps.ProgressService)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService)

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
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UniversityController,
		deps.BranchController,
		deps.CollegeController,
		deps.CourseController,
		deps.PartnerController,
		deps.ProgressController,
		deps.StatsController,
		deps.AuthMiddleware,
	)

	return router
}
