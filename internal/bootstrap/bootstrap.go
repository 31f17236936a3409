package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/alumlink/alumlink/internal/app/controllers"
	appMigrations "github.com/alumlink/alumlink/internal/app/migrations"
	appRepos "github.com/alumlink/alumlink/internal/app/repositories"
	"github.com/alumlink/alumlink/internal/app/repositories/memory"
	"github.com/alumlink/alumlink/internal/app/repositories/postgres"
	appRoutes "github.com/alumlink/alumlink/internal/app/routes"
	appServices "github.com/alumlink/alumlink/internal/app/services"
	"github.com/alumlink/alumlink/internal/config"
	"github.com/alumlink/alumlink/internal/db"
	appMiddleware "github.com/alumlink/alumlink/internal/middleware"
	pkgAuth "github.com/alumlink/alumlink/internal/pkg/auth"
	"github.com/alumlink/alumlink/internal/pkg/helpers"
	"github.com/alumlink/alumlink/internal/pkg/logger"
	"github.com/alumlink/alumlink/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      appServices.AuthService
	UserService      appServices.UserService
	JobService       appServices.JobService
	EventService     appServices.EventService
	PostService      appServices.PostService
	MentorService    appServices.MentorService
	AdminService     appServices.AdminService
	HealthController *appControllers.HealthController
	AuthController   *appControllers.AuthController
	UserController   *appControllers.UserController
	JobController    *appControllers.JobController
	EventController  *appControllers.EventController
	PostController   *appControllers.PostController
	MentorController *appControllers.MentorController
	AdminController  *appControllers.AdminController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	Store            *appRepos.Store
	JWTService       *pkgAuth.JWTService
	Logger           zerolog.Logger
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

// SetupStore builds the configured storage backend. The postgres driver
// connects, migrates and wraps a pgx pool; the memory driver is self
// contained. Either way the demo fixtures load when seeding is on.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Store, error) {
	var store *appRepos.Store

	switch cfg.Store.Driver {
	case "postgres":
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
		if err := migrator.MigrateFromDirectory("migrations"); err != nil {
			lgr.Error().Err(err).Msg("Database migration error")
			dbPool.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		store = postgres.New(dbPool, postgres.Options{StrictCapacity: cfg.Store.StrictCapacity})

	case "memory":
		lgr.Info().Msg("Using in-memory store")
		store = memory.New()

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	if cfg.Store.Seed {
		if err := seed.CreateDemoData(context.Background(), store, lgr); err != nil {
			// Seeding failure is not fatal
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return store, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store *appRepos.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Store: store}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 168*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(store.Users, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(store.Users, lgr)
	deps.JobService = appServices.NewJobService(store.Jobs, store.Users, lgr)
	deps.EventService = appServices.NewEventService(store.Events, store.Users, lgr)
	deps.PostService = appServices.NewPostService(store.Posts, store.Users, lgr)
	deps.MentorService = appServices.NewMentorService(store.Users, store.Bookings, lgr)
	deps.AdminService = appServices.NewAdminService(store, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, store.Users)

	deps.HealthController = appControllers.NewHealthController(store)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.JobController = appControllers.NewJobController(deps.JobService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.PostController = appControllers.NewPostController(deps.PostService)
	deps.MentorController = appControllers.NewMentorController(deps.MentorService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)

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

	appRoutes.SetupRouter(router,
		deps.HealthController,
		deps.AuthController,
		deps.UserController,
		deps.JobController,
		deps.EventController,
		deps.PostController,
		deps.MentorController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
