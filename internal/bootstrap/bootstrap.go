// Package bootstrap wires configuration, storage and application layers.
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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ardiansetya/coursehub/internal/app/controllers"
	appMigrations "github.com/ardiansetya/coursehub/internal/app/migrations"
	appRepos "github.com/ardiansetya/coursehub/internal/app/repositories"
	appRoutes "github.com/ardiansetya/coursehub/internal/app/routes"
	appServices "github.com/ardiansetya/coursehub/internal/app/services"
	"github.com/ardiansetya/coursehub/internal/config"
	"github.com/ardiansetya/coursehub/internal/db"
	appMiddleware "github.com/ardiansetya/coursehub/internal/middleware"
	pkgAuth "github.com/ardiansetya/coursehub/internal/pkg/auth"
	"github.com/ardiansetya/coursehub/internal/pkg/filestorage"
	"github.com/ardiansetya/coursehub/internal/pkg/helpers"
	"github.com/ardiansetya/coursehub/internal/pkg/logger"
	"github.com/ardiansetya/coursehub/internal/pkg/payment"
	"github.com/ardiansetya/coursehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	FileStorage        *filestorage.LocalStorage
	PaymentGateway     payment.Gateway
	AuthService        *appServices.AuthService
	PaymentService     *appServices.PaymentService
	CourseService      *appServices.CourseService
	ContentService     *appServices.ContentService
	StudentService     *appServices.StudentService
	EnrollmentService  *appServices.EnrollmentService
	OverviewService    *appServices.OverviewService
	AuthController     *appControllers.AuthController
	PaymentController  *appControllers.PaymentController
	CourseController   *appControllers.CourseController
	ContentController  *appControllers.ContentController
	StudentController  *appControllers.StudentController
	OverviewController *appControllers.OverviewController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Logger             zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default categories.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
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
	lgr.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.ApplyDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.Categories(context.Background(), appRepos.NewCategoryRepository(dbPool)); err != nil {
		// Seeding failure is not fatal, categories can be created manually
		lgr.Error().Err(err).Msg("Failed to seed default categories, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = storage

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.PaymentGateway = payment.NewClient(payment.Config{
		BaseURL:    cfg.Payment.BaseURL,
		AuthString: cfg.Payment.AuthString,
		FinishURL:  cfg.Payment.FinishURL,
		Timeout:    helpers.ParseDuration(cfg.Payment.Timeout, 15*time.Second),
	}, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TransactionRepository,
		deps.PaymentGateway,
		deps.JWTService,
		cfg.Payment.SignupPrice,
		lgr,
	)
	deps.PaymentService = appServices.NewPaymentService(deps.Repos.TransactionRepository, lgr)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.CategoryRepository,
		deps.Repos.ContentRepository,
		deps.FileStorage,
		lgr,
	)
	deps.ContentService = appServices.NewContentService(
		deps.Repos.ContentRepository,
		deps.Repos.CourseRepository,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.UserRepository,
		deps.FileStorage,
		lgr,
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.UserRepository,
		deps.FileStorage,
		lgr,
	)
	deps.OverviewService = appServices.NewOverviewService(
		deps.Repos.CourseRepository,
		deps.Repos.ContentRepository,
		deps.Repos.EnrollmentRepository,
		deps.Repos.UserRepository,
		deps.FileStorage,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.PaymentController = appControllers.NewPaymentController(deps.PaymentService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, deps.EnrollmentService, lgr)
	deps.ContentController = appControllers.NewContentController(deps.ContentService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.EnrollmentService, lgr)
	deps.OverviewController = appControllers.NewOverviewController(deps.OverviewService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.PaymentController,
		deps.CourseController,
		deps.ContentController,
		deps.StudentController,
		deps.OverviewController,
		deps.AuthMiddleware,
	)

	return router
}
