package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/baris/collegehub/internal/app/controllers"
	"github.com/baris/collegehub/internal/app/repositories"
	"github.com/baris/collegehub/internal/app/routes"
	"github.com/baris/collegehub/internal/app/services"
	"github.com/baris/collegehub/internal/config"
	"github.com/baris/collegehub/internal/db"
	"github.com/baris/collegehub/internal/middleware"
	"github.com/baris/collegehub/internal/pkg/auth"
	"github.com/baris/collegehub/internal/pkg/logger"
	"github.com/baris/collegehub/internal/seed"
)

// Dependencies holds all wired application components
type Dependencies struct {
	Repos                *repositories.Repositories
	Services             *services.Services
	AuthController       *controllers.AuthController
	DepartmentController *controllers.DepartmentController
	FacultyController    *controllers.FacultyController
	CourseController     *controllers.CourseController
	StudentController    *controllers.StudentController
	AuthMiddleware       *middleware.AuthMiddleware
	JWTService           *auth.JWTService
}

// LoadConfigAndSetupLogger loads configuration and configures the logger
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	logger.Info().Str("level", cfg.Logging.Level).Str("format", cfg.Logging.Format).Msg("Logger configured")

	return cfg, nil
}

// SetupDatabase connects to MongoDB and ensures the unique indexes. In
// non-production mode a failed connection is tolerated: the server starts
// store-less and data operations fail per request instead.
func SetupDatabase(cfg *config.Config) (*db.MongoDB, error) {
	logger.Info().Str("database", cfg.Mongo.Database).Msg("Establishing database connection...")

	database, err := db.NewMongoDB(cfg)
	if err != nil {
		if cfg.IsProduction() || database == nil {
			return nil, err
		}
		logger.Warn().Err(err).Msg("Database unreachable, continuing without store")
		return database, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	logger.Info().Msg("Database connection established")
	return database, nil
}

// BuildDependencies wires repositories, services, controllers and middleware
func BuildDependencies(cfg *config.Config, database *db.MongoDB) *Dependencies {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.JWTExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(database.Database)
	svcs := services.NewServices(repos, jwtService)

	return &Dependencies{
		Repos:          repos,
		Services:       svcs,
		JWTService:     jwtService,
		AuthController: controllers.NewAuthController(svcs.AuthService),
		DepartmentController: controllers.NewDepartmentController(
			svcs.DepartmentService, svcs.FacultyService, svcs.CourseService, svcs.StudentService),
		FacultyController: controllers.NewFacultyController(svcs.FacultyService),
		CourseController:  controllers.NewCourseController(svcs.CourseService),
		StudentController: controllers.NewStudentController(svcs.StudentService),
		AuthMiddleware:    middleware.NewAuthMiddleware(jwtService, svcs.AuthService),
	}
}

// SetupRouter builds the gin engine with middleware and all routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	routes.SetupRouter(
		router,
		deps.AuthController,
		deps.DepartmentController,
		deps.FacultyController,
		deps.CourseController,
		deps.StudentController,
		deps.AuthMiddleware,
		time.Now(),
	)
	return router
}

// SeedDefaultData loads the default records and reconciles enrollment
// counters. Default records (including the bootstrap admin login) are only
// created outside production; failures are logged, not fatal.
func SeedDefaultData(cfg *config.Config, deps *Dependencies) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if !cfg.IsProduction() {
		if err := seed.DefaultData(ctx, deps.Repos); err != nil {
			logger.Warn().Err(err).Msg("Seeding default data failed")
		}
	}
	if err := seed.SyncEnrollmentCounts(ctx, deps.Repos); err != nil {
		logger.Warn().Err(err).Msg("Enrollment count sync failed")
	}
}
