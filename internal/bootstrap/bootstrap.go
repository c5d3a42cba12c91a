package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campusdesk/facultyhub/internal/app/controllers"
	"github.com/campusdesk/facultyhub/internal/app/migrations"
	"github.com/campusdesk/facultyhub/internal/app/repositories"
	"github.com/campusdesk/facultyhub/internal/app/routes"
	"github.com/campusdesk/facultyhub/internal/app/services"
	"github.com/campusdesk/facultyhub/internal/config"
	"github.com/campusdesk/facultyhub/internal/db"
	"github.com/campusdesk/facultyhub/internal/middleware"
	"github.com/campusdesk/facultyhub/internal/pkg/auth"
	"github.com/campusdesk/facultyhub/internal/pkg/logger"
	"github.com/campusdesk/facultyhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *repositories.Repositories
	Services       *services.Services
	Controllers    *routes.Controllers
	AuthMiddleware *middleware.AuthMiddleware
	JWTService     *auth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
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
// seeds default data
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
	lgr.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); err == nil {
		migrator := migrations.NewMigrator(dbPool, lgr)
		if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
			lgr.Error().Err(err).Msg("Database migration error")
			dbPool.Close()
			return nil, err
		}
		lgr.Info().Msg("Database migrations applied")
	} else {
		lgr.Warn().Str("path", migrationsDir).Msg("Migrations directory not found, skipping")
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool,
		cfg.Admin.Email, cfg.Admin.Password, lgr); err != nil {
		// Seeding failures are logged but do not block startup
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies wires repositories, services, controllers and middleware
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, err
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(dbPool)
	svcs := services.NewServices(repos, jwtService, lgr)

	ctrls := &routes.Controllers{
		Auth:          controllers.NewAuthController(svcs.AuthService),
		Admin:         controllers.NewAdminController(svcs.AdminService),
		Faculty:       controllers.NewFacultyController(svcs.FacultyService),
		Publication:   controllers.NewPublicationController(repos.PublicationRepository),
		Research:      controllers.NewResearchController(repos.ResearchRepository),
		Patent:        controllers.NewPatentController(repos.PatentRepository),
		Award:         controllers.NewAwardController(repos.AwardRepository),
		Qualification: controllers.NewQualificationController(repos.QualificationRepository),
		Teaching:      controllers.NewTeachingController(repos.TeachingRepository),
		Event:         controllers.NewEventController(repos.EventRepository),
		Outreach:      controllers.NewOutreachController(repos.OutreachRepository),
		Citation:      controllers.NewCitationController(repos.CitationRepository),
		Dashboard:     controllers.NewDashboardController(svcs.DashboardService),
		Export:        controllers.NewExportController(svcs.ExportService),
	}

	return &Dependencies{
		Repos:          repos,
		Services:       svcs,
		Controllers:    ctrls,
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService, repos.FacultyRepository),
		JWTService:     jwtService,
		Logger:         lgr,
	}, nil
}

// SetupRouter builds the gin engine and registers all routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.EqualFold(cfg.Server.Mode, "production") {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(lgr))

	routes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)
	return router
}

// requestLogger logs each request with method, path, status and latency
func requestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		lgr.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Msg("Request handled")
	}
}
