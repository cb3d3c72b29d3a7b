package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/finsaarthi/scholarhub/docs" // Import generated swagger docs
	appControllers "github.com/finsaarthi/scholarhub/internal/app/controllers"
	appRoutes "github.com/finsaarthi/scholarhub/internal/app/routes"
	appServices "github.com/finsaarthi/scholarhub/internal/app/services"
	"github.com/finsaarthi/scholarhub/internal/config"
	appMiddleware "github.com/finsaarthi/scholarhub/internal/middleware"
	pkgAuth "github.com/finsaarthi/scholarhub/internal/pkg/auth"
	"github.com/finsaarthi/scholarhub/internal/pkg/events"
	"github.com/finsaarthi/scholarhub/internal/pkg/filestorage"
	"github.com/finsaarthi/scholarhub/internal/pkg/helpers"
	"github.com/finsaarthi/scholarhub/internal/pkg/logger"
	"github.com/finsaarthi/scholarhub/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService        // Interface type
	UserService           appServices.UserService        // Interface type
	ScholarshipService    appServices.ScholarshipService // Interface type
	ApplicationService    appServices.ApplicationService // Interface type
	AuthController        *appControllers.AuthController
	UserController        *appControllers.UserController
	ScholarshipController *appControllers.ScholarshipController
	ApplicationController *appControllers.ApplicationController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	JWTService            *pkgAuth.JWTService
	Hub                   *events.Hub
	Logger                zerolog.Logger
	FileStorage           *filestorage.LocalStorage
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the JSON aggregate store and loads it into memory.
// A missing or unreadable file is replaced by the seed data, so this
// only fails when the store directory itself cannot be created.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.Store, error) {
	lgr.Info().Str("path", cfg.Store.Path).Msg("Opening data store...")

	st := store.New(cfg.Store.Path, lgr)
	if err := st.Load(); err != nil {
		lgr.Error().Err(err).Msg("Failed to load data store")
		return nil, err
	}

	lgr.Info().Msg("Data store loaded.")
	return st, nil
}

// BuildDependencies initializes application services, controllers and
// the change-event hub.
func BuildDependencies(cfg *config.Config, st *store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	// Initialize File Storage
	// Configure baseURL to match the static file serving endpoint
	var err error
	baseUrl := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseUrl + "/uploads" // This must match the static file serving URL path
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Uploads.Path, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	// Fan store change events out to WebSocket subscribers
	deps.Hub = events.NewHub(lgr)
	st.Subscribe(deps.Hub.Publish)
	go deps.Hub.Run()

	// Initialize services
	deps.AuthService = appServices.NewAuthService(st, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(st)
	deps.ScholarshipService = appServices.NewScholarshipService(st)
	deps.ApplicationService = appServices.NewApplicationService(st, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService, deps.FileStorage)
	deps.ScholarshipController = appControllers.NewScholarshipController(deps.ScholarshipService, deps.ApplicationService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService)

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

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ScholarshipController,
		deps.ApplicationController,
		deps.AuthMiddleware,
		deps.Hub,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
