package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-portal/config"
	"hospital-portal/internal/client"
	deliveryHttp "hospital-portal/internal/delivery/http"
	"hospital-portal/internal/delivery/http/handler"
	"hospital-portal/internal/delivery/http/middleware"
	domainRepo "hospital-portal/internal/domain/repository"
	"hospital-portal/internal/infrastructure/cache"
	"hospital-portal/internal/repository"
	"hospital-portal/internal/service"
	"hospital-portal/internal/usecase"
	"hospital-portal/internal/view"
	"hospital-portal/pkg/jwt"
	"hospital-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config         *config.Config
	Log            *logrus.Logger
	RedisClient    *redis.Client
	MemorySessions *repository.MemorySessionRepository
	Sequencer      *service.RequestSequencer
	RateLimiter    *middleware.RateLimiter
	Server         *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := setupLogger(cfg.Log)
	app.Log = log
	log.Info("Configuration loaded successfully")

	// Initialize session store
	sessionRepo, err := app.newSessionRepository(cfg)
	if err != nil {
		return nil, err
	}

	app.Server = app.initializeServer(cfg, sessionRepo)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// newSessionRepository picks the in-process store or Redis
func (app *App) newSessionRepository(cfg *config.Config) (domainRepo.SessionRepository, error) {
	if cfg.Session.Store != config.SessionStoreRedis {
		app.Log.Info("Using in-memory session store")
		app.MemorySessions = repository.NewMemorySessionRepository(cfg.Session.TTL)
		return app.MemorySessions, nil
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}
	app.RedisClient = redisClient
	app.Log.Info("Using Redis session store")

	return repository.NewRedisSessionRepository(redisClient, cfg.Session.TTL), nil
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer(cfg *config.Config, sessionRepo domainRepo.SessionRepository) *http.Server {
	log := app.Log

	// Initialize shared services
	customValidator := validator.NewValidator()
	tokenInspector := jwt.NewTokenInspector()
	app.Sequencer = service.NewRequestSequencer(log)
	app.RateLimiter = middleware.NewRateLimiter(log, cfg.RateLimit)

	renderer, err := view.NewRenderer()
	if err != nil {
		// Templates are compiled into the binary, a parse error is a programming error.
		log.Fatalf("Failed to parse templates: %v", err)
	}

	// Initialize backend clients
	api := client.NewAPIClient(cfg.API, log)
	adminService := client.NewAdminService(api)
	doctorService := client.NewDoctorService(api)
	patientService := client.NewPatientService(api)
	appointmentService := client.NewAppointmentService(api)

	auditService := service.NewAuditService(log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, adminService, doctorService, patientService)
	adminUsecase := usecase.NewAdminDashboardUsecase(log, doctorService, auditService)
	doctorUsecase := usecase.NewDoctorDashboardUsecase(log, appointmentService)
	patientUsecase := usecase.NewPatientDashboardUsecase(log, doctorService, patientService, appointmentService, auditService)

	// Initialize handlers
	pages := handler.NewPageSupport(log, renderer, app.Sequencer, customValidator)
	landingHandler := handler.NewLandingHandler(pages)
	authHandler := handler.NewAuthHandler(pages, authUsecase)
	adminHandler := handler.NewAdminHandler(pages, adminUsecase)
	doctorHandler := handler.NewDoctorHandler(pages, doctorUsecase)
	patientHandler := handler.NewPatientHandler(pages, patientUsecase)
	healthHandler := handler.NewHealthHandler()

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(log, sessionRepo, tokenInspector, cfg.Session)

	// Initialize router
	router := deliveryHttp.NewRouter(
		log,
		landingHandler,
		authHandler,
		adminHandler,
		doctorHandler,
		patientHandler,
		healthHandler,
		sessionMiddleware,
		app.RateLimiter,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		app.Log.Infof("Backend API: %s", app.Config.API.BaseURL)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close stops background workers and closes connections
func (app *App) Close() {
	if app.Sequencer != nil {
		app.Sequencer.Stop()
	}

	if app.RateLimiter != nil {
		app.RateLimiter.Stop()
	}

	if app.MemorySessions != nil {
		app.MemorySessions.Stop()
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
