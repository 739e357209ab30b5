// cmd/user-metrics-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/someilay/QuasarTest/internal/api/rest/v1"
	"github.com/someilay/QuasarTest/internal/app"
	"github.com/someilay/QuasarTest/internal/domain/activities"
	"github.com/someilay/QuasarTest/internal/domain/users"
	"github.com/someilay/QuasarTest/internal/infrastructure/persistence"
	"github.com/someilay/QuasarTest/internal/infrastructure/persistence/models"
	"github.com/someilay/QuasarTest/internal/pkg/config"
	"github.com/someilay/QuasarTest/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/rest-app.yaml"
	}

	cfg, err := config.InitializeConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeServices(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(cfg, services, log)
}

// appServices holds the application services behind the HTTP handlers
type appServices struct {
	user     users.UserService
	metrics  users.UserMetricsService
	activity activities.ActivityService
}

// initializeServices sets up the database, repositories and services
func initializeServices(cfg *config.Config, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.UserModel{}, &models.ActivityModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}

	activityRepo, err := persistence.NewGormActivityRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity repository: %w", err)
	}

	// Initialize services
	userService, err := app.NewUserService(userRepo, activityRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	metricsService, err := app.NewUserMetricsService(userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics service: %w", err)
	}

	activityService, err := app.NewActivityService(activityRepo, userRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		user:     userService,
		metrics:  metricsService,
		activity: activityService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.Config, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, services.user, services.metrics, services.activity)

	// Serve OpenAPI spec and the static HTML docs page
	r.GET(v1.BasePath+"/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/user-metrics.yaml")
	})
	r.GET(v1.BasePath+"/docs", func(c *gin.Context) {
		c.File("./api/openapi/v1/index.html")
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
