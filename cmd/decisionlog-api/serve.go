package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/seongmin-h/decisionlog/backend/internal/config"
	"github.com/seongmin-h/decisionlog/backend/internal/handlers"
	"github.com/seongmin-h/decisionlog/backend/internal/logger"
	"github.com/seongmin-h/decisionlog/backend/internal/middleware"
	"github.com/seongmin-h/decisionlog/backend/internal/repository"
	"github.com/seongmin-h/decisionlog/backend/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

// newRepository builds the decisions repository for the configured backend.
func newRepository(cfg *config.Config) (repository.DecisionRepository, error) {
	switch cfg.Storage.Backend {
	case config.StorageFile:
		return repository.NewFileDecisionRepository(cfg.Storage.FilePath)
	case config.StorageSQLite, config.StoragePostgres:
		db, err := repository.OpenDatabase(cfg.Storage.Backend, cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		return repository.NewGormDecisionRepository(db)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %q", cfg.Storage.Backend)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	}))
	log := logger.Default()

	log.Info("starting decisionlog API server",
		logger.String("env", cfg.Server.Env),
		logger.String("storage", cfg.Storage.Backend),
	)

	// Initialize repository
	decisionRepo, err := newRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize services
	decisionService := service.NewDecisionService(decisionRepo)
	analyticsService := service.NewAnalyticsService(decisionRepo)

	// Initialize handlers
	decisionHandler := handlers.NewDecisionHandler(decisionService)
	analyticsHandler := handlers.NewAnalyticsHandler(decisionService, analyticsService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders(cfg.Server.Env))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.Auth.JWTSecret))
		protected.Use(middleware.Idempotency())
		{
			// Decision routes
			protected.GET("/decisions", decisionHandler.ListDecisions)
			protected.POST("/decisions", decisionHandler.CreateDecision)
			protected.GET("/decisions/:id", decisionHandler.GetDecision)
			protected.PATCH("/decisions/:id", decisionHandler.UpdateDecision)
			protected.DELETE("/decisions/:id", decisionHandler.DeleteDecision)

			// Analysis routes
			protected.GET("/analysis", analyticsHandler.Overview)
			protected.GET("/analysis/pending", analyticsHandler.Pending)
			protected.GET("/analysis/summary", analyticsHandler.Summary)
			protected.GET("/analysis/weekly", analyticsHandler.Weekly)
			protected.GET("/analysis/weekly-trend", analyticsHandler.WeeklyTrend)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
