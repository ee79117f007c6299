package main

import (
	"github.com/VindiceCode/plantprince/config"
	"github.com/VindiceCode/plantprince/controllers"
	"github.com/VindiceCode/plantprince/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	godotenv.Load()
	cfg := config.Load()

	logger := newLogger(cfg)
	defer logger.Sync()

	// Connect to PostgreSQL when configured. The API works without it;
	// only the audit log endpoints need a database.
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		controllers.MigrateModels(db)
		logger.Info("request audit log enabled")
	} else {
		logger.Warn("DATABASE_URL not set, request audit log disabled")
	}

	if !cfg.AgentConfigured() {
		logger.Warn("agent not configured, every request will use the fallback bundles")
	}

	controllers.Init(cfg, logger)

	// Set up Gin router with CORS configuration
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/", controllers.Root)
	r.GET("/health", controllers.Health)
	r.GET("/ws", controllers.HandleWebSocket)

	api := r.Group("/api")
	api.POST("/recommendations", controllers.GetRecommendations)
	api.GET("/recommendations/health", controllers.RecommendationsHealth)
	api.GET("/logs", controllers.GetRecentLogs)
	api.GET("/logs/stats", controllers.GetLogStats)
	api.GET("/logs/export", controllers.DownloadLogsCSV)
	api.GET("/logs/backups", controllers.ListLogBackups)

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	zc := zap.NewProductionConfig()
	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zc.Level = zap.NewAtomicLevelAt(level)
	}
	logger, err := zc.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
