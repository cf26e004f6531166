package main

import (
	"log"
	"os"

	_ "fantasy-league-backend/docs" // generated swagger docs
	"fantasy-league-backend/internal/api/routes"
	"fantasy-league-backend/internal/config"
	"fantasy-league-backend/internal/database"
	"fantasy-league-backend/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//	@title			Fantasy League API
//	@version		1.0
//	@description	API for managing fantasy-league teams, players, game weeks and match results.

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Initialize the match-event publisher. Eventing is best-effort, so a
	// missing NATS server only downgrades the feature.
	var publisher events.Publisher
	natsCfg := events.DefaultNATSConfig()
	natsCfg.URL = cfg.NATSURL
	if p, err := events.NewNATSPublisher(natsCfg); err != nil {
		logrus.WithError(err).Warn("NATS unavailable, match-result events disabled")
	} else {
		publisher = p
		defer p.Close()
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, publisher)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
