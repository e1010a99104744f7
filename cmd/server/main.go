package main

import (
	"log"

	"football-voting-backend/internal/api/routes"
	"football-voting-backend/internal/config"
	"football-voting-backend/internal/database"
	"football-voting-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	// A storage failure at startup is fatal; the ledger must never serve
	// without its durable state.
	db, err := database.Initialize(cfg.DatabasePath, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to load ledger state:", err)
	}

	logrus.WithFields(logrus.Fields{
		"port":     cfg.Port,
		"database": cfg.DatabasePath,
	}).Info("Starting voting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
