package main

import (
	"log"

	"hr-payroll-backend/internal/api/routes"
	"hr-payroll-backend/internal/config"
	"hr-payroll-backend/internal/database"
	"hr-payroll-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "hr-payroll-backend/docs" // This is needed for swag
)

//	@title			HR Payroll Backend API
//	@version		1.0
//	@description	Employees, teams, employee-team assignments and payroll queries.

//	@host		localhost:7008
//	@BasePath	/api/v1

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

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	logrus.WithFields(logrus.Fields{
		"port":             cfg.Port,
		"max_weekly_hours": cfg.MaxWeeklyHours,
		"leader_premium":   cfg.LeaderPremium,
		"aggregation":      cfg.PayrollAggregation,
	}).Info("Starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
