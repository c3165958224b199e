package main

import (
	"fmt"
	"time"

	"hr-payroll-backend/internal/config"
	"hr-payroll-backend/internal/database"
	"hr-payroll-backend/internal/logger"
	"hr-payroll-backend/internal/repository"
	"hr-payroll-backend/internal/seed"
	"hr-payroll-backend/internal/service"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type loadOutput struct {
	Command    string        `json:"command"`
	File       string        `json:"file"`
	DurationMS int64         `json:"duration_ms"`
	Result     *seed.Summary `json:"result"`
}

func newLoadCmd() *cobra.Command {
	var (
		file        string
		maxAttempts int
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Create the roster's records, skipping those that already exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			roster, err := seed.ParseFile(file)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.Setup(cfg.LogLevel)

			db, err := connectWithRetry(cfg.DatabaseURL, maxAttempts, time.Second)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			services, err := service.NewServices(repository.NewStore(db), cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			summary, err := seed.NewLoader(services).Load(cmd.Context(), roster)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), loadOutput{
				Command:    "seed load",
				File:       file,
				DurationMS: time.Since(start).Milliseconds(),
				Result:     summary,
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", defaultRosterFile, "Roster YAML file")
	cmd.Flags().IntVar(&maxAttempts, "connect-attempts", 60, "Database connection attempts, one per second")
	return cmd
}

// connectWithRetry waits for Postgres to accept connections
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: gormlogger.Silent,
	}

	log := logger.New()
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.WithError(err).Warnf("Database not ready (%d/%d)", attempt, maxAttempts)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
