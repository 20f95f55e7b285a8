package main

import (
	"database/sql"
	"disposal-locator-service/internal/adapters/repositories"
	"disposal-locator-service/internal/config"
	"disposal-locator-service/internal/platform/db"
	"disposal-locator-service/internal/platform/logger"
	"fmt"
	"log"

	"go.uber.org/zap"
)

// dbtool initializes the Postgres schema and seeds the location catalog.
// It reads the same configuration as the server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer appLogger.Sync()

	databaseURL, err := cfg.RequireDatabaseURL()
	if err != nil {
		appLogger.Fatal("dbtool needs postgres", zap.Error(err))
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		appLogger.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	if err := initAndSeed(conn, cfg.SeedPath, appLogger); err != nil {
		appLogger.Fatal("init and seed", zap.Error(err))
	}
}

func initAndSeed(conn *sql.DB, seedPath string, logger *zap.Logger) error {
	logger.Info("initializing database schema")
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	logger.Info("schema ready")

	logger.Info("seeding database", zap.String("seed_path", seedPath))
	if err := repositories.SeedPostgresFromJSON(conn, seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	logger.Info("seeding complete")

	return nil
}
