package main

import (
	"github.com/emuhs/s2p-api/internal/procurement/repository"
	"github.com/emuhs/s2p-api/pkg/config"
	"github.com/emuhs/s2p-api/pkg/database"
	"github.com/emuhs/s2p-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("s2p-migrate", true)
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.ServiceName+"-migrate", cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if err := repository.Migrate(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().
		Str("driver", cfg.Database.Driver).
		Msg("Database schema is up to date")
}
