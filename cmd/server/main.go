package main

import (
	"github.com/rs/zerolog/log"

	"github.com/davomat/attendance-backend-go/internal/api"
	"github.com/davomat/attendance-backend-go/internal/config"
	"github.com/davomat/attendance-backend-go/internal/database"
	"github.com/davomat/attendance-backend-go/internal/repository"
	"github.com/davomat/attendance-backend-go/internal/service"
	"github.com/davomat/attendance-backend-go/internal/settings"
	"github.com/davomat/attendance-backend-go/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	employeeRepo := repository.NewEmployeeRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	recordRepo := repository.NewRecordRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	provider, err := settings.NewProvider(settingsRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}

	employeeService := service.NewEmployeeService(employeeRepo, cfg.AdminIDs)
	locationService := service.NewLocationService(locationRepo, recordRepo, provider)
	reportService := service.NewReportService(recordRepo, employeeRepo)

	handlers := api.NewHandlers(cfg, employeeService, locationService, reportService, provider)
	router := api.SetupRouter(cfg, employeeService, handlers)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
