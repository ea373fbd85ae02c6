package main

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/fccrm/crm-admin/internal/config"
	handler "github.com/fccrm/crm-admin/internal/handler/http"
	"github.com/fccrm/crm-admin/internal/logger"
	"github.com/fccrm/crm-admin/internal/server"
	"github.com/fccrm/crm-admin/internal/service"
	"github.com/fccrm/crm-admin/internal/store"
	"github.com/fccrm/crm-admin/internal/workers"
	"github.com/fccrm/crm-admin/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetConfig()
	if err != nil {
		logger.NewLogger("crm-admin", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("crm-admin", cfg.Logs.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, db, cfg, log)
	handlers := handler.NewHandler(services, cfg, log)

	background := workers.NewWorkers(
		workers.NewLogCleanupWorker(services.AuditService, cfg.Logs.CleanupInterval, log),
	)

	srv, err := server.NewServer(handlers.Init(), background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
