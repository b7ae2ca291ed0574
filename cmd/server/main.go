package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/portfolio-admin/internal/config"
	handlerhttp "github.com/MKhiriev/portfolio-admin/internal/handler/http"
	"github.com/MKhiriev/portfolio-admin/internal/logger"
	"github.com/MKhiriev/portfolio-admin/internal/mailer"
	"github.com/MKhiriev/portfolio-admin/internal/server"
	"github.com/MKhiriev/portfolio-admin/internal/service"
	"github.com/MKhiriev/portfolio-admin/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("portfolio-admin")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Bool("development", cfg.App.Development).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	sender := mailer.NewSMTPMailer(cfg.SMTP, log)
	services := service.NewServices(storages, sender, cfg, log)
	handler := handlerhttp.NewHandler(services, cfg.App.Development, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
