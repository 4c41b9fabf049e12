// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MyungJiwoo

package main

import (
	"context"
	"fmt"

	"github.com/MyungJiwoo/career-log/internal/adapter"
	"github.com/MyungJiwoo/career-log/internal/config"
	"github.com/MyungJiwoo/career-log/internal/handler"
	"github.com/MyungJiwoo/career-log/internal/logger"
	"github.com/MyungJiwoo/career-log/internal/server"
	"github.com/MyungJiwoo/career-log/internal/service"
	"github.com/MyungJiwoo/career-log/internal/store"
	"github.com/MyungJiwoo/career-log/internal/workers"
	"github.com/MyungJiwoo/career-log/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("career-log-server")
	log.Info().Str("version", buildInfo.BuildVersion()).Str("commit", buildInfo.BuildCommit()).Msg("starting")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("blob_backend", cfg.Storage.Blob.Backend).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, adapter.NewIPifyAdapter(cfg.Adapter), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(cfg.Workers, storages, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() models.AppBuildInfo {
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

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
