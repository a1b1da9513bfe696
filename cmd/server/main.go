package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-agreement-keeper/internal/config"
	"github.com/MKhiriev/go-agreement-keeper/internal/handler"
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/server"
	"github.com/MKhiriev/go-agreement-keeper/internal/service"
	"github.com/MKhiriev/go-agreement-keeper/internal/store"
	"github.com/MKhiriev/go-agreement-keeper/internal/workers"
	"github.com/MKhiriev/go-agreement-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	uploadSweepInterval = 10 * time.Minute
	staleUploadAge      = time.Hour
	startupTimeout      = time.Minute
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)

	log := logger.NewLogger("agreement-ledger")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = info.BuildVersion()
	}

	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	ws := workers.NewWorkers()
	if storages.UploadSweeper != nil {
		ws.Add(workers.NewUploadSweeper(storages.UploadSweeper, uploadSweepInterval, staleUploadAge))
	}

	srv, err := server.NewServer(handlers, cfg.Server, ws, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
