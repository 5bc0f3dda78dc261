package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/pkostin/fieldsync/internal/adapter"
	"github.com/pkostin/fieldsync/internal/config"
	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/internal/netmon"
	"github.com/pkostin/fieldsync/internal/server"
	"github.com/pkostin/fieldsync/internal/service"
	"github.com/pkostin/fieldsync/internal/store"
	"github.com/pkostin/fieldsync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fieldsync-agent")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// the agent runs unattended on a device; from here on logs go to the
	// rotating file sink when one is configured
	if cfg.Log.FilePath != "" {
		log = logger.NewFileLogger("fieldsync-agent", cfg.Log.FilePath, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	blobs, err := store.NewPhotoBlobStorage(cfg.Storage.Files, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating photo blob storage")
	}

	storageAdapter, err := adapter.NewHTTPStorageAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage adapter")
	}

	crmAdapter, err := adapter.NewHTTPCRMAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating crm adapter")
	}

	monitor := netmon.NewProbeMonitor(cfg.Monitor, log)
	services := service.NewServices(storages, blobs, storageAdapter, crmAdapter, monitor, cfg, log)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	workers.NewWorkers(
		workers.NewMonitorWorker(monitor),
		workers.NewSyncJobWorker(services.SyncJob),
		workers.NewDonePruner(storages, log),
	).Run(ctx)

	var diag server.Server
	if cfg.Server.HTTPAddress != "" {
		diag, err = server.NewServer(services.BatchService, cfg.Server, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating diagnostics server")
		}
		go diag.RunServer()
	}

	<-ctx.Done()

	log.Info().Msg("shutting down...")
	if diag != nil {
		diag.Shutdown()
	}
	services.SyncJob.Stop()
	if err = storages.Close(); err != nil {
		log.Err(err).Msg("error closing storages")
	}

	log.Info().Msg("agent shut down gracefully")
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
