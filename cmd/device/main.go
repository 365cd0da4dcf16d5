package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-gate-keeper/internal/adapter"
	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/device"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewDeviceLogger("gate-device")
	cfg, err := config.GetDeviceConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// no server URL means a pure offline deployment
	var gateway adapter.ServerGateway
	if cfg.Adapter.ServerBaseURL != "" {
		gateway, err = adapter.NewHTTPServerGateway(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating server gateway")
		}
	}

	storages, err := store.NewDeviceStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating device storages")
	}

	services, err := service.NewDeviceServices(cfg, storages, gateway, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating device services")
	}

	var jobList []workers.Worker
	var statusWorker *workers.StatusWorker
	if gateway != nil {
		statusWorker = workers.NewStatusWorker(gateway, services.Reachability, cfg.Workers.StatusInterval, log)
		jobList = append(jobList,
			statusWorker,
			workers.NewSyncWorker(services.Sync, cfg.Workers.SyncInterval, log),
		)
	}

	app := device.NewApp(
		services,
		gateway,
		workers.NewWorkers(jobList...),
		statusWorker,
		device.NewLineReader(os.Stdin),
		device.NewDisplay(os.Stdout),
		log,
	)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("device run error")
	}
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
