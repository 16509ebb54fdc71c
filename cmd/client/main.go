package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/mlsolid-go/internal/client"
	"github.com/MKhiriev/mlsolid-go/internal/config"
	"github.com/MKhiriev/mlsolid-go/internal/logger"
	"github.com/MKhiriev/mlsolid-go/mlsolid"
	"github.com/MKhiriev/mlsolid-go/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("mlsolid-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg.Job).Str("address", cfg.Adapter.HTTPAddress).Msg("received configs")

	opts := []mlsolid.Option{
		mlsolid.WithLogger(log.Logger),
		mlsolid.WithTimeout(cfg.Adapter.RequestTimeout),
	}
	if cfg.App.HashKey != "" {
		opts = append(opts, mlsolid.WithHashKey(cfg.App.HashKey))
	}

	sdk, err := mlsolid.New(cfg.Adapter.HTTPAddress, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("create mlsolid client")
	}

	var app client.Client
	app, err = client.NewApp(sdk, cfg.Job, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
