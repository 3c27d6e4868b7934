package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/crrd/internal/bootstrap"
	"github.com/MKhiriev/crrd/internal/config"
	"github.com/MKhiriev/crrd/internal/logger"
	"github.com/MKhiriev/crrd/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("crrd-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLogger("crrd-server", logger.WithLevel(cfg.App.LogLevel))

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Bool("redis", cfg.RedisEnabled()).
		Bool("smtp", cfg.MailEnabled()).
		Bool("avatars", cfg.AvatarsEnabled()).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error starting application")
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Err(err).Msg("error releasing resources")
		}
	}()

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
