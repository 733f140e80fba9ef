package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/config"
	"ulascansenturk/weather-lookup/internal/inmemorycache"
	"ulascansenturk/weather-lookup/internal/proxyclient"
	"ulascansenturk/weather-lookup/internal/shutdown"
	"ulascansenturk/weather-lookup/internal/view"
	"ulascansenturk/weather-lookup/internal/web"
)

const sessionCleanupInterval = time.Minute

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Str("component", "web").
		Timestamp().
		Logger()
	log.Logger = logger

	if err := conf.ValidateWeb(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, mainCtxStop := context.WithCancel(context.Background())

	client := proxyclient.New(conf.ProxyURL, conf.HTTPTimeoutDuration())

	sessions := inmemorycache.NewInMemoryCacheProvider[*view.Store](sessionCleanupInterval)
	defer sessions.Stop()

	server, err := web.NewServer(client, sessions, web.Options{
		TileAPIKey: conf.TileAPIKey,
		SessionTTL: conf.SessionTTL,
		Location:   conf.Location(),
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build web server")
	}

	httpServer := &http.Server{
		Addr:              conf.WebAddress,
		Handler:           server,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	shutdown.HandleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("web server shutdown failed")
		}
	})

	log.Info().
		Str("proxy_url", conf.ProxyURL).
		Msgf("Aplicación web ejecutándose en %s", conf.WebAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && serverErr != http.ErrServerClosed {
		log.Err(serverErr).Msg("web server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}
