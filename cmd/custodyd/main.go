package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/xrpl-custody/custody-sdk-go/pkg/custody"
	"github.com/xrpl-custody/custody-sdk-go/pkg/dashboard"
	"github.com/xrpl-custody/custody-sdk-go/pkg/history"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	config := viper.New()
	config.SetConfigName("custodyd")
	config.SetConfigType("yaml")
	config.AddConfigPath(".")
	config.AddConfigPath("/etc/custodyd")
	config.SetEnvPrefix("custody")
	config.AutomaticEnv()
	config.SetDefault("listen_addr", ":8080")

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logger.Fatal().Err(err).Msg("failed to read configuration")
		}
	}

	client, err := custody.NewClient(custody.Config{
		AuthURL:    config.GetString("auth_url"),
		APIURL:     config.GetString("api_url"),
		PrivateKey: config.GetString("private_key"),
		PublicKey:  config.GetString("public_key"),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create custody client")
	}

	var store history.Store = history.NewMemoryStore()
	if path := config.GetString("history_path"); path != "" {
		badgerStore, err := history.OpenBadgerStore(path)
		if err != nil {
			logger.Fatal().Err(err).Str("path", path).Msg("failed to open history store")
		}
		store = badgerStore
	}
	log := history.NewLog(store)
	defer func() {
		if err := log.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close history store")
		}
	}()

	server, err := dashboard.NewServer(dashboard.Config{
		Custody:     client,
		History:     log,
		Logger:      logger,
		MPTLedgerID: config.GetString("mpt_ledger_id"),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create dashboard server")
	}

	httpServer := &http.Server{
		Addr:              config.GetString("listen_addr"),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("custody dashboard listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}
