package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"corebank/config"
	"corebank/internal/core"
	"corebank/internal/http"
	"corebank/internal/lookup"
	"corebank/internal/sqlite"
)

func main() {
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.InfoContext(ctx, "Starting card service")

	dbClient, err := sqlite.NewClient(cfg.Database)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create db client", "error", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	cardStore := sqlite.NewCardStore(dbClient.DB())
	if err = cardStore.EnsureSchema(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to ensure schema", "error", err)
		os.Exit(1)
	}

	accountLookup := lookup.NewAccountClient(cfg.Lookup.AccountServiceURL, cfg.Lookup.Timeout)
	cardService := core.NewCardService(cardStore, accountLookup)
	httpServer := http.NewCardServer(cardService, logger, cfg.HTTP)

	if err = httpServer.Start(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to start http server", "error", err)
		os.Exit(1)
	}

	<-stop

	logger.InfoContext(ctx, "Shutting down...")

	if err = httpServer.Stop(ctx); err != nil {
		logger.ErrorContext(ctx, "Error stopping HTTP server", "error", err)
	}

	logger.InfoContext(ctx, "Card service shutdown complete")
}
