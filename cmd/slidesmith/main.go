package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/slidesmith/slidesmith/internal/config"
	"github.com/slidesmith/slidesmith/internal/deck"
	"github.com/slidesmith/slidesmith/internal/mcpserver"
	"github.com/slidesmith/slidesmith/internal/security"
	"github.com/slidesmith/slidesmith/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setupLogging(cfg)

	validator := security.NewPathValidator(cfg.AllowedDirs, cfg.AllowedExtensions)
	audit := security.NewAuditLogger(cfg.EnableAuditLogging)
	deckSvc := deck.NewService(validator)
	bridge := mcpserver.New(deckSvc, audit)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	switch cfg.Transport {
	case "stdio":
		g.Go(func() error { return bridge.ServeStdio(ctx) })
	case "http":
		g.Go(func() error { return server.New(cfg, deckSvc, bridge).Run(ctx) })
	case "both":
		g.Go(func() error { return bridge.ServeStdio(ctx) })
		g.Go(func() error { return server.New(cfg, deckSvc, bridge).Run(ctx) })
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("shutdown complete")
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	// Logs go to stderr so the stdio transport keeps stdout clean for the
	// protocol stream.
	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		log.Logger = log.Output(os.Stderr)
	}
}
