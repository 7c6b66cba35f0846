// Command assetserver serves the bundled web assets and writes an access log.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/assetlog/core/config"
	"github.com/dmitrymomot/assetlog/core/logger"
	"github.com/dmitrymomot/assetlog/core/server"
	"github.com/dmitrymomot/assetlog/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	log := logger.New(
		logger.WithFormat(cfg.LogFormat),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithAttr(slog.String("service", cfg.AppName)),
	)

	a, err := newApp(cfg, web.Assets(), log)
	if err != nil {
		log.Error("Failed to initialize application", logger.Error(err))
		os.Exit(1)
	}

	s, err := server.NewFromConfig(cfg.Server,
		server.WithLogger(log),
		server.WithComponents(a.accessLog),
	)
	if err != nil {
		log.Error("Failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(s.Run(ctx, a.handler))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
