// Package app contains the main entrypoint for the server.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"github.com/starquake/quizcrud/internal/config"
	"github.com/starquake/quizcrud/internal/logging"
	"github.com/starquake/quizcrud/internal/server"
	"github.com/starquake/quizcrud/internal/store"
)

// Run parses the configuration, builds the stores and serves HTTP until ctx is canceled or an interrupt arrives.
// If ln is nil, Run listens on the configured host and port.
func Run(
	ctx context.Context,
	getenv func(string) string,
	stdout io.Writer,
	ln net.Listener,
) error {
	var err error
	mainCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	var cfg *config.Config
	if cfg, err = config.Parse(getenv); err != nil {
		msg := "error parsing config"
		slog.New(slog.NewTextHandler(stdout, nil)).ErrorContext(ctx, msg, logging.ErrAttr(err))

		return fmt.Errorf("%s: %w", msg, err)
	}

	logger := logging.New(stdout, cfg.Level(), cfg.IsProduction())

	stores := store.New(mainCtx, cfg, logger)
	srv := server.NewServer(logger, cfg, stores)

	if ln == nil {
		listenConfig := &net.ListenConfig{}
		ln, err = listenConfig.Listen(mainCtx, "tcp", net.JoinHostPort(cfg.Host, cfg.Port))
		if err != nil {
			return fmt.Errorf("error listening on %s:%s: %w", cfg.Host, cfg.Port, err)
		}
	}

	httpServer := &http.Server{
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		Handler:           srv,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		addr := ln.Addr().String()
		logger.InfoContext(ctx, "listening on "+addr, slog.String("addr", addr), slog.String("env", cfg.AppEnvironment))
		if serveErr := httpServer.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return fmt.Errorf("error listening and serving: %w", serveErr)
		}

		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		// make a new context for the Shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer shutdownCancel()
		logger.InfoContext(shutdownCtx, "shutting down server")
		if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
			return fmt.Errorf("error shutting down server: %w", shutdownErr)
		}

		return nil
	})

	if err = g.Wait(); err != nil {
		logger.ErrorContext(ctx, "server stopped with error", logging.ErrAttr(err))

		return err //nolint:wrapcheck // already wrapped in the goroutines
	}

	return nil
}
