// Command server exposes the New Ithkuil glosser as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/gloss?word=<token>[&precision=short|regular|full][&show_defaults=true]
//	POST /api/gloss/sentence   body: {"text":"...","precision":"...","show_defaults":false}
//	GET  /api/dictionary
//	GET  /api/health
//	GET  /api/live
//
// Configuration comes from config.yaml (or CONFIG_PATH) and the environment.
// SIGHUP reloads the dictionary; SIGINT and SIGTERM shut the server down.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cours-de-latin/ithkuil"
	"github.com/cours-de-latin/ithkuil/internal/app"
	"github.com/cours-de-latin/ithkuil/internal/config"
	"github.com/cours-de-latin/ithkuil/internal/reload"
	"github.com/cours-de-latin/ithkuil/internal/transport/rest"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("loading dictionary",
		slog.String("affixes", cfg.Dictionary.AffixPath),
		slog.String("roots", cfg.Dictionary.RootPath),
	)
	g, err := ithkuil.New(ctx, cfg.Dictionary.AffixPath, cfg.Dictionary.RootPath)
	if err != nil {
		return err
	}
	stats := g.Store().Load().Stats()
	logger.Info("dictionary loaded", slog.Int("affixes", stats.Affixes), slog.Int("roots", stats.Roots))

	precision, err := ithkuil.ParsePrecision(cfg.Gloss.Precision)
	if err != nil {
		return err
	}
	defaults := ithkuil.Options{Precision: precision, ShowDefaults: cfg.Gloss.ShowDefaults}

	if cfg.Dictionary.AffixPath != "" || cfg.Dictionary.RootPath != "" {
		w, err := reload.New(g.Store(), cfg.Dictionary.AffixPath, cfg.Dictionary.RootPath, cfg.Dictionary.Debounce, logger)
		if err != nil {
			return err
		}
		defer w.Stop()
		if cfg.Dictionary.Watch {
			if err := w.Start(ctx); err != nil {
				return err
			}
		}
		go reloadOnHangup(ctx, w, logger)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      rest.NewRouter(g, defaults, cfg, logger, version),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr), slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func reloadOnHangup(ctx context.Context, w *reload.Watcher, logger *slog.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			logger.Info("SIGHUP received, reloading dictionary")
			_ = w.Reload(ctx)
		}
	}
}
