package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alorle/ace-launcher/internal/adapter/driven"
	"github.com/alorle/ace-launcher/internal/adapter/driver"
	"github.com/alorle/ace-launcher/internal/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and watch the source list for changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}
}

// serve runs the HTTP server until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(os.Stdout, cfg)

	logger.Info("starting ace-launcher",
		"addr", cfg.ListenAddr(),
		"acestream_url", cfg.Acestream.EngineURL,
		"sources_file", cfg.SourcesPath(),
		"icons_file", cfg.IconsPath(),
		"db_path", cfg.DBPath(),
		"log_level", cfg.SlogLevel().String(),
	)

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Build the catalog for the selected source before accepting requests.
	a.catalog.Refresh(ctx)

	watcher := driven.NewSourceFileWatcher(a.sources.Path(), a.catalog.Refresh, logger).
		WithDebounce(cfg.Watch.Debounce)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := watcher.Run(ctx); err != nil {
			logger.Error("source list watcher failed", "error", err)
		}
	}()

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      driver.NewRouter(a.handlers(), logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received, shutting down gracefully")
	case err := <-serverErr:
		if err != nil {
			logger.Error("server error", "error", err)
			cancel()
			wg.Wait()
			return err
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	cancel()
	wg.Wait()
	logger.Info("server stopped")
	return nil
}
