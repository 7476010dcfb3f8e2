// Package server assembles the storage, the HTTP router and the listener
// into a runnable application.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"datakeeper/internal/app/server/api"
	"datakeeper/internal/app/server/config"
	"datakeeper/internal/infrastructure/storage"

	"golang.org/x/exp/slog"
)

const readHeaderTimeout = 5 * time.Second

type App struct {
	cfg   *config.Config
	log   *slog.Logger
	store storage.Storage
	srv   *http.Server
}

// New migrates and opens the store and builds the HTTP server.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := storage.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	router := api.New(store, log, api.Options{AllowedOrigins: cfg.Server.AllowedOrigins})

	return &App{
		cfg:   cfg,
		log:   log.With("component", "server"),
		store: store,
		srv: &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Run listens on the configured address until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Server.RunAddress)
	if err != nil {
		a.store.Close()
		return fmt.Errorf("listen %s: %w", a.cfg.Server.RunAddress, err)
	}
	return a.Serve(ctx, ln)
}

// Serve handles requests on ln until ctx is cancelled, then drains in-flight
// requests for at most the configured shutdown timeout and closes the store.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Error("failed to close storage", "error", err)
		}
	}()

	serveErr := make(chan error, 1)
	go func() {
		a.log.Info("server started", "address", ln.Addr().String(), "env", a.cfg.Env)
		if err := a.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down", "timeout", a.cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	a.log.Info("server stopped")
	return <-serveErr
}
