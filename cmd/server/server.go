package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 10 * time.Second

// newHTTPServer configures the HTTP server for router.
func (a *application) newHTTPServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Duration(a.config.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(a.config.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}

// startHTTPServer starts the HTTP server with graceful shutdown support.
// It takes a context that can be used to signal cancellation and the router.
// Returns an error if the server fails to start or encounters problems.
func (a *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := a.newHTTPServer(router)

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}
	return a.serve(ctx, server, ln)
}

// serve runs server on ln until ctx is canceled, a shutdown signal arrives or
// the server fails.
func (a *application) serve(ctx context.Context, server *http.Server, ln net.Listener) error {
	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", "addr", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Server failed", "error", err)
			serveErr <- err
			cancelServer()
		}
	}()

	select {
	case <-shutdownCh:
		a.logger.Info("Shutting down server...")
	case <-serverCtx.Done():
		a.logger.Info("Server context canceled, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	a.cleanup()

	select {
	case err := <-serveErr:
		return err
	default:
	}

	a.logger.Info("Server shutdown completed")
	return nil
}
