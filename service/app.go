package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"tinyblog/app/config"
	"tinyblog/app/repositories"
	"tinyblog/app/routes"

	"go.uber.org/zap"
)

// RunAppServer listens on cfg.Addr and serves the blog until ctx is done.
func RunAppServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	return Serve(ctx, ln, cfg, logger)
}

// Serve runs the blog on ln. When ctx is done the server stops accepting
// connections and waits up to cfg.ShutdownTimeout for in-flight requests.
func Serve(ctx context.Context, ln net.Listener, cfg *config.Config, logger *zap.Logger) error {
	repo, err := repositories.Open(cfg.Store, logger)
	if err != nil {
		ln.Close()
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("closing store", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Handler:           routes.SetupRoutes(repo, logger),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          zap.NewStdLog(logger.Named("http")),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()
	logger.Info("blog service started",
		zap.String("addr", ln.Addr().String()),
		zap.String("store", cfg.Store),
	)

	select {
	case err := <-errc:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("blog service stopped")
	return nil
}
