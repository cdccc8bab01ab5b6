package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mini-bookmarks/auth"
	"mini-bookmarks/bookmarks"
	"mini-bookmarks/config"
	"mini-bookmarks/db"
	"mini-bookmarks/logger"
	"mini-bookmarks/store"
	"mini-bookmarks/users"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if _, err := logger.Setup(os.Stdout, cfg.LogLevel); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Connect(ctx, cfg.DBDriver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer conn.Close()

	st := store.NewSQLStore(conn)
	tokens := auth.NewTokens([]byte(cfg.JWTSecret))

	authSvc, err := auth.NewService(st, auth.NewArgon2Hasher(auth.DefaultArgon2Params), tokens)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: newRouter(routerDeps{
			Auth:       authSvc,
			Tokens:     tokens,
			Bookmarks:  bookmarks.NewService(st),
			Users:      users.NewService(st),
			CORSOrigin: cfg.CORSOrigin,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", srv.Addr, "db_driver", cfg.DBDriver)
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

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
