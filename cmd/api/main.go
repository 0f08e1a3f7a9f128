package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neighborhood-pets/internal/domain/pets"
	"neighborhood-pets/internal/platform/config"
	"neighborhood-pets/internal/platform/logger"
	"neighborhood-pets/internal/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.Logging.App,
	})
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"error": err.Error()})
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := router.OpenRepository(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = closeRepo() }()

	svc := pets.NewService(repo, log)

	if cfg.Snapshot.LoadOnStart {
		err := svc.LoadFromFile(ctx, cfg.Snapshot.Path)
		switch {
		case err == nil:
		case errors.Is(err, pets.ErrIO):
			// Primer arranque: todavía no hay snapshot.
			log.Warn("snapshot not loaded", map[string]any{"path": cfg.Snapshot.Path})
		default:
			return fmt.Errorf("load snapshot: %w", err)
		}
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Service:      svc,
			Logger:       log,
			SnapshotPath: cfg.Snapshot.Path,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "driver": cfg.Database.Driver})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if cfg.Snapshot.SaveOnShutdown {
		if err := svc.SaveToFile(shutdownCtx, cfg.Snapshot.Path); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
	}
	return nil
}
