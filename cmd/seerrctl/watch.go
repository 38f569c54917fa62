package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/amaumene/seerrctl/internal/api"
	"github.com/amaumene/seerrctl/internal/controllers"
	"github.com/amaumene/seerrctl/internal/models"
	"github.com/amaumene/seerrctl/internal/scheduler"
	"github.com/spf13/cobra"
)

func (a *app) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Poll for new media and issues on a schedule and serve health and metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context())
		},
	}
}

func (a *app) watch(ctx context.Context) error {
	a.logger.Info("Starting seerrctl watcher")
	a.logger.WithField("config_dir", filepath.Dir(a.cfg.DatabaseFile)).Info("Configuration loaded")

	if err := a.cfg.EnsureConfigDir(); err != nil {
		return err
	}

	// 1. Initialize database
	db, err := models.NewDatabase(a.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()
	a.logger.Info("Database initialized")

	// 2. Initialize controller and scheduler
	watchCtrl := controllers.NewWatchController(db, a.client, a.logger)

	sched := scheduler.NewScheduler(a.cfg.WatchSchedule, watchCtrl, a.logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	// 3. Initialize HTTP server; Start shuts it down once ctx is cancelled
	server := api.NewServer(a.cfg, db, watchCtrl, a.logger)

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- server.Start(ctx)
	}()

	a.logger.Info("seerrctl watcher is running")

	// 4. Wait for shutdown signal
	select {
	case err := <-serverDone:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		a.logger.Info("Received shutdown signal")
		if err := <-serverDone; err != nil {
			a.logger.WithError(err).Error("Error during server shutdown")
		}
	}

	a.logger.Info("seerrctl watcher stopped")
	return nil
}
