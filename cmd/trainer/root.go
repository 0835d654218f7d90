package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abbr-trainer/backend/internal/domain/catalog"
	"github.com/abbr-trainer/backend/internal/infrastructure/config"
	"github.com/abbr-trainer/backend/internal/progress"
	"github.com/abbr-trainer/backend/internal/service"
	"github.com/abbr-trainer/backend/internal/store"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "trainer",
		Short:         "Menu abbreviation trainer",
		Long:          "Learn the shop's menu abbreviations. Progress is kept in a local SQLite database.",
		SilenceUsage:  true,
	}
	root.AddCommand(
		newServeCmd(),
		newStatsCmd(),
		newExportCmd(),
		newResetCmd(),
		newResetItemCmd(),
		newSimulateCmd(),
	)
	return root
}

// app is everything a command needs, wired from the environment.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *store.SQLiteStore
	trainer *service.Trainer
}

func openApp(ctx context.Context, logOut io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg, logOut)
	if err != nil {
		return nil, err
	}

	db, err := store.NewSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err, "path", cfg.DatabasePath)
		return nil, err
	}

	progressStore := progress.New(db, cfg.ProgressKey, catalog.Menu, logger)
	trainer := service.NewTrainer(ctx, progressStore, logger, service.Options{ExportLimit: cfg.ExportLimit})

	return &app{cfg: cfg, logger: logger, db: db, trainer: trainer}, nil
}

// Close flushes pending saves before closing the database.
func (a *app) Close() {
	a.trainer.Close()
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", "error", err)
	}
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(cfg.LogFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
}
