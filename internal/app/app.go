package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/groupbuy-backend/internal/config"
)

const shutdownTimeout = 30 * time.Second

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires the event core and runs the
// scheduler until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Migrations.AutoApply {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	core, err := NewCore(cfg, pool, logger)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Scheduler.Enabled {
		g.Go(func() error {
			core.Scanner.Start()
			<-gctx.Done()

			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			core.Scanner.Stop(stopCtx)
			return nil
		})
	}

	g.Go(func() error {
		return watchDatabase(gctx, pool, logger)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
