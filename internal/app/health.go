package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const healthInterval = 30 * time.Second

// watchDatabase pings the pool until ctx is done and logs lost and restored
// connectivity once per transition.
func watchDatabase(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	log := logger.With("component", "db_health")
	ticker := time.NewTicker(healthInterval)
	defer ticker.Stop()

	healthy := true
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := pool.Ping(pingCtx)
			cancel()

			switch {
			case err != nil && healthy:
				healthy = false
				log.Warn("database unreachable", slog.String("error", err.Error()))
			case err == nil && !healthy:
				healthy = true
				log.Info("database reachable again")
			}
		}
	}
}
