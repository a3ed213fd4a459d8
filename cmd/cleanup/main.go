// Command cleanup runs one scheduler duty once and exits: the retention
// sweep of old read notifications or the deadline-approaching scan. It is
// meant for external schedulers and manual runs.
//
// Usage: cleanup [-config path] -job retention|deadline
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/groupbuy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/groupbuy-backend/internal/app"
	"github.com/heartmarshall/groupbuy-backend/internal/config"
	"github.com/heartmarshall/groupbuy-backend/internal/service/scanner"
)

func main() {
	jobName := flag.String("job", string(scanner.JobRetention), "job to run: retention or deadline")
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to config.yaml")
	flag.Parse()

	job, err := scanner.ParseJob(*jobName)
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("cleanup starting",
		slog.String("job", job.String()),
		slog.String("version", app.BuildVersion()),
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Scheduler.JobTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	core, err := app.NewCore(cfg, pool, logger)
	if err != nil {
		logger.Error("wire core", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	n, err := core.Scanner.RunNow(ctx, job)
	if err != nil {
		logger.Error("job failed",
			slog.String("job", job.String()),
			slog.String("error", err.Error()),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("job completed",
		slog.String("job", job.String()),
		slog.Int("affected", n),
	)
}
