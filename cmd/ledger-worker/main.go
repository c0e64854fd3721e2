package main

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"ledger/internal/amqp"
	"ledger/internal/backend"
	"ledger/internal/cli"
	"ledger/internal/config"
	"ledger/internal/log"
	"ledger/internal/worker"
)

const dedupePruneInterval = time.Hour

func main() {
	// Load .env file for local development
	cli.LoadEnvFile()

	cfg := config.Load()
	logger := cli.SetupLogger(cfg.LogLevel, log.ComponentWorker)
	logger.Info("Starting ledger-worker", log.FieldOperation, log.OpStartup)

	if err := cfg.ValidateMirror(); err != nil {
		cli.Fatal(logger, "Configuration validation failed", err)
	}

	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	mirror, err := backend.NewFactory(logger).CreateStore(ctx, backend.MirrorFromAppConfig(cfg))
	if err != nil {
		cli.Fatal(logger, "Failed to create mirror store", err)
	}
	defer mirror.Close()

	mirrorWorker := worker.NewMirrorWorker(mirror.Store, logger)
	if err := mirrorWorker.Start(ctx); err != nil {
		cli.Fatal(logger, "Failed to start mirror worker", err)
	}

	amqpClient, err := amqp.NewClient(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
	if err != nil {
		cli.Fatal(logger, "Failed to initialize AMQP client", err)
	}
	defer amqpClient.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return amqpClient.ConsumeTransactions(gctx, mirrorWorker.HandleMessage)
	})
	g.Go(func() error {
		return mirrorWorker.Housekeeping(gctx, dedupePruneInterval)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped", log.FieldError, err.Error())
		return
	}
	logger.Info("Worker shutdown complete", log.FieldOperation, log.OpShutdown)
}
