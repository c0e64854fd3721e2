package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"ledger/internal/backend"
	"ledger/internal/cli"
	"ledger/internal/config"
	"ledger/internal/log"
	"ledger/internal/services"
)

func main() {
	// Load .env file for local development
	cli.LoadEnvFile()

	cfg := config.Load()
	logger := cli.SetupLogger(cfg.LogLevel, log.ComponentApp)
	if err := cfg.Validate(); err != nil {
		cli.Fatal(logger, "Configuration validation failed", err)
	}

	// Ctrl-C keeps its default behaviour; every append is synced before the
	// menu returns.
	if err := run(context.Background(), cfg, logger, os.Stdin, os.Stdout); err != nil {
		cli.Fatal(logger, "Ledger stopped", err)
	}
}

// run owns the store and publisher for the whole session so they are closed
// on every return path, including a failed Initialize.
func run(ctx context.Context, cfg *config.Config, logger *log.Logger, in io.Reader, out io.Writer) error {
	storeCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return fmt.Errorf("invalid store configuration: %w", err)
	}
	result, err := backend.NewFactory(logger).CreateStore(ctx, storeCfg)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	publisher := backend.NewPublisher(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
	svc := services.NewLedgerService(result.Store, publisher, logger)
	defer svc.Close() // store and publisher

	if err := svc.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	logger.Info("Ledger ready", log.FieldBackend, storeCfg.Type.String(), "mirroring", publisher != nil)

	if err := cli.NewApp(svc, in, out, logger).Run(ctx); err != nil {
		logger.Error("Menu loop stopped", log.FieldError, err.Error())
	}
	return nil
}
