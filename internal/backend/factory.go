package backend

import (
	"context"
	"fmt"

	"ledger/internal/amqp"
	"ledger/internal/log"
	"ledger/internal/services"
	gsheet "ledger/internal/sheets/google"
	"ledger/internal/sheets/memory"
	"ledger/internal/storage"
	"ledger/internal/storage/csvfile"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new store factory
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// CreateStore implements Factory.CreateStore
func (f *DefaultFactory) CreateStore(ctx context.Context, config Config) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case CSVBackend:
		return f.createCSVStore(config)
	case SQLiteBackend:
		return f.createSQLiteStore(config)
	case SheetsBackend:
		return f.createSheetsStore(ctx, config)
	case MemoryBackend:
		return f.createMemoryStore(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createCSVStore(config Config) (*Result, error) {
	store := csvfile.New(config.CSVPath)
	f.logger.Info("Initialized CSV store", log.FieldPath, store.Path())
	return &Result{Store: store}, nil
}

func (f *DefaultFactory) createSQLiteStore(config Config) (*Result, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}
	f.logger.Info("Initialized SQLite store", log.FieldPath, config.SQLiteDBPath)
	return &Result{Store: repo, Cleanup: repo.Close}, nil
}

func (f *DefaultFactory) createSheetsStore(ctx context.Context, config Config) (*Result, error) {
	cli, err := gsheet.New(ctx, gsheet.Options{
		SpreadsheetID:      config.GoogleSpreadsheetID,
		SheetName:          config.GoogleSheetName,
		ServiceAccountJSON: config.GoogleServiceAccountJSON,
		ServiceAccountFile: config.GoogleServiceAccountFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
	}
	f.logger.Info("Initialized Google Sheets store", "sheet", config.GoogleSheetName)
	return &Result{Store: cli}, nil
}

func (f *DefaultFactory) createMemoryStore(config Config) (*Result, error) {
	if config.MemorySeedPath == "" {
		f.logger.Info("Initialized empty memory store")
		return &Result{Store: memory.New()}, nil
	}

	store, err := memory.NewFromFile(config.MemorySeedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to seed memory store: %w", err)
	}
	f.logger.Info("Initialized memory store", log.FieldPath, config.MemorySeedPath, log.FieldCount, store.Len())
	return &Result{Store: store}, nil
}

// NewPublisher connects to the broker when url is set. Connection failures
// are logged and yield a nil publisher so the ledger keeps working locally.
func NewPublisher(ctx context.Context, url, exchange, queue string, logger *log.Logger) services.Publisher {
	if url == "" {
		return nil
	}
	if logger == nil {
		logger = log.Discard()
	}
	client, err := amqp.NewClient(ctx, url, exchange, queue, logger)
	if err != nil {
		logger.Warn("Failed to initialize AMQP client, continuing without mirroring", log.FieldError, err.Error())
		return nil
	}
	logger.Info("Initialized AMQP client", "exchange", exchange, "queue", queue)
	return client
}
