package services

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"ledger/internal/core"
	"ledger/internal/ledger"
	"ledger/internal/log"
)

// Publisher forwards appended transactions to the mirror pipeline.
type Publisher interface {
	PublishTransaction(ctx context.Context, t core.Transaction) error
}

// Report is the outcome of a range query.
type Report struct {
	Start        core.Date
	End          core.Date
	Transactions []core.Transaction
	Summary      core.Summary
	Series       core.DailySeries
}

// Empty reports whether no transaction fell in the range.
func (r Report) Empty() bool {
	return len(r.Transactions) == 0
}

// LedgerService orchestrates ledger operations across the store and AMQP
type LedgerService struct {
	store     ledger.Store
	publisher Publisher
	logger    *log.Logger
	events    *log.StructuredLogger
}

// NewLedgerService wires a store with an optional publisher. A nil publisher
// disables mirroring.
func NewLedgerService(store ledger.Store, publisher Publisher, logger *log.Logger) *LedgerService {
	if logger == nil {
		logger = log.Discard()
	}
	logger = logger.WithComponent(log.ComponentLedger)
	return &LedgerService{
		store:     store,
		publisher: publisher,
		logger:    logger,
		events:    log.NewStructuredLogger(logger),
	}
}

// Initialize prepares the store; safe on every startup.
func (s *LedgerService) Initialize(ctx context.Context) error {
	if err := s.store.Initialize(ctx); err != nil {
		s.events.LogError(ctx, "Store initialization failed", err, log.OpInitialize, nil)
		return fmt.Errorf("initialize store: %w", err)
	}
	return nil
}

// AddTransaction validates and appends t, then publishes it for mirroring.
func (s *LedgerService) AddTransaction(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}

	// Persist first; the mirror is best effort.
	if err := s.store.Append(ctx, t); err != nil {
		s.events.LogError(ctx, "Append failed", err, log.OpAppend, log.NewFields().WithTransaction(t))
		return fmt.Errorf("save transaction: %w", err)
	}
	s.events.LogTransactionAdded(ctx, log.NewFields().WithTransaction(t))

	if s.publisher == nil {
		return nil
	}
	if err := s.publisher.PublishTransaction(ctx, t); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish transaction",
			log.FieldOperation, log.OpPublish,
			log.FieldError, err.Error())
	}
	return nil
}

// Query returns the records dated within [start, end] in store order.
func (s *LedgerService) Query(ctx context.Context, start, end core.Date) ([]core.Transaction, error) {
	all, err := s.store.LoadAll(ctx)
	if err != nil {
		s.events.LogError(ctx, "Load failed", err, log.OpQuery, log.NewFields().WithRange(start, end))
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	return core.FilterByDateRange(all, start, end), nil
}

// Report queries the range and derives its totals and daily series.
func (s *LedgerService) Report(ctx context.Context, start, end core.Date) (Report, error) {
	txs, err := s.Query(ctx, start, end)
	if err != nil {
		return Report{}, err
	}
	r := Report{
		Start:        start,
		End:          end,
		Transactions: txs,
		Summary:      core.Summarize(txs),
		Series:       core.ToDailySeries(txs),
	}
	s.events.LogReport(ctx, log.NewFields().WithRange(start, end).With(log.FieldCount, len(txs)))
	return r, nil
}

// Close closes the store and publisher when they hold resources.
func (s *LedgerService) Close() error {
	var result *multierror.Error

	if c, ok := s.store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("store: %w", err))
		}
	}
	if c, ok := s.publisher.(io.Closer); ok {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("publisher: %w", err))
		}
	}

	return result.ErrorOrNil()
}
