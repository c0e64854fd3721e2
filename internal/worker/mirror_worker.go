package worker

import (
	"context"
	"fmt"
	"time"

	"ledger/internal/amqp"
	"ledger/internal/cache"
	"ledger/internal/ledger"
	"ledger/internal/log"
)

const (
	dedupeSize = 4096
	dedupeTTL  = 24 * time.Hour
)

// MirrorWorker copies published transactions into a secondary store.
type MirrorWorker struct {
	mirror ledger.Store
	seen   *cache.Recent
	logger *log.Logger
}

func NewMirrorWorker(mirror ledger.Store, logger *log.Logger) *MirrorWorker {
	if logger == nil {
		logger = log.Discard()
	}
	return &MirrorWorker{
		mirror: mirror,
		seen:   cache.NewRecent(dedupeSize, dedupeTTL),
		logger: logger.WithComponent(log.ComponentWorker),
	}
}

// Start prepares the mirror store.
func (w *MirrorWorker) Start(ctx context.Context) error {
	if err := w.mirror.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize mirror: %w", err)
	}
	w.logger.InfoContext(ctx, "Mirror store ready")
	return nil
}

// HandleMessage appends the message's transaction to the mirror. Messages
// already mirrored by this process are acknowledged without a second append.
func (w *MirrorWorker) HandleMessage(ctx context.Context, msg *amqp.TransactionMessage) error {
	if w.seen.Contains(msg.ID) {
		w.logger.DebugContext(ctx, "Skipping duplicate message", log.FieldMessageID, msg.ID)
		return nil
	}

	t, err := msg.ToTransaction()
	if err != nil {
		// A payload that cannot decode will never succeed; drop it.
		w.logger.ErrorContext(ctx, "Dropping undecodable transaction", log.FieldMessageID, msg.ID, log.FieldError, err.Error())
		return nil
	}

	if err := w.mirror.Append(ctx, t); err != nil {
		return fmt.Errorf("append to mirror: %w", err)
	}
	w.seen.Mark(msg.ID)

	w.logger.InfoContext(ctx, "Mirrored transaction",
		append([]any{log.FieldMessageID, msg.ID}, log.NewFields().WithTransaction(t).WithOperation(log.OpMirror).ToSlice()...)...)
	return nil
}

// Housekeeping prunes the duplicate filter until ctx is done.
func (w *MirrorWorker) Housekeeping(ctx context.Context, interval time.Duration) error {
	return w.seen.PruneEvery(ctx, interval)
}
