// Package trace tags each user operation with an ID and records its timing.
package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"

	"ledger/internal/log"
)

// ContextKey type for context keys
type ContextKey string

// OperationIDKey is the context key for the operation ID
const OperationIDKey ContextKey = "operation_id"

// Metrics summarises finished operations.
type Metrics struct {
	Total  int64
	Failed int64
	// LastDuration is in microseconds.
	LastDuration int64
}

// Tracer logs the start and end of operations.
type Tracer struct {
	logger  *log.Logger
	metrics Metrics
}

func NewTracer(logger *log.Logger) *Tracer {
	if logger == nil {
		logger = log.Discard()
	}
	return &Tracer{logger: logger}
}

// Begin starts operation name. The returned context carries its ID and a
// logger tagged with it; finish must be called once with the outcome.
func (t *Tracer) Begin(ctx context.Context, name string) (context.Context, func(err error)) {
	start := time.Now()
	id := NewOperationID()
	ctx = context.WithValue(ctx, OperationIDKey, id)
	ctx = log.NewContext(ctx, t.logger.With("operation_id", id))
	t.logger.DebugContext(ctx, "Operation started", "operation_id", id, log.FieldOperation, name)

	return ctx, func(err error) {
		duration := time.Since(start)
		atomic.AddInt64(&t.metrics.Total, 1)
		atomic.StoreInt64(&t.metrics.LastDuration, duration.Microseconds())

		if err != nil {
			atomic.AddInt64(&t.metrics.Failed, 1)
			t.logger.WarnContext(ctx, "Operation failed",
				"operation_id", id,
				log.FieldOperation, name,
				"duration_ms", duration.Milliseconds(),
				log.FieldError, err.Error())
			return
		}
		t.logger.DebugContext(ctx, "Operation completed",
			"operation_id", id,
			log.FieldOperation, name,
			"duration_ms", duration.Milliseconds())
	}
}

// NewOperationID returns a short random identifier.
func NewOperationID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("op_%d", time.Now().UnixNano())
	}
	return "op_" + hex.EncodeToString(b)
}

// OperationID extracts the operation ID from context
func OperationID(ctx context.Context) string {
	if id, ok := ctx.Value(OperationIDKey).(string); ok {
		return id
	}
	return ""
}

// Snapshot returns current metrics
func (t *Tracer) Snapshot() Metrics {
	return Metrics{
		Total:        atomic.LoadInt64(&t.metrics.Total),
		Failed:       atomic.LoadInt64(&t.metrics.Failed),
		LastDuration: atomic.LoadInt64(&t.metrics.LastDuration),
	}
}
