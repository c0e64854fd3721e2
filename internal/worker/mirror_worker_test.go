package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"ledger/internal/amqp"
	"ledger/internal/core"
	"ledger/internal/sheets/memory"
)

type failingStore struct {
	*memory.Store
	err error
}

func (f failingStore) Append(context.Context, core.Transaction) error { return f.err }

func message(t *testing.T) *amqp.TransactionMessage {
	t.Helper()
	return amqp.NewTransactionMessage(core.Transaction{
		Date:        core.NewDate(2024, 3, 15),
		Amount:      decimal.RequireFromString("42.10"),
		Category:    core.Expense,
		Description: "groceries",
	})
}

func TestMirrorWorker_HandleMessage(t *testing.T) {
	ctx := context.Background()
	mirror := memory.New()
	w := NewMirrorWorker(mirror, nil)
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	msg := message(t)
	if err := w.HandleMessage(ctx, msg); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	got, _ := mirror.LoadAll(ctx)
	if len(got) != 1 || got[0].Description != "groceries" || !got[0].Amount.Equal(decimal.RequireFromString("42.10")) {
		t.Fatalf("unexpected mirror contents %+v", got)
	}

	// redelivery of the same message is not appended twice
	if err := w.HandleMessage(ctx, msg); err != nil {
		t.Fatalf("HandleMessage redelivery: %v", err)
	}
	if mirror.Len() != 1 {
		t.Errorf("duplicate appended, mirror has %d rows", mirror.Len())
	}
}

func TestMirrorWorker_UndecodableIsDropped(t *testing.T) {
	mirror := memory.New()
	w := NewMirrorWorker(mirror, nil)

	msg := message(t)
	msg.Amount = "-3"
	if err := w.HandleMessage(context.Background(), msg); err != nil {
		t.Fatalf("undecodable message should be acknowledged, got %v", err)
	}
	if mirror.Len() != 0 {
		t.Errorf("invalid transaction mirrored")
	}
}

func TestMirrorWorker_AppendFailureIsRetried(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("quota exceeded")
	w := NewMirrorWorker(failingStore{Store: memory.New(), err: boom}, nil)

	msg := message(t)
	if err := w.HandleMessage(ctx, msg); !errors.Is(err, boom) {
		t.Fatalf("expected append error, got %v", err)
	}

	// a failed message must not be remembered as handled
	healthy := memory.New()
	w.mirror = healthy
	if err := w.HandleMessage(ctx, msg); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if healthy.Len() != 1 {
		t.Errorf("retry not appended")
	}
}
