package trace

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ledger/internal/log"
)

func TestNewOperationID(t *testing.T) {
	a, b := NewOperationID(), NewOperationID()
	if !strings.HasPrefix(a, "op_") || len(a) != len("op_")+16 {
		t.Errorf("unexpected id %q", a)
	}
	if a == b {
		t.Error("ids should differ")
	}
}

func TestTracer_Begin(t *testing.T) {
	tr := NewTracer(nil)

	ctx, finish := tr.Begin(context.Background(), "append")
	if OperationID(ctx) == "" {
		t.Fatal("context should carry an operation id")
	}
	if log.FromContext(ctx).Component() == "unknown" {
		t.Fatal("context should carry the tracer's logger")
	}
	finish(nil)

	_, finish = tr.Begin(context.Background(), "report")
	finish(errors.New("store unreadable"))

	m := tr.Snapshot()
	if m.Total != 2 || m.Failed != 1 {
		t.Errorf("unexpected metrics %+v", m)
	}
	if OperationID(context.Background()) != "" {
		t.Error("plain context should have no id")
	}
}
