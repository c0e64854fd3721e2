package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"ledger/internal/core"
)

func newRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "data", "ledger.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	if err := repo.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return repo
}

func TestSQLiteRepository_InitializeIsIdempotent(t *testing.T) {
	repo := newRepo(t)
	if err := repo.Initialize(context.Background()); err != nil {
		t.Fatalf("second initialize: %v", err)
	}
	n, err := repo.Count(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("expected empty store, got %d (err=%v)", n, err)
	}
}

func TestSQLiteRepository_AppendLoadAll(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	in := []core.Transaction{
		{Date: core.NewDate(2024, 3, 15), Amount: decimal.RequireFromString("100.00"), Category: core.Income, Description: "salary"},
		{Date: core.NewDate(2024, 3, 1), Amount: decimal.RequireFromString("9.99"), Category: core.Expense},
		{Date: core.NewDate(2024, 3, 1), Amount: decimal.RequireFromString("9.99"), Category: core.Expense},
	}
	for _, tx := range in {
		if err := repo.Append(ctx, tx); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	out, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d rows, want %d", len(out), len(in))
	}
	for i := range in {
		if !out[i].Date.Equal(in[i].Date) || !out[i].Amount.Equal(in[i].Amount) ||
			out[i].Category != in[i].Category || out[i].Description != in[i].Description {
			t.Errorf("row %d: got %+v, want %+v", i, out[i], in[i])
		}
	}
}

func TestSQLiteRepository_AppendValidates(t *testing.T) {
	repo := newRepo(t)
	err := repo.Append(context.Background(), core.Transaction{
		Date:     core.NewDate(2024, 3, 15),
		Amount:   decimal.NewFromInt(-1),
		Category: core.Expense,
	})
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestSQLiteRepository_LoadAllBeforeInitialize(t *testing.T) {
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer repo.Close()

	if _, err := repo.LoadAll(context.Background()); !errors.Is(err, core.ErrStoreUnreadable) {
		t.Fatalf("expected ErrStoreUnreadable, got %v", err)
	}
}
