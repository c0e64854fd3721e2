package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"ledger/internal/config"
	"ledger/internal/core"
	"ledger/internal/sheets/memory"
	"ledger/internal/storage"
	"ledger/internal/storage/csvfile"
)

func TestFactory_CreateStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f := NewFactory(nil)

	tests := []struct {
		name    string
		config  Config
		check   func(t *testing.T, r *Result)
		wantErr bool
	}{
		{
			name:   "csv",
			config: Config{Type: CSVBackend, CSVPath: filepath.Join(dir, "ledger.csv")},
			check: func(t *testing.T, r *Result) {
				if _, ok := r.Store.(*csvfile.Store); !ok {
					t.Errorf("expected *csvfile.Store, got %T", r.Store)
				}
			},
		},
		{
			name:   "sqlite",
			config: Config{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(dir, "ledger.db")},
			check: func(t *testing.T, r *Result) {
				if _, ok := r.Store.(*storage.SQLiteRepository); !ok {
					t.Errorf("expected *storage.SQLiteRepository, got %T", r.Store)
				}
				if r.Cleanup == nil {
					t.Error("sqlite store needs a cleanup")
				}
			},
		},
		{
			name:   "memory",
			config: Config{Type: MemoryBackend},
			check: func(t *testing.T, r *Result) {
				if _, ok := r.Store.(*memory.Store); !ok {
					t.Errorf("expected *memory.Store, got %T", r.Store)
				}
			},
		},
		{
			name:    "unknown type",
			config:  Config{Type: "mongo"},
			wantErr: true,
		},
		{
			name:    "csv without path",
			config:  Config{Type: CSVBackend},
			wantErr: true,
		},
		{
			name:    "sheets without spreadsheet",
			config:  Config{Type: SheetsBackend, GoogleSheetName: "Transactions"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := f.CreateStore(ctx, tt.config)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateStore: %v", err)
			}
			defer r.Close()
			tt.check(t, r)

			if err := r.Store.Initialize(ctx); err != nil {
				t.Fatalf("Initialize: %v", err)
			}
			tx := core.Transaction{Date: core.NewDate(2024, 3, 15), Amount: decimal.NewFromInt(100), Category: core.Income, Description: "salary"}
			if err := r.Store.Append(ctx, tx); err != nil {
				t.Fatalf("Append: %v", err)
			}
			all, err := r.Store.LoadAll(ctx)
			if err != nil || len(all) != 1 {
				t.Fatalf("LoadAll = %d rows, %v", len(all), err)
			}
		})
	}
}

func TestFactory_MemorySeed(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "seed.csv")
	content := "date,amount,category,description\n01-02-2024,10,Expense,bus\n02-02-2024,500,Income,\n"
	if err := os.WriteFile(seed, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewFactory(nil).CreateStore(context.Background(), Config{Type: MemoryBackend, MemorySeedPath: seed})
	if err != nil {
		t.Fatalf("CreateStore: %v", err)
	}
	all, _ := r.Store.LoadAll(context.Background())
	if len(all) != 2 || all[0].Description != "bus" {
		t.Fatalf("unexpected seed contents %+v", all)
	}
}

func TestResult_CloseWithoutCleanup(t *testing.T) {
	var r *Result
	if err := r.Close(); err != nil {
		t.Fatalf("nil result Close: %v", err)
	}
	if err := (&Result{}).Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestFromAppConfig(t *testing.T) {
	if _, err := FromAppConfig(nil); err == nil {
		t.Error("expected error for nil config")
	}
	if _, err := FromAppConfig(&config.Config{DataBackend: "nope"}); err == nil {
		t.Error("expected error for unknown backend")
	}

	cfg, err := FromAppConfig(&config.Config{DataBackend: "csv", CSVPath: "finance_data.csv", SQLiteDBPath: "x.db"})
	if err != nil {
		t.Fatalf("FromAppConfig: %v", err)
	}
	if cfg.Type != CSVBackend || cfg.CSVPath != "finance_data.csv" || cfg.SQLiteDBPath != "x.db" {
		t.Errorf("unexpected config %+v", cfg)
	}

	mirror := MirrorFromAppConfig(&config.Config{GoogleSpreadsheetID: "id", GoogleSheetName: "Transactions"})
	if mirror.Type != SheetsBackend || mirror.Validate() != nil {
		t.Errorf("unexpected mirror config %+v", mirror)
	}
}

func TestNewPublisherWithoutURL(t *testing.T) {
	if p := NewPublisher(context.Background(), "", "ledger", "ledger_mirror", nil); p != nil {
		t.Fatalf("expected nil publisher, got %T", p)
	}
}
