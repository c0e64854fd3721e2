package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ledger/internal/core"
	"ledger/internal/ledger"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is a transaction store backed by a single SQLite file.
// Rows are returned in insertion order.
type SQLiteRepository struct {
	db   *sql.DB
	path string
}

var _ ledger.Store = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &SQLiteRepository{db: db, path: dbPath}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Initialize applies pending migrations; it is a no-op on an up to date schema.
func (r *SQLiteRepository) Initialize(ctx context.Context) error {
	if err := RunMigrations(r.path); err != nil {
		return fmt.Errorf("initialize sqlite store: %w", err)
	}
	n, err := r.Count(ctx)
	if err != nil {
		return fmt.Errorf("initialize sqlite store: %w", err)
	}
	slog.InfoContext(ctx, "Initialized SQLite store", "path", r.path, "transactions", n)
	return nil
}

// Append implements ledger.TransactionAppender
func (r *SQLiteRepository) Append(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (date, amount, category, description) VALUES (?, ?, ?, ?)`,
		t.Date.String(), t.Amount.String(), t.Category.String(), t.Description)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	id, _ := res.LastInsertId()
	slog.DebugContext(ctx, "Transaction saved to SQLite",
		"id", id,
		"date", t.Date.String(),
		"amount", t.Amount.String(),
		"category", t.Category.String())
	return nil
}

// LoadAll implements ledger.TransactionLoader
func (r *SQLiteRepository) LoadAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, amount, category, description FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: query transactions: %v", core.ErrStoreUnreadable, err)
	}
	defer rows.Close()

	idx, _ := core.ColumnIndex(core.Columns())
	out := []core.Transaction{}
	for rows.Next() {
		row := make([]string, 4)
		if err := rows.Scan(&row[0], &row[1], &row[2], &row[3]); err != nil {
			return nil, fmt.Errorf("%w: scan transaction: %v", core.ErrStoreUnreadable, err)
		}
		t, err := core.DecodeRow(idx, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(out)+1, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate transactions: %v", core.ErrStoreUnreadable, err)
	}
	return out, nil
}

// Count returns the number of stored transactions.
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}
