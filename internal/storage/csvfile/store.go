// Package csvfile stores transactions in a single append-only CSV file.
//
// Layout:
//
//	date,amount,category,description
//	15-03-2024,100,Income,salary
//
// The header is written once by Initialize and never rewritten. Rows are only
// ever appended. Concurrent writers from several processes are not supported.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"ledger/internal/core"
	"ledger/internal/ledger"
)

// DefaultPath is the store file used when no path is configured.
const DefaultPath = "finance_data.csv"

type Store struct {
	path string
}

var _ ledger.Store = (*Store)(nil)

func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Initialize creates a header-only file when none exists. An existing file is
// left untouched.
func (s *Store) Initialize(ctx context.Context) error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("create %s: %w", s.path, err)
	}
	if err := writeRow(f, core.Columns()); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}

	slog.InfoContext(ctx, "Initialized CSV store", "path", s.path)
	return nil
}

// Append writes t as the new last row.
func (s *Store) Append(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", s.path, err)
	}
	if err := writeRow(f, t.Row()); err != nil {
		f.Close()
		return fmt.Errorf("append row: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}

	slog.DebugContext(ctx, "Transaction appended to CSV store",
		"path", s.path,
		"date", t.Date.String(),
		"amount", t.Amount.String(),
		"category", t.Category.String())
	return nil
}

// LoadAll reads every row back. A missing file, a header without the required
// columns or any malformed row yields core.ErrStoreUnreadable.
func (s *Store) LoadAll(ctx context.Context) ([]core.Transaction, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", core.ErrStoreUnreadable, s.path, err)
	}
	defer f.Close()

	txs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	slog.DebugContext(ctx, "Loaded CSV store", "path", s.path, "rows", len(txs))
	return txs, nil
}

// Decode parses a CSV stream with a header row into transactions.
func Decode(r io.Reader) ([]core.Transaction, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: missing header", core.ErrStoreUnreadable)
		}
		return nil, fmt.Errorf("%w: read header: %v", core.ErrStoreUnreadable, err)
	}
	idx, err := core.ColumnIndex(header)
	if err != nil {
		return nil, err
	}

	out := []core.Transaction{}
	for n := 1; ; n++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrStoreUnreadable, err)
		}
		t, err := core.DecodeRow(idx, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func writeRow(w io.Writer, row []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
