package memory

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"ledger/internal/core"
	"ledger/internal/ledger"
	"ledger/internal/storage/csvfile"
)

// Store keeps transactions in process memory. Nothing survives a restart.
type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

var _ ledger.Store = (*Store)(nil)

func New(seed ...core.Transaction) *Store {
	return &Store{items: append([]core.Transaction(nil), seed...)}
}

// NewFromFile seeds the store from a CSV file in the store layout. A missing
// file yields an empty store.
func NewFromFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	txs, err := csvfile.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return New(txs...), nil
}

func (s *Store) Initialize(context.Context) error {
	return nil
}

// Append stores the transaction after validating it.
func (s *Store) Append(_ context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, t)
	return nil
}

// LoadAll returns a copy of every stored transaction.
func (s *Store) LoadAll(context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction{}, s.items...), nil
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
