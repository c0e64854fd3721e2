// Package ledger declares the ports shared by every transaction store.
package ledger

import (
	"context"

	"ledger/internal/core"
)

// Ports for outbound adapters.
type (
	// Initializer prepares the persistent resource. It must be idempotent.
	Initializer interface {
		Initialize(ctx context.Context) error
	}

	// TransactionAppender durably adds one record after all existing ones.
	TransactionAppender interface {
		Append(ctx context.Context, t core.Transaction) error
	}

	// TransactionLoader returns every persisted record in insertion order.
	// Corrupt content is reported with core.ErrStoreUnreadable.
	TransactionLoader interface {
		LoadAll(ctx context.Context) ([]core.Transaction, error)
	}

	Store interface {
		Initializer
		TransactionAppender
		TransactionLoader
	}
)
