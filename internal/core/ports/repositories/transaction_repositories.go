package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// ListTransactions returns non-deleted transactions ordered by date then creation time, newest first.
	// A limit <= 0 returns every row. The returned token is nil on the last page.
	ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// FindTransactionByID returns the transaction even when soft-deleted; ErrNotFound if the row does not exist.
	FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
// Writes touching a transaction linked to a debt adjust the debt balance in the same unit of work.
type TransactionWriter interface {
	// SaveTransaction inserts a transaction and, when linked to a debt, applies its balance delta atomically.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction rewrites the supplied fields, reversing the old debt delta and applying the new one.
	UpdateTransaction(ctx context.Context, userID string, transactionID string, patch domain.TransactionPatch, now time.Time) error

	// DeleteTransaction soft-deletes a transaction and reverses its debt delta.
	DeleteTransaction(ctx context.Context, userID string, transactionID string, now time.Time) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
