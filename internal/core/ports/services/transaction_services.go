package services

import (
	"context"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// ListTransactions returns one page of live transactions, newest first.
	// A limit <= 0 uses the default page size.
	ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListAllTransactions returns every live transaction, newest first.
	ListAllTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transaction data.
// Linked debt balances move with every write.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, userID string, input domain.CreateTransactionInput) (string, error)
	UpdateTransaction(ctx context.Context, userID string, transactionID string, patch domain.TransactionPatch) error
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
