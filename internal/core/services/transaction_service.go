package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
)

const (
	// DefaultTransactionPageSize applies when the caller passes no limit.
	DefaultTransactionPageSize = 50
	// MaxTransactionPageSize caps a single page.
	MaxTransactionPageSize = 500
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: repo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = DefaultTransactionPageSize
	}
	if limit > MaxTransactionPageSize {
		limit = MaxTransactionPageSize
	}

	txns, token, err := s.transactionRepo.ListTransactions(ctx, userID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, nil, err
	}
	return txns, token, nil
}

func (s *transactionService) ListAllTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, _, err := s.transactionRepo.ListTransactions(ctx, userID, 0, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list all transactions", slog.String("user_id", userID))
		return nil, err
	}
	return txns, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		s.LogDebug(ctx, "Failed to find transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, input domain.CreateTransactionInput) (string, error) {
	if err := s.ValidateInput(ctx, input); err != nil {
		return "", err
	}

	id, err := s.NewID("transaction")
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()

	txn := domain.Transaction{
		ID:          id,
		UserID:      userID,
		Date:        input.Date.UTC(),
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		AssetID:     input.AssetID,
		DebtID:      input.DebtID,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", id))
		return "", err
	}

	attrs := []any{slog.String("transaction_id", id), slog.String("type", string(txn.Type))}
	if txn.DebtID != nil {
		attrs = append(attrs, slog.String("debt_id", *txn.DebtID))
	}
	s.LogInfo(ctx, "Transaction created successfully", attrs...)
	return id, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, patch domain.TransactionPatch) error {
	if err := s.ValidateInput(ctx, patch); err != nil {
		return err
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, userID, transactionID, patch, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return err
	}
	return nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, userID, transactionID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
