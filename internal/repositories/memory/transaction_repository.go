package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/networth_tracker/internal/utils/accounting"
	"github.com/SscSPs/networth_tracker/internal/utils/pagination"
)

type TransactionRepository struct {
	store *Store
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func cloneTransaction(t domain.Transaction) domain.Transaction {
	t.AssetID = cloneString(t.AssetID)
	t.DebtID = cloneString(t.DebtID)
	t.AssetName = cloneString(t.AssetName)
	t.DebtName = cloneString(t.DebtName)
	return t
}

// withNames fills the joined asset and debt names the way the SQL list query does.
func (s *Store) withNames(t domain.Transaction) domain.Transaction {
	t = cloneTransaction(t)
	t.AssetName, t.DebtName = nil, nil
	if t.AssetID != nil {
		if a, ok := s.assets[*t.AssetID]; ok {
			name := a.Name
			t.AssetName = &name
		}
	}
	if t.DebtID != nil {
		if d, ok := s.debts[*t.DebtID]; ok {
			name := d.Name
			t.DebtName = &name
		}
	}
	return t
}

// checkReferences mirrors the foreign keys on transactions.asset_id and transactions.debt_id.
func (s *Store) checkReferences(t domain.Transaction) error {
	if t.AssetID != nil {
		if _, ok := s.assets[*t.AssetID]; !ok {
			return fmt.Errorf("%w: asset %s does not exist", apperrors.ErrConstraint, *t.AssetID)
		}
	}
	if t.DebtID != nil {
		if _, ok := s.debts[*t.DebtID]; !ok {
			return fmt.Errorf("%w: debt %s does not exist", apperrors.ErrConstraint, *t.DebtID)
		}
	}
	return nil
}

func newerFirst(a, b domain.Transaction) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func (r *TransactionRepository) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkReady(); err != nil {
		return nil, nil, err
	}

	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid pagination token", err)
		}
		cursor = &c
	}

	txns := []domain.Transaction{}
	for _, t := range s.transactions {
		if t.UserID != userID || t.IsDeleted {
			continue
		}
		if cursor != nil && !cursor.After(t.Date, t.CreatedAt, t.ID) {
			continue
		}
		txns = append(txns, s.withNames(t))
	}
	sort.Slice(txns, func(i, j int) bool { return newerFirst(txns[i], txns[j]) })

	var newNextToken *string
	if limit > 0 && len(txns) > limit {
		txns = txns[:limit]
		last := txns[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.ID})
		newNextToken = &token
	}
	return txns, newNextToken, nil
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkReady(); err != nil {
		return nil, err
	}

	t, ok := s.transactions[transactionID]
	if !ok || t.UserID != userID {
		return nil, apperrors.NewNotFoundError("transaction " + transactionID)
	}
	t = s.withNames(t)
	return &t, nil
}

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkReady(); err != nil {
		return err
	}

	if _, exists := s.transactions[txn.ID]; exists {
		return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, apperrors.ErrDuplicate)
	}
	if err := s.checkReferences(txn); err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
	}
	if !txn.IsDeleted {
		if err := s.applyDebtBalanceChanges(txn.UserID, accounting.DebtBalanceChanges(nil, &txn), txn.CreatedAt); err != nil {
			return err
		}
	}

	txn = cloneTransaction(txn)
	txn.Date = txn.Date.UTC()
	txn.AssetName, txn.DebtName = nil, nil
	s.transactions[txn.ID] = txn
	return nil
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, userID string, transactionID string, patch domain.TransactionPatch, now time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkReady(); err != nil {
		return err
	}

	before, ok := s.transactions[transactionID]
	if patch.IsEmpty() || !ok || before.UserID != userID {
		return nil
	}

	after := patch.Apply(cloneTransaction(before))
	after.UpdatedAt = now.UTC()
	if err := s.checkReferences(after); err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}
	if !before.IsDeleted {
		if err := s.applyDebtBalanceChanges(userID, accounting.DebtBalanceChanges(&before, &after), now); err != nil {
			return err
		}
	}
	s.transactions[transactionID] = after
	return nil
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string, now time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkReady(); err != nil {
		return err
	}

	before, ok := s.transactions[transactionID]
	if !ok || before.UserID != userID || before.IsDeleted {
		return nil
	}
	if err := s.applyDebtBalanceChanges(userID, accounting.DebtBalanceChanges(&before, nil), now); err != nil {
		return err
	}

	after := before
	after.IsDeleted = true
	after.UpdatedAt = now.UTC()
	s.transactions[transactionID] = after
	return nil
}
