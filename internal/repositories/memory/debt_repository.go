package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type DebtRepository struct {
	store *Store
}

var _ portsrepo.DebtRepositoryFacade = (*DebtRepository)(nil)

func cloneDebt(d domain.Debt) domain.Debt {
	if d.InterestRate != nil {
		rate := *d.InterestRate
		d.InterestRate = &rate
	}
	return d
}

func (r *DebtRepository) ListDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkReady(); err != nil {
		return nil, err
	}

	debts := []domain.Debt{}
	for _, d := range s.debts {
		if d.UserID == userID && !d.IsDeleted {
			debts = append(debts, cloneDebt(d))
		}
	}
	sort.Slice(debts, func(i, j int) bool {
		if !debts[i].CreatedAt.Equal(debts[j].CreatedAt) {
			return debts[i].CreatedAt.After(debts[j].CreatedAt)
		}
		return debts[i].ID > debts[j].ID
	})
	return debts, nil
}

func (r *DebtRepository) FindDebtByID(ctx context.Context, userID string, debtID string) (*domain.Debt, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkReady(); err != nil {
		return nil, err
	}

	d, ok := s.debts[debtID]
	if !ok || d.UserID != userID {
		return nil, apperrors.NewNotFoundError("debt " + debtID)
	}
	d = cloneDebt(d)
	return &d, nil
}

func (r *DebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkReady(); err != nil {
		return err
	}

	if _, exists := s.debts[debt.ID]; exists {
		return fmt.Errorf("failed to insert debt %s: %w", debt.ID, apperrors.ErrDuplicate)
	}
	s.debts[debt.ID] = cloneDebt(debt)
	return nil
}

func (r *DebtRepository) UpdateDebt(ctx context.Context, userID string, debtID string, patch domain.DebtPatch, now time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkReady(); err != nil {
		return err
	}

	d, ok := s.debts[debtID]
	if patch.IsEmpty() || !ok || d.UserID != userID {
		return nil
	}
	d = patch.Apply(d)
	d.UpdatedAt = now.UTC()
	s.debts[debtID] = d
	return nil
}

func (r *DebtRepository) DeleteDebt(ctx context.Context, userID string, debtID string, now time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkReady(); err != nil {
		return err
	}

	d, ok := s.debts[debtID]
	if !ok || d.UserID != userID || d.IsDeleted {
		return nil
	}
	d.IsDeleted = true
	d.UpdatedAt = now.UTC()
	s.debts[debtID] = d
	return nil
}

// applyDebtBalanceChanges checks every target first, then applies, so a
// missing debt leaves all balances untouched. Caller holds the write lock.
func (s *Store) applyDebtBalanceChanges(userID string, balanceChanges map[string]decimal.Decimal, now time.Time) error {
	for debtID := range balanceChanges {
		d, ok := s.debts[debtID]
		if !ok || d.UserID != userID {
			return fmt.Errorf("%w: debt %s not found during balance update", apperrors.ErrNotFound, debtID)
		}
	}
	for debtID, delta := range balanceChanges {
		if delta.IsZero() {
			continue
		}
		d := s.debts[debtID]
		d.CurrentBalance = d.CurrentBalance.Add(delta)
		d.UpdatedAt = now.UTC()
		s.debts[debtID] = d
	}
	return nil
}
