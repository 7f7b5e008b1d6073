package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// DebtReader defines read operations for debt data
type DebtReader interface {
	// ListDebts returns the non-deleted debts of userID, newest first.
	ListDebts(ctx context.Context, userID string) ([]domain.Debt, error)

	// FindDebtByID returns the debt even when soft-deleted; ErrNotFound if the row does not exist.
	FindDebtByID(ctx context.Context, userID string, debtID string) (*domain.Debt, error)
}

// DebtWriter defines write operations for debt data
type DebtWriter interface {
	// SaveDebt persists a new debt.
	SaveDebt(ctx context.Context, debt domain.Debt) error

	// UpdateDebt rewrites the supplied fields and updated_at. Empty patches and unknown ids are no-ops.
	UpdateDebt(ctx context.Context, userID string, debtID string, patch domain.DebtPatch, now time.Time) error

	// DeleteDebt soft-deletes a debt. Unknown ids are a no-op.
	DeleteDebt(ctx context.Context, userID string, debtID string, now time.Time) error
}

// DebtRepositoryFacade combines all debt-related repository interfaces
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
