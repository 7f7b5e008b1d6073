package services

import (
	"context"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// DebtReaderSvc defines read operations for debt data
type DebtReaderSvc interface {
	ListDebts(ctx context.Context, userID string) ([]domain.Debt, error)
	GetDebtByID(ctx context.Context, userID string, debtID string) (*domain.Debt, error)
}

// DebtWriterSvc defines write operations for debt data
type DebtWriterSvc interface {
	// CreateDebt validates the input, persists the debt and returns its id.
	CreateDebt(ctx context.Context, userID string, input domain.CreateDebtInput) (string, error)
	UpdateDebt(ctx context.Context, userID string, debtID string, patch domain.DebtPatch) error
	DeleteDebt(ctx context.Context, userID string, debtID string) error
}

// DebtSvcFacade combines all debt-related service interfaces
type DebtSvcFacade interface {
	DebtReaderSvc
	DebtWriterSvc
}
