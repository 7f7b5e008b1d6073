package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
)

type debtService struct {
	BaseService
	debtRepo portsrepo.DebtRepositoryFacade
}

// NewDebtService creates a new debt service.
func NewDebtService(repo portsrepo.DebtRepositoryFacade) portssvc.DebtSvcFacade {
	return &debtService{debtRepo: repo}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

func (s *debtService) ListDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	debts, err := s.debtRepo.ListDebts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts", slog.String("user_id", userID))
		return nil, err
	}
	return debts, nil
}

func (s *debtService) GetDebtByID(ctx context.Context, userID string, debtID string) (*domain.Debt, error) {
	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		s.LogDebug(ctx, "Failed to find debt", slog.String("debt_id", debtID), slog.String("error", err.Error()))
		return nil, err
	}
	return debt, nil
}

func (s *debtService) CreateDebt(ctx context.Context, userID string, input domain.CreateDebtInput) (string, error) {
	if err := s.ValidateInput(ctx, input); err != nil {
		return "", err
	}

	id, err := s.NewID("debt")
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()

	debtType := input.Type
	if debtType == "" {
		debtType = domain.DebtOther
	}

	debt := domain.Debt{
		ID:             id,
		UserID:         userID,
		Name:           input.Name,
		Type:           debtType,
		CurrentBalance: input.CurrentBalance,
		InterestRate:   input.InterestRate,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.debtRepo.SaveDebt(ctx, debt); err != nil {
		s.LogError(ctx, err, "Failed to save debt", slog.String("debt_id", id))
		return "", err
	}

	s.LogInfo(ctx, "Debt created successfully", slog.String("debt_id", id), slog.String("type", string(debtType)))
	return id, nil
}

func (s *debtService) UpdateDebt(ctx context.Context, userID string, debtID string, patch domain.DebtPatch) error {
	if err := s.ValidateInput(ctx, patch); err != nil {
		return err
	}

	if err := s.debtRepo.UpdateDebt(ctx, userID, debtID, patch, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to update debt", slog.String("debt_id", debtID))
		return err
	}
	return nil
}

func (s *debtService) DeleteDebt(ctx context.Context, userID string, debtID string) error {
	if err := s.debtRepo.DeleteDebt(ctx, userID, debtID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to delete debt", slog.String("debt_id", debtID))
		return err
	}

	s.LogInfo(ctx, "Debt deleted", slog.String("debt_id", debtID))
	return nil
}
