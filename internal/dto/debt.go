package dto

import (
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest defines the data needed to create a new debt.
type CreateDebtRequest struct {
	Name           string           `json:"name" binding:"required"`
	Type           string           `json:"type" binding:"omitempty,oneof=home_loan car_loan personal_loan other"`
	CurrentBalance decimal.Decimal  `json:"currentBalance"`
	InterestRate   *decimal.Decimal `json:"interestRate"`
}

// ToInput converts the request into the domain input.
func (r CreateDebtRequest) ToInput() domain.CreateDebtInput {
	return domain.CreateDebtInput{
		Name:           r.Name,
		Type:           domain.DebtType(r.Type),
		CurrentBalance: r.CurrentBalance,
		InterestRate:   r.InterestRate,
	}
}

// UpdateDebtRequest carries the debt fields to change.
type UpdateDebtRequest struct {
	Name           *string          `json:"name" binding:"omitempty,min=1"`
	Type           *string          `json:"type" binding:"omitempty,oneof=home_loan car_loan personal_loan other"`
	CurrentBalance *decimal.Decimal `json:"currentBalance"`
	InterestRate   *decimal.Decimal `json:"interestRate"`

	// ClearInterestRate resets a previously recorded rate to unknown.
	ClearInterestRate bool `json:"clearInterestRate"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateDebtRequest) ToPatch() domain.DebtPatch {
	patch := domain.DebtPatch{
		Name:              r.Name,
		CurrentBalance:    r.CurrentBalance,
		InterestRate:      r.InterestRate,
		ClearInterestRate: r.ClearInterestRate,
	}
	if r.Type != nil {
		t := domain.DebtType(*r.Type)
		patch.Type = &t
	}
	return patch
}

// DebtResponse defines the data returned for a debt.
type DebtResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Type           string           `json:"type"`
	CurrentBalance decimal.Decimal  `json:"currentBalance"`
	InterestRate   *decimal.Decimal `json:"interestRate,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// ToDebtResponse converts a domain debt to its response DTO.
func ToDebtResponse(d *domain.Debt) DebtResponse {
	return DebtResponse{
		ID:             d.ID,
		Name:           d.Name,
		Type:           string(d.Type),
		CurrentBalance: d.CurrentBalance,
		InterestRate:   d.InterestRate,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ToDebtResponses converts a slice of domain debts.
func ToDebtResponses(debts []domain.Debt) []DebtResponse {
	res := make([]DebtResponse, len(debts))
	for i := range debts {
		res[i] = ToDebtResponse(&debts[i])
	}
	return res
}
