package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DebtType categorises a debt.
type DebtType string

const (
	DebtHomeLoan     DebtType = "home_loan"
	DebtCarLoan      DebtType = "car_loan"
	DebtPersonalLoan DebtType = "personal_loan"
	DebtOther        DebtType = "other"
)

// DebtTypes lists every accepted debt type.
var DebtTypes = []DebtType{DebtHomeLoan, DebtCarLoan, DebtPersonalLoan, DebtOther}

// IsValid reports whether t is one of DebtTypes.
func (t DebtType) IsValid() bool {
	for _, v := range DebtTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Debt is something the owner owes. CurrentBalance is a running balance: it
// moves with every linked transaction created, edited or deleted through the store.
type Debt struct {
	ID             string           `json:"id"`
	UserID         string           `json:"userId"`
	Name           string           `json:"name"`
	Type           DebtType         `json:"type"`
	CurrentBalance decimal.Decimal  `json:"currentBalance"`
	InterestRate   *decimal.Decimal `json:"interestRate,omitempty"`
	IsDeleted      bool             `json:"isDeleted"`
	AuditFields
}

// CreateDebtInput is the caller-supplied part of a new debt. Type defaults to "other".
type CreateDebtInput struct {
	Name           string           `json:"name" validate:"required"`
	Type           DebtType         `json:"type" validate:"omitempty,oneof=home_loan car_loan personal_loan other"`
	CurrentBalance decimal.Decimal  `json:"currentBalance"`
	InterestRate   *decimal.Decimal `json:"interestRate,omitempty"`
}

// Validate checks the rules the struct tags cannot express.
func (in CreateDebtInput) Validate() error {
	return validateDebtNumbers(&in.CurrentBalance, in.InterestRate)
}

// DebtPatch lists the fields a debt update may change.
type DebtPatch struct {
	Name           *string          `json:"name,omitempty" validate:"omitempty,min=1"`
	Type           *DebtType        `json:"type,omitempty" validate:"omitempty,oneof=home_loan car_loan personal_loan other"`
	CurrentBalance *decimal.Decimal `json:"currentBalance,omitempty"`
	InterestRate   *decimal.Decimal `json:"interestRate,omitempty"`

	// ClearInterestRate sets the rate back to unknown. It cannot be combined
	// with InterestRate.
	ClearInterestRate bool `json:"clearInterestRate,omitempty"`
}

// IsEmpty reports whether no field is supplied.
func (p DebtPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil && p.CurrentBalance == nil && p.InterestRate == nil && !p.ClearInterestRate
}

// Validate checks the rules the struct tags cannot express.
func (p DebtPatch) Validate() error {
	if p.ClearInterestRate && p.InterestRate != nil {
		return errors.New("interestRate and clearInterestRate are mutually exclusive")
	}
	return validateDebtNumbers(p.CurrentBalance, p.InterestRate)
}

func validateDebtNumbers(balance, rate *decimal.Decimal) error {
	if balance != nil && balance.IsNegative() {
		return errors.New("currentBalance must not be negative")
	}
	if rate != nil && rate.IsNegative() {
		return errors.New("interestRate must not be negative")
	}
	return nil
}

// Apply returns a copy of d with the supplied fields overwritten.
func (p DebtPatch) Apply(d Debt) Debt {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.CurrentBalance != nil {
		d.CurrentBalance = *p.CurrentBalance
	}
	if p.InterestRate != nil {
		rate := *p.InterestRate
		d.InterestRate = &rate
	}
	if p.ClearInterestRate {
		d.InterestRate = nil
	}
	return d
}
