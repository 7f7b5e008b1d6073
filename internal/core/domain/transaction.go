package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType decides the sign of a transaction wherever a sign is needed.
type TransactionType string

const (
	Income   TransactionType = "income"
	Expense  TransactionType = "expense"
	Transfer TransactionType = "transfer"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case Income, Expense, Transfer:
		return true
	}
	return false
}

// Transaction is a dated money movement. Amount is always stored non-negative;
// AssetID and DebtID are optional weak references.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	AssetID     *string         `json:"assetId"`
	DebtID      *string         `json:"debtId"`
	IsDeleted   bool            `json:"isDeleted"`
	AuditFields

	// Read-only names of the linked asset/debt, filled by list queries.
	AssetName *string `json:"assetName,omitempty"`
	DebtName  *string `json:"debtName,omitempty"`
}

// CreateTransactionInput is the caller-supplied part of a new transaction.
type CreateTransactionInput struct {
	Date        time.Time       `json:"date" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type" validate:"required,oneof=income expense transfer"`
	AssetID     *string         `json:"assetId" validate:"omitempty,min=1"`
	DebtID      *string         `json:"debtId" validate:"omitempty,min=1"`
}

// Validate checks the rules the struct tags cannot express.
func (in CreateTransactionInput) Validate() error {
	if !in.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	return nil
}

// TransactionPatch lists the fields a transaction update may change.
// For AssetID and DebtID an empty string removes the link.
type TransactionPatch struct {
	Date        *time.Time       `json:"date,omitempty"`
	Description *string          `json:"description,omitempty" validate:"omitempty,min=1"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Type        *TransactionType `json:"type,omitempty" validate:"omitempty,oneof=income expense transfer"`
	AssetID     *string          `json:"assetId,omitempty"`
	DebtID      *string          `json:"debtId,omitempty"`
}

// IsEmpty reports whether no field is supplied.
func (p TransactionPatch) IsEmpty() bool {
	return p.Date == nil && p.Description == nil && p.Amount == nil &&
		p.Type == nil && p.AssetID == nil && p.DebtID == nil
}

// Validate checks the rules the struct tags cannot express.
func (p TransactionPatch) Validate() error {
	if p.Amount != nil && !p.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	return nil
}

// Apply returns a copy of t with the supplied fields overwritten.
func (p TransactionPatch) Apply(t Transaction) Transaction {
	if p.Date != nil {
		t.Date = p.Date.UTC()
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.AssetID != nil {
		t.AssetID = optionalID(*p.AssetID)
	}
	if p.DebtID != nil {
		t.DebtID = optionalID(*p.DebtID)
	}
	return t
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
