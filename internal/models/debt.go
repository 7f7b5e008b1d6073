package models

import (
	"github.com/shopspring/decimal"
)

// Debt is the row shape of the debts table.
type Debt struct {
	ID             string              `db:"id"`
	UserID         string              `db:"user_id"`
	Name           string              `db:"name"`
	Type           string              `db:"type"`
	CurrentBalance decimal.Decimal     `db:"current_balance"`
	InterestRate   decimal.NullDecimal `db:"interest_rate"` // Nullable
	IsDeleted      bool                `db:"is_deleted"`
	AuditFields
}
